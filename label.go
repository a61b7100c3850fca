package eyesopen

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dedkamaroz/eyesopen/imageutil"
)

// LabelRenderer draws tile captions. The default face is the built-in
// 7x13 bitmap font; LoadLabelFont swaps in a TTF rendered through freetype
// for nicer report typography.
type LabelRenderer struct {
	face font.Face
}

// NewLabelRenderer returns a renderer using the built-in bitmap face.
func NewLabelRenderer() *LabelRenderer {
	return &LabelRenderer{face: basicfont.Face7x13}
}

// LoadLabelFont loads a TTF file and returns a renderer with a face sized
// for the caption strip.
func LoadLabelFont(path string, points float64) (*LabelRenderer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}

	ttf, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &LabelRenderer{face: face}, nil
}

// Draw renders text into the caption strip at (x, y) of the given size,
// truncating with an ellipsis when the text is wider than the strip.
func (r *LabelRenderer) Draw(dst *imageutil.RGBAImage, text string, x, y, width, height int) {
	metrics := r.face.Metrics()
	baseline := y + (height+metrics.Ascent.Ceil()-metrics.Descent.Ceil())/2

	d := &font.Drawer{
		Dst:  dst.RGBA,
		Src:  image.NewUniform(color.White),
		Face: r.face,
		Dot:  fixed.P(x, baseline),
	}

	d.DrawString(r.fit(text, width))
}

// fit truncates text so it measures no wider than width pixels.
func (r *LabelRenderer) fit(text string, width int) string {
	d := &font.Drawer{Face: r.face}
	limit := fixed.I(width)

	if d.MeasureString(text) <= limit {
		return text
	}

	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if d.MeasureString(candidate) <= limit {
			return candidate
		}
	}
	return ""
}
