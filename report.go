package eyesopen

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/dedkamaroz/eyesopen/imageutil"
)

// Tile pairs one raster with its display label.
type Tile struct {
	Image *imageutil.RGBAImage
	Label string
}

// ReportLayout describes the fixed report grid: the original plus the five
// analysis rasters in two rows of three.
type ReportLayout struct {
	Rows       int
	Columns    int
	TileWidth  int
	TileHeight int
	// LabelHeight is the caption strip under each tile.
	LabelHeight int
	Margin      int
}

// NewReportLayout derives the grid geometry from the configured tile size.
func NewReportLayout(cfg Config) ReportLayout {
	return ReportLayout{
		Rows:        2,
		Columns:     3,
		TileWidth:   cfg.TileWidth,
		TileHeight:  cfg.TileHeight,
		LabelHeight: 18,
		Margin:      cfg.Margin,
	}
}

// Cells returns the number of tiles the grid holds.
func (l ReportLayout) Cells() int {
	return l.Rows * l.Columns
}

// OutputSize returns the dimensions of the composed raster.
func (l ReportLayout) OutputSize() (width, height int) {
	cellH := l.TileHeight + l.LabelHeight
	width = l.Columns*l.TileWidth + (l.Columns+1)*l.Margin
	height = l.Rows*cellH + (l.Rows+1)*l.Margin
	return width, height
}

// Report is the final composite raster and the layout that produced it.
type Report struct {
	Image  *imageutil.RGBAImage
	Layout ReportLayout
}

// Compose paints the tiles into one labeled grid raster. Each tile is
// resized to fit its cell preserving aspect ratio, centered and
// letterboxed on black, with its caption drawn in the strip below. Pure
// function of the tiles and layout: identical inputs produce an identical
// raster. A tile count that does not fill the grid is ErrLayout.
func Compose(tiles []Tile, layout ReportLayout, labels *LabelRenderer) (*Report, error) {
	if len(tiles) != layout.Cells() {
		return nil, fmt.Errorf("%w: %d tiles for a %dx%d grid",
			ErrLayout, len(tiles), layout.Rows, layout.Columns)
	}

	width, height := layout.OutputSize()
	out := imageutil.NewRGBAImage(width, height)
	draw.Draw(out.RGBA, out.Bounds(), image.NewUniform(color.RGBA{R: 24, G: 24, B: 24, A: 255}), image.Point{}, draw.Src)

	cellH := layout.TileHeight + layout.LabelHeight
	for i, tile := range tiles {
		row, col := i/layout.Columns, i%layout.Columns
		cellX := layout.Margin + col*(layout.TileWidth+layout.Margin)
		cellY := layout.Margin + row*(cellH+layout.Margin)

		fitW, fitH := imageutil.FitWithin(tile.Image.Width(), tile.Image.Height(), layout.TileWidth, layout.TileHeight)
		scaled := imageutil.Resize(tile.Image, fitW, fitH, imageutil.InterpolationArea)

		// Letterbox on black inside the cell.
		tileRect := image.Rect(cellX, cellY, cellX+layout.TileWidth, cellY+layout.TileHeight)
		draw.Draw(out.RGBA, tileRect, image.NewUniform(color.Black), image.Point{}, draw.Src)

		offX := cellX + (layout.TileWidth-fitW)/2
		offY := cellY + (layout.TileHeight-fitH)/2
		draw.Draw(out.RGBA, image.Rect(offX, offY, offX+fitW, offY+fitH), scaled.RGBA, image.Point{}, draw.Src)

		labels.Draw(out, tile.Label, cellX+2, cellY+layout.TileHeight, layout.TileWidth-4, layout.LabelHeight)
	}

	return &Report{Image: out, Layout: layout}, nil
}
