package eyesopen

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	"github.com/dedkamaroz/eyesopen/imageutil"
)

// ErrorLevelAnalysis recompresses the source through JPEG and amplifies the
// per-pixel difference against the original. Regions whose residue stands
// out carry a compression history inconsistent with the rest of the frame.
//
// With Config.ELAQualities set, one pass runs per quality and the per-pixel
// maximum residue is kept (the original multi-quality composite); otherwise
// a single pass at Config.ELAQuality runs. The output is 3-channel, either
// the amplified per-channel differences or, with ELAColormap, the
// luminance-collapsed residue rendered through the jet colormap.
func ErrorLevelAnalysis(src *imageutil.RGBAImage, cfg Config) (AnalysisResult, error) {
	qualities := cfg.ELAQualities
	if len(qualities) == 0 {
		qualities = []int{cfg.ELAQuality}
	}

	var composite *imageutil.RGBAImage
	for _, quality := range qualities {
		recompressed, err := recompressJPEG(src, quality)
		if err != nil {
			return AnalysisResult{}, err
		}
		diff := imageutil.AbsDiff(src, recompressed)
		if composite == nil {
			composite = diff
		} else {
			composite = imageutil.MaxImage(composite, diff)
		}
	}

	amplified := imageutil.ScaleAndClamp(composite, cfg.ELAAmplify, 0)
	if cfg.ELAColormap {
		amplified = applyJetColormap(imageutil.ToGrayscale(amplified))
	}

	return AnalysisResult{
		Method: MethodELA,
		Image:  amplified,
		Params: elaParams(qualities, cfg.ELAAmplify),
	}, nil
}

// recompressJPEG round-trips an image through the JPEG codec in memory.
func recompressJPEG(src *imageutil.RGBAImage, quality int) (*imageutil.RGBAImage, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src.RGBA, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("%w: JPEG encode at quality %d: %v", ErrDecode, quality, err)
	}

	decoded, err := jpeg.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("%w: JPEG decode at quality %d: %v", ErrDecode, quality, err)
	}

	if !decoded.Bounds().Eq(image.Rect(0, 0, src.Width(), src.Height())) {
		return nil, fmt.Errorf("%w: recompressed dimensions %v differ from source %dx%d",
			ErrDecode, decoded.Bounds(), src.Width(), src.Height())
	}

	return imageutil.RGBAImageFromImage(decoded), nil
}

func elaParams(qualities []int, amplify float64) string {
	parts := make([]string, len(qualities))
	for i, q := range qualities {
		parts[i] = fmt.Sprintf("%d", q)
	}
	return fmt.Sprintf("q=%s x%g", strings.Join(parts, "/"), amplify)
}
