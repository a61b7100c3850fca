package eyesopen

import (
	"fmt"
	"sort"

	"github.com/dedkamaroz/eyesopen/imageutil"
)

// EdgeAnalysis converts the source to grayscale, suppresses noise with a
// Gaussian blur, and extracts a binary Canny edge map. Fragmented or
// doubled edge chains in regions that should be continuous are the splicing
// signal the analyst looks for.
//
// With Config.EdgeAutoThreshold the hysteresis pair is derived from the
// median of the blurred plane (low = 0.7x, high = 1.3x, clamped to [0, 255]);
// otherwise the configured fixed pair applies. Every output pixel is
// exactly 0 or 255.
func EdgeAnalysis(src *imageutil.RGBAImage, cfg Config) (AnalysisResult, error) {
	gray := imageutil.ToGrayscale(src)
	blurred, err := imageutil.GaussianBlurGray(gray, cfg.EdgeBlurSigma)
	if err != nil {
		return AnalysisResult{}, err
	}

	low, high := cfg.EdgeLowThreshold, cfg.EdgeHighThreshold
	params := fmt.Sprintf("sigma=%g, t=%g/%g", cfg.EdgeBlurSigma, low, high)
	if cfg.EdgeAutoThreshold {
		low, high = medianThresholds(blurred)
		params = fmt.Sprintf("sigma=%g, auto t=%.0f/%.0f", cfg.EdgeBlurSigma, low, high)
	}

	edges := imageutil.Canny(blurred, low, high)
	return AnalysisResult{
		Method: MethodEdge,
		Image:  imageutil.GrayscaleToRGBA(edges),
		Params: params,
	}, nil
}

// medianThresholds derives the Canny threshold pair from the median
// intensity of the blurred plane.
func medianThresholds(gray *imageutil.GrayImage) (low, high float64) {
	pix := make([]int, 0, gray.Width()*gray.Height())
	for y := 0; y < gray.Height(); y++ {
		for x := 0; x < gray.Width(); x++ {
			pix = append(pix, int(gray.GrayAt(x, y).Y))
		}
	}
	sort.Ints(pix)
	median := float64(pix[len(pix)/2])

	low = 0.7 * median
	high = 1.3 * median
	if high > 255 {
		high = 255
	}
	if high <= 0 {
		// All-black frame; any positive gradient counts as strong.
		return 0, 1
	}
	if low >= high {
		low = high / 2
	}
	return low, high
}
