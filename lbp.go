package eyesopen

import (
	"fmt"
	"math"

	"github.com/dedkamaroz/eyesopen/imageutil"
)

// TextureAnalysis computes a Local Binary Pattern map of the grayscale
// source. Each pixel is encoded against P neighbors sampled on a circle of
// radius R (bilinear interpolation for off-grid samples, clamped border
// coordinates): bit i is set when neighbor i is >= the center value, bits
// assembled LSB-first starting at angle 0 and proceeding counterclockwise.
//
// The default variant is the raw non-rotation-invariant code, scaled into
// [0, 255] (an identity when P = 8). Config.LBPUniform selects the
// uniform-pattern variant instead: codes with at most two circular 0/1
// transitions map to their set-bit count, all others to P+1, then the
// P+2 bins are stretched over [0, 255]. Cloned or airbrushed regions show
// up as sudden discontinuities in the code distribution.
func TextureAnalysis(src *imageutil.RGBAImage, cfg Config) (AnalysisResult, error) {
	gray := imageutil.ToGrayscale(src)
	width, height := gray.Width(), gray.Height()
	points, radius := cfg.LBPPoints, cfg.LBPRadius

	// Sample offsets around the circle, fixed for the whole image.
	offsets := make([][2]float64, points)
	for i := 0; i < points; i++ {
		angle := 2 * math.Pi * float64(i) / float64(points)
		offsets[i] = [2]float64{radius * math.Cos(angle), -radius * math.Sin(angle)}
	}

	out := imageutil.NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			center := float64(gray.GrayAt(x, y).Y)

			var code uint32
			for i, off := range offsets {
				sample := imageutil.BilinearSample(gray, float64(x)+off[0], float64(y)+off[1])
				if sample >= center {
					code |= 1 << uint(i)
				}
			}

			out.Gray.Pix[y*out.Stride+x] = encodeLBP(code, points, cfg.LBPUniform)
		}
	}

	variant := "raw"
	if cfg.LBPUniform {
		variant = "uniform"
	}
	return AnalysisResult{
		Method: MethodTexture,
		Image:  imageutil.GrayscaleToRGBA(out),
		Params: fmt.Sprintf("P=%d, R=%g, %s", points, radius, variant),
	}, nil
}

// encodeLBP maps a P-bit neighborhood code into [0, 255] for the chosen
// variant.
func encodeLBP(code uint32, points int, uniform bool) uint8 {
	if uniform {
		bin := uniformBin(code, points)
		return uint8(bin * 255 / (points + 1))
	}

	maxCode := uint32(1)<<uint(points) - 1
	if maxCode == 255 {
		return uint8(code)
	}
	return uint8(uint64(code) * 255 / uint64(maxCode))
}

// uniformBin returns the uniform-pattern bin for a code: its popcount when
// the circular bit string has at most two 0/1 transitions, P+1 otherwise.
func uniformBin(code uint32, points int) int {
	transitions := 0
	ones := 0
	for i := 0; i < points; i++ {
		bit := (code >> uint(i)) & 1
		next := (code >> uint((i+1)%points)) & 1
		if bit != next {
			transitions++
		}
		if bit == 1 {
			ones++
		}
	}

	if transitions <= 2 {
		return ones
	}
	return points + 1
}
