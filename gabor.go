package eyesopen

import (
	"fmt"
	"math"

	"github.com/dedkamaroz/eyesopen/imageutil"
)

// GaborFiltering convolves the grayscale source with a bank of oriented
// Gabor kernels and keeps, per pixel, the maximum response magnitude across
// orientations. Localized texture energy at the chosen spatial frequency
// shows up bright; abrupt discontinuities in the response can indicate a
// cloned or airbrushed region.
//
// Each orientation contributes a quadrature pair (cosine and sine carrier
// under the same Gaussian envelope) whose magnitude sqrt(re^2 + im^2) is
// phase-invariant. The combined map is min-max normalized to [0, 255].
func GaborFiltering(src *imageutil.RGBAImage, cfg Config) (AnalysisResult, error) {
	gray := imageutil.ToGrayscaleFloat(src)
	height := len(gray)
	width := 0
	if height > 0 {
		width = len(gray[0])
	}

	combined := make([][]float64, height)
	for y := range combined {
		combined[y] = make([]float64, width)
	}

	for _, degrees := range cfg.GaborOrientations {
		theta := degrees * math.Pi / 180
		kRe, kIm := gaborKernelPair(cfg.GaborFrequency, theta)

		re := imageutil.ConvolveGrayFloat(gray, kRe)
		im := imageutil.ConvolveGrayFloat(gray, kIm)

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				mag := math.Hypot(re[y][x], im[y][x])
				if mag > combined[y][x] {
					combined[y][x] = mag
				}
			}
		}
	}

	normalized := imageutil.Normalize(combined)
	return AnalysisResult{
		Method: MethodGabor,
		Image:  imageutil.GrayscaleToRGBA(normalized),
		Params: fmt.Sprintf("f=%g, %d orientations", cfg.GaborFrequency, len(cfg.GaborOrientations)),
	}, nil
}

// gaborKernelPair builds the cosine and sine kernels for one orientation.
// The envelope sigma follows the one-octave bandwidth convention
// (sigma ~= 0.56 / frequency), and the kernel radius covers three sigma.
func gaborKernelPair(frequency, theta float64) (re, im *imageutil.Kernel) {
	sigma := 0.56 / frequency
	radius := int(math.Ceil(3 * sigma))
	size := 2*radius + 1

	cosT, sinT := math.Cos(theta), math.Sin(theta)
	reVals := make([][]float64, size)
	imVals := make([][]float64, size)

	var envelopeSum float64
	for y := 0; y < size; y++ {
		reVals[y] = make([]float64, size)
		imVals[y] = make([]float64, size)
		for x := 0; x < size; x++ {
			dx := float64(x - radius)
			dy := float64(y - radius)

			// Rotate into the carrier frame.
			xr := dx*cosT + dy*sinT
			yr := -dx*sinT + dy*cosT

			envelope := math.Exp(-(xr*xr + yr*yr) / (2 * sigma * sigma))
			phase := 2 * math.Pi * frequency * xr

			reVals[y][x] = envelope * math.Cos(phase)
			imVals[y][x] = envelope * math.Sin(phase)
			envelopeSum += envelope
		}
	}

	// Normalize by envelope mass so response scale is frequency-independent.
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			reVals[y][x] /= envelopeSum
			imVals[y][x] /= envelopeSum
		}
	}

	return imageutil.NewKernel(reVals), imageutil.NewKernel(imVals)
}
