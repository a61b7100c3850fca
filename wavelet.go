package eyesopen

import (
	"math"

	"github.com/dedkamaroz/eyesopen/imageutil"
)

// HaarDecomposition holds the four quarter-resolution subbands of a
// single-level 2D Haar transform: approximation (LL), horizontal (LH),
// vertical (HL), and diagonal (HH) detail.
type HaarDecomposition struct {
	LL, LH, HL, HH [][]float64

	// Input dimensions before even-size padding, needed to crop the
	// reconstruction back.
	SourceWidth  int
	SourceHeight int
}

// HaarDecompose applies one level of the orthonormal 2D Haar transform:
// row-wise low/high-pass filtering with 2x decimation, then the same down
// the columns. Odd dimensions are padded by one edge-replicated row or
// column first; HaarReconstruct crops the padding back off.
func HaarDecompose(plane [][]float64) *HaarDecomposition {
	srcHeight := len(plane)
	srcWidth := 0
	if srcHeight > 0 {
		srcWidth = len(plane[0])
	}

	padded := padToEven(plane, srcWidth, srcHeight)
	height := len(padded)
	width := len(padded[0])
	halfW, halfH := width/2, height/2

	// Row pass: low coefficients in rowLow, high in rowHigh.
	rowLow := make([][]float64, height)
	rowHigh := make([][]float64, height)
	for y := 0; y < height; y++ {
		rowLow[y] = make([]float64, halfW)
		rowHigh[y] = make([]float64, halfW)
		for x := 0; x < halfW; x++ {
			a, b := padded[y][2*x], padded[y][2*x+1]
			rowLow[y][x] = (a + b) / math.Sqrt2
			rowHigh[y][x] = (a - b) / math.Sqrt2
		}
	}

	dec := &HaarDecomposition{
		LL:           newPlane(halfW, halfH),
		LH:           newPlane(halfW, halfH),
		HL:           newPlane(halfW, halfH),
		HH:           newPlane(halfW, halfH),
		SourceWidth:  srcWidth,
		SourceHeight: srcHeight,
	}

	// Column pass over both half-width planes.
	for y := 0; y < halfH; y++ {
		for x := 0; x < halfW; x++ {
			a, b := rowLow[2*y][x], rowLow[2*y+1][x]
			dec.LL[y][x] = (a + b) / math.Sqrt2
			dec.HL[y][x] = (a - b) / math.Sqrt2

			a, b = rowHigh[2*y][x], rowHigh[2*y+1][x]
			dec.LH[y][x] = (a + b) / math.Sqrt2
			dec.HH[y][x] = (a - b) / math.Sqrt2
		}
	}

	return dec
}

// HaarReconstruct inverts HaarDecompose exactly (up to floating-point
// rounding), returning a plane with the original pre-padding dimensions.
func HaarReconstruct(dec *HaarDecomposition) [][]float64 {
	halfH := len(dec.LL)
	halfW := 0
	if halfH > 0 {
		halfW = len(dec.LL[0])
	}
	height := halfH * 2

	// Invert the column pass.
	rowLow := make([][]float64, height)
	rowHigh := make([][]float64, height)
	for y := range rowLow {
		rowLow[y] = make([]float64, halfW)
		rowHigh[y] = make([]float64, halfW)
	}
	for y := 0; y < halfH; y++ {
		for x := 0; x < halfW; x++ {
			rowLow[2*y][x] = (dec.LL[y][x] + dec.HL[y][x]) / math.Sqrt2
			rowLow[2*y+1][x] = (dec.LL[y][x] - dec.HL[y][x]) / math.Sqrt2
			rowHigh[2*y][x] = (dec.LH[y][x] + dec.HH[y][x]) / math.Sqrt2
			rowHigh[2*y+1][x] = (dec.LH[y][x] - dec.HH[y][x]) / math.Sqrt2
		}
	}

	// Invert the row pass and crop padding.
	out := make([][]float64, dec.SourceHeight)
	for y := 0; y < dec.SourceHeight; y++ {
		out[y] = make([]float64, dec.SourceWidth)
		for x := 0; x < halfW; x++ {
			a := (rowLow[y][x] + rowHigh[y][x]) / math.Sqrt2
			b := (rowLow[y][x] - rowHigh[y][x]) / math.Sqrt2
			if 2*x < dec.SourceWidth {
				out[y][2*x] = a
			}
			if 2*x+1 < dec.SourceWidth {
				out[y][2*x+1] = b
			}
		}
	}

	return out
}

// WaveletFrequencyAnalysis visualizes the high-frequency content of the
// source: the magnitude of the LH/HL/HH Haar subbands, upsampled back to
// full resolution and min-max normalized. The LL band is omitted since
// tampering artifacts concentrate in high-frequency detail. With
// Config.WaveletBlendSpectrum the log-magnitude FFT spectrum is blended in
// at equal weight, matching the original combined frequency view.
func WaveletFrequencyAnalysis(src *imageutil.RGBAImage, cfg Config) (AnalysisResult, error) {
	gray := imageutil.ToGrayscaleFloat(src)
	dec := HaarDecompose(gray)

	halfH := len(dec.LH)
	halfW := 0
	if halfH > 0 {
		halfW = len(dec.LH[0])
	}
	magnitude := newPlane(halfW, halfH)
	for y := 0; y < halfH; y++ {
		for x := 0; x < halfW; x++ {
			lh, hl, hh := dec.LH[y][x], dec.HL[y][x], dec.HH[y][x]
			magnitude[y][x] = math.Sqrt(lh*lh + hl*hl + hh*hh)
		}
	}

	view := imageutil.ResizeGray(imageutil.Normalize(magnitude), src.Width(), src.Height(), imageutil.InterpolationLinear)

	params := "haar, 1 level"
	if cfg.WaveletBlendSpectrum {
		spectrum := fftLogSpectrum(gray, src.Width(), src.Height())
		view = blendGray(view, spectrum)
		params = "haar + fft"
	}

	return AnalysisResult{
		Method: MethodWavelet,
		Image:  imageutil.GrayscaleToRGBA(view),
		Params: params,
	}, nil
}

// blendGray averages two same-size grayscale images.
func blendGray(a, b *imageutil.GrayImage) *imageutil.GrayImage {
	width, height := a.Width(), a.Height()
	out := imageutil.NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			va := int(a.GrayAt(x, y).Y)
			vb := int(b.GrayAt(x, y).Y)
			out.Gray.Pix[y*out.Stride+x] = uint8((va + vb + 1) / 2)
		}
	}

	return out
}

// padToEven returns the plane extended to even dimensions by replicating
// the last row and column where needed.
func padToEven(plane [][]float64, width, height int) [][]float64 {
	padW, padH := width, height
	if padW%2 != 0 {
		padW++
	}
	if padH%2 != 0 {
		padH++
	}
	if padW == width && padH == height {
		return plane
	}

	out := make([][]float64, padH)
	for y := 0; y < padH; y++ {
		srcY := y
		if srcY >= height {
			srcY = height - 1
		}
		out[y] = make([]float64, padW)
		copy(out[y], plane[srcY])
		if padW > width {
			out[y][width] = plane[srcY][width-1]
		}
	}

	return out
}

func newPlane(width, height int) [][]float64 {
	plane := make([][]float64, height)
	for y := range plane {
		plane[y] = make([]float64, width)
	}
	return plane
}
