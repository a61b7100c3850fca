package eyesopen

import (
	"math"
	"math/bits"
	"math/cmplx"

	"github.com/dedkamaroz/eyesopen/imageutil"
)

// fftLogSpectrum computes the centered log-magnitude spectrum of a float
// plane: log(1 + |FFT|) with the zero frequency shifted to the middle,
// min-max normalized, and resized to width x height for blending with the
// wavelet view. The plane is zero-padded up to power-of-two dimensions
// before the transform.
func fftLogSpectrum(plane [][]float64, width, height int) *imageutil.GrayImage {
	srcHeight := len(plane)
	srcWidth := 0
	if srcHeight > 0 {
		srcWidth = len(plane[0])
	}

	padW := nextPowerOfTwo(srcWidth)
	padH := nextPowerOfTwo(srcHeight)

	data := make([][]complex128, padH)
	for y := range data {
		data[y] = make([]complex128, padW)
		if y < srcHeight {
			for x := 0; x < srcWidth; x++ {
				data[y][x] = complex(plane[y][x], 0)
			}
		}
	}

	// Rows, then columns.
	for y := 0; y < padH; y++ {
		fft(data[y], false)
	}
	column := make([]complex128, padH)
	for x := 0; x < padW; x++ {
		for y := 0; y < padH; y++ {
			column[y] = data[y][x]
		}
		fft(column, false)
		for y := 0; y < padH; y++ {
			data[y][x] = column[y]
		}
	}

	// Shifted log magnitude.
	magnitude := newPlane(padW, padH)
	for y := 0; y < padH; y++ {
		for x := 0; x < padW; x++ {
			sy := (y + padH/2) % padH
			sx := (x + padW/2) % padW
			magnitude[y][x] = math.Log1p(cmplx.Abs(data[sy][sx]))
		}
	}

	return imageutil.ResizeGray(imageutil.Normalize(magnitude), width, height, imageutil.InterpolationLinear)
}

// fft runs an in-place iterative radix-2 Cooley-Tukey transform.
// len(data) must be a power of two. inverse applies the conjugate
// transform with 1/n scaling.
func fft(data []complex128, inverse bool) {
	n := len(data)
	if n < 2 {
		return
	}

	// Bit-reversal permutation.
	shift := 64 - uint(bits.TrailingZeros(uint(n)))
	for i := 0; i < n; i++ {
		j := int(bits.Reverse64(uint64(i)) >> shift)
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}

	sign := -2.0
	if inverse {
		sign = 2.0
	}
	for length := 2; length <= n; length <<= 1 {
		angle := sign * math.Pi / float64(length)
		wLen := cmplx.Exp(complex(0, angle))
		for start := 0; start < n; start += length {
			w := complex(1, 0)
			for k := 0; k < length/2; k++ {
				u := data[start+k]
				v := data[start+k+length/2] * w
				data[start+k] = u + v
				data[start+k+length/2] = u - v
				w *= wLen
			}
		}
	}

	if inverse {
		scale := complex(1/float64(n), 0)
		for i := range data {
			data[i] *= scale
		}
	}
}

func nextPowerOfTwo(n int) int {
	if n < 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
