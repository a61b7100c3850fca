package imageutil

import (
	"fmt"
	"math"
)

// Kernel represents a 2D convolution kernel.
type Kernel struct {
	Values [][]float64
	Width  int
	Height int
}

// NewKernel creates a new kernel from a 2D slice.
func NewKernel(values [][]float64) *Kernel {
	height := len(values)
	width := 0
	if height > 0 {
		width = len(values[0])
	}
	return &Kernel{
		Values: values,
		Width:  width,
		Height: height,
	}
}

// GaussianKernel1D builds a normalized 1D Gaussian kernel for the given
// sigma. The radius is ceil(3*sigma), which captures ~99.7% of the mass.
func GaussianKernel1D(sigma float64) []float64 {
	radius := int(math.Ceil(3 * sigma))
	size := 2*radius + 1
	kernel := make([]float64, size)

	var sum float64
	for i := 0; i < size; i++ {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// GaussianBlur applies a separable Gaussian blur to an RGBA image.
// sigma must be positive; ErrInvalidParameter otherwise.
func GaussianBlur(img *RGBAImage, sigma float64) (*RGBAImage, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("%w: blur sigma %v, must be > 0", ErrInvalidParameter, sigma)
	}

	kernel := GaussianKernel1D(sigma)
	width, height := img.Width(), img.Height()
	radius := len(kernel) / 2

	// Horizontal pass into a float buffer, vertical pass into the result.
	tmp := make([][3]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b float64
			for k, w := range kernel {
				sx := clampInt(x+k-radius, 0, width-1)
				c := img.RGBAAt(sx, y)
				r += float64(c.R) * w
				g += float64(c.G) * w
				b += float64(c.B) * w
			}
			tmp[y*width+x] = [3]float64{r, g, b}
		}
	}

	dst := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b float64
			for k, w := range kernel {
				sy := clampInt(y+k-radius, 0, height-1)
				c := tmp[sy*width+x]
				r += c[0] * w
				g += c[1] * w
				b += c[2] * w
			}
			dst.SetRGB(x, y, RGB{R: clampUint8(r), G: clampUint8(g), B: clampUint8(b)})
		}
	}

	return dst, nil
}

// GaussianBlurGray applies a separable Gaussian blur to a grayscale image.
// sigma must be positive; ErrInvalidParameter otherwise.
func GaussianBlurGray(img *GrayImage, sigma float64) (*GrayImage, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("%w: blur sigma %v, must be > 0", ErrInvalidParameter, sigma)
	}
	plane := GaussianBlurFloat(GrayToFloat(img), sigma)
	return FloatToGray(plane), nil
}

// GaussianBlurFloat applies a separable Gaussian blur to a float plane.
// The caller is responsible for validating sigma.
func GaussianBlurFloat(plane [][]float64, sigma float64) [][]float64 {
	height := len(plane)
	if height == 0 {
		return nil
	}
	width := len(plane[0])
	kernel := GaussianKernel1D(sigma)
	radius := len(kernel) / 2

	tmp := make([][]float64, height)
	for y := 0; y < height; y++ {
		tmp[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var sum float64
			for k, w := range kernel {
				sx := clampInt(x+k-radius, 0, width-1)
				sum += plane[y][sx] * w
			}
			tmp[y][x] = sum
		}
	}

	dst := make([][]float64, height)
	for y := 0; y < height; y++ {
		dst[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var sum float64
			for k, w := range kernel {
				sy := clampInt(y+k-radius, 0, height-1)
				sum += tmp[sy][x] * w
			}
			dst[y][x] = sum
		}
	}

	return dst
}

// ConvolveGrayFloat applies a convolution kernel to a grayscale float plane.
// Border pixels are handled by replicating edge values; the result is not
// clamped.
func ConvolveGrayFloat(img [][]float64, kernel *Kernel) [][]float64 {
	height := len(img)
	if height == 0 {
		return nil
	}
	width := len(img[0])

	dst := make([][]float64, height)
	for y := 0; y < height; y++ {
		dst[y] = make([]float64, width)
	}

	halfKW := kernel.Width / 2
	halfKH := kernel.Height / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float64

			for ky := 0; ky < kernel.Height; ky++ {
				for kx := 0; kx < kernel.Width; kx++ {
					sx := clampInt(x+kx-halfKW, 0, width-1)
					sy := clampInt(y+ky-halfKH, 0, height-1)

					sum += img[sy][sx] * kernel.Values[ky][kx]
				}
			}

			dst[y][x] = sum
		}
	}

	return dst
}

// clampInt clamps an integer to the given range.
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clampUint8 clamps a float64 to [0, 255] and converts to uint8.
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
