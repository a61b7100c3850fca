package imageutil

import "math"

// Canny performs Canny edge detection on a grayscale image: Sobel
// gradients, non-maximum suppression along the gradient direction, double
// thresholding, and hysteresis linking. The input is expected to be
// denoised already (the edge analyzer blurs first); threshold validation
// happens at configuration time. Every output pixel is exactly 0 or 255.
func Canny(gray *GrayImage, lowThreshold, highThreshold float64) *GrayImage {
	width, height := gray.Width(), gray.Height()

	gx, gy := sobelGradients(gray)

	magnitude := make([][]float64, height)
	direction := make([][]float64, height)
	for y := 0; y < height; y++ {
		magnitude[y] = make([]float64, width)
		direction[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			magnitude[y][x] = math.Hypot(gx[y][x], gy[y][x])
			direction[y][x] = math.Atan2(gy[y][x], gx[y][x])
		}
	}

	suppressed := nonMaxSuppression(magnitude, direction, width, height)
	strong, weak := doubleThreshold(suppressed, lowThreshold, highThreshold, width, height)
	return hysteresis(strong, weak, width, height)
}

// sobelGradients computes horizontal and vertical Sobel gradients.
func sobelGradients(img *GrayImage) (gx, gy [][]float64) {
	sobelX := NewKernel([][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})
	sobelY := NewKernel([][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	})

	gray := GrayToFloat(img)
	return ConvolveGrayFloat(gray, sobelX), ConvolveGrayFloat(gray, sobelY)
}

// nonMaxSuppression keeps only pixels that are local maxima along their
// quantized gradient direction, thinning ridges to one-pixel edges.
func nonMaxSuppression(magnitude, direction [][]float64, width, height int) [][]float64 {
	suppressed := make([][]float64, height)
	for y := 0; y < height; y++ {
		suppressed[y] = make([]float64, width)
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			mag := magnitude[y][x]

			// Quantize the angle to 0/45/90/135 degrees.
			angle := direction[y][x] * 180.0 / math.Pi
			if angle < 0 {
				angle += 180
			}

			var q, r float64
			switch {
			case angle < 22.5 || angle >= 157.5:
				q = magnitude[y][x+1]
				r = magnitude[y][x-1]
			case angle < 67.5:
				q = magnitude[y+1][x+1]
				r = magnitude[y-1][x-1]
			case angle < 112.5:
				q = magnitude[y+1][x]
				r = magnitude[y-1][x]
			default:
				q = magnitude[y+1][x-1]
				r = magnitude[y-1][x+1]
			}

			if mag >= q && mag >= r {
				suppressed[y][x] = mag
			}
		}
	}

	return suppressed
}

// doubleThreshold classifies suppressed magnitudes as strong or weak edges.
func doubleThreshold(suppressed [][]float64, low, high float64, width, height int) (strong, weak [][]bool) {
	strong = make([][]bool, height)
	weak = make([][]bool, height)

	for y := 0; y < height; y++ {
		strong[y] = make([]bool, width)
		weak[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			val := suppressed[y][x]
			if val >= high {
				strong[y][x] = true
			} else if val >= low {
				weak[y][x] = true
			}
		}
	}

	return strong, weak
}

// hysteresis keeps weak edges only when 8-connected to a strong edge,
// iterating until the edge set stops growing.
func hysteresis(strong, weak [][]bool, width, height int) *GrayImage {
	edges := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if strong[y][x] {
				edges.Gray.Pix[y*edges.Stride+x] = 255
			}
		}
	}

	changed := true
	for changed {
		changed = false
		for y := 1; y < height-1; y++ {
			for x := 1; x < width-1; x++ {
				if !weak[y][x] || edges.Gray.Pix[y*edges.Stride+x] != 0 {
					continue
				}
				linked := false
				for dy := -1; dy <= 1 && !linked; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if edges.Gray.Pix[(y+dy)*edges.Stride+(x+dx)] == 255 {
							linked = true
							break
						}
					}
				}
				if linked {
					edges.Gray.Pix[y*edges.Stride+x] = 255
					changed = true
				}
			}
		}
	}

	return edges
}
