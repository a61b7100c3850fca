package imageutil

import "image/color"

// ToGrayscale converts an RGBA image to grayscale using the standard
// luminance formula: Y = 0.299*R + 0.587*G + 0.114*B (BT.601, the same
// weighting OpenCV's COLOR_BGR2GRAY uses).
func ToGrayscale(img *RGBAImage) *GrayImage {
	width, height := img.Width(), img.Height()
	gray := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(x, y)
			// Integer math, scaled by 1000
			lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B) + 500) / 1000
			if lum > 255 {
				lum = 255
			}
			gray.Gray.SetGray(x, y, color.Gray{Y: uint8(lum)})
		}
	}

	return gray
}

// ToGrayscaleFloat converts an RGBA image to a grayscale float plane in the
// range [0, 255]. The analyzers that do float arithmetic (Gabor, Haar, FFT)
// start from this to avoid quantizing twice.
func ToGrayscaleFloat(img *RGBAImage) [][]float64 {
	width, height := img.Width(), img.Height()
	gray := make([][]float64, height)

	for y := 0; y < height; y++ {
		gray[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			c := img.RGBAAt(x, y)
			gray[y][x] = 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
		}
	}

	return gray
}

// GrayToFloat converts a grayscale image to a float plane.
func GrayToFloat(gray *GrayImage) [][]float64 {
	width, height := gray.Width(), gray.Height()
	plane := make([][]float64, height)

	for y := 0; y < height; y++ {
		plane[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			plane[y][x] = float64(gray.GrayAt(x, y).Y)
		}
	}

	return plane
}

// FloatToGray converts a float plane to a grayscale image, clamping each
// value to [0, 255].
func FloatToGray(plane [][]float64) *GrayImage {
	height := len(plane)
	if height == 0 {
		return NewGrayImage(0, 0)
	}
	width := len(plane[0])
	gray := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gray.Gray.Pix[y*gray.Stride+x] = clampUint8(plane[y][x])
		}
	}

	return gray
}

// GrayscaleToRGBA converts a grayscale image back to RGBA for display in
// the composite report.
func GrayscaleToRGBA(gray *GrayImage) *RGBAImage {
	width, height := gray.Width(), gray.Height()
	rgba := NewRGBAImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := gray.GrayAt(x, y).Y
			rgba.SetRGB(x, y, RGB{R: v, G: v, B: v})
		}
	}

	return rgba
}
