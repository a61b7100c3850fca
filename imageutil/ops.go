package imageutil

// ScaleAndClamp maps every channel of an RGBA image through
// clamp(v*factor + offset, 0, 255). The ELA analyzer uses it to amplify
// faint compression residue into the visible range.
func ScaleAndClamp(img *RGBAImage, factor, offset float64) *RGBAImage {
	width, height := img.Width(), img.Height()
	dst := NewRGBAImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(x, y)
			dst.SetRGB(x, y, RGB{
				R: clampUint8(float64(c.R)*factor + offset),
				G: clampUint8(float64(c.G)*factor + offset),
				B: clampUint8(float64(c.B)*factor + offset),
			})
		}
	}

	return dst
}

// ScaleAndClampFloat maps every element of a float plane through
// clamp(v*factor + offset, 0, 255), returning a new plane.
func ScaleAndClampFloat(plane [][]float64, factor, offset float64) [][]float64 {
	height := len(plane)
	if height == 0 {
		return nil
	}
	width := len(plane[0])

	dst := make([][]float64, height)
	for y := 0; y < height; y++ {
		dst[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			v := plane[y][x]*factor + offset
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			dst[y][x] = v
		}
	}

	return dst
}

// AbsDiff computes the per-pixel, per-channel absolute difference of two
// same-size RGBA images.
func AbsDiff(a, b *RGBAImage) *RGBAImage {
	width, height := a.Width(), a.Height()
	dst := NewRGBAImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ca := a.RGBAAt(x, y)
			cb := b.RGBAAt(x, y)
			dst.SetRGB(x, y, RGB{
				R: absDiffU8(ca.R, cb.R),
				G: absDiffU8(ca.G, cb.G),
				B: absDiffU8(ca.B, cb.B),
			})
		}
	}

	return dst
}

// MaxImage returns the per-pixel, per-channel maximum of two same-size
// RGBA images.
func MaxImage(a, b *RGBAImage) *RGBAImage {
	width, height := a.Width(), a.Height()
	dst := NewRGBAImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ca := a.RGBAAt(x, y)
			cb := b.RGBAAt(x, y)
			dst.SetRGB(x, y, RGB{
				R: maxU8(ca.R, cb.R),
				G: maxU8(ca.G, cb.G),
				B: maxU8(ca.B, cb.B),
			})
		}
	}

	return dst
}

// Normalize stretches a float plane to the full [0, 255] range and returns
// it as a grayscale image. A flat plane (min == max) maps to all zero, the
// same convention as a blank filter response.
func Normalize(plane [][]float64) *GrayImage {
	height := len(plane)
	if height == 0 {
		return NewGrayImage(0, 0)
	}
	width := len(plane[0])

	minV, maxV := plane[0][0], plane[0][0]
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := plane[y][x]
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
	}

	gray := NewGrayImage(width, height)
	if maxV == minV {
		return gray
	}

	scale := 255.0 / (maxV - minV)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gray.Gray.Pix[y*gray.Stride+x] = clampUint8((plane[y][x] - minV) * scale)
		}
	}

	return gray
}

// BilinearSample samples a grayscale image at a fractional coordinate using
// bilinear interpolation. Coordinates outside the image are clamped to the
// border, matching the convolution border policy.
func BilinearSample(img *GrayImage, x, y float64) float64 {
	width, height := img.Width(), img.Height()

	x0 := int(x)
	y0 := int(y)
	if x < 0 {
		x0 = -1
	}
	if y < 0 {
		y0 = -1
	}
	fx := x - float64(x0)
	fy := y - float64(y0)

	cx0 := clampInt(x0, 0, width-1)
	cx1 := clampInt(x0+1, 0, width-1)
	cy0 := clampInt(y0, 0, height-1)
	cy1 := clampInt(y0+1, 0, height-1)

	v00 := float64(img.GrayAt(cx0, cy0).Y)
	v10 := float64(img.GrayAt(cx1, cy0).Y)
	v01 := float64(img.GrayAt(cx0, cy1).Y)
	v11 := float64(img.GrayAt(cx1, cy1).Y)

	top := v00 + fx*(v10-v00)
	bottom := v01 + fx*(v11-v01)
	return top + fy*(bottom-top)
}

func absDiffU8(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}
