package eyesopen

import "github.com/dedkamaroz/eyesopen/imageutil"

// applyJetColormap maps a grayscale raster through the jet colormap
// (blue -> cyan -> yellow -> red), the rendering the ELA tile uses to make
// faint residue levels easy to compare by eye.
func applyJetColormap(gray *imageutil.GrayImage) *imageutil.RGBAImage {
	width, height := gray.Width(), gray.Height()
	out := imageutil.NewRGBAImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out.SetRGB(x, y, jetColor(gray.GrayAt(x, y).Y))
		}
	}

	return out
}

// jetColor evaluates the piecewise-linear jet ramp at v in [0, 255].
func jetColor(v uint8) imageutil.RGB {
	t := 4 * float64(v) / 255.0
	return imageutil.RGB{
		R: jetChannel(t, 3),
		G: jetChannel(t, 2),
		B: jetChannel(t, 1),
	}
}

// jetChannel is the shared triangular profile each channel sits on, peaked
// at its center and clipped to [0, 1].
func jetChannel(t, center float64) uint8 {
	d := t - center
	if d < 0 {
		d = -d
	}
	v := 1.5 - d
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}
