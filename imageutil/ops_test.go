package imageutil

import (
	"errors"
	"math"
	"testing"
)

func TestScaleAndClamp(t *testing.T) {
	img := CreateSolidImage(4, 4, RGB{R: 10, G: 100, B: 200})
	out := ScaleAndClamp(img, 2.0, 0)

	c := out.GetRGB(0, 0)
	if c.R != 20 || c.G != 200 || c.B != 255 {
		t.Errorf("Expected (20, 200, 255), got %v", c)
	}
}

func TestScaleAndClampNegativeOffset(t *testing.T) {
	img := CreateSolidImage(2, 2, RGB{R: 5, G: 5, B: 5})
	out := ScaleAndClamp(img, 1.0, -10)

	if c := out.GetRGB(1, 1); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("Underflow should clamp to zero, got %v", c)
	}
}

func TestAbsDiff(t *testing.T) {
	a := CreateSolidImage(4, 4, RGB{R: 100, G: 50, B: 0})
	b := CreateSolidImage(4, 4, RGB{R: 90, G: 60, B: 0})

	diff := AbsDiff(a, b)
	c := diff.GetRGB(2, 2)
	if c.R != 10 || c.G != 10 || c.B != 0 {
		t.Errorf("Expected (10, 10, 0), got %v", c)
	}
}

func TestAbsDiffIdentical(t *testing.T) {
	img := CreateGradientImage(16, 16)
	diff := AbsDiff(img, img)

	if d := CalculateMaxDiff(diff, CreateSolidImage(16, 16, RGB{})); d != 0 {
		t.Errorf("Diff of an image with itself should be zero, max diff %d", d)
	}
}

func TestMaxImage(t *testing.T) {
	a := CreateSolidImage(2, 2, RGB{R: 10, G: 200, B: 30})
	b := CreateSolidImage(2, 2, RGB{R: 20, G: 100, B: 30})

	m := MaxImage(a, b)
	if c := m.GetRGB(0, 0); c.R != 20 || c.G != 200 || c.B != 30 {
		t.Errorf("Expected (20, 200, 30), got %v", c)
	}
}

func TestNormalizeStretchesRange(t *testing.T) {
	plane := [][]float64{
		{10, 20},
		{30, 40},
	}
	gray := Normalize(plane)

	if v := gray.GrayAt(0, 0).Y; v != 0 {
		t.Errorf("Minimum should map to 0, got %d", v)
	}
	if v := gray.GrayAt(1, 1).Y; v != 255 {
		t.Errorf("Maximum should map to 255, got %d", v)
	}
}

func TestNormalizeFlatPlane(t *testing.T) {
	plane := [][]float64{
		{7, 7},
		{7, 7},
	}
	gray := Normalize(plane)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if v := gray.GrayAt(x, y).Y; v != 0 {
				t.Errorf("Flat plane should normalize to zero, got %d at (%d, %d)", v, x, y)
			}
		}
	}
}

func TestBilinearSample(t *testing.T) {
	img := NewGrayImage(2, 2)
	img.SetGrayValue(0, 0, 0)
	img.SetGrayValue(1, 0, 100)
	img.SetGrayValue(0, 1, 100)
	img.SetGrayValue(1, 1, 200)

	// Exact pixel positions
	if v := BilinearSample(img, 1, 0); v != 100 {
		t.Errorf("Expected 100 at (1, 0), got %f", v)
	}

	// Center of the four pixels
	if v := BilinearSample(img, 0.5, 0.5); math.Abs(v-100) > 1e-9 {
		t.Errorf("Expected 100 at center, got %f", v)
	}

	// Outside the image clamps to the border
	if v := BilinearSample(img, -3, -3); v != 0 {
		t.Errorf("Expected clamped corner value 0, got %f", v)
	}
}

func TestGaussianBlurInvalidSigma(t *testing.T) {
	img := CreateGradientImage(8, 8)

	if _, err := GaussianBlur(img, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter for sigma 0, got %v", err)
	}
	if _, err := GaussianBlurGray(ToGrayscale(img), -1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter for negative sigma, got %v", err)
	}
}

func TestGaussianBlurPreservesSolid(t *testing.T) {
	img := CreateSolidImage(16, 16, RGB{R: 77, G: 77, B: 77})
	blurred, err := GaussianBlur(img, 1.4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if d := CalculateMaxDiff(img, blurred); d > 1 {
		t.Errorf("Blur of a solid image should be unchanged, max diff %d", d)
	}
	if blurred.Width() != 16 || blurred.Height() != 16 {
		t.Errorf("Blur changed dimensions: %dx%d", blurred.Width(), blurred.Height())
	}
}

func TestGaussianKernel1DNormalized(t *testing.T) {
	for _, sigma := range []float64{0.5, 1.0, 2.5} {
		kernel := GaussianKernel1D(sigma)
		var sum float64
		for _, v := range kernel {
			sum += v
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("Kernel for sigma %f sums to %f, want 1", sigma, sum)
		}
		if len(kernel)%2 != 1 {
			t.Errorf("Kernel for sigma %f has even length %d", sigma, len(kernel))
		}
	}
}
