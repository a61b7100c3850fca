package eyesopen

import (
	"errors"
	"testing"

	"github.com/dedkamaroz/eyesopen/imageutil"
)

func TestEdgeAnalysisIsBinary(t *testing.T) {
	src := imageutil.CreateEdgeImage(64, 64)

	result, err := EdgeAnalysis(src, DefaultConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for y := 0; y < result.Image.Height(); y++ {
		for x := 0; x < result.Image.Width(); x++ {
			c := result.Image.GetRGB(x, y)
			if (c.R != 0 && c.R != 255) || c.R != c.G || c.G != c.B {
				t.Fatalf("Non-binary edge pixel %v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestEdgeAnalysisFindsContour(t *testing.T) {
	src := imageutil.CreateEdgeImage(64, 64)

	result, err := EdgeAnalysis(src, DefaultConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	count := 0
	for y := 0; y < result.Image.Height(); y++ {
		for x := 0; x < result.Image.Width(); x++ {
			if result.Image.GetRGB(x, y).R == 255 {
				count++
			}
		}
	}
	if count < 60 {
		t.Errorf("Expected the rectangle contour, got %d edge pixels", count)
	}
}

func TestEdgeAnalysisAutoThreshold(t *testing.T) {
	src := imageutil.CreateEdgeImage(64, 64)

	cfg := DefaultConfig()
	cfg.EdgeAutoThreshold = true

	result, err := EdgeAnalysis(src, cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Image.Width() != 64 || result.Image.Height() != 64 {
		t.Errorf("Expected 64x64, got %dx%d", result.Image.Width(), result.Image.Height())
	}
}

func TestEdgeAnalysisInvalidSigma(t *testing.T) {
	src := imageutil.CreateEdgeImage(16, 16)

	cfg := DefaultConfig()
	cfg.EdgeBlurSigma = 0

	if _, err := EdgeAnalysis(src, cfg); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
}

func TestMedianThresholds(t *testing.T) {
	gray := imageutil.NewGrayImage(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			gray.SetGrayValue(x, y, 100)
		}
	}

	low, high := medianThresholds(gray)
	if low != 70 || high != 130 {
		t.Errorf("Expected thresholds (70, 130), got (%g, %g)", low, high)
	}

	// All-black frame must still satisfy low < high.
	black := imageutil.NewGrayImage(4, 4)
	low, high = medianThresholds(black)
	if low >= high {
		t.Errorf("Degenerate median produced low %g >= high %g", low, high)
	}
}
