package eyesopen

import (
	"testing"

	"github.com/dedkamaroz/eyesopen/imageutil"
)

func TestELAUniformImageNearZero(t *testing.T) {
	src := imageutil.CreateSolidImage(64, 64, imageutil.RGB{R: 128, G: 128, B: 128})

	cfg := DefaultConfig()
	cfg.ELAQuality = 100
	cfg.ELAColormap = false

	result, err := ErrorLevelAnalysis(src, cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// A uniform image recompresses losslessly at quality 100, so even the
	// amplified residue stays near zero.
	for y := 0; y < result.Image.Height(); y++ {
		for x := 0; x < result.Image.Width(); x++ {
			c := result.Image.GetRGB(x, y)
			if c.R > 60 || c.G > 60 || c.B > 60 {
				t.Fatalf("Residue %v at (%d, %d) exceeds noise floor", c, x, y)
			}
		}
	}
}

func TestELAPreservesDimensions(t *testing.T) {
	src := imageutil.CreateGradientImage(53, 37)

	result, err := ErrorLevelAnalysis(src, DefaultConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Image.Width() != 53 || result.Image.Height() != 37 {
		t.Errorf("Expected 53x37, got %dx%d", result.Image.Width(), result.Image.Height())
	}
	if result.Method != MethodELA {
		t.Errorf("Expected MethodELA, got %v", result.Method)
	}
}

func TestELAMultiQualityComposite(t *testing.T) {
	src := imageutil.CreateCheckerboardImage(64, 64, 8)

	cfg := DefaultConfig()
	cfg.ELAColormap = false

	single, err := ErrorLevelAnalysis(src, cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	cfg.ELAQualities = []int{75, 85, 95}
	multi, err := ErrorLevelAnalysis(src, cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if multi.Image.Width() != single.Image.Width() || multi.Image.Height() != single.Image.Height() {
		t.Error("Composite changed dimensions")
	}
	if multi.Params == single.Params {
		t.Error("Composite should record the quality sweep in its parameters")
	}
}

func TestELADeterministic(t *testing.T) {
	src := imageutil.CreateCheckerboardImage(48, 48, 6)
	cfg := DefaultConfig()

	a, err := ErrorLevelAnalysis(src, cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b, err := ErrorLevelAnalysis(src, cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if d := imageutil.CalculateMaxDiff(a.Image, b.Image); d != 0 {
		t.Errorf("Two runs differ by up to %d", d)
	}
}
