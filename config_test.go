package eyesopen

import (
	"errors"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Default configuration must validate, got %v", err)
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"quality too low", func(c *Config) { c.ELAQuality = 0 }},
		{"quality too high", func(c *Config) { c.ELAQuality = 101 }},
		{"bad quality in sweep", func(c *Config) { c.ELAQualities = []int{75, 0} }},
		{"non-positive amplification", func(c *Config) { c.ELAAmplify = 0 }},
		{"zero frequency", func(c *Config) { c.GaborFrequency = 0 }},
		{"frequency above nyquist", func(c *Config) { c.GaborFrequency = 0.6 }},
		{"no orientations", func(c *Config) { c.GaborOrientations = nil }},
		{"too few lbp points", func(c *Config) { c.LBPPoints = 3 }},
		{"too many lbp points", func(c *Config) { c.LBPPoints = 32 }},
		{"non-positive lbp radius", func(c *Config) { c.LBPRadius = 0 }},
		{"non-positive sigma", func(c *Config) { c.EdgeBlurSigma = -1 }},
		{"low equals high", func(c *Config) { c.EdgeLowThreshold = 100; c.EdgeHighThreshold = 100 }},
		{"low above high", func(c *Config) { c.EdgeLowThreshold = 200; c.EdgeHighThreshold = 100 }},
		{"negative low", func(c *Config) { c.EdgeLowThreshold = -5 }},
		{"high above range", func(c *Config) { c.EdgeHighThreshold = 300 }},
		{"zero tile size", func(c *Config) { c.TileWidth = 0 }},
		{"negative margin", func(c *Config) { c.Margin = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestValidateAutoThresholdSkipsFixedPair(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EdgeAutoThreshold = true
	cfg.EdgeLowThreshold = 200
	cfg.EdgeHighThreshold = 100

	if err := cfg.Validate(); err != nil {
		t.Errorf("Auto-threshold mode should ignore the fixed pair, got %v", err)
	}
}

func TestMethodLabels(t *testing.T) {
	result := AnalysisResult{Method: MethodELA, Params: "q=90 x20"}
	want := "ELA (q=90 x20): bright areas may suggest tampering"
	if got := result.Label(); got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}

	bare := AnalysisResult{Method: MethodEdge}
	if got := bare.Label(); got != "Edges: multiple edges can suggest splicing" {
		t.Errorf("Label() = %q", got)
	}
}
