package eyesopen

import "fmt"

// Config holds every tunable parameter of the five analyzers and the report
// grid. Defaults are fixed in DefaultConfig; the analyzers themselves carry
// no default state.
type Config struct {
	// ELAQuality is the JPEG recompression quality, 1..100.
	ELAQuality int
	// ELAQualities, when non-empty, runs one recompression pass per listed
	// quality and keeps the per-pixel maximum residue. Overrides ELAQuality.
	ELAQualities []int
	// ELAAmplify scales the absolute difference into the visible range.
	ELAAmplify float64
	// ELAColormap renders the residue through the jet colormap instead of
	// amplified per-channel differences.
	ELAColormap bool

	// GaborFrequency is the carrier frequency in cycles per pixel,
	// 0 < f <= 0.5 (the two-pixel sampling bound).
	GaborFrequency float64
	// GaborOrientations lists carrier orientations in degrees. Responses
	// are combined by pixelwise maximum magnitude.
	GaborOrientations []float64

	// WaveletBlendSpectrum blends the log-magnitude FFT spectrum into the
	// Haar high-band visualization at equal weight.
	WaveletBlendSpectrum bool

	// LBPPoints is the number of circle samples P, 4..24.
	LBPPoints int
	// LBPRadius is the sampling circle radius R in pixels, positive.
	LBPRadius float64
	// LBPUniform selects the uniform-pattern variant: codes with at most
	// two circular 0/1 transitions map to their popcount, all others to
	// P+1. Off by default; the raw P-bit code is the documented default.
	LBPUniform bool

	// EdgeBlurSigma is the Gaussian sigma applied before Canny, positive.
	EdgeBlurSigma float64
	// EdgeLowThreshold and EdgeHighThreshold bound hysteresis linking,
	// 0 <= low < high <= 255.
	EdgeLowThreshold  float64
	EdgeHighThreshold float64
	// EdgeAutoThreshold derives the thresholds from the median of the
	// blurred plane (0.7x and 1.3x), ignoring the fixed pair above.
	EdgeAutoThreshold bool

	// TileWidth and TileHeight give the report cell size each raster is
	// fitted into; Margin is the spacing around and between cells.
	TileWidth  int
	TileHeight int
	Margin     int
}

// DefaultConfig returns the documented defaults for a full report run.
func DefaultConfig() Config {
	return Config{
		ELAQuality:        90,
		ELAAmplify:        20,
		ELAColormap:       true,
		GaborFrequency:    0.25,
		GaborOrientations: []float64{0, 45, 90, 135},
		LBPPoints:         8,
		LBPRadius:         1,
		EdgeBlurSigma:     1.4,
		EdgeLowThreshold:  50,
		EdgeHighThreshold: 150,
		TileWidth:         480,
		TileHeight:        360,
		Margin:            8,
	}
}

// Validate checks every parameter against its documented range. It runs
// once, before any analyzer touches the source raster, so an invalid value
// never produces a partial result.
func (c Config) Validate() error {
	if c.ELAQuality < 1 || c.ELAQuality > 100 {
		return fmt.Errorf("%w: ELA quality %d, must be in [1, 100]", ErrInvalidParameter, c.ELAQuality)
	}
	for _, q := range c.ELAQualities {
		if q < 1 || q > 100 {
			return fmt.Errorf("%w: ELA quality %d, must be in [1, 100]", ErrInvalidParameter, q)
		}
	}
	if c.ELAAmplify <= 0 {
		return fmt.Errorf("%w: ELA amplification %v, must be > 0", ErrInvalidParameter, c.ELAAmplify)
	}
	if c.GaborFrequency <= 0 || c.GaborFrequency > 0.5 {
		return fmt.Errorf("%w: Gabor frequency %v, must be in (0, 0.5]", ErrInvalidParameter, c.GaborFrequency)
	}
	if len(c.GaborOrientations) == 0 {
		return fmt.Errorf("%w: Gabor orientation list is empty", ErrInvalidParameter)
	}
	if c.LBPPoints < 4 || c.LBPPoints > 24 {
		return fmt.Errorf("%w: LBP points %d, must be in [4, 24]", ErrInvalidParameter, c.LBPPoints)
	}
	if c.LBPRadius <= 0 {
		return fmt.Errorf("%w: LBP radius %v, must be > 0", ErrInvalidParameter, c.LBPRadius)
	}
	if c.EdgeBlurSigma <= 0 {
		return fmt.Errorf("%w: edge blur sigma %v, must be > 0", ErrInvalidParameter, c.EdgeBlurSigma)
	}
	if !c.EdgeAutoThreshold {
		if c.EdgeLowThreshold < 0 || c.EdgeHighThreshold > 255 {
			return fmt.Errorf("%w: Canny thresholds (%v, %v) outside [0, 255]",
				ErrInvalidParameter, c.EdgeLowThreshold, c.EdgeHighThreshold)
		}
		if c.EdgeLowThreshold >= c.EdgeHighThreshold {
			return fmt.Errorf("%w: Canny low threshold %v must be below high threshold %v",
				ErrInvalidParameter, c.EdgeLowThreshold, c.EdgeHighThreshold)
		}
	}
	if c.TileWidth < 1 || c.TileHeight < 1 {
		return fmt.Errorf("%w: tile size %dx%d, must be positive", ErrInvalidParameter, c.TileWidth, c.TileHeight)
	}
	if c.Margin < 0 {
		return fmt.Errorf("%w: margin %d, must be >= 0", ErrInvalidParameter, c.Margin)
	}
	return nil
}
