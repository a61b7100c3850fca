// Package eyesopen renders five independent forensic signals from a single
// photograph (compression-error residue, oriented texture response, wavelet
// frequency content, local texture coding, and edge continuity) and
// composes them into one labeled report raster for visual inspection. It
// exposes evidence; it does not classify tampering.
package eyesopen

import (
	"errors"

	"github.com/dedkamaroz/eyesopen/imageutil"
)

// Error kinds. Every failure is fatal to the current run; nothing is
// retried and no partial report is written.
var (
	// ErrInvalidParameter reports a configuration value outside its
	// documented range. Validation runs before any analysis.
	ErrInvalidParameter = imageutil.ErrInvalidParameter

	// ErrFileAccess reports an unreadable or undecodable source image.
	ErrFileAccess = imageutil.ErrFileAccess

	// ErrDecode reports a failed recompression round trip inside ELA.
	ErrDecode = errors.New("decode error")

	// ErrLayout reports a tile count that does not match the report grid.
	ErrLayout = errors.New("layout error")
)
