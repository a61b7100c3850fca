package eyesopen

import (
	"fmt"

	"github.com/dedkamaroz/eyesopen/imageutil"
)

// Method identifies which analyzer produced a result. The set is closed:
// the report grid has one cell per method plus the original.
type Method int

const (
	MethodELA Method = iota
	MethodGabor
	MethodWavelet
	MethodTexture
	MethodEdge
	methodCount
)

// String returns the short display name used in report labels.
func (m Method) String() string {
	switch m {
	case MethodELA:
		return "ELA"
	case MethodGabor:
		return "Gabor"
	case MethodWavelet:
		return "Frequency"
	case MethodTexture:
		return "Texture"
	case MethodEdge:
		return "Edges"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Hint is the one-line reading aid printed under each tile, matching the
// method's tamper signal.
func (m Method) Hint() string {
	switch m {
	case MethodELA:
		return "bright areas may suggest tampering"
	case MethodGabor:
		return "texture patterns may indicate manipulation"
	case MethodWavelet:
		return "inconsistencies may suggest tampering"
	case MethodTexture:
		return "inconsistencies may suggest editing"
	case MethodEdge:
		return "multiple edges can suggest splicing"
	default:
		return ""
	}
}

// AnalysisResult carries one analyzer's output raster together with the
// parameters that produced it, so the composer can label the tile.
type AnalysisResult struct {
	Method Method
	Image  *imageutil.RGBAImage
	Params string
}

// Label renders the tile caption: method name, parameters, reading hint.
func (r AnalysisResult) Label() string {
	if r.Params == "" {
		return fmt.Sprintf("%s: %s", r.Method, r.Method.Hint())
	}
	return fmt.Sprintf("%s (%s): %s", r.Method, r.Params, r.Method.Hint())
}
