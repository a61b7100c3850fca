package eyesopen

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/dedkamaroz/eyesopen/imageutil"
)

// An analyzerFunc maps the immutable source raster and the run
// configuration to one analysis result.
type analyzerFunc func(*imageutil.RGBAImage, Config) (AnalysisResult, error)

// analyzers binds each method to its transform, in report tile order.
var analyzers = [methodCount]analyzerFunc{
	MethodELA:     ErrorLevelAnalysis,
	MethodGabor:   GaborFiltering,
	MethodWavelet: WaveletFrequencyAnalysis,
	MethodTexture: TextureAnalysis,
	MethodEdge:    EdgeAnalysis,
}

// Pipeline runs the five analyzers over one source raster and composes the
// report. It holds no per-run state; the same Pipeline can serve multiple
// runs.
type Pipeline struct {
	log    zerolog.Logger
	labels *LabelRenderer
}

// NewPipeline creates a pipeline logging through log, labeling report tiles
// with the built-in bitmap font.
func NewPipeline(log zerolog.Logger) *Pipeline {
	return &Pipeline{log: log, labels: NewLabelRenderer()}
}

// SetLabelRenderer replaces the caption font (for example a TTF loaded
// with LoadLabelFont).
func (p *Pipeline) SetLabelRenderer(labels *LabelRenderer) {
	p.labels = labels
}

// Run validates cfg, executes the five analyzers concurrently against the
// immutable source, and composes the report. The first analyzer failure
// cancels the rest and aborts the run: no partial report is ever produced.
// Given identical source and configuration the report raster is
// bit-identical across runs.
func (p *Pipeline) Run(ctx context.Context, src *imageutil.RGBAImage, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var results [methodCount]AnalysisResult
	group, ctx := errgroup.WithContext(ctx)

	for method := Method(0); method < methodCount; method++ {
		method := method
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			result, err := analyzers[method](src, cfg)
			if err != nil {
				return fmt.Errorf("%s analysis: %w", method, err)
			}
			if result.Image.Width() != src.Width() || result.Image.Height() != src.Height() {
				return fmt.Errorf("%s analysis produced %dx%d raster for %dx%d source",
					method, result.Image.Width(), result.Image.Height(), src.Width(), src.Height())
			}

			p.log.Debug().
				Stringer("method", method).
				Dur("elapsed", time.Since(start)).
				Msg("analysis complete")

			results[method] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	tiles := make([]Tile, 0, methodCount+1)
	tiles = append(tiles, Tile{Image: src, Label: "Original: baseline for comparison"})
	for _, result := range results {
		tiles = append(tiles, Tile{Image: result.Image, Label: result.Label()})
	}

	return Compose(tiles, NewReportLayout(cfg), p.labels)
}
