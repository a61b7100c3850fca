// Command eyesopen renders a digital forensics report for a single
// photograph: the original plus five analysis rasters (ELA, Gabor,
// frequency, texture, edges) composed into one labeled grid written next
// to the source as analysis_report.png.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/dedkamaroz/eyesopen"
	"github.com/dedkamaroz/eyesopen/imageutil"
)

var (
	infoColor    = color.New(color.FgBlue).SprintFunc()
	successColor = color.New(color.FgGreen).SprintFunc()
	errorColor   = color.New(color.FgRed).SprintFunc()
)

func printInfo(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", infoColor("[*]"), fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", successColor("[+]"), fmt.Sprintf(format, args...))
}

func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorColor("[-]"), fmt.Sprintf(format, args...))
}

func main() {
	cfg := eyesopen.DefaultConfig()

	quality := flag.Int("quality", cfg.ELAQuality,
		"ELA recompression quality (1-100)")
	multiQuality := flag.Bool("ela-multi", false,
		"Run ELA at qualities 75/85/95 and keep the maximum residue")
	amplify := flag.Float64("amplify", cfg.ELAAmplify,
		"ELA difference amplification factor")
	frequency := flag.Float64("frequency", cfg.GaborFrequency,
		"Gabor carrier frequency in cycles per pixel (0-0.5]")
	lbpPoints := flag.Int("lbp-points", cfg.LBPPoints,
		"LBP circle sample count (4-24)")
	lbpRadius := flag.Float64("lbp-radius", cfg.LBPRadius,
		"LBP circle radius in pixels")
	lbpUniform := flag.Bool("lbp-uniform", false,
		"Use the uniform-pattern LBP variant instead of raw codes")
	sigma := flag.Float64("sigma", cfg.EdgeBlurSigma,
		"Gaussian blur sigma before edge detection")
	lowThreshold := flag.Float64("low", cfg.EdgeLowThreshold,
		"Canny low hysteresis threshold")
	highThreshold := flag.Float64("high", cfg.EdgeHighThreshold,
		"Canny high hysteresis threshold")
	autoThreshold := flag.Bool("auto-threshold", false,
		"Derive Canny thresholds from the median of the blurred image")
	blendFFT := flag.Bool("blend-fft", false,
		"Blend the log-magnitude FFT spectrum into the frequency tile")
	tileWidth := flag.Int("tile-width", cfg.TileWidth,
		"Report tile width in pixels")
	tileHeight := flag.Int("tile-height", cfg.TileHeight,
		"Report tile height in pixels")
	margin := flag.Int("margin", cfg.Margin,
		"Report margin between tiles in pixels")
	fontPath := flag.String("font", "",
		"Path to a TTF file for tile labels (default: built-in bitmap font)")
	outputPath := flag.String("output", "",
		"Report path (default: analysis_report.png next to the source)")
	verbose := flag.Bool("verbose", false,
		"Enable debug logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: eyesopen [flags] <image-path>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	sourcePath := flag.Arg(0)

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	cfg.ELAQuality = *quality
	if *multiQuality {
		cfg.ELAQualities = []int{75, 85, 95}
	}
	cfg.ELAAmplify = *amplify
	cfg.GaborFrequency = *frequency
	cfg.LBPPoints = *lbpPoints
	cfg.LBPRadius = *lbpRadius
	cfg.LBPUniform = *lbpUniform
	cfg.EdgeBlurSigma = *sigma
	cfg.EdgeLowThreshold = *lowThreshold
	cfg.EdgeHighThreshold = *highThreshold
	cfg.EdgeAutoThreshold = *autoThreshold
	cfg.WaveletBlendSpectrum = *blendFFT
	cfg.TileWidth = *tileWidth
	cfg.TileHeight = *tileHeight
	cfg.Margin = *margin

	if err := run(log, sourcePath, *outputPath, *fontPath, cfg); err != nil {
		printError("%v", err)
		os.Exit(1)
	}
}

func run(log zerolog.Logger, sourcePath, outputPath, fontPath string, cfg eyesopen.Config) error {
	printInfo("Reading image from %s", sourcePath)
	src, err := imageutil.LoadImage(sourcePath)
	if err != nil {
		return err
	}

	// Non-JPEG sources have no compression history for ELA to expose, so
	// give them one: a JPEG quality-90 round trip in memory.
	if !isJPEG(sourcePath) {
		log.Debug().Msg("non-JPEG source, applying quality-90 round trip")
		src, err = jpegRoundTrip(src)
		if err != nil {
			return err
		}
	}

	pipeline := eyesopen.NewPipeline(log)
	if fontPath != "" {
		labels, err := eyesopen.LoadLabelFont(fontPath, 13)
		if err != nil {
			return err
		}
		pipeline.SetLabelRenderer(labels)
	}

	report, err := pipeline.Run(context.Background(), src, cfg)
	if err != nil {
		if errors.Is(err, eyesopen.ErrInvalidParameter) {
			return fmt.Errorf("configuration rejected: %w", err)
		}
		return err
	}

	if outputPath == "" {
		outputPath = filepath.Join(filepath.Dir(sourcePath), "analysis_report.png")
	}
	if err := imageutil.SavePNG(report.Image.RGBA, outputPath); err != nil {
		return err
	}

	printSuccess("Analysis complete. Report saved as %s", outputPath)
	return nil
}

func isJPEG(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return true
	}
	return false
}

// jpegRoundTrip re-encodes an image through JPEG at quality 90 in memory.
func jpegRoundTrip(src *imageutil.RGBAImage) (*imageutil.RGBAImage, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src.RGBA, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("%w: JPEG round trip encode: %v", eyesopen.ErrDecode, err)
	}
	decoded, err := jpeg.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("%w: JPEG round trip decode: %v", eyesopen.ErrDecode, err)
	}
	return imageutil.RGBAImageFromImage(decoded), nil
}
