package eyesopen

import (
	"errors"
	"testing"

	"github.com/dedkamaroz/eyesopen/imageutil"
)

func testTiles(n int) []Tile {
	tiles := make([]Tile, n)
	for i := range tiles {
		tiles[i] = Tile{
			Image: imageutil.CreateGradientImage(40, 30),
			Label: "tile",
		}
	}
	return tiles
}

func TestComposeOutputDimensions(t *testing.T) {
	layout := NewReportLayout(DefaultConfig())

	report, err := Compose(testTiles(6), layout, NewLabelRenderer())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	wantW := 3*layout.TileWidth + 4*layout.Margin
	wantH := 2*(layout.TileHeight+layout.LabelHeight) + 3*layout.Margin
	if report.Image.Width() != wantW || report.Image.Height() != wantH {
		t.Errorf("Expected %dx%d, got %dx%d", wantW, wantH, report.Image.Width(), report.Image.Height())
	}
}

func TestComposeWrongTileCount(t *testing.T) {
	layout := NewReportLayout(DefaultConfig())

	if _, err := Compose(testTiles(5), layout, NewLabelRenderer()); !errors.Is(err, ErrLayout) {
		t.Errorf("Expected ErrLayout for 5 tiles, got %v", err)
	}
	if _, err := Compose(testTiles(7), layout, NewLabelRenderer()); !errors.Is(err, ErrLayout) {
		t.Errorf("Expected ErrLayout for 7 tiles, got %v", err)
	}
}

func TestComposeDeterministic(t *testing.T) {
	layout := NewReportLayout(DefaultConfig())
	tiles := testTiles(6)
	labels := NewLabelRenderer()

	a, err := Compose(tiles, layout, labels)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b, err := Compose(tiles, layout, labels)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if d := imageutil.CalculateMaxDiff(a.Image, b.Image); d != 0 {
		t.Errorf("Composition is not deterministic, max diff %d", d)
	}
}

func TestComposePreservesAspectRatio(t *testing.T) {
	layout := NewReportLayout(DefaultConfig())

	// A very wide tile must letterbox, not stretch: the top of its cell
	// stays on the black background.
	tiles := testTiles(6)
	tiles[0] = Tile{Image: imageutil.CreateSolidImage(800, 100, imageutil.RGB{R: 200, G: 200, B: 200}), Label: "wide"}

	report, err := Compose(tiles, layout, NewLabelRenderer())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	corner := report.Image.GetRGB(layout.Margin+1, layout.Margin+1)
	if corner.R != 0 || corner.G != 0 || corner.B != 0 {
		t.Errorf("Expected letterbox black at the cell corner, got %v", corner)
	}
}

func TestLabelRendererFitTruncates(t *testing.T) {
	r := NewLabelRenderer()

	long := "a label far too long to fit inside a narrow caption strip"
	fitted := r.fit(long, 60)
	if fitted == long {
		t.Error("Long label should have been truncated")
	}
	if fitted == "" {
		t.Error("Truncation should keep at least an ellipsis")
	}
}
