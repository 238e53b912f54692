package runwaycolor

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeSolidPNG(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
}

func TestNew(t *testing.T) {
	rc := New()
	if rc == nil {
		t.Fatal("New() returned nil")
	}
}

func TestAnalyzeImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "look.png")
	writeSolidPNG(t, path, color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 255})

	rc := New()
	observations, err := rc.AnalyzeImage(path)
	if err != nil {
		t.Fatalf("AnalyzeImage failed: %v", err)
	}
	if len(observations) != 1 {
		t.Fatalf("Expected 1 observation, got %d", len(observations))
	}
	if observations[0].Color != "#336699" || observations[0].Percentage != 100.0 {
		t.Errorf("Unexpected observation: %+v", observations[0])
	}
}

func TestAnalyzeCollection(t *testing.T) {
	dir := t.TempDir()
	writeSolidPNG(t, filepath.Join(dir, "look1.png"), color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 255})
	writeSolidPNG(t, filepath.Join(dir, "look2.png"), color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 255})

	rc := New()
	result, err := rc.AnalyzeCollection(context.Background(), dir)
	if err != nil {
		t.Fatalf("AnalyzeCollection failed: %v", err)
	}
	if result.Stats["#336699"].Count != 2 {
		t.Errorf("Expected count 2, got %d", result.Stats["#336699"].Count)
	}
}

func TestGetVersion(t *testing.T) {
	if GetVersion() != Version {
		t.Errorf("GetVersion() = %s, want %s", GetVersion(), Version)
	}
}
