package support

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	img := NewRGB8Image(5, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			img.Set(x, y, byte(x*10), byte(y*20), byte(x+y))
		}
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "test.png")
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	got, err := LoadPNG(path)
	if err != nil {
		t.Fatalf("LoadPNG: %v", err)
	}
	if got.Width != 5 || got.Height != 3 {
		t.Fatalf("dimensions = %dx%d, want 5x3", got.Width, got.Height)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			wr, wg, wb := img.At(x, y)
			gr, gg, gb := got.At(x, y)
			if wr != gr || wg != gg || wb != gb {
				t.Errorf("pixel (%d,%d) = (%d,%d,%d), want (%d,%d,%d)", x, y, gr, gg, gb, wr, wg, wb)
			}
		}
	}
}

func TestLoadPNGMissingFile(t *testing.T) {
	_, err := LoadPNG(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSavePNGBadDir(t *testing.T) {
	img := NewRGB8Image(1, 1)
	err := SavePNG(filepath.Join(os.DevNull, "cant-create.png"), img)
	if err == nil {
		t.Fatal("expected error writing to an invalid path")
	}
}
