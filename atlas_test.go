package fontatlas

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestAtlas_Image(t *testing.T) {
	a := &Atlas{Width: 2, Height: 2, Pix: []byte{0, 64, 128, 255}}
	img := a.Image()
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if v := img.GrayAt(1, 1).Y; v != 255 {
		t.Errorf("expected pixel (1,1) = 255, got %d", v)
	}

	// The image shares the atlas buffer.
	a.Pix[0] = 42
	if v := img.GrayAt(0, 0).Y; v != 42 {
		t.Errorf("expected shared buffer, got %d", v)
	}
}

func TestAtlas_SavePNG(t *testing.T) {
	a := &Atlas{Width: 3, Height: 2, Pix: []byte{0, 1, 2, 3, 4, 5}}
	path := filepath.Join(t.TempDir(), "atlas.png")
	if err := a.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding written PNG failed: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("unexpected bounds %v", img.Bounds())
	}
	r, _, _, _ := img.At(2, 1).RGBA()
	if byte(r>>8) != 5 {
		t.Errorf("expected pixel (2,1) = 5, got %d", r>>8)
	}
}

func TestAtlas_SavePNG_BadPath(t *testing.T) {
	a := &Atlas{Width: 1, Height: 1, Pix: []byte{0}}
	if err := a.SavePNG(filepath.Join(t.TempDir(), "missing", "atlas.png")); err == nil {
		t.Error("expected error for unwritable path")
	}
}
