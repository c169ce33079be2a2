package fontatlas

import (
	"image"
	"testing"

	"golang.org/x/image/math/fixed"
)

func testFace(t *testing.T) (*Face, *Entry) {
	t.Helper()
	entries := []Entry{newEntry(letterFont(), 100)}
	atlas, err := Generate(entries)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return NewFace(atlas, &entries[0]), &entries[0]
}

func TestFace_Metrics(t *testing.T) {
	face, _ := testFace(t)
	m := face.Metrics()
	if m.Ascent != fixed.I(80) {
		t.Errorf("expected ascent 80, got %v", m.Ascent)
	}
	if m.Descent != fixed.I(20) {
		t.Errorf("expected descent 20, got %v", m.Descent)
	}
	if m.Height != fixed.I(100) {
		t.Errorf("expected height 100, got %v", m.Height)
	}
	if m.CaretSlope != image.Pt(0, 1) {
		t.Errorf("expected vertical caret, got %v", m.CaretSlope)
	}
}

func TestFace_Glyph(t *testing.T) {
	face, e := testFace(t)
	cp := e.Metrics['A'-CharFirst]

	dot := fixed.P(20, 30)
	dr, mask, maskp, advance, ok := face.Glyph(dot, 'A')
	if !ok {
		t.Fatal("expected a glyph for 'A'")
	}
	if mask == nil {
		t.Fatal("expected a mask image")
	}
	want := image.Rect(20, 20, 30, 30) // dot offset by (XOff, YOff)
	if dr != want {
		t.Errorf("expected draw rect %v, got %v", want, dr)
	}
	if maskp != image.Pt(cp.X0, cp.Y0) {
		t.Errorf("expected mask point (%d,%d), got %v", cp.X0, cp.Y0, maskp)
	}
	if advance != fixed.I(50) {
		t.Errorf("expected advance 50, got %v", advance)
	}
}

func TestFace_GlyphBounds(t *testing.T) {
	face, _ := testFace(t)
	bounds, advance, ok := face.GlyphBounds('A')
	if !ok {
		t.Fatal("expected bounds for 'A'")
	}
	if want := fixed.R(0, -10, 10, 0); bounds != want {
		t.Errorf("expected bounds %v, got %v", want, bounds)
	}
	if advance != fixed.I(50) {
		t.Errorf("expected advance 50, got %v", advance)
	}
}

func TestFace_GlyphAdvance(t *testing.T) {
	face, _ := testFace(t)
	if adv, ok := face.GlyphAdvance('A'); !ok || adv != fixed.I(50) {
		t.Errorf("expected advance 50, got %v (ok=%v)", adv, ok)
	}
	// Unmapped characters inside the range resolve to the shared
	// placeholder.
	if adv, ok := face.GlyphAdvance('B'); !ok || adv != fixed.I(40) {
		t.Errorf("expected placeholder advance 40, got %v (ok=%v)", adv, ok)
	}
}

func TestFace_OutOfRange(t *testing.T) {
	face, _ := testFace(t)
	if _, ok := face.GlyphAdvance('\n'); ok {
		t.Error("expected no glyph for control character")
	}
	if _, ok := face.GlyphAdvance(0x2603); ok {
		t.Error("expected no glyph outside ASCII")
	}
	if _, _, _, _, ok := face.Glyph(fixed.P(0, 0), 0x2603); ok {
		t.Error("expected no glyph outside ASCII")
	}
}

func TestFace_Kern(t *testing.T) {
	face, _ := testFace(t)
	if k := face.Kern('A', 'V'); k != 0 {
		t.Errorf("expected zero kerning, got %v", k)
	}
}

func TestFace_Close(t *testing.T) {
	face, _ := testFace(t)
	if err := face.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
