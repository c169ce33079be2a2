package fontatlas

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face exposes one generated entry as a golang.org/x/image/font.Face,
// so atlas output can be drawn with font.Drawer without any further
// glue. The face serves glyph masks straight from the atlas bitmap; it
// performs no rasterization of its own.
//
// Face is read-only after construction and safe for concurrent use.
type Face struct {
	mask    *image.Alpha
	metrics []CharPosition
	ascent  fixed.Int26_6
	descent fixed.Int26_6
}

var _ font.Face = (*Face)(nil)

// NewFace creates a Face for one entry of a generated atlas. The entry
// must have been filled by Generate.
func NewFace(a *Atlas, e *Entry) *Face {
	return &Face{
		mask: &image.Alpha{
			Pix:    a.Pix,
			Stride: a.Width,
			Rect:   image.Rect(0, 0, a.Width, a.Height),
		},
		metrics: e.Metrics,
		ascent:  floatToFixed(e.Ascent),
		descent: floatToFixed(-e.Descent),
	}
}

// Close implements font.Face. It is a no-op.
func (f *Face) Close() error { return nil }

// Metrics implements font.Face.
func (f *Face) Metrics() font.Metrics {
	return font.Metrics{
		Height:     f.ascent + f.descent,
		Ascent:     f.ascent,
		Descent:    f.descent,
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}

// Kern implements font.Face. The atlas carries no kerning data.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

// Glyph implements font.Face.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	cp, ok := f.lookup(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	x := dot.X.Floor() + int(cp.XOff)
	y := dot.Y.Floor() + int(cp.YOff)
	dr = image.Rect(x, y, x+(cp.X1-cp.X0), y+(cp.Y1-cp.Y0))
	return dr, f.mask, image.Pt(cp.X0, cp.Y0), floatToFixed(cp.XAdvance), true
}

// GlyphBounds implements font.Face.
func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	cp, ok := f.lookup(r)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	bounds = fixed.R(
		int(cp.XOff), int(cp.YOff),
		int(cp.XOff)+(cp.X1-cp.X0), int(cp.YOff)+(cp.Y1-cp.Y0),
	)
	return bounds, floatToFixed(cp.XAdvance), true
}

// GlyphAdvance implements font.Face.
func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	cp, ok := f.lookup(r)
	if !ok {
		return 0, false
	}
	return floatToFixed(cp.XAdvance), true
}

// lookup returns the metrics entry for a rune. Runes outside the
// rendered range report no glyph; unmapped runes inside it resolve to
// the shared missing-glyph rectangle, matching how the atlas was
// built.
func (f *Face) lookup(r rune) (CharPosition, bool) {
	if r < CharFirst || r >= CharEnd {
		return CharPosition{}, false
	}
	return f.metrics[r-CharFirst], true
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * 64))
}
