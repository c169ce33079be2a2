package fontatlas

import (
	"image"
	"image/png"
	"os"
)

// The character range rendered for every font: printable ASCII.
const (
	// CharFirst is the first rendered code point.
	CharFirst = 32

	// CharEnd is one past the last rendered code point.
	CharEnd = 127

	// CharCount is the number of rendered characters; metrics tables
	// have exactly this length, indexed by codepoint - CharFirst.
	CharCount = CharEnd - CharFirst
)

// CharPosition locates one character inside the atlas and carries the
// data needed to lay it out: the atlas rectangle, the horizontal
// advance, and the glyph origin offset relative to the pen position.
// All characters of a font that lack a glyph share a single rectangle.
type CharPosition struct {
	X0, Y0, X1, Y1 int

	// XOff and YOff place the rectangle's top-left corner relative to
	// the pen; YOff is negative for glyphs above the baseline.
	XOff, YOff float32

	// XAdvance is the pen movement after drawing, in pixels.
	XAdvance float32
}

// Entry is one (font, size) request. Metrics must be a caller-owned
// slice of length CharCount; Generate fills it in place.
type Entry struct {
	// Metrics receives the per-character placement data.
	Metrics []CharPosition

	// FontPath is the font file to load; used by GenerateFile.
	FontPath string

	// Data holds raw font bytes; used by Generate and GenerateWith.
	Data []byte

	// Size is the target pixel size, measured over the font's total
	// line height (ascent minus descent).
	Size float64

	// Ascent and Descent are filled by Generate with the font's line
	// metrics scaled to pixels; Descent is negative.
	Ascent, Descent float32
}

// Atlas is the packed coverage bitmap shared by all requested fonts.
// Pix holds Width*Height bytes, row-major, one byte per pixel:
// 0 is fully transparent, 255 fully opaque. The caller owns the
// returned Atlas; the package keeps no reference to it.
type Atlas struct {
	Width  int
	Height int
	Pix    []byte
}

// Image returns the atlas as a greyscale image sharing the same pixel
// buffer. Mutating one mutates the other.
func (a *Atlas) Image() *image.Gray {
	return &image.Gray{
		Pix:    a.Pix,
		Stride: a.Width,
		Rect:   image.Rect(0, 0, a.Width, a.Height),
	}
}

// SavePNG writes the atlas to a PNG file. Intended for debugging and
// tooling; the texture path uses Pix directly.
func (a *Atlas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, a.Image())
}
