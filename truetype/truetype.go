// Package truetype reads glyph outlines and metrics from TrueType font
// files. It is a minimal, self-contained SFNT reader: it locates the
// required tables, maps characters to glyph IDs through a Unicode cmap
// subtable (formats 0, 4 and 12), and decodes simple and composite
// outlines from the glyf table.
//
// The package never reinterprets the font buffer as structured memory;
// every field is read through bounds-checked big-endian accessors, and
// a truncated or malformed file fails with a typed error instead of
// reading out of range.
package truetype

import "math"

// Table tags required by Parse.
var requiredTables = [...]string{"cmap", "loca", "head", "glyf", "hhea", "hmtx"}

// Font is an immutable view over a parsed TrueType font. It holds the
// resolved positions of the tables needed for outline extraction and
// is safe for reuse across any number of glyph queries.
type Font struct {
	cmap []byte // selected unicode subtable, not the whole cmap table
	loca []byte
	glyf []byte
	hmtx []byte

	numGlyphs int
	longLoca  bool // indexToLocFormat 1: 32-bit loca offsets

	ascent, descent   int16
	numLongHorMetrics uint16
}

// Parse locates the SFNT tables of a TrueType font. Only fonts whose
// version tag is 0x00010000 (OpenType 1.0 with TrueType outlines) are
// accepted. The font data must stay alive and unmodified for the
// lifetime of the returned Font.
func Parse(data []byte) (*Font, error) {
	if len(data) < 12 {
		return nil, &FormatError{Reason: "file too short"}
	}
	if data[0] != 0 || data[1] != 1 || data[2] != 0 || data[3] != 0 {
		return nil, &FormatError{Reason: "bad SFNT version tag"}
	}

	f := &Font{}
	tables := make(map[string][]byte, len(requiredTables)+1)
	numTables := int(be16(data, 4))
	if 12+16*numTables > len(data) {
		return nil, &FormatError{Reason: "table directory truncated"}
	}
	for i := 0; i < numTables; i++ {
		rec := 12 + 16*i
		tag := string(data[rec : rec+4])
		off := int(be32(data, rec+8))
		if off <= 0 || off >= len(data) {
			continue
		}
		tables[tag] = data[off:]
	}
	for _, tag := range requiredTables {
		if tables[tag] == nil {
			return nil, &FormatError{Reason: "missing " + tag + " table"}
		}
	}

	// maxp is optional: without it the glyph count is unbounded and
	// loca bounds checks are the only guard.
	f.numGlyphs = 0xffff
	if maxp := tables["maxp"]; len(maxp) >= 6 {
		f.numGlyphs = int(be16(maxp, 4))
	}

	head := tables["head"]
	if len(head) < 52 {
		return nil, &FormatError{Reason: "head table truncated"}
	}
	switch be16(head, 50) {
	case 0:
		f.longLoca = false
	case 1:
		f.longLoca = true
	default:
		return nil, &FormatError{Reason: "bad indexToLocFormat"}
	}

	hhea := tables["hhea"]
	if len(hhea) < 36 {
		return nil, &FormatError{Reason: "hhea table truncated"}
	}
	f.ascent = int16(be16(hhea, 4))
	f.descent = int16(be16(hhea, 6))
	f.numLongHorMetrics = be16(hhea, 34)

	cmap, err := selectCmap(tables["cmap"])
	if err != nil {
		return nil, err
	}
	f.cmap = cmap

	f.loca = tables["loca"]
	f.glyf = tables["glyf"]
	f.hmtx = tables["hmtx"]
	return f, nil
}

// NumGlyphs returns the glyph count from maxp, or 0xFFFF when the font
// has no maxp table.
func (f *Font) NumGlyphs() int { return f.numGlyphs }

// Ascent returns the hhea ascender in font units.
func (f *Font) Ascent() int { return int(f.ascent) }

// Descent returns the hhea descender in font units (negative below the
// baseline).
func (f *Font) Descent() int { return int(f.descent) }

// Scale returns the factor converting font units to pixels for the
// requested pixel size. The size is mapped onto the total line height
// (ascent minus descent) rather than the design grid, so the visual
// height of a line of text matches the requested size.
func (f *Font) Scale(size float64) float64 {
	return size / float64(int(f.ascent)-int(f.descent))
}

// Advance returns the horizontal advance of a glyph in font units.
// Per the hmtx table rules, glyphs past numOfLongHorMetrics share the
// last recorded advance.
func (f *Font) Advance(glyph uint16) (uint16, error) {
	i := glyph
	if f.numLongHorMetrics > 0 && i > f.numLongHorMetrics-1 {
		i = f.numLongHorMetrics - 1
	}
	off := 4 * int(i)
	if off+2 > len(f.hmtx) {
		return 0, &FormatError{Reason: "hmtx table truncated"}
	}
	return be16(f.hmtx, off), nil
}

// Box is a glyph bounding box in pixel space: x grows right, y grows
// down, and (X0, Y0) is the top-left corner relative to the baseline
// origin.
type Box struct {
	X0, Y0, X1, Y1 int
}

// Width returns the pixel width of the box.
func (b Box) Width() int { return b.X1 - b.X0 }

// Height returns the pixel height of the box.
func (b Box) Height() int { return b.Y1 - b.Y0 }

// GlyphBox returns the glyph's outline bounding box scaled to pixel
// space. Outsets are conservative: minima are floored and maxima are
// ceiled. The y axis is flipped from the font's y-up convention, so Y0
// derives from the outline's yMax. Glyphs without outline data (such
// as the space) return the zero Box.
func (f *Font) GlyphBox(glyph uint16, scale float64) (Box, error) {
	g, err := f.glyphData(glyph)
	if g == nil || err != nil {
		return Box{}, err
	}
	if len(g) < 10 {
		return Box{}, &FormatError{Reason: "glyf record truncated"}
	}
	return Box{
		X0: int(math.Floor(float64(int16(be16(g, 2))) * scale)),
		Y0: int(math.Floor(float64(-int16(be16(g, 8))) * scale)),
		X1: int(math.Ceil(float64(int16(be16(g, 6))) * scale)),
		Y1: int(math.Ceil(float64(-int16(be16(g, 4))) * scale)),
	}, nil
}

// glyphData returns the glyf record for a glyph, or nil for glyphs with
// no outline (out-of-range IDs and zero-length loca entries).
func (f *Font) glyphData(glyph uint16) ([]byte, error) {
	if int(glyph) >= f.numGlyphs {
		return nil, nil
	}
	var start, end uint32
	if f.longLoca {
		off := 4 * int(glyph)
		if off+8 > len(f.loca) {
			return nil, &FormatError{Reason: "loca table truncated"}
		}
		start = be32(f.loca, off)
		end = be32(f.loca, off+4)
	} else {
		off := 2 * int(glyph)
		if off+4 > len(f.loca) {
			return nil, &FormatError{Reason: "loca table truncated"}
		}
		start = uint32(be16(f.loca, off)) * 2
		end = uint32(be16(f.loca, off+2)) * 2
	}
	if start == end {
		return nil, nil
	}
	if start > end || int(start) > len(f.glyf) {
		return nil, &FormatError{Reason: "bad loca offset"}
	}
	return f.glyf[start:], nil
}

// be16 reads a big-endian uint16. The caller must have validated the
// offset.
func be16(b []byte, off int) uint16 {
	return uint16(b[off])<<8 | uint16(b[off+1])
}

// be32 reads a big-endian uint32. The caller must have validated the
// offset.
func be32(b []byte, off int) uint32 {
	return uint32(b[off])<<24 | uint32(b[off+1])<<16 | uint32(b[off+2])<<8 | uint32(b[off+3])
}

// cursor is a sticky-error sequential reader over a table slice.
// Reads past the end set ok to false and return zero values; callers
// check ok once after a run of reads.
type cursor struct {
	b   []byte
	off int
	ok  bool
}

func newCursor(b []byte, off int) *cursor {
	return &cursor{b: b, off: off, ok: true}
}

func (c *cursor) u8() uint8 {
	if c.off+1 > len(c.b) {
		c.ok = false
		return 0
	}
	v := c.b[c.off]
	c.off++
	return v
}

func (c *cursor) i8() int8 { return int8(c.u8()) }

func (c *cursor) u16() uint16 {
	if c.off+2 > len(c.b) {
		c.ok = false
		return 0
	}
	v := be16(c.b, c.off)
	c.off += 2
	return v
}

func (c *cursor) i16() int16 { return int16(c.u16()) }

func (c *cursor) err() error {
	if c.ok {
		return nil
	}
	return &FormatError{Reason: "unexpected end of table"}
}
