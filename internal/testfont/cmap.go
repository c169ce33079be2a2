package testfont

// Segment is one format 4 mapping segment.
type Segment struct {
	Start, End  uint16
	Delta       int16
	RangeOffset uint16
}

// CmapFormat4 encodes a segment-mapping subtable. Segments must be
// sorted by End. GlyphIDs, if any, are appended after the segment
// arrays for segments addressed through RangeOffset.
func CmapFormat4(segments []Segment, glyphIDs ...uint16) []byte {
	segCount := len(segments)
	var w writer
	w.u16(4)
	w.u16(uint16(16 + 8*segCount + 2*len(glyphIDs))) // length
	w.u16(0)                                         // language
	w.u16(uint16(2 * segCount))
	w.u16(0) // searchRange, unused by binary search
	w.u16(0) // entrySelector
	w.u16(0) // rangeShift
	for _, s := range segments {
		w.u16(s.End)
	}
	w.u16(0) // reservedPad
	for _, s := range segments {
		w.u16(s.Start)
	}
	for _, s := range segments {
		w.i16(s.Delta)
	}
	for _, s := range segments {
		w.u16(s.RangeOffset)
	}
	for _, id := range glyphIDs {
		w.u16(id)
	}
	return w.b
}

// CmapFormat0 encodes a byte-encoding subtable from a sparse mapping;
// unlisted code points map to glyph 0.
func CmapFormat0(mapping map[byte]byte) []byte {
	var w writer
	w.u16(0)
	w.u16(262) // length
	w.u16(0)   // language
	glyphs := make([]byte, 256)
	for c, g := range mapping {
		glyphs[c] = g
	}
	w.b = append(w.b, glyphs...)
	return w.b
}

// Group is one format 12 coverage group.
type Group struct {
	Start, End, StartGlyph uint32
}

// CmapFormat12 encodes a segmented-coverage subtable. Groups must be
// sorted by Start.
func CmapFormat12(groups []Group) []byte {
	var w writer
	w.u16(12)
	w.u16(0) // reserved
	w.u32(uint32(16 + 12*len(groups)))
	w.u32(0) // language
	w.u32(uint32(len(groups)))
	for _, g := range groups {
		w.u32(g.Start)
		w.u32(g.End)
		w.u32(g.StartGlyph)
	}
	return w.b
}
