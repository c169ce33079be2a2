package truetype

// Platform and encoding IDs from the cmap encoding records.
const (
	platformUnicode   = 0
	platformMacintosh = 1
	platformMicrosoft = 3

	// Unicode platform encoding 14 carries variation selectors only.
	unicodeVariationSelectors = 14

	microsoftUnicodeBMP = 1
	microsoftUnicodeUCS = 10
)

// selectCmap scans the cmap encoding records and returns the first
// subtable with Unicode semantics: any Unicode-platform encoding except
// variation selectors, or a Microsoft-platform UCS-2/UCS-4 encoding.
func selectCmap(cmap []byte) ([]byte, error) {
	if len(cmap) < 4 {
		return nil, &FormatError{Reason: "cmap table truncated"}
	}
	numSubtables := int(be16(cmap, 2))
	if 4+8*numSubtables > len(cmap) {
		return nil, &FormatError{Reason: "cmap table truncated"}
	}
	for i := 0; i < numSubtables; i++ {
		rec := 4 + 8*i
		platformID := be16(cmap, rec)
		encodingID := be16(cmap, rec+2)
		switch platformID {
		case platformUnicode:
			if encodingID == unicodeVariationSelectors {
				continue
			}
		case platformMicrosoft:
			if encodingID != microsoftUnicodeBMP && encodingID != microsoftUnicodeUCS {
				continue
			}
		default:
			continue
		}
		off := int(be32(cmap, rec+4))
		if off <= 0 || off >= len(cmap) {
			return nil, &FormatError{Reason: "bad cmap subtable offset"}
		}
		return cmap[off:], nil
	}
	return nil, &UnsupportedEncodingError{}
}

// GlyphIndex maps a code point to its glyph ID, dispatching on the
// selected subtable's format. Unmapped code points return glyph 0, the
// missing-glyph slot, which callers must substitute explicitly.
func (f *Font) GlyphIndex(r rune) (uint16, error) {
	c := uint32(r)
	if len(f.cmap) < 2 {
		return 0, &FormatError{Reason: "cmap subtable truncated"}
	}
	switch format := be16(f.cmap, 0); format {
	case 0:
		return f.glyphIndexFormat0(c)
	case 4:
		return f.glyphIndexFormat4(c)
	case 12:
		return f.glyphIndexFormat12(c)
	default:
		return 0, &UnsupportedFormatError{Format: format}
	}
}

// glyphIndexFormat0 handles the byte-encoding table: a flat 256-entry
// glyph array indexed by code point.
func (f *Font) glyphIndexFormat0(c uint32) (uint16, error) {
	if c > 0xff {
		return 0, nil
	}
	off := 6 + int(c)
	if off >= len(f.cmap) {
		return 0, &FormatError{Reason: "cmap format 0 truncated"}
	}
	return uint16(f.cmap[off]), nil
}

// glyphIndexFormat4 handles the segment-mapping table used for BMP
// coverage. The owning segment is found by binary search over the
// sorted endCode array.
func (f *Font) glyphIndexFormat4(c uint32) (uint16, error) {
	if c > 0xffff {
		return 0, nil
	}
	if len(f.cmap) < 14 {
		return 0, &FormatError{Reason: "cmap format 4 truncated"}
	}
	segCountX2 := int(be16(f.cmap, 6))
	segCount := segCountX2 / 2
	// endCode, reservedPad, startCode, idDelta, idRangeOffset.
	endCodes := 14
	startCodes := endCodes + segCountX2 + 2
	idDeltas := startCodes + segCountX2
	idRangeOffsets := idDeltas + segCountX2
	if idRangeOffsets+segCountX2 > len(f.cmap) {
		return 0, &FormatError{Reason: "cmap format 4 truncated"}
	}

	// First segment whose endCode covers the code point.
	lo, hi := 0, segCount
	for lo < hi {
		mid := (lo + hi) / 2
		if uint32(be16(f.cmap, endCodes+2*mid)) < c {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == segCount {
		return 0, nil
	}
	start := uint32(be16(f.cmap, startCodes+2*lo))
	if c < start {
		return 0, nil
	}

	rangeOffset := int(be16(f.cmap, idRangeOffsets+2*lo))
	if rangeOffset == 0 {
		delta := int16(be16(f.cmap, idDeltas+2*lo))
		return uint16(c + uint32(uint16(delta))), nil
	}
	// The range offset is relative to its own position in the table.
	off := idRangeOffsets + 2*lo + rangeOffset + 2*int(c-start)
	if off+2 > len(f.cmap) {
		return 0, &FormatError{Reason: "cmap format 4 glyph array out of range"}
	}
	return be16(f.cmap, off), nil
}

// glyphIndexFormat12 handles the segmented-coverage table with 32-bit
// code points, organized as sorted (start, end, startGlyph) groups.
func (f *Font) glyphIndexFormat12(c uint32) (uint16, error) {
	if len(f.cmap) < 16 {
		return 0, &FormatError{Reason: "cmap format 12 truncated"}
	}
	nGroups := int(be32(f.cmap, 12))
	if nGroups < 0 || 16+12*nGroups > len(f.cmap) {
		return 0, &FormatError{Reason: "cmap format 12 truncated"}
	}

	// Last group whose startCharCode is not above the code point.
	lo, hi := 0, nGroups
	for lo < hi {
		mid := (lo + hi) / 2
		if be32(f.cmap, 16+12*mid) <= c {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == 0 {
		return 0, nil
	}
	group := 16 + 12*(lo-1)
	if c > be32(f.cmap, group+4) {
		return 0, nil
	}
	start := be32(f.cmap, group)
	startGlyph := be32(f.cmap, group+8)
	return uint16(startGlyph + (c - start)), nil
}
