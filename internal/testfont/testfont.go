// Package testfont assembles minimal TrueType fonts in memory for
// tests. The generated files carry exactly the tables the fontatlas
// pipeline reads (cmap, head, glyf, hhea, hmtx, loca, maxp) with
// checksums left at zero, which the parser does not verify.
package testfont

import "sort"

// Config describes a synthetic font. Glyph ID i takes its outline
// from Glyphs[i]; a nil record produces an empty glyph (zero-length
// loca entry), like a space character.
type Config struct {
	// CmapSubtable is the raw character-map subtable, typically from
	// CmapFormat0, CmapFormat4 or CmapFormat12.
	CmapSubtable []byte

	// CmapPlatform and CmapEncoding select the encoding record; both
	// zero means Unicode platform, default encoding.
	CmapPlatform uint16
	CmapEncoding uint16

	// Glyphs holds glyf records per glyph ID (see SimpleGlyph and
	// CompositeGlyph).
	Glyphs [][]byte

	// Advances per glyph ID; its length becomes numOfLongHorMetrics.
	// Defaults to 500 for every glyph.
	Advances []uint16

	// Ascent and Descent go into hhea. Defaults: 800 and -200, so a
	// pixel size of n gives a scale of n/1000.
	Ascent, Descent int16

	// OmitMaxp drops the maxp table to exercise the unbounded glyph
	// count fallback.
	OmitMaxp bool
}

// Build assembles the font file.
func Build(cfg Config) []byte {
	if cfg.Ascent == 0 && cfg.Descent == 0 {
		cfg.Ascent, cfg.Descent = 800, -200
	}
	if cfg.Advances == nil {
		cfg.Advances = make([]uint16, len(cfg.Glyphs))
		for i := range cfg.Advances {
			cfg.Advances[i] = 500
		}
	}

	var glyf []byte
	loca := make([]int, 0, len(cfg.Glyphs)+1)
	loca = append(loca, 0)
	for _, g := range cfg.Glyphs {
		glyf = append(glyf, g...)
		if len(glyf)%2 != 0 { // short loca stores halved offsets
			glyf = append(glyf, 0)
		}
		loca = append(loca, len(glyf))
	}

	var locaTable writer
	for _, off := range loca {
		locaTable.u16(uint16(off / 2))
	}

	var head writer
	head.pad(50)
	head.u16(0) // indexToLocFormat: short
	head.u16(0) // glyphDataFormat

	var hhea writer
	hhea.u32(0x00010000)
	hhea.u16(uint16(cfg.Ascent))
	hhea.u16(uint16(cfg.Descent))
	hhea.pad(26)
	hhea.u16(uint16(len(cfg.Advances))) // numOfLongHorMetrics

	var hmtx writer
	for _, adv := range cfg.Advances {
		hmtx.u16(adv)
		hmtx.u16(0) // left side bearing
	}

	var cmap writer
	cmap.u16(0) // version
	cmap.u16(1) // one encoding record
	cmap.u16(cfg.CmapPlatform)
	cmap.u16(cfg.CmapEncoding)
	cmap.u32(12) // subtable offset from table start
	cmap.b = append(cmap.b, cfg.CmapSubtable...)

	tables := map[string][]byte{
		"cmap": cmap.b,
		"head": head.b,
		"glyf": glyf,
		"hhea": hhea.b,
		"hmtx": hmtx.b,
		"loca": locaTable.b,
	}
	if !cfg.OmitMaxp {
		var maxp writer
		maxp.u32(0x00010000)
		maxp.u16(uint16(len(cfg.Glyphs)))
		tables["maxp"] = maxp.b
	}
	return assemble(tables)
}

// assemble lays out the SFNT container: version tag, table directory,
// then table data.
func assemble(tables map[string][]byte) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	var out writer
	out.u32(0x00010000) // OpenType 1.0 with TrueType outlines
	out.u16(uint16(len(tags)))
	out.u16(0) // searchRange, unused by the parser
	out.u16(0) // entrySelector
	out.u16(0) // rangeShift

	offset := 12 + 16*len(tags)
	for _, tag := range tags {
		out.b = append(out.b, tag...)
		out.u32(0) // checksum, unverified
		out.u32(uint32(offset))
		out.u32(uint32(len(tables[tag])))
		offset += pad4(len(tables[tag]))
	}
	for _, tag := range tags {
		out.b = append(out.b, tables[tag]...)
		out.pad(pad4(len(tables[tag])) - len(tables[tag]))
	}
	return out.b
}

func pad4(n int) int { return (n + 3) &^ 3 }

// writer is a tiny big-endian byte assembler.
type writer struct {
	b []byte
}

func (w *writer) u8(v uint8)   { w.b = append(w.b, v) }
func (w *writer) u16(v uint16) { w.b = append(w.b, byte(v>>8), byte(v)) }
func (w *writer) u32(v uint32) {
	w.b = append(w.b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
func (w *writer) i16(v int16) { w.u16(uint16(v)) }
func (w *writer) pad(n int)   { w.b = append(w.b, make([]byte, n)...) }
