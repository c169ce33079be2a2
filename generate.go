package fontatlas

import (
	"os"
	"sort"

	"github.com/gogpu/fontatlas/raster"
	"github.com/gogpu/fontatlas/truetype"
)

// glyphRect is one character's pixel box during packing. Characters
// whose code point maps to no glyph are flagged missing and share the
// rectangle of the first missing character instead of getting one.
type glyphRect struct {
	x, y, w, h int
	missing    bool
}

// Generate builds an atlas from the entries' font Data. Each entry's
// Metrics table is filled in place; the returned Atlas is owned by the
// caller. Generation is single-threaded and deterministic, and any
// failure aborts the whole call without producing a partial atlas.
func Generate(entries []Entry) (*Atlas, error) {
	return GenerateWith(DefaultConfig(), entries)
}

// GenerateFile is Generate for entries specified by FontPath. Font
// files are read fully into memory before parsing; entries that
// already carry Data keep it.
func GenerateFile(entries []Entry) (*Atlas, error) {
	for i := range entries {
		if entries[i].Data != nil {
			continue
		}
		data, err := os.ReadFile(entries[i].FontPath)
		if err != nil {
			return nil, err
		}
		entries[i].Data = data
	}
	return Generate(entries)
}

// GenerateWith is Generate with an explicit configuration.
func GenerateWith(cfg Config, entries []Entry) (*Atlas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	fonts := make([]*truetype.Font, len(entries))
	rects := make([][]glyphRect, len(entries))
	packer := newShelfPacker(cfg.Width, cfg.Padding)

	// First pass: parse every font, compute per-character pixel boxes
	// and fix all atlas rectangles before touching any pixels.
	for i := range entries {
		e := &entries[i]
		if len(e.Metrics) != CharCount {
			return nil, &EntryError{Index: i, Reason: "metrics table must have CharCount entries"}
		}
		if e.Size <= 0 {
			return nil, &EntryError{Index: i, Reason: "size must be positive"}
		}

		fnt, err := truetype.Parse(e.Data)
		if err != nil {
			return nil, err
		}
		fonts[i] = fnt
		scale := fnt.Scale(e.Size)
		e.Ascent = float32(scale * float64(fnt.Ascent()))
		e.Descent = float32(scale * float64(fnt.Descent()))
		Logger().Debug("font parsed",
			"entry", i, "glyphs", fnt.NumGlyphs(), "scale", scale)

		r, err := glyphRects(fnt, scale)
		if err != nil {
			return nil, err
		}
		rects[i] = r

		// Shelf-pack this font's glyphs, shortest first. Entries
		// share one packer, so fonts stack in input order.
		order := make([]int, CharCount)
		for j := range order {
			order[j] = j
		}
		sort.SliceStable(order, func(a, b int) bool {
			return r[order[a]].h < r[order[b]].h
		})
		for _, j := range order {
			if r[j].missing {
				continue
			}
			if r[j].w+2*cfg.Padding > cfg.Width {
				return nil, &EntryError{Index: i, Reason: "glyph wider than atlas"}
			}
			r[j].x, r[j].y = packer.place(r[j].w, r[j].h)
		}
	}

	atlas := &Atlas{Width: cfg.Width, Height: packer.height()}
	atlas.Pix = make([]byte, atlas.Width*atlas.Height)

	// Second pass: rasterize every glyph into its rectangle and fill
	// the metrics tables.
	for i := range entries {
		if err := renderEntry(atlas, fonts[i], &entries[i], rects[i], cfg.Tolerance); err != nil {
			return nil, err
		}
	}

	Logger().Info("atlas generated",
		"width", atlas.Width, "height", atlas.Height, "entries", len(entries))
	return atlas, nil
}

// glyphRects computes every character's pixel box for one font. The
// first character without a glyph keeps a real box (it will be drawn
// as the notdef placeholder); every later one is flagged missing.
func glyphRects(fnt *truetype.Font, scale float64) ([]glyphRect, error) {
	rects := make([]glyphRect, CharCount)
	hasMissing := false
	for i := range rects {
		glyph, err := fnt.GlyphIndex(rune(CharFirst + i))
		if err != nil {
			return nil, err
		}
		if glyph == 0 {
			if hasMissing {
				rects[i].missing = true
				continue
			}
			hasMissing = true
		}
		box, err := fnt.GlyphBox(glyph, scale)
		if err != nil {
			return nil, err
		}
		rects[i].w = box.Width()
		rects[i].h = box.Height()
	}
	return rects, nil
}

// renderEntry rasterizes one font's characters into the shared bitmap
// and fills its metrics table. Missing characters reuse the metrics of
// the first missing character, which must already have been rendered;
// hitting one before that is an OrderingError.
func renderEntry(atlas *Atlas, fnt *truetype.Font, e *Entry, rects []glyphRect, tolerance float64) error {
	scale := fnt.Scale(e.Size)
	missingIdx := -1
	for j := range rects {
		r := &rects[j]
		if r.missing {
			if missingIdx < 0 {
				return &OrderingError{Char: rune(CharFirst + j)}
			}
			e.Metrics[j] = e.Metrics[missingIdx]
			continue
		}

		glyph, err := fnt.GlyphIndex(rune(CharFirst + j))
		if err != nil {
			return err
		}
		if err := renderGlyph(atlas, fnt, glyph, scale, r.x, r.y, tolerance); err != nil {
			return err
		}

		advance, err := fnt.Advance(glyph)
		if err != nil {
			return err
		}
		box, err := fnt.GlyphBox(glyph, scale)
		if err != nil {
			return err
		}
		e.Metrics[j] = CharPosition{
			X0:       r.x,
			Y0:       r.y,
			X1:       r.x + r.w,
			Y1:       r.y + r.h,
			XOff:     float32(box.X0),
			YOff:     float32(box.Y0),
			XAdvance: float32(scale * float64(advance)),
		}

		if glyph == 0 {
			missingIdx = j
		}
	}
	return nil
}

// renderGlyph rasterizes one glyph at (x, y) in the atlas.
func renderGlyph(atlas *Atlas, fnt *truetype.Font, glyph uint16, scale float64, x, y int, tolerance float64) error {
	box, err := fnt.GlyphBox(glyph, scale)
	if err != nil {
		return err
	}
	if box.Width() == 0 || box.Height() == 0 {
		return nil
	}
	verts, err := fnt.GlyphVertices(glyph)
	if err != nil {
		return err
	}
	outline := raster.Flatten(verts, float32(tolerance/scale))
	raster.Rasterize(outline, box, scale, atlas.Pix[y*atlas.Width+x:], atlas.Width)
	return nil
}
