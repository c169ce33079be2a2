package fontatlas

// shelfPacker implements shelf-based rectangle packing into a strip of
// fixed width and unbounded height.
//
// Rectangles are placed left-to-right in horizontal "shelves". When a
// rectangle no longer fits on the current shelf, a new shelf is opened
// below it; the shelf's height is that of its tallest rectangle.
// Callers sort rectangles by ascending height before placing them,
// which keeps shelves dense.
type shelfPacker struct {
	width   int // fixed strip width
	padding int // gap enforced between rectangles and shelves

	x, y      int // next free slot
	rowHeight int // height of the tallest rectangle on this shelf
}

func newShelfPacker(width, padding int) *shelfPacker {
	return &shelfPacker{
		width:   width,
		padding: padding,
		x:       padding,
		y:       padding,
	}
}

// place allocates a w by h rectangle and returns its position. The
// caller must ensure w fits the strip width; place never fails, it
// opens a new shelf instead.
func (p *shelfPacker) place(w, h int) (x, y int) {
	if p.x+w+p.padding > p.width {
		p.x = p.padding
		p.y += p.rowHeight + p.padding
		p.rowHeight = 0
	}
	x, y = p.x, p.y
	p.x += w + p.padding
	if h > p.rowHeight {
		p.rowHeight = h
	}
	return x, y
}

// height returns the total strip height consumed so far, including the
// trailing padding below the last shelf.
func (p *shelfPacker) height() int {
	return p.y + p.rowHeight + p.padding
}
