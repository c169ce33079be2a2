package truetype

// Simple-glyph point flags.
const (
	flagOnCurve   = 0x01
	flagXShort    = 0x02
	flagYShort    = 0x04
	flagRepeat    = 0x08
	flagXPositive = 0x10 // same bit doubles as "x same as previous"
	flagYPositive = 0x20 // same bit doubles as "y same as previous"
)

// Composite component flags.
const (
	flagArg1And2AreWords   = 0x0001
	flagArgsAreXYValues    = 0x0002
	flagWeHaveAScale       = 0x0008
	flagMoreComponents     = 0x0020
	flagWeHaveAnXAndYScale = 0x0040
	flagWeHaveATwoByTwo    = 0x0080
)

// maxComponentDepth bounds composite recursion so a malformed font with
// self-referencing components cannot loop forever.
const maxComponentDepth = 8

// VertexOp distinguishes the segment kinds of a decoded outline.
type VertexOp uint8

const (
	// VertexStart opens a new contour at (X, Y).
	VertexStart VertexOp = iota
	// VertexLine is a straight segment to (X, Y).
	VertexLine
	// VertexQuad is a quadratic curve to (X, Y) with control (CX, CY).
	VertexQuad
)

// Vertex is one segment of a glyph outline in font units. A contour is
// a Start vertex followed by Line and Quad vertices; the decoder closes
// every contour back to its start point, so consumers never need to.
type Vertex struct {
	Op     VertexOp
	X, Y   int32
	CX, CY int32
}

// GlyphVertices decodes a glyph's outline into a flat vertex list.
// Composite glyphs are resolved recursively: each component's vertices
// are transformed by its offset and F2Dot14 matrix and concatenated, so
// the result is uniform regardless of how the glyph was authored.
// Glyphs without outline data return an empty list.
func (f *Font) GlyphVertices(glyph uint16) ([]Vertex, error) {
	return f.glyphVertices(glyph, 0)
}

func (f *Font) glyphVertices(glyph uint16, depth int) ([]Vertex, error) {
	g, err := f.glyphData(glyph)
	if g == nil || err != nil {
		return nil, err
	}
	if len(g) < 10 {
		return nil, &FormatError{Reason: "glyf record truncated"}
	}
	numContours := int(int16(be16(g, 0)))
	if numContours >= 0 {
		return decodeSimpleGlyph(g, numContours)
	}
	if depth >= maxComponentDepth {
		return nil, &FormatError{Reason: "composite glyph nesting too deep"}
	}
	return f.decodeCompositeGlyph(g, depth)
}

// rawPoint is a decoded glyf point before contour assembly.
type rawPoint struct {
	x, y int32
	on   bool
}

func decodeSimpleGlyph(g []byte, numContours int) ([]Vertex, error) {
	if numContours == 0 {
		return nil, nil
	}
	endPtsOfContours := 10
	if endPtsOfContours+2*numContours+2 > len(g) {
		return nil, &FormatError{Reason: "glyf contour ends truncated"}
	}
	numPoints := 1 + int(be16(g, endPtsOfContours+2*(numContours-1)))
	instructionLength := int(be16(g, endPtsOfContours+2*numContours))
	c := newCursor(g, endPtsOfContours+2*numContours+2+instructionLength)

	// Flags, with run-length repeats.
	pts := make([]rawPoint, numPoints)
	flags := make([]uint8, numPoints)
	var repeat uint8
	var flag uint8
	for i := 0; i < numPoints; i++ {
		if repeat > 0 {
			repeat--
		} else {
			flag = c.u8()
			if flag&flagRepeat != 0 {
				repeat = c.u8()
			}
		}
		flags[i] = flag
		pts[i].on = flag&flagOnCurve != 0
	}

	// Delta-coded x, then y coordinates.
	var x int32
	for i := 0; i < numPoints; i++ {
		switch flag = flags[i]; {
		case flag&flagXShort != 0:
			dx := int32(c.u8())
			if flag&flagXPositive != 0 {
				x += dx
			} else {
				x -= dx
			}
		case flag&flagXPositive == 0: // not "same as previous"
			x += int32(c.i16())
		}
		pts[i].x = x
	}
	var y int32
	for i := 0; i < numPoints; i++ {
		switch flag = flags[i]; {
		case flag&flagYShort != 0:
			dy := int32(c.u8())
			if flag&flagYPositive != 0 {
				y += dy
			} else {
				y -= dy
			}
		case flag&flagYPositive == 0:
			y += int32(c.i16())
		}
		pts[i].y = y
	}
	if err := c.err(); err != nil {
		return nil, err
	}

	out := make([]Vertex, 0, numPoints+2*numContours)
	j := 0
	for i := 0; i < numContours; i++ {
		endPt := int(be16(g, endPtsOfContours+2*i))
		if endPt >= numPoints || j > endPt {
			return nil, &FormatError{Reason: "bad contour end point"}
		}

		// The contour start: an on-curve first point starts as-is.
		// An off-curve first point starts at the following on-curve
		// point if there is one, otherwise at the implicit midpoint
		// between the two leading off-curve points.
		first := pts[j]
		var x0, y0 int32
		if first.on {
			x0, y0 = first.x, first.y
		} else {
			if j+1 >= numPoints {
				return nil, &FormatError{Reason: "contour with dangling off-curve start"}
			}
			next := pts[j+1]
			if next.on {
				x0, y0 = next.x, next.y
				j++
			} else {
				x0, y0 = (first.x+next.x)>>1, (first.y+next.y)>>1
			}
		}
		out = append(out, Vertex{Op: VertexStart, X: x0, Y: y0})

		// Interior points: on-curve points end a segment (line, or
		// quad when the previous point was off-curve); consecutive
		// off-curve points imply an on-curve midpoint between them.
		lastOff := false
		var cx, cy int32
		for j++; j <= endPt; j++ {
			px, py := pts[j].x, pts[j].y
			if pts[j].on {
				if lastOff {
					out = append(out, Vertex{Op: VertexQuad, X: px, Y: py, CX: cx, CY: cy})
				} else {
					out = append(out, Vertex{Op: VertexLine, X: px, Y: py})
				}
				lastOff = false
			} else {
				if lastOff {
					out = append(out, Vertex{Op: VertexQuad, X: (cx + px) >> 1, Y: (cy + py) >> 1, CX: cx, CY: cy})
				}
				cx, cy = px, py
				lastOff = true
			}
		}

		// Close the contour against the start point with the same
		// on/off-curve rules.
		if first.on {
			if lastOff {
				out = append(out, Vertex{Op: VertexQuad, X: x0, Y: y0, CX: cx, CY: cy})
			} else {
				out = append(out, Vertex{Op: VertexLine, X: x0, Y: y0})
			}
		} else {
			if lastOff {
				out = append(out, Vertex{Op: VertexQuad, X: (cx + first.x) >> 1, Y: (cy + first.y) >> 1, CX: cx, CY: cy})
			}
			out = append(out, Vertex{Op: VertexQuad, X: x0, Y: y0, CX: first.x, CY: first.y})
		}
	}
	return out, nil
}

func (f *Font) decodeCompositeGlyph(g []byte, depth int) ([]Vertex, error) {
	c := newCursor(g, 10)
	var out []Vertex
	for {
		flags := c.u16()
		componentGlyph := c.u16()
		if err := c.err(); err != nil {
			return nil, err
		}
		if flags&flagArgsAreXYValues == 0 {
			return nil, &UnsupportedFeatureError{Feature: "point-matching composite placement"}
		}

		var a, b, cc, d int32 = 1 << 14, 0, 0, 1 << 14
		var e, fv int32
		if flags&flagArg1And2AreWords != 0 {
			e = int32(c.i16())
			fv = int32(c.i16())
		} else {
			e = int32(c.i8())
			fv = int32(c.i8())
		}
		switch {
		case flags&flagWeHaveAScale != 0:
			a = int32(c.i16())
			d = a
		case flags&flagWeHaveAnXAndYScale != 0:
			a = int32(c.i16())
			d = int32(c.i16())
		case flags&flagWeHaveATwoByTwo != 0:
			a = int32(c.i16())
			b = int32(c.i16())
			cc = int32(c.i16())
			d = int32(c.i16())
		}
		if err := c.err(); err != nil {
			return nil, err
		}

		// Pre-scale the translation by the transform magnitude, with
		// the doubling applied when diagonal and off-diagonal
		// magnitudes are within 8/16384 of each other. This is a
		// compatibility rule carried over from common TrueType
		// renderers, replicated rather than derived.
		m := maxAbs32(a, b)
		n := maxAbs32(cc, d)
		if abs32(abs32(a)-abs32(cc)) <= 8 {
			m *= 2
		}
		if abs32(abs32(b)-abs32(d)) <= 8 {
			n *= 2
		}
		e *= m
		fv *= n

		comp, err := f.glyphVertices(componentGlyph, depth+1)
		if err != nil {
			return nil, err
		}
		for i := range comp {
			v := &comp[i]
			x0 := v.X
			v.X = (a*v.X + cc*v.Y + e) >> 14
			v.Y = (b*x0 + d*v.Y + fv) >> 14
			cx0 := v.CX
			v.CX = (a*v.CX + cc*v.CY + e) >> 14
			v.CY = (b*cx0 + d*v.CY + fv) >> 14
		}
		out = append(out, comp...)

		if flags&flagMoreComponents == 0 {
			return out, nil
		}
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func maxAbs32(a, b int32) int32 {
	a, b = abs32(a), abs32(b)
	if a > b {
		return a
	}
	return b
}
