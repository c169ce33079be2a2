package testfont

// Point is one outline point in font units.
type Point struct {
	X, Y int16
	Off  bool // off-curve control point
}

// Square is a closed on-curve contour covering [x0,x0+size]x[y0,y0+size],
// wound clockwise in the font's y-up space so it fills under the
// non-zero winding rule.
func Square(x0, y0, size int16) []Point {
	return []Point{
		{X: x0, Y: y0},
		{X: x0, Y: y0 + size},
		{X: x0 + size, Y: y0 + size},
		{X: x0 + size, Y: y0},
	}
}

// SimpleGlyph encodes a glyf record with the given contours. Flags are
// written per point without repeat compression; deltas use the short
// encoding when they fit in a byte.
func SimpleGlyph(contours ...[]Point) []byte {
	const (
		onCurve   = 0x01
		xShort    = 0x02
		yShort    = 0x04
		xPositive = 0x10 // doubles as x-same
		yPositive = 0x20 // doubles as y-same
	)

	xMin, yMin := int16(32767), int16(32767)
	xMax, yMax := int16(-32768), int16(-32768)
	var pts []Point
	ends := make([]int, 0, len(contours))
	for _, c := range contours {
		pts = append(pts, c...)
		ends = append(ends, len(pts)-1)
	}
	for _, p := range pts {
		if p.X < xMin {
			xMin = p.X
		}
		if p.X > xMax {
			xMax = p.X
		}
		if p.Y < yMin {
			yMin = p.Y
		}
		if p.Y > yMax {
			yMax = p.Y
		}
	}

	var flags, xs, ys writer
	var px, py int16
	for _, p := range pts {
		flag := uint8(0)
		if !p.Off {
			flag |= onCurve
		}
		dx, dy := p.X-px, p.Y-py
		switch {
		case dx == 0:
			flag |= xPositive // same as previous
		case dx >= -255 && dx <= 255:
			flag |= xShort
			if dx > 0 {
				flag |= xPositive
				xs.u8(uint8(dx))
			} else {
				xs.u8(uint8(-dx))
			}
		default:
			xs.i16(dx)
		}
		switch {
		case dy == 0:
			flag |= yPositive
		case dy >= -255 && dy <= 255:
			flag |= yShort
			if dy > 0 {
				flag |= yPositive
				ys.u8(uint8(dy))
			} else {
				ys.u8(uint8(-dy))
			}
		default:
			ys.i16(dy)
		}
		flags.u8(flag)
		px, py = p.X, p.Y
	}

	var g writer
	g.i16(int16(len(contours))) // numberOfContours
	g.i16(xMin)
	g.i16(yMin)
	g.i16(xMax)
	g.i16(yMax)
	for _, e := range ends {
		g.u16(uint16(e))
	}
	g.u16(0) // instructionLength
	g.b = append(g.b, flags.b...)
	g.b = append(g.b, xs.b...)
	g.b = append(g.b, ys.b...)
	return g.b
}

// Component is one piece of a composite glyph, placed by XY offset.
// A nil Matrix means identity; 1, 2 or 4 values select the scale,
// x-and-y scale, or 2x2 F2Dot14 matrix encodings.
type Component struct {
	Glyph  uint16
	DX, DY int16
	Matrix []int16
}

// CompositeGlyph encodes a glyf record referencing the components.
// Offsets always use the word encoding.
func CompositeGlyph(bbox [4]int16, components ...Component) []byte {
	const (
		arg1And2AreWords   = 0x0001
		argsAreXYValues    = 0x0002
		weHaveAScale       = 0x0008
		moreComponents     = 0x0020
		weHaveAnXAndYScale = 0x0040
		weHaveATwoByTwo    = 0x0080
	)

	var g writer
	g.i16(-1) // composite marker
	for _, v := range bbox {
		g.i16(v)
	}
	for i, comp := range components {
		flags := uint16(argsAreXYValues | arg1And2AreWords)
		switch len(comp.Matrix) {
		case 0:
		case 1:
			flags |= weHaveAScale
		case 2:
			flags |= weHaveAnXAndYScale
		case 4:
			flags |= weHaveATwoByTwo
		default:
			panic("testfont: matrix must have 0, 1, 2 or 4 values")
		}
		if i < len(components)-1 {
			flags |= moreComponents
		}
		g.u16(flags)
		g.u16(comp.Glyph)
		g.i16(comp.DX)
		g.i16(comp.DY)
		for _, v := range comp.Matrix {
			g.i16(v)
		}
	}
	return g.b
}
