// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"sort"

	"github.com/gogpu/fontatlas/truetype"
)

// edge is a directed non-horizontal segment in pixel space, normalized
// so sy <= ey. The winding sign preserves the original direction: +1
// for segments that ran upward in font units, -1 for downward, which
// is what makes area accumulation implement the non-zero winding rule.
type edge struct {
	sx     float32 // x at the top of the span
	sy, ey float32 // vertical span, sy <= ey
	dxdy   float32 // inverse slope
	dydx   float32 // slope, 0 for vertical edges
	sign   float32
}

// Rasterize renders a flattened outline into dst, one byte per pixel
// with the given row stride. The outline is in font units with y up;
// box is the glyph's pixel box as computed by truetype.Font.GlyphBox
// and fixes both the bitmap size (box.Width by box.Height) and the
// pixel-space origin. dst must hold at least box.Height rows.
//
// Coverage is exact: every edge contributes its analytic trapezoid
// area to the pixels it crosses, and a per-row running winding sum
// fills pixel runs that lie strictly inside the contours.
func Rasterize(o Outline, box truetype.Box, scale float64, dst []byte, stride int) {
	width, height := box.Width(), box.Height()
	if width <= 0 || height <= 0 || len(o.ContourEnds) == 0 {
		return
	}

	s := float32(scale)
	edges := make([]edge, 0, len(o.Points))
	for i, k := 0, 0; i < len(o.ContourEnds); i++ {
		j := o.ContourEnds[i] - 1
		for ; k < o.ContourEnds[i]; j, k = k, k+1 {
			pj, pk := o.Points[j], o.Points[k]
			if pj.Y == pk.Y {
				continue
			}
			var e edge
			// The slope is a ratio, so it needs no scaling; the flip
			// to y-down pixel space is folded into the denominator.
			e.dxdy = (pj.X - pk.X) / (pk.Y - pj.Y)
			if e.dxdy != 0 {
				e.dydx = 1 / e.dxdy
			}
			if pj.Y < pk.Y {
				e.sign = 1
				e.sy = -pk.Y * s
				e.ey = -pj.Y * s
				e.sx = pk.X*s - float32(box.X0)
			} else {
				e.sign = -1
				e.sy = -pj.Y * s
				e.ey = -pk.Y * s
				e.sx = pj.X*s - float32(box.X0)
			}
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(a, b int) bool { return edges[a].sy < edges[b].sy })

	// cell collects each edge's partial area within the pixel it
	// crosses; wind collects net vertical extents, offset one column
	// right so the running sum covers the pixels beyond the crossing.
	active := make([]int, 0, 16)
	cell := make([]float32, width)
	wind := make([]float32, width+1)
	next := 0
	for row := 0; row < height; row++ {
		rowTop := float32(box.Y0 + row)
		rowBot := rowTop + 1

		// Retire edges above the row, swap-and-pop.
		for i := 0; i < len(active); {
			if edges[active[i]].ey <= rowTop {
				active[i] = active[len(active)-1]
				active = active[:len(active)-1]
			} else {
				i++
			}
		}
		for ; next < len(edges) && edges[next].sy <= rowBot; next++ {
			active = append(active, next)
		}

		clear(cell)
		clear(wind)
		for _, i := range active {
			accumulate(&edges[i], rowTop, cell, wind, width)
		}

		line := dst[row*stride:]
		sum := float32(0)
		for x := 0; x < width; x++ {
			sum += wind[x]
			v := int((cell[x] + sum) * 256)
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			line[x] = byte(v)
		}
	}
}

// pixelArea is the signed area between an edge segment and the right
// boundary of pixel column x, for a segment spanning (x0,y0)-(x1,y1)
// inside that column.
func pixelArea(x int, x0, y0, x1, y1 float32) float32 {
	return (y1 - y0) * (float32(x+1) - (x0+x1)/2)
}

// accumulate adds one active edge's contribution to the current row.
// Vertical and single-column edges use the closed-form area directly;
// edges crossing several columns decompose into a leading partial
// triangle, a run of full trapezoids advanced by a constant area step,
// and a trailing partial region.
func accumulate(e *edge, rowTop float32, cell, wind []float32, width int) {
	rowBot := rowTop + 1

	if e.dydx == 0 { // vertical
		if e.sx >= float32(width) {
			return
		}
		y0 := max(e.sy, rowTop)
		y1 := min(e.ey, rowBot)
		if e.sx < 0 {
			// Left of the bitmap, which happens when the declared
			// bbox understates the outline: the edge still opens or
			// closes fill for every visible column.
			wind[0] += e.sign * (y1 - y0)
			return
		}
		x := int(e.sx)
		cell[x] += e.sign * pixelArea(x, e.sx, y0, e.sx, y1)
		wind[x+1] += e.sign * (y1 - y0)
		return
	}

	// Clip the edge to the row.
	var ext, eyt float32
	if e.sy > rowTop {
		ext, eyt = e.sx, e.sy
	} else {
		ext, eyt = e.sx+e.dxdy*(rowTop-e.sy), rowTop
	}
	var exb, eyb float32
	if e.ey < rowBot {
		exb, eyb = e.sx+e.dxdy*(e.ey-e.sy), e.ey
	} else {
		exb, eyb = e.sx+e.dxdy*(rowBot-e.sy), rowBot
	}

	if int(ext) == int(exb) { // fits in one pixel column
		x := int(ext)
		if x >= width {
			return
		}
		if x < 0 {
			wind[0] += e.sign * (eyb - eyt)
			return
		}
		cell[x] += e.sign * pixelArea(x, ext, eyt, exb, eyb)
		wind[x+1] += e.sign * (eyb - eyt)
		return
	}

	dydx := e.dydx
	if ext > exb {
		ext, exb = exb, ext
		dydx = -dydx
	}
	if ext >= float32(width) {
		return
	}
	if exb < 0 {
		wind[0] += e.sign * (eyb - eyt)
		return
	}

	x1 := int(ext)
	stepRect := e.sign * dydx
	stepTri := stepRect / 2
	x := x1 + 1
	signedArea := stepRect * (float32(x1+1) - ext)
	if x1 >= 0 {
		cell[x1] += signedArea * (float32(x1+1) - ext) / 2
	} else if x < 0 {
		signedArea -= float32(x) * stepRect
		x = 0
	}
	x2 := int(exb)
	if x2 > width {
		x2 = width
	}
	for ; x < x2; x++ {
		cell[x] += signedArea + stepTri
		signedArea += stepRect
	}

	if x2 >= width {
		return
	}
	ycut := eyt + dydx*(float32(x2)-ext)
	cell[x2] += signedArea + e.sign*pixelArea(x2, float32(x2), ycut, exb, eyb)
	wind[x2+1] += e.sign * (eyb - eyt)
}
