// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster converts glyph outlines into 8-bit coverage bitmaps.
//
// The pipeline has two stages: Flatten subdivides the quadratic curves
// of a decoded outline into polylines, and Rasterize sweeps the
// resulting contours with an analytic scanline algorithm that
// accumulates exact signed trapezoid areas per pixel. Anti-aliasing is
// driven purely by geometry; there is no supersampling, so output is
// bit-for-bit reproducible.
package raster

import "github.com/gogpu/fontatlas/truetype"

// maxSubdivisionDepth caps curve subdivision so malformed curves with
// non-converging control points still terminate.
const maxSubdivisionDepth = 16

// Point is a 2D point in font units.
type Point struct {
	X, Y float32
}

// Outline is a flattened glyph outline: a flat point list cut into
// closed contours. ContourEnds[i] is the index one past the last point
// of contour i.
type Outline struct {
	Points      []Point
	ContourEnds []int
}

// Flatten converts a decoded vertex list into polyline contours.
// Quadratic segments are subdivided adaptively until the midpoint of
// the curve deviates from the midpoint of its chord by at most
// tolerance (in font units). Callers working in pixel space divide
// their pixel tolerance by the font scale, which bounds the flattening
// error in pixels regardless of font size.
func Flatten(verts []truetype.Vertex, tolerance float32) Outline {
	var o Outline
	n := 0
	for _, v := range verts {
		if v.Op == truetype.VertexStart {
			n++
		}
	}
	if n == 0 {
		return o
	}
	o.ContourEnds = make([]int, 0, n)
	o.Points = make([]Point, 0, len(verts))

	tol2 := tolerance * tolerance
	started := false
	var x, y float32
	for _, v := range verts {
		switch v.Op {
		case truetype.VertexStart:
			if started {
				o.ContourEnds = append(o.ContourEnds, len(o.Points))
			}
			started = true
			x, y = float32(v.X), float32(v.Y)
			o.Points = append(o.Points, Point{x, y})
		case truetype.VertexLine:
			x, y = float32(v.X), float32(v.Y)
			o.Points = append(o.Points, Point{x, y})
		case truetype.VertexQuad:
			o.Points = flattenQuad(o.Points, x, y, float32(v.CX), float32(v.CY), float32(v.X), float32(v.Y), tol2, 0)
			x, y = float32(v.X), float32(v.Y)
		}
	}
	o.ContourEnds = append(o.ContourEnds, len(o.Points))
	return o
}

// flattenQuad appends a polyline approximation of one quadratic Bezier.
// The flatness test compares the squared distance between the chord
// midpoint and the curve midpoint against tol2; a control point on the
// chord passes immediately and emits a single straight segment.
func flattenQuad(pts []Point, x0, y0, cx, cy, x2, y2, tol2 float32, depth int) []Point {
	if depth > maxSubdivisionDepth {
		return pts
	}
	mx := (x0 + 2*cx + x2) / 4
	my := (y0 + 2*cy + y2) / 4
	dx := (x0+x2)/2 - mx
	dy := (y0+y2)/2 - my
	if dx*dx+dy*dy > tol2 {
		pts = flattenQuad(pts, x0, y0, (x0+cx)/2, (y0+cy)/2, mx, my, tol2, depth+1)
		pts = flattenQuad(pts, mx, my, (cx+x2)/2, (cy+y2)/2, x2, y2, tol2, depth+1)
		return pts
	}
	return append(pts, Point{x2, y2})
}
