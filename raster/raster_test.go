// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"bytes"
	"testing"

	"github.com/gogpu/fontatlas/truetype"
)

// square returns a clockwise unit-square contour (in y-up font units)
// with its top-left corner at (x, y).
func square(x, y, size float32) Outline {
	return Outline{
		Points: []Point{
			{x, y},
			{x + size, y},
			{x + size, y - size},
			{x, y - size},
		},
		ContourEnds: []int{4},
	}
}

func TestRasterize_UnitSquare(t *testing.T) {
	dst := make([]byte, 1)
	Rasterize(square(0, 0, 1), truetype.Box{X0: 0, Y0: 0, X1: 1, Y1: 1}, 1, dst, 1)
	if dst[0] != 255 {
		t.Errorf("expected full coverage 255, got %d", dst[0])
	}
}

func TestRasterize_CenterPixel(t *testing.T) {
	// A 1x1 square in the middle of a 3x3 bitmap: only the center
	// pixel is covered.
	dst := make([]byte, 9)
	Rasterize(square(1, -1, 1), truetype.Box{X0: 0, Y0: 0, X1: 3, Y1: 3}, 1, dst, 3)
	for i, v := range dst {
		want := byte(0)
		if i == 4 {
			want = 255
		}
		if v != want {
			t.Errorf("pixel %d: expected %d, got %d", i, want, v)
		}
	}
}

func TestRasterize_InteriorRun(t *testing.T) {
	// A 3x3 square: interior pixels see no edge directly and are
	// filled by the running winding sum.
	dst := make([]byte, 9)
	Rasterize(square(0, 0, 3), truetype.Box{X0: 0, Y0: 0, X1: 3, Y1: 3}, 1, dst, 3)
	for i, v := range dst {
		if v != 255 {
			t.Errorf("pixel %d: expected 255, got %d", i, v)
		}
	}
}

func TestRasterize_HalfTriangle(t *testing.T) {
	// A right triangle covering half the pixel.
	o := Outline{
		Points:      []Point{{0, 0}, {1, 0}, {0, -1}},
		ContourEnds: []int{3},
	}
	dst := make([]byte, 1)
	Rasterize(o, truetype.Box{X0: 0, Y0: 0, X1: 1, Y1: 1}, 1, dst, 1)
	if dst[0] != 128 {
		t.Errorf("expected half coverage 128, got %d", dst[0])
	}
}

func TestRasterize_QuarterCoverage(t *testing.T) {
	// A unit square in font units at scale 0.5 covers a quarter of
	// the pixel.
	dst := make([]byte, 1)
	Rasterize(square(0, 0, 1), truetype.Box{X0: 0, Y0: 0, X1: 1, Y1: 1}, 0.5, dst, 1)
	if dst[0] != 64 {
		t.Errorf("expected quarter coverage 64, got %d", dst[0])
	}
}

func TestRasterize_ReversedWinding(t *testing.T) {
	// Counter-clockwise contours have negative winding; coverage
	// clamps to zero instead of wrapping.
	o := Outline{
		Points:      []Point{{0, 0}, {0, -1}, {1, -1}, {1, 0}},
		ContourEnds: []int{4},
	}
	dst := make([]byte, 1)
	Rasterize(o, truetype.Box{X0: 0, Y0: 0, X1: 1, Y1: 1}, 1, dst, 1)
	if dst[0] != 0 {
		t.Errorf("expected zero coverage, got %d", dst[0])
	}
}

func TestRasterize_Hole(t *testing.T) {
	// A 3x3 square with a reversed 1x1 square inside it: the hole
	// pixel stays empty, the ring stays full.
	o := Outline{
		Points: []Point{
			{0, 0}, {3, 0}, {3, -3}, {0, -3}, // outer, clockwise
			{1, -1}, {1, -2}, {2, -2}, {2, -1}, // inner, counter-clockwise
		},
		ContourEnds: []int{4, 8},
	}
	dst := make([]byte, 9)
	Rasterize(o, truetype.Box{X0: 0, Y0: 0, X1: 3, Y1: 3}, 1, dst, 3)
	for i, v := range dst {
		want := byte(255)
		if i == 4 {
			want = 0
		}
		if v != want {
			t.Errorf("pixel %d: expected %d, got %d", i, want, v)
		}
	}
}

func TestRasterize_Stride(t *testing.T) {
	// Rendering into a wider destination must only touch the glyph's
	// columns.
	dst := make([]byte, 2*8)
	Rasterize(square(0, 0, 2), truetype.Box{X0: 0, Y0: 0, X1: 2, Y1: 2}, 1, dst, 8)
	for row := 0; row < 2; row++ {
		for x := 0; x < 8; x++ {
			v := dst[row*8+x]
			want := byte(0)
			if x < 2 {
				want = 255
			}
			if v != want {
				t.Errorf("row %d col %d: expected %d, got %d", row, x, want, v)
			}
		}
	}
}

func TestRasterize_OutlineLeftOfBox(t *testing.T) {
	// A box narrower than the outline, as a composite glyph with an
	// understated bbox produces: the clipped-away left edge must
	// still fill the visible columns through the winding sum.
	dst := make([]byte, 2*4)
	Rasterize(square(0, 0, 4), truetype.Box{X0: 2, Y0: 0, X1: 4, Y1: 4}, 1, dst, 2)
	for i, v := range dst {
		if v != 255 {
			t.Errorf("pixel %d: expected 255, got %d", i, v)
		}
	}
}

func TestRasterize_SlantedEdgeLeftOfBox(t *testing.T) {
	// Same clipping with a sloped left side lying fully outside the
	// box.
	o := Outline{
		Points:      []Point{{-2, 0}, {4, 0}, {4, -1}, {-1, -1}},
		ContourEnds: []int{4},
	}
	dst := make([]byte, 4)
	Rasterize(o, truetype.Box{X0: 0, Y0: 0, X1: 4, Y1: 1}, 1, dst, 4)
	for i, v := range dst {
		if v != 255 {
			t.Errorf("pixel %d: expected 255, got %d", i, v)
		}
	}
}

func TestRasterize_Deterministic(t *testing.T) {
	verts := []truetype.Vertex{
		{Op: truetype.VertexStart, X: 10, Y: 0},
		{Op: truetype.VertexQuad, X: 90, Y: 0, CX: 50, CY: 120},
		{Op: truetype.VertexLine, X: 10, Y: 0},
	}
	render := func() []byte {
		o := Flatten(verts, 0.35/0.1)
		dst := make([]byte, 10*10)
		Rasterize(o, truetype.Box{X0: 0, Y0: -7, X1: 10, Y1: 1}, 0.1, dst, 10)
		return dst
	}
	a, b := render(), render()
	if !bytes.Equal(a, b) {
		t.Error("same outline produced different bitmaps")
	}
}
