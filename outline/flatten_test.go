package outline

import (
	"math"
	"testing"

	"github.com/robdobsn/WordClockGrace/bezier"
)

func TestFlattenSquare(t *testing.T) {
	p := Path{
		MoveTo{bezier.Pt(0, 0)},
		LineTo{bezier.Pt(10, 0)},
		LineTo{bezier.Pt(10, 10)},
		LineTo{bezier.Pt(0, 10)},
		Close{},
	}
	contours := Flatten(p)
	if len(contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(contours))
	}
	c := contours[0]
	want := Contour{
		bezier.Pt(0, 0), bezier.Pt(10, 0), bezier.Pt(10, 10), bezier.Pt(0, 10), bezier.Pt(0, 0),
	}
	if len(c) != len(want) {
		t.Fatalf("got %d points, want %d: %v", len(c), len(want), c)
	}
	for i := range want {
		if c[i] != want[i] {
			t.Errorf("point %d: got %v, want %v", i, c[i], want[i])
		}
	}
}

func TestFlattenClosure(t *testing.T) {
	paths := []Path{
		// Explicitly closed.
		{MoveTo{bezier.Pt(0, 0)}, LineTo{bezier.Pt(5, 0)}, LineTo{bezier.Pt(5, 5)}, Close{}},
		// Implicitly closed by running out of segments.
		{MoveTo{bezier.Pt(0, 0)}, LineTo{bezier.Pt(5, 0)}, LineTo{bezier.Pt(5, 5)}},
		// Ends within the snap distance of the start.
		{MoveTo{bezier.Pt(0, 0)}, LineTo{bezier.Pt(5, 0)}, LineTo{bezier.Pt(0.05, 0.05)}},
		// Two subpaths.
		{
			MoveTo{bezier.Pt(0, 0)}, LineTo{bezier.Pt(4, 0)}, LineTo{bezier.Pt(4, 4)},
			MoveTo{bezier.Pt(1, 1)}, LineTo{bezier.Pt(2, 1)}, LineTo{bezier.Pt(2, 2)},
		},
	}
	for i, p := range paths {
		for j, c := range Flatten(p) {
			if len(c) < 2 {
				t.Errorf("path %d contour %d: only %d points", i, j, len(c))
				continue
			}
			if first, last := c[0], c[len(c)-1]; first != last {
				t.Errorf("path %d contour %d: first %v != last %v", i, j, first, last)
			}
		}
	}
}

func TestFlattenContourOrder(t *testing.T) {
	// Outer square then inner hole, as a glyph like "O" produces.
	p := Path{
		MoveTo{bezier.Pt(0, 0)}, LineTo{bezier.Pt(10, 0)}, LineTo{bezier.Pt(10, 10)}, LineTo{bezier.Pt(0, 10)}, Close{},
		MoveTo{bezier.Pt(3, 3)}, LineTo{bezier.Pt(7, 3)}, LineTo{bezier.Pt(7, 7)}, LineTo{bezier.Pt(3, 7)}, Close{},
	}
	contours := Flatten(p)
	if len(contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(contours))
	}
	if contours[0][0] != bezier.Pt(0, 0) || contours[1][0] != bezier.Pt(3, 3) {
		t.Errorf("contours out of source order: %v, %v", contours[0][0], contours[1][0])
	}
}

func TestFlattenCubicSteps(t *testing.T) {
	end := bezier.Pt(30, 0)
	p := Path{
		MoveTo{bezier.Pt(0, 0)},
		CubicTo{bezier.Pt(10, 20), bezier.Pt(20, 20), end},
	}
	c := Flatten(p)[0]
	// Start point, CubicSteps samples, then the appended closing
	// point.
	if want := 1 + CubicSteps + 1; len(c) != want {
		t.Fatalf("got %d points, want %d", len(c), want)
	}
	if got := c[1+CubicSteps-1]; got != end {
		t.Errorf("final sample %v, want curve end %v", got, end)
	}
	// No duplicated point where the curve takes over from the move.
	if c[0] == c[1] {
		t.Errorf("t=0 sample duplicated start point %v", c[0])
	}
}

func TestFlattenQuadSteps(t *testing.T) {
	p := Path{
		MoveTo{bezier.Pt(0, 0)},
		QuadTo{bezier.Pt(5, 10), bezier.Pt(10, 0)},
		Close{},
	}
	c := Flatten(p)[0]
	if want := 1 + QuadSteps + 1; len(c) != want {
		t.Fatalf("got %d points, want %d", len(c), want)
	}
	// QuadSteps is even, so the t=0.5 sample lands in the contour:
	// the curve apex at (5, 5).
	if got := c[QuadSteps/2]; got != bezier.Pt(5, 5) {
		t.Errorf("midpoint sample = %v, want (5, 5)", got)
	}
}

func TestFlattenDropsNonFinite(t *testing.T) {
	p := Path{
		MoveTo{bezier.Pt(0, 0)},
		LineTo{bezier.Pt(math.NaN(), 1)},
		LineTo{bezier.Pt(6, 0)},
		LineTo{bezier.Pt(6, 6)},
		Close{},
	}
	contours := Flatten(p)
	if len(contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(contours))
	}
	for _, pt := range contours[0] {
		if !pt.Finite() {
			t.Errorf("non-finite point survived flattening: %v", pt)
		}
	}
}

func TestFlattenDegenerate(t *testing.T) {
	paths := []Path{
		nil,
		{MoveTo{bezier.Pt(1, 1)}},
		{MoveTo{bezier.Pt(1, 1)}, Close{}},
		{MoveTo{bezier.Pt(math.Inf(1), 0)}, LineTo{bezier.Pt(math.NaN(), 2)}},
	}
	for i, p := range paths {
		if contours := Flatten(p); len(contours) != 0 {
			t.Errorf("path %d: got %d contours, want none", i, len(contours))
		}
	}
}
