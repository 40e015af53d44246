// Package bezier provides float64 points and quadratic and cubic
// Bézier curves evaluated in Bernstein form.
package bezier

import "math"

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) Add(p2 Point) Point {
	return Point{
		X: p.X + p2.X,
		Y: p.Y + p2.Y,
	}
}

func (p Point) Sub(p2 Point) Point {
	return Point{
		X: p.X - p2.X,
		Y: p.Y - p2.Y,
	}
}

func (p Point) Mul(s float64) Point {
	return Point{
		X: p.X * s,
		Y: p.Y * s,
	}
}

// Dist is the Euclidean distance between p and p2.
func (p Point) Dist(p2 Point) float64 {
	return math.Hypot(p2.X-p.X, p2.Y-p.Y)
}

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Lerp interpolates linearly between a and b at t.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Quad is a quadratic Bézier with control points C0, C1, C2.
type Quad struct {
	C0, C1, C2 Point
}

// Eval samples the curve at t in [0;1].
func (q Quad) Eval(t float64) Point {
	mt := 1 - t
	a := mt * mt
	b := 2 * mt * t
	c := t * t
	return Point{
		X: a*q.C0.X + b*q.C1.X + c*q.C2.X,
		Y: a*q.C0.Y + b*q.C1.Y + c*q.C2.Y,
	}
}

// Cubic is a cubic Bézier with control points C0, C1, C2, C3.
type Cubic struct {
	C0, C1, C2, C3 Point
}

// Eval samples the curve at t in [0;1].
func (c Cubic) Eval(t float64) Point {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	a := mt2 * mt
	b := 3 * mt2 * t
	d := 3 * mt * t2
	e := t2 * t
	return Point{
		X: a*c.C0.X + b*c.C1.X + d*c.C2.X + e*c.C3.X,
		Y: a*c.C0.Y + b*c.C1.Y + d*c.C2.Y + e*c.C3.Y,
	}
}

// Bounds is an axis-aligned bounding box with both bounds inclusive.
type Bounds struct {
	Min, Max Point
}

// EmptyBounds returns bounds that contain no points. Extending them
// with a first point yields that point's bounds.
func EmptyBounds() Bounds {
	return Bounds{
		Min: Pt(math.Inf(1), math.Inf(1)),
		Max: Pt(math.Inf(-1), math.Inf(-1)),
	}
}

func (b Bounds) Empty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

func (b Bounds) Union(b2 Bounds) Bounds {
	return Bounds{
		Min: Point{
			X: min(b.Min.X, b2.Min.X),
			Y: min(b.Min.Y, b2.Min.Y),
		},
		Max: Point{
			X: max(b.Max.X, b2.Max.X),
			Y: max(b.Max.Y, b2.Max.Y),
		},
	}
}

// Extend grows b to contain p.
func (b Bounds) Extend(p Point) Bounds {
	return Bounds{
		Min: Point{
			X: min(b.Min.X, p.X),
			Y: min(b.Min.Y, p.Y),
		},
		Max: Point{
			X: max(b.Max.X, p.X),
			Y: max(b.Max.Y, p.Y),
		},
	}
}

func (b Bounds) Dx() float64 {
	return b.Max.X - b.Min.X
}

func (b Bounds) Dy() float64 {
	return b.Max.Y - b.Min.Y
}
