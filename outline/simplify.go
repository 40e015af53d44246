package outline

import (
	"math"

	"github.com/robdobsn/WordClockGrace/bezier"
)

// RemoveCollinear drops interior points that deviate at most
// tolerance from the line through the previous kept point and the
// next point. The first and last points are always kept.
func RemoveCollinear(points []bezier.Point, tolerance float64) []bezier.Point {
	if len(points) <= 2 {
		return points
	}
	kept := make([]bezier.Point, 0, len(points))
	kept = append(kept, points[0])
	for i := 1; i < len(points)-1; i++ {
		prev := kept[len(kept)-1]
		if perpDist(points[i], prev, points[i+1]) > tolerance {
			kept = append(kept, points[i])
		}
	}
	return append(kept, points[len(points)-1])
}

// Simplify reduces points with Ramer-Douglas-Peucker: spans whose
// interior stays within tolerance of the chord collapse to their
// endpoints. No removed point deviates more than tolerance from the
// result.
func Simplify(points []bezier.Point, tolerance float64) []bezier.Point {
	if len(points) <= 2 {
		return points
	}
	first, last := points[0], points[len(points)-1]
	maxDist, maxIdx := 0.0, 0
	for i := 1; i < len(points)-1; i++ {
		if d := perpDist(points[i], first, last); d > maxDist {
			maxDist, maxIdx = d, i
		}
	}
	if maxDist <= tolerance {
		return []bezier.Point{first, last}
	}
	left := Simplify(points[:maxIdx+1], tolerance)
	right := Simplify(points[maxIdx:], tolerance)
	merged := make([]bezier.Point, 0, len(left)+len(right)-1)
	merged = append(merged, left[:len(left)-1]...)
	return append(merged, right...)
}

// SimplifyContour filters non-finite points, removes collinear runs
// and applies Ramer-Douglas-Peucker, preserving closure. Contours
// reduced below 2 points come back nil. A non-finite tolerance leaves
// the filtered points unsimplified.
func SimplifyContour(c Contour, tolerance float64) Contour {
	pts := make([]bezier.Point, 0, len(c))
	for _, p := range c {
		if p.Finite() {
			pts = append(pts, p)
		}
	}
	if len(pts) < 2 {
		return nil
	}
	if math.IsNaN(tolerance) || math.IsInf(tolerance, 0) {
		return Contour(pts)
	}
	return Contour(Simplify(RemoveCollinear(pts, tolerance), tolerance))
}

// perpDist is the perpendicular distance from p to the line through a
// and b, or the distance to a when the chord is degenerate.
func perpDist(p, a, b bezier.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	if dx == 0 && dy == 0 {
		return p.Dist(a)
	}
	return math.Abs(dx*(p.Y-a.Y)-dy*(p.X-a.X)) / math.Hypot(dx, dy)
}
