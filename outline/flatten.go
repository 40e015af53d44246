package outline

import "github.com/robdobsn/WordClockGrace/bezier"

const (
	// CubicSteps and QuadSteps are the fixed subdivision counts for
	// Bézier segments. More steps give smoother curves and larger
	// output.
	CubicSteps = 10
	QuadSteps  = 6

	// closeTolerance is the distance under which a contour's last
	// point snaps onto its first instead of appending a closing
	// point.
	closeTolerance = 0.1
)

// Flatten converts p into closed contours. Curves are sampled at
// fixed parameter steps, a MoveTo seals the running contour and
// starts the next one, and every sealed contour ends exactly on its
// first point. Non-finite samples are dropped. Contours keep the
// order they appear in p, outer shape first.
func Flatten(p Path) []Contour {
	return FlattenSteps(p, CubicSteps, QuadSteps)
}

// FlattenSteps is Flatten with explicit subdivision counts.
func FlattenSteps(p Path, cubicSteps, quadSteps int) []Contour {
	var (
		contours []Contour
		cur      Contour
		pos      bezier.Point
	)
	seal := func() {
		if c := sealContour(cur); c != nil {
			contours = append(contours, c)
		}
		cur = nil
	}
	for _, seg := range p {
		switch s := seg.(type) {
		case MoveTo:
			seal()
			cur = append(cur, s.Point)
			pos = s.Point
		case LineTo:
			cur = append(cur, s.Point)
			pos = s.Point
		case QuadTo:
			q := bezier.Quad{C0: pos, C1: s.Control, C2: s.Point}
			// The sample at t=0 duplicates the current point.
			for i := 1; i <= quadSteps; i++ {
				cur = append(cur, q.Eval(float64(i)/float64(quadSteps)))
			}
			pos = s.Point
		case CubicTo:
			c := bezier.Cubic{C0: pos, C1: s.Control1, C2: s.Control2, C3: s.Point}
			for i := 1; i <= cubicSteps; i++ {
				cur = append(cur, c.Eval(float64(i)/float64(cubicSteps)))
			}
			pos = s.Point
		case Close:
			seal()
		}
	}
	seal()
	return contours
}

// sealContour drops non-finite points and forces the contour to end
// exactly on its first point. Anything shorter than two distinct
// points is dropped.
func sealContour(c Contour) Contour {
	pts := c[:0:0]
	for _, p := range c {
		if p.Finite() {
			pts = append(pts, p)
		}
	}
	if len(pts) < 2 {
		return nil
	}
	first, last := pts[0], pts[len(pts)-1]
	if first.Dist(last) > closeTolerance {
		pts = append(pts, first)
	} else {
		pts[len(pts)-1] = first
	}
	return pts
}
