// Package outline represents glyph outlines as a sequence of drawing
// commands and flattens them into closed polyline contours.
package outline

import "github.com/robdobsn/WordClockGrace/bezier"

// Segment is a single drawing command of a glyph outline.
type Segment interface {
	isSegment()
}

// MoveTo starts a new contour at a point.
type MoveTo struct {
	Point bezier.Point
}

func (MoveTo) isSegment() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point bezier.Point
}

func (LineTo) isSegment() {}

// QuadTo draws a quadratic Bézier curve.
type QuadTo struct {
	Control bezier.Point
	Point   bezier.Point
}

func (QuadTo) isSegment() {}

// CubicTo draws a cubic Bézier curve.
type CubicTo struct {
	Control1 bezier.Point
	Control2 bezier.Point
	Point    bezier.Point
}

func (CubicTo) isSegment() {}

// Close seals the current contour.
type Close struct{}

func (Close) isSegment() {}

// Path is a glyph outline in y-up coordinates at some point size.
type Path []Segment

// Contour is the flattened form of one sub-path. A sealed contour's
// first and last point are identical.
type Contour []bezier.Point

// Bounds returns the bounding box of the contour's finite points.
func (c Contour) Bounds() bezier.Bounds {
	b := bezier.EmptyBounds()
	for _, p := range c {
		if p.Finite() {
			b = b.Extend(p)
		}
	}
	return b
}

// Bounds returns the bounding box of all finite points across contours.
func Bounds(contours []Contour) bezier.Bounds {
	b := bezier.EmptyBounds()
	for _, c := range contours {
		b = b.Union(c.Bounds())
	}
	return b
}
