// Package dxf writes DXF documents containing the line work of an
// exported clock face. Only the entity types the clock needs are
// supported: LWPOLYLINE for letter contours, LINE for grid lines and
// borders, TEXT for the non-vector letter mode.
package dxf

import (
	"math"
	"strings"
)

// Mode selects the document wrapper.
type Mode int

const (
	// Minimal wraps the entities in the bare section markers. Most
	// hobby CAM tools accept this where they choke on full
	// documents, so it is the default.
	Minimal Mode = iota
	// Full adds the header, the table stubs strict consumers
	// insist on, and the block and object sections.
	Full
)

// Point is a 2D document coordinate in millimeters, y growing
// upward.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// handleSeed is the first entity handle. Handles below it are
// reserved for structural records in full documents.
const handleSeed = 0x100

// Document accumulates entities and serializes them in one of the
// two wrapper modes. Each added entity is assigned the next handle
// from a single counter, so handles are unique and strictly
// ascending in insertion order.
type Document struct {
	mode     Mode
	lineOnly bool
	next     uint64
	entities []entity
}

// NewDocument returns an empty document.
func NewDocument(mode Mode) *Document {
	return &Document{mode: mode, next: handleSeed}
}

// NewLineDocument returns a document that stores every polyline as a
// ring of discrete LINE entities, for consumers that mishandle
// LWPOLYLINE.
func NewLineDocument(mode Mode) *Document {
	return &Document{mode: mode, lineOnly: true, next: handleSeed}
}

// Len reports the number of entities added so far.
func (d *Document) Len() int {
	return len(d.entities)
}

// Polylines returns the points of every polyline entity in insertion
// order.
func (d *Document) Polylines() [][]Point {
	var pls [][]Point
	for _, e := range d.entities {
		if p, ok := e.(*polyline); ok {
			pls = append(pls, p.points)
		}
	}
	return pls
}

// Lines returns the endpoints of every line entity in insertion order.
func (d *Document) Lines() [][2]Point {
	var ls [][2]Point
	for _, e := range d.entities {
		if l, ok := e.(*line); ok {
			ls = append(ls, [2]Point{l.from, l.to})
		}
	}
	return ls
}

func (d *Document) handle() uint64 {
	h := d.next
	d.next++
	return h
}

// AddPolyline adds a polyline entity. Non-finite points are dropped;
// the polyline is rejected when fewer than 2 points remain. In a
// line document the points become individual LINE entities instead,
// walking the list pairwise plus the wrap-around segment of a closed
// polyline.
func (d *Document) AddPolyline(points []Point, closed bool) bool {
	pts := make([]Point, 0, len(points))
	for _, p := range points {
		if p.finite() {
			pts = append(pts, p)
		}
	}
	if len(pts) < 2 {
		return false
	}
	if d.lineOnly {
		return d.explode(pts, closed)
	}
	d.entities = append(d.entities, &polyline{
		handle: d.handle(),
		points: pts,
		closed: closed,
	})
	return true
}

func (d *Document) explode(pts []Point, closed bool) bool {
	added := false
	for i := 0; i+1 < len(pts); i++ {
		added = d.AddLine(pts[i], pts[i+1]) || added
	}
	if closed && pts[len(pts)-1] != pts[0] {
		added = d.AddLine(pts[len(pts)-1], pts[0]) || added
	}
	return added
}

// AddLine adds a line entity. Lines with non-finite endpoints are
// rejected.
func (d *Document) AddLine(from, to Point) bool {
	if !from.finite() || !to.finite() {
		return false
	}
	d.entities = append(d.entities, &line{
		handle: d.handle(),
		from:   from,
		to:     to,
	})
	return true
}

// AddText adds a text entity at the given insertion point. Text with
// a non-finite position, a non-positive height or no usable content
// is rejected. Line breaks would corrupt the tag stream.
func (d *Document) AddText(at Point, height float64, value string) bool {
	if !at.finite() || math.IsNaN(height) || math.IsInf(height, 0) || height <= 0 ||
		value == "" || strings.ContainsAny(value, "\r\n") {
		return false
	}
	d.entities = append(d.entities, &text{
		handle: d.handle(),
		at:     at,
		height: height,
		value:  value,
	})
	return true
}

type entity interface {
	encode(tw *tagWriter)
}

type polyline struct {
	handle uint64
	points []Point
	closed bool
}

type line struct {
	handle   uint64
	from, to Point
}

type text struct {
	handle uint64
	at     Point
	height float64
	value  string
}
