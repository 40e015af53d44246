package font

import (
	"github.com/robdobsn/WordClockGrace/bezier"
	"github.com/robdobsn/WordClockGrace/outline"
)

// FallbackName is the name of the synthetic face.
const FallbackName = "fallback"

// Fallback returns the synthetic face used when no real font loads.
func Fallback() *Face {
	return &Face{Name: FallbackName}
}

// notchOutline is the fallback glyph shape: a rectangle with a
// rectangular notch cut out of the top right corner, so that it reads
// as a placeholder rather than a real letter. Proportions follow a
// typical uppercase glyph: 0.6 wide and 0.7 tall at a given size,
// baseline at y=0.
func notchOutline(size float64) outline.Path {
	w := 0.6 * size
	h := 0.7 * size
	nw := 0.2 * size
	nh := 0.2 * size
	return outline.Path{
		outline.MoveTo{Point: bezier.Pt(0, 0)},
		outline.LineTo{Point: bezier.Pt(w, 0)},
		outline.LineTo{Point: bezier.Pt(w, h-nh)},
		outline.LineTo{Point: bezier.Pt(w-nw, h-nh)},
		outline.LineTo{Point: bezier.Pt(w-nw, h)},
		outline.LineTo{Point: bezier.Pt(0, h)},
		outline.Close{},
	}
}
