// package font loads OpenType fonts and extracts single-glyph
// outlines for the letter pipeline.
package font

import (
	"sync"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/robdobsn/WordClockGrace/bezier"
	"github.com/robdobsn/WordClockGrace/outline"
)

// Face is a loaded font. A nil underlying font is the synthetic
// fallback face, which renders every character as a fixed notched
// rectangle.
type Face struct {
	Name string

	font *sfnt.Font

	mu  sync.Mutex
	buf sfnt.Buffer
}

// Outline extracts the outline of ch at the given point size, in y-up
// coordinates with the baseline at y=0. It returns false when the
// face has no glyph mapped for ch; the caller skips such characters.
func (f *Face) Outline(ch rune, size float64) (outline.Path, bool) {
	if f.font == nil {
		return notchOutline(size), true
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	gidx, err := f.font.GlyphIndex(&f.buf, ch)
	if err != nil || gidx == 0 {
		return nil, false
	}
	ppem := fixed.Int26_6(size * 64)
	segs, err := f.font.LoadGlyph(&f.buf, gidx, ppem, nil)
	if err != nil {
		return nil, false
	}
	p := make(outline.Path, 0, len(segs))
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			p = append(p, outline.MoveTo{Point: glyphPt(seg.Args[0])})
		case sfnt.SegmentOpLineTo:
			p = append(p, outline.LineTo{Point: glyphPt(seg.Args[0])})
		case sfnt.SegmentOpQuadTo:
			p = append(p, outline.QuadTo{
				Control: glyphPt(seg.Args[0]),
				Point:   glyphPt(seg.Args[1]),
			})
		case sfnt.SegmentOpCubeTo:
			p = append(p, outline.CubicTo{
				Control1: glyphPt(seg.Args[0]),
				Control2: glyphPt(seg.Args[1]),
				Point:    glyphPt(seg.Args[2]),
			})
		}
	}
	return p, true
}

// glyphPt converts a glyph coordinate. Loaded glyphs have y growing
// downward; outlines are y-up.
func glyphPt(p fixed.Point26_6) bezier.Point {
	return bezier.Pt(float64(p.X)/64, -float64(p.Y)/64)
}
