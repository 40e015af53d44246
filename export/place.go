// Package export turns a letter grid into a DXF document. Each cell's
// glyph is fitted to a target height, centered or left-aligned, stretched
// horizontally and emitted as closed polylines in millimeters.
package export

import (
	"unicode"

	"github.com/robdobsn/WordClockGrace/font"
	"github.com/robdobsn/WordClockGrace/outline"
)

// referenceSize is the point size glyphs are measured at before fitting.
// Measuring large and scaling down keeps the 1/64 glyph quantization
// out of the fitted height.
const referenceSize = 1000

// minMeasuredHeight guards the fit division against glyphs that
// flatten to a (near) zero-height box.
const minMeasuredHeight = 1e-6

// maxFitSize rejects fits that would blow past the fixed-point range
// of the glyph loader.
const maxFitSize = 1e6

// minStretch rejects stretch factors too small to divide by.
const minStretch = 1e-6

// CellSpec describes the box a single glyph is fitted into. Width and
// Height are in millimeters. Padding is the fraction of the height
// reserved above and below the glyph, so the target glyph height is
// Height*(1-2*Padding).
type CellSpec struct {
	Width   float64
	Height  float64
	Padding float64

	// Stretch scales x coordinates after fitting. 1 leaves the
	// glyph's natural aspect.
	Stretch float64

	// StretchOverride multiplies Stretch per character, keyed by the
	// upper-case rune. See DefaultStretchOverride.
	StretchOverride map[rune]float64

	// Center positions the glyph's bounding box at the horizontal
	// middle of the cell. Otherwise the left edge of the box sits on
	// the left edge of the cell.
	Center bool
}

// DefaultStretchOverride narrows W, whose natural width overflows the
// cell once a global widening stretch is applied.
func DefaultStretchOverride() map[rune]float64 {
	return map[rune]float64{'W': 0.7}
}

// EffectiveStretch returns the stretch for ch including any per-character
// override. Override keys are matched case-insensitively.
func (s CellSpec) EffectiveStretch(ch rune) float64 {
	stretch := s.Stretch
	if m, ok := s.StretchOverride[unicode.ToUpper(ch)]; ok {
		stretch *= m
	}
	return stretch
}

// Placement is the fitted size and translation for one glyph. Document
// x coordinates are derived as cellX + (x+OffsetX)*Stretch and y as
// cellY + y + OffsetY, with x, y taken from the outline at Size.
type Placement struct {
	Size    float64
	OffsetX float64
	OffsetY float64
	Stretch float64
}

// PlaceGlyph fits ch into spec. It measures the glyph at a reference
// size, scales so the outline height matches the padded cell height,
// and re-extracts at the fitted size. The returned path is the fitted
// outline; ok is false when the glyph is missing, blank or cannot be
// fitted.
func PlaceGlyph(face *font.Face, ch rune, spec CellSpec) (Placement, outline.Path, bool) {
	raw, ok := face.Outline(ch, referenceSize)
	if !ok {
		return Placement{}, nil, false
	}
	b := outline.Bounds(outline.Flatten(raw))
	if b.Empty() {
		return Placement{}, nil, false
	}
	h := b.Dy()
	if h < minMeasuredHeight {
		h = minMeasuredHeight
	}
	target := spec.Height * (1 - 2*spec.Padding)
	if target <= 0 {
		return Placement{}, nil, false
	}
	size := target * referenceSize / h
	if size > maxFitSize {
		return Placement{}, nil, false
	}
	stretch := spec.EffectiveStretch(ch)
	if stretch < minStretch {
		return Placement{}, nil, false
	}

	fitted, ok := face.Outline(ch, size)
	if !ok {
		return Placement{}, nil, false
	}
	fb := outline.Bounds(outline.Flatten(fitted))
	if fb.Empty() {
		return Placement{}, nil, false
	}

	p := Placement{Size: size, Stretch: stretch}
	if spec.Center {
		// The offset is applied before the stretch, so the midpoint
		// target must be divided back into pre-stretch space.
		p.OffsetX = spec.Width/(2*stretch) - (fb.Min.X+fb.Max.X)/2
	} else {
		p.OffsetX = -fb.Min.X
	}
	p.OffsetY = spec.Height/2 - (fb.Min.Y+fb.Max.Y)/2
	return p, fitted, true
}
