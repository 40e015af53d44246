package export

import (
	"errors"
	"unicode"

	"github.com/robdobsn/WordClockGrace/dxf"
	"github.com/robdobsn/WordClockGrace/font"
	"github.com/robdobsn/WordClockGrace/layout"
	"github.com/robdobsn/WordClockGrace/outline"
)

var (
	ErrNoGrid       = errors.New("export: nil grid")
	ErrBadSpacing   = errors.New("export: cell spacing must be positive")
	ErrBadPadding   = errors.New("export: padding must be in [0, 0.5)")
	ErrBadTolerance = errors.New("export: negative tolerance")
)

// DefaultTolerance is the polyline simplification tolerance applied
// when Options.Tolerance is zero, in millimeters.
const DefaultTolerance = 0.05

// textAspect estimates the width of a TEXT entity from its height.
// TEXT anchors at its bottom left and is not shaped, so centering can
// only approximate.
const textAspect = 0.6

// Options configures an export. The zero value is not usable; SpacingX
// and SpacingY must be set. Unset cell dimensions default to the
// spacing, unset stretch to 1 and a nil stretch override table to
// DefaultStretchOverride.
type Options struct {
	Cell CellSpec

	// SpacingX and SpacingY are the cell pitch in millimeters.
	SpacingX float64
	SpacingY float64

	// Margin is the gap between the outer cell edges and the border,
	// in millimeters.
	Margin float64

	// Font names the face to render. Empty selects the source default.
	Font string
	// Source resolves font faces. Nil uses a shared process-wide
	// source.
	Source *font.Source

	// Tolerance is the simplification tolerance in millimeters. Zero
	// selects DefaultTolerance.
	Tolerance float64

	// Mode selects the DXF wrapper.
	Mode dxf.Mode
	// Lines stores letter contours as rings of discrete LINE entities
	// instead of polylines.
	Lines bool
	// Text emits TEXT entities instead of vector outlines. Stretch
	// does not apply in this mode.
	Text bool

	// GridLines draws the interior cell boundaries.
	GridLines bool
	// Border draws the outer frame around the cell area.
	Border bool
}

var defaultSource = &font.Source{}

func (o Options) withDefaults() Options {
	if o.Cell.Width == 0 {
		o.Cell.Width = o.SpacingX
	}
	if o.Cell.Height == 0 {
		o.Cell.Height = o.SpacingY
	}
	if o.Cell.Stretch == 0 {
		o.Cell.Stretch = 1
	}
	if o.Cell.StretchOverride == nil {
		o.Cell.StretchOverride = DefaultStretchOverride()
	}
	if o.Font == "" {
		o.Font = font.DefaultFace
	}
	if o.Source == nil {
		o.Source = defaultSource
	}
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	return o
}

// Extent returns the overall document width and height in millimeters
// for a face with the given cell counts.
func (o Options) Extent(rows, cols int) (w, h float64) {
	return 2*o.Margin + float64(cols)*o.SpacingX,
		2*o.Margin + float64(rows)*o.SpacingY
}

// CellBox returns the document-space box of the cell at row, col.
// Row 0 is the top row of the face; the document y axis grows upward.
func (o Options) CellBox(rows, row, col int) (x0, y0, x1, y1 float64) {
	x0 = o.Margin + float64(col)*o.SpacingX
	y0 = o.Margin + float64(rows-1-row)*o.SpacingY
	return x0, y0, x0 + o.SpacingX, y0 + o.SpacingY
}

// Export renders the grid into a DXF document. Letters are emitted in
// reading order, then grid lines, then the border. Cells whose glyph
// is missing or degenerate are logged and skipped; the export itself
// only fails on unusable options.
func Export(grid *layout.Grid, opts Options) (*dxf.Document, error) {
	if grid == nil {
		return nil, ErrNoGrid
	}
	if opts.SpacingX <= 0 || opts.SpacingY <= 0 {
		return nil, ErrBadSpacing
	}
	if opts.Cell.Padding < 0 || opts.Cell.Padding >= 0.5 {
		return nil, ErrBadPadding
	}
	if opts.Tolerance < 0 {
		return nil, ErrBadTolerance
	}
	opts = opts.withDefaults()

	var doc *dxf.Document
	if opts.Lines {
		doc = dxf.NewLineDocument(opts.Mode)
	} else {
		doc = dxf.NewDocument(opts.Mode)
	}
	face := opts.Source.Load(opts.Font)
	if face.Name != opts.Font {
		Logger().Warn("requested font unavailable",
			"requested", opts.Font, "loaded", face.Name)
	}

	rows, cols := grid.Rows(), grid.Cols()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			ch := grid.At(row, col)
			if unicode.IsSpace(ch) {
				continue
			}
			x, y, _, _ := opts.CellBox(rows, row, col)
			// The glyph box floats centered within the cell pitch
			// when its dimensions differ from the spacing.
			x += (opts.SpacingX - opts.Cell.Width) / 2
			y += (opts.SpacingY - opts.Cell.Height) / 2
			if opts.Text {
				opts.emitText(doc, ch, row, col, x, y)
			} else {
				opts.emitGlyph(doc, face, ch, row, col, x, y)
			}
		}
	}
	if opts.GridLines {
		opts.addGridLines(doc, rows, cols)
	}
	if opts.Border {
		opts.addBorder(doc, rows, cols)
	}
	return doc, nil
}

func (o Options) emitGlyph(doc *dxf.Document, face *font.Face, ch rune, row, col int, x, y float64) {
	pl, path, ok := PlaceGlyph(face, ch, o.Cell)
	if !ok {
		Logger().Warn("skipping cell, glyph cannot be placed",
			"char", string(ch), "row", row, "col", col)
		return
	}
	added := false
	for _, c := range outline.Flatten(path) {
		s := outline.SimplifyContour(c, o.Tolerance)
		if s == nil {
			continue
		}
		pts := make([]dxf.Point, len(s))
		for i, p := range s {
			pts[i] = dxf.Pt(x+(p.X+pl.OffsetX)*pl.Stretch, y+p.Y+pl.OffsetY)
		}
		added = doc.AddPolyline(pts, true) || added
	}
	if !added {
		Logger().Warn("skipping cell, no usable contours",
			"char", string(ch), "row", row, "col", col)
		return
	}
	Logger().Debug("placed glyph",
		"char", string(ch), "row", row, "col", col, "size", pl.Size)
}

func (o Options) emitText(doc *dxf.Document, ch rune, row, col int, x, y float64) {
	h := o.Cell.Height * (1 - 2*o.Cell.Padding)
	if h <= 0 {
		Logger().Warn("skipping cell, no text height",
			"char", string(ch), "row", row, "col", col)
		return
	}
	tx := x
	if o.Cell.Center {
		tx += (o.Cell.Width - textAspect*h) / 2
	}
	if !doc.AddText(dxf.Pt(tx, y+(o.Cell.Height-h)/2), h, string(ch)) {
		Logger().Warn("skipping cell, text rejected",
			"char", string(ch), "row", row, "col", col)
	}
}

func (o Options) addGridLines(doc *dxf.Document, rows, cols int) {
	x0 := o.Margin
	x1 := o.Margin + float64(cols)*o.SpacingX
	y0 := o.Margin
	y1 := o.Margin + float64(rows)*o.SpacingY
	for r := 1; r < rows; r++ {
		y := o.Margin + float64(r)*o.SpacingY
		doc.AddLine(dxf.Pt(x0, y), dxf.Pt(x1, y))
	}
	for c := 1; c < cols; c++ {
		x := o.Margin + float64(c)*o.SpacingX
		doc.AddLine(dxf.Pt(x, y0), dxf.Pt(x, y1))
	}
}

func (o Options) addBorder(doc *dxf.Document, rows, cols int) {
	x0, y0 := o.Margin, o.Margin
	x1 := o.Margin + float64(cols)*o.SpacingX
	y1 := o.Margin + float64(rows)*o.SpacingY
	doc.AddLine(dxf.Pt(x0, y0), dxf.Pt(x1, y0))
	doc.AddLine(dxf.Pt(x1, y0), dxf.Pt(x1, y1))
	doc.AddLine(dxf.Pt(x1, y1), dxf.Pt(x0, y1))
	doc.AddLine(dxf.Pt(x0, y1), dxf.Pt(x0, y0))
}
