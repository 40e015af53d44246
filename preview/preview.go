// Package preview rasterizes an exported document into an image for a
// quick look before any material is cut. Polylines and lines are
// stroked; TEXT entities are not drawn.
package preview

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/robdobsn/WordClockGrace/dxf"
)

var (
	ErrNoDocument = errors.New("preview: nil document")
	ErrBadExtent  = errors.New("preview: non-positive extent")
)

// Box is a highlighted region in document millimeters, y growing
// upward.
type Box struct {
	X0, Y0, X1, Y1 float64
}

// Options configure rendering. The zero value renders black strokes on
// white at 10 pixels per millimeter.
type Options struct {
	// PixelsPerMM scales document millimeters to pixels.
	PixelsPerMM float64
	// StrokeWidth is the stroke width in millimeters.
	StrokeWidth float64

	Background color.Color
	Stroke     color.Color

	// Highlights are drawn as outlined boxes underneath the line work,
	// for marking the cells of a phrase.
	Highlights []Box
	Highlight  color.Color
}

func (o Options) withDefaults() Options {
	if o.PixelsPerMM <= 0 {
		o.PixelsPerMM = 10
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = 0.3
	}
	if o.Background == nil {
		o.Background = color.White
	}
	if o.Stroke == nil {
		o.Stroke = color.Black
	}
	if o.Highlight == nil {
		o.Highlight = color.NRGBA{R: 0xe0, G: 0x30, B: 0x30, A: 0xff}
	}
	return o
}

// stroker adapts a dasher to document coordinates. The document y
// axis grows upward, the image y axis downward.
type stroker struct {
	dasher *rasterx.Dasher
	ppmm   float64
	height float64
}

func newStroker(img draw.Image, width, height int, o Options, extentH float64, c color.Color) *stroker {
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	stroke := o.StrokeWidth * o.PixelsPerMM * 64
	dasher.SetStroke(fixed.Int26_6(stroke), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	dasher.SetColor(c)
	return &stroker{dasher: dasher, ppmm: o.PixelsPerMM, height: extentH}
}

func (s *stroker) fixed(p dxf.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X*s.ppmm, (s.height-p.Y)*s.ppmm)
}

func (s *stroker) polyline(pts []dxf.Point) {
	if len(pts) < 2 {
		return
	}
	s.dasher.Start(s.fixed(pts[0]))
	for _, p := range pts[1:] {
		s.dasher.Line(s.fixed(p))
	}
	s.dasher.Stop(false)
}

func (s *stroker) draw() {
	s.dasher.Draw()
}

// Render draws doc onto a new image covering w by h millimeters.
func Render(doc *dxf.Document, w, h float64, opts Options) (*image.NRGBA, error) {
	if doc == nil {
		return nil, ErrNoDocument
	}
	if w <= 0 || h <= 0 {
		return nil, ErrBadExtent
	}
	opts = opts.withDefaults()

	width := int(math.Ceil(w * opts.PixelsPerMM))
	height := int(math.Ceil(h * opts.PixelsPerMM))
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	if len(opts.Highlights) > 0 {
		hs := newStroker(img, width, height, opts, h, opts.Highlight)
		for _, b := range opts.Highlights {
			hs.polyline([]dxf.Point{
				dxf.Pt(b.X0, b.Y0),
				dxf.Pt(b.X1, b.Y0),
				dxf.Pt(b.X1, b.Y1),
				dxf.Pt(b.X0, b.Y1),
				dxf.Pt(b.X0, b.Y0),
			})
		}
		hs.draw()
	}

	st := newStroker(img, width, height, opts, h, opts.Stroke)
	for _, pts := range doc.Polylines() {
		st.polyline(pts)
	}
	for _, l := range doc.Lines() {
		st.polyline(l[:])
	}
	st.draw()
	return img, nil
}

// Encode renders doc and writes it as a PNG.
func Encode(wr io.Writer, doc *dxf.Document, w, h float64, opts Options) error {
	img, err := Render(doc, w, h, opts)
	if err != nil {
		return err
	}
	return png.Encode(wr, img)
}
