package preview

import (
	"bytes"
	"errors"
	"testing"

	"github.com/robdobsn/WordClockGrace/dxf"
)

func squareDoc(t *testing.T) *dxf.Document {
	t.Helper()
	doc := dxf.NewDocument(dxf.Minimal)
	ok := doc.AddPolyline([]dxf.Point{
		dxf.Pt(10, 10),
		dxf.Pt(30, 10),
		dxf.Pt(30, 30),
		dxf.Pt(10, 30),
		dxf.Pt(10, 10),
	}, true)
	if !ok {
		t.Fatal("AddPolyline failed")
	}
	return doc
}

func TestRenderStrokes(t *testing.T) {
	img, err := Render(squareDoc(t), 40, 40, Options{
		PixelsPerMM: 2,
		StrokeWidth: 2,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := img.Bounds().Dx(); got != 80 {
		t.Fatalf("image width = %d, want 80", got)
	}
	if got := img.Bounds().Dy(); got != 80 {
		t.Fatalf("image height = %d, want 80", got)
	}
	// The bottom edge runs at y=10mm, which lands at image row
	// (40-10)*2 = 60 after the flip.
	if c := img.NRGBAAt(40, 60); c.R > 100 {
		t.Errorf("edge pixel = %v, want stroked dark", c)
	}
	// The square's interior is not filled.
	if c := img.NRGBAAt(40, 40); c.R < 200 || c.G < 200 || c.B < 200 {
		t.Errorf("interior pixel = %v, want background", c)
	}
}

func TestRenderLines(t *testing.T) {
	doc := dxf.NewDocument(dxf.Minimal)
	if !doc.AddLine(dxf.Pt(0, 20), dxf.Pt(40, 20)) {
		t.Fatal("AddLine failed")
	}
	img, err := Render(doc, 40, 40, Options{PixelsPerMM: 2, StrokeWidth: 2})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if c := img.NRGBAAt(40, 40); c.R > 100 {
		t.Errorf("line pixel = %v, want stroked dark", c)
	}
}

func TestRenderHighlight(t *testing.T) {
	doc := dxf.NewDocument(dxf.Minimal)
	img, err := Render(doc, 40, 40, Options{
		PixelsPerMM: 2,
		StrokeWidth: 2,
		Highlights:  []Box{{X0: 10, Y0: 10, X1: 30, Y1: 30}},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	c := img.NRGBAAt(40, 60)
	if c.R < 150 || c.G > 100 {
		t.Errorf("highlight pixel = %v, want red", c)
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := Render(nil, 40, 40, Options{}); !errors.Is(err, ErrNoDocument) {
		t.Errorf("nil document: err = %v, want ErrNoDocument", err)
	}
	doc := dxf.NewDocument(dxf.Minimal)
	if _, err := Render(doc, 0, 40, Options{}); !errors.Is(err, ErrBadExtent) {
		t.Errorf("zero extent: err = %v, want ErrBadExtent", err)
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, squareDoc(t), 40, 40, Options{PixelsPerMM: 2}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("output is not a PNG")
	}
}
