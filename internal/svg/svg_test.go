package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/robdobsn/WordClockGrace/dxf"
)

func TestWrite(t *testing.T) {
	doc := dxf.NewDocument(dxf.Minimal)
	if !doc.AddPolyline([]dxf.Point{
		dxf.Pt(10, 10),
		dxf.Pt(30, 10),
		dxf.Pt(30, 30),
		dxf.Pt(10, 30),
		dxf.Pt(10, 10),
	}, true) {
		t.Fatal("AddPolyline failed")
	}
	if !doc.AddLine(dxf.Pt(0, 0), dxf.Pt(40, 0)) {
		t.Fatal("AddLine failed")
	}

	var buf bytes.Buffer
	if err := Write(&buf, doc, 40, 40, 0.3); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<svg ") || !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("output is not an svg document:\n%s", out)
	}
	if got := strings.Count(out, "<path "); got != 2 {
		t.Errorf("path count = %d, want 2", got)
	}
	// Document (10,10) lands at svg y 40-10 = 30.
	if !strings.Contains(out, `d="M 10 30`) {
		t.Errorf("missing flipped move command:\n%s", out)
	}
	if !strings.Contains(out, `viewBox="0 0 40 40"`) {
		t.Errorf("missing viewBox:\n%s", out)
	}
}

func TestWriteErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil, 40, 40, 0.3); err == nil {
		t.Error("nil document accepted")
	}
	doc := dxf.NewDocument(dxf.Minimal)
	if err := Write(&buf, doc, 0, 40, 0.3); err == nil {
		t.Error("zero extent accepted")
	}
}
