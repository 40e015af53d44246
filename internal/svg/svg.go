// Package svg writes a stroked SVG rendition of an export document,
// for inspecting contours in a browser or vector editor. TEXT entities
// are not drawn.
package svg

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/robdobsn/WordClockGrace/dxf"
)

// Write renders doc's line work covering w by h millimeters. The
// document y axis grows upward, the SVG y axis downward.
func Write(f io.Writer, doc *dxf.Document, w, h, strokeWidth float64) error {
	if doc == nil {
		return errors.New("svg: nil document")
	}
	if w <= 0 || h <= 0 {
		return errors.New("svg: non-positive extent")
	}
	out := bufio.NewWriter(f)
	fmt.Fprintf(out, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %g %g\" width=\"%gmm\" height=\"%gmm\">\n",
		w, h, w, h)
	fmt.Fprintf(out, `<defs><style>
	.cut { fill: none; stroke: #000; stroke-width: %g; stroke-linejoin: round; stroke-linecap: round; }
</style></defs>
`, strokeWidth)
	for _, pts := range doc.Polylines() {
		writePath(out, h, pts)
	}
	for _, l := range doc.Lines() {
		writePath(out, h, l[:])
	}
	fmt.Fprintln(out, "</svg>")
	return out.Flush()
}

func writePath(out *bufio.Writer, h float64, pts []dxf.Point) {
	if len(pts) < 2 {
		return
	}
	fmt.Fprint(out, `<path class="cut" d="`)
	for i, p := range pts {
		cmd := " L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(out, "%s %g %g", cmd, p.X, h-p.Y)
	}
	fmt.Fprintln(out, `" />`)
}
