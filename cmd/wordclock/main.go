// command wordclock exports a word clock letter grid as a DXF file
// for laser cutting, with an optional PNG preview.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robdobsn/WordClockGrace/clock"
	"github.com/robdobsn/WordClockGrace/dxf"
	"github.com/robdobsn/WordClockGrace/export"
	"github.com/robdobsn/WordClockGrace/internal/svg"
	"github.com/robdobsn/WordClockGrace/layout"
	"github.com/robdobsn/WordClockGrace/preview"
)

var (
	layoutFile = flag.String("layout", "", "layout JSON file, empty for the built-in face")
	fontName   = flag.String("font", "", "face name (go-regular, go-bold, go-mono) or TTF path")
	output     = flag.String("o", "wordclock.dxf", "output DXF file")
	previewOut = flag.String("preview", "", "write a PNG preview to this file")
	svgOut     = flag.String("svg", "", "write an SVG rendition to this file")
	highlight  = flag.String("highlight", "", `highlight the phrase for a time like "16:20" (or "now") in the preview`)

	spacingX = flag.Float64("dx", 18, "horizontal cell spacing in mm")
	spacingY = flag.Float64("dy", 18, "vertical cell spacing in mm")
	margin   = flag.Float64("margin", 10, "margin between the cells and the border in mm")
	cellW    = flag.Float64("cellw", 0, "glyph cell width in mm, 0 for the x spacing")
	cellH    = flag.Float64("cellh", 0, "glyph cell height in mm, 0 for the y spacing")
	padding  = flag.Float64("padding", 0.1, "fraction of the cell height kept clear above and below each glyph")
	stretch  = flag.Float64("stretch", 1, "horizontal glyph stretch")
	center   = flag.Bool("center", true, "center glyphs in their cells")

	tolerance = flag.Float64("tolerance", 0, "simplification tolerance in mm, 0 for the default")
	full      = flag.Bool("full", false, "write a full DXF document instead of the minimal one")
	lineMode  = flag.Bool("lines", false, "write letter contours as LINE entities")
	textMode  = flag.Bool("text", false, "write letters as TEXT entities instead of outlines")
	gridLines = flag.Bool("grid", false, "draw the interior cell boundaries")
	border    = flag.Bool("border", true, "draw the outer frame")
	verbose   = flag.Bool("v", false, "log placement details")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wordclock: %v\n", err)
		os.Exit(2)
	}
}

func run() error {
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	export.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	lay := layout.Default()
	if *layoutFile != "" {
		var err error
		lay, err = layout.LoadFile(*layoutFile)
		if err != nil {
			return err
		}
	}
	grid, err := lay.Materialize()
	if err != nil {
		return err
	}

	mode := dxf.Minimal
	if *full {
		mode = dxf.Full
	}
	opts := export.Options{
		Cell: export.CellSpec{
			Width:   *cellW,
			Height:  *cellH,
			Padding: *padding,
			Stretch: *stretch,
			Center:  *center,
		},
		SpacingX:  *spacingX,
		SpacingY:  *spacingY,
		Margin:    *margin,
		Font:      *fontName,
		Tolerance: *tolerance,
		Mode:      mode,
		Lines:     *lineMode,
		Text:      *textMode,
		GridLines: *gridLines,
		Border:    *border,
	}
	doc, err := export.Export(grid, opts)
	if err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	if err := doc.Encode(buf); err != nil {
		return err
	}
	if err := os.WriteFile(*output, buf.Bytes(), 0o644); err != nil {
		return err
	}

	w, h := opts.Extent(grid.Rows(), grid.Cols())
	if *svgOut != "" {
		buf.Reset()
		if err := svg.Write(buf, doc, w, h, 0.3); err != nil {
			return err
		}
		if err := os.WriteFile(*svgOut, buf.Bytes(), 0o644); err != nil {
			return err
		}
	}

	if *previewOut == "" {
		return nil
	}
	popts := preview.Options{}
	if *highlight != "" {
		popts.Highlights, err = highlightBoxes(lay, grid, opts, *highlight)
		if err != nil {
			return err
		}
	}
	buf.Reset()
	if err := preview.Encode(buf, doc, w, h, popts); err != nil {
		return err
	}
	return os.WriteFile(*previewOut, buf.Bytes(), 0o644)
}

func highlightBoxes(lay *layout.Layout, grid *layout.Grid, opts export.Options, at string) ([]preview.Box, error) {
	var phrase []string
	if at == "now" {
		phrase = clock.PhraseAt(time.Now())
	} else {
		hh, mm, err := parseTime(at)
		if err != nil {
			return nil, err
		}
		phrase = clock.Phrase(hh, mm)
	}
	words, ok := lay.FindWords(phrase)
	if !ok {
		return nil, fmt.Errorf("phrase %q is not on this face", strings.Join(phrase, " "))
	}
	var boxes []preview.Box
	for _, w := range words {
		for _, cell := range w.Cells() {
			x0, y0, x1, y1 := opts.CellBox(grid.Rows(), cell[0], cell[1])
			boxes = append(boxes, preview.Box{X0: x0, Y0: y0, X1: x1, Y1: y1})
		}
	}
	return boxes, nil
}

func parseTime(s string) (hh, mm int, err error) {
	h, m, ok := strings.Cut(s, ":")
	if ok {
		hh, err = strconv.Atoi(h)
		if err == nil {
			mm, err = strconv.Atoi(m)
		}
	}
	if !ok || err != nil || hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	return hh, mm, nil
}
