package dxf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Encode writes the document to w. In Minimal mode only the entity
// section and the end marker are written; Full mode wraps it in the
// header, table, block and object sections.
func (d *Document) Encode(w io.Writer) error {
	tw := &tagWriter{w: bufio.NewWriter(w)}
	if d.mode == Full {
		d.encodeHeader(tw)
		d.encodeTables(tw)
		tw.section("BLOCKS")
		tw.endSection()
	}
	tw.section("ENTITIES")
	for _, e := range d.entities {
		e.encode(tw)
	}
	tw.endSection()
	if d.mode == Full {
		d.encodeObjects(tw)
	}
	tw.tag(0, "EOF")
	return tw.w.Flush()
}

// tagWriter emits DXF tag pairs, a group code line followed by a
// value line. Write errors stick inside the bufio.Writer and surface
// from the final Flush, so the encoders need no error plumbing.
type tagWriter struct {
	w *bufio.Writer
}

func (tw *tagWriter) tag(code int, value string) {
	tw.w.WriteString(strconv.Itoa(code))
	tw.w.WriteByte('\n')
	tw.w.WriteString(value)
	tw.w.WriteByte('\n')
}

func (tw *tagWriter) intTag(code, v int) {
	tw.tag(code, strconv.Itoa(v))
}

func (tw *tagWriter) floatTag(code int, v float64) {
	// Fixed precision keeps scientific notation and
	// platform-dependent float artifacts out of the file.
	tw.tag(code, strconv.FormatFloat(v, 'f', 6, 64))
}

func (tw *tagWriter) handleTag(code int, h uint64) {
	tw.tag(code, fmt.Sprintf("%X", h))
}

func (tw *tagWriter) section(name string) {
	tw.tag(0, "SECTION")
	tw.tag(2, name)
}

func (tw *tagWriter) endSection() {
	tw.tag(0, "ENDSEC")
}

// Reserved handles for structural records of full documents, all
// below handleSeed.
const (
	layerTableHandle = 0x10 + iota
	layerZeroHandle
	styleTableHandle
	styleStandardHandle
	viewTableHandle
	ucsTableHandle
	appidTableHandle
	appidAcadHandle
	rootDictHandle
)

func (d *Document) encodeHeader(tw *tagWriter) {
	tw.section("HEADER")
	tw.tag(9, "$ACADVER")
	tw.tag(1, "AC1015")
	// 4 = millimeters.
	tw.tag(9, "$INSUNITS")
	tw.intTag(70, 4)
	tw.tag(9, "$HANDSEED")
	tw.handleTag(5, d.next)
	tw.endSection()
}

// encodeTables writes the table stubs some consumers refuse to parse
// without: layers, text styles, views, coordinate systems and
// application IDs.
func (d *Document) encodeTables(tw *tagWriter) {
	tw.section("TABLES")

	tw.tag(0, "TABLE")
	tw.tag(2, "LAYER")
	tw.handleTag(5, layerTableHandle)
	tw.tag(100, "AcDbSymbolTable")
	tw.intTag(70, 1)
	tw.tag(0, "LAYER")
	tw.handleTag(5, layerZeroHandle)
	tw.tag(100, "AcDbSymbolTableRecord")
	tw.tag(100, "AcDbLayerTableRecord")
	tw.tag(2, "0")
	tw.intTag(70, 0)
	tw.intTag(62, 7)
	tw.tag(6, "CONTINUOUS")
	tw.tag(0, "ENDTAB")

	tw.tag(0, "TABLE")
	tw.tag(2, "STYLE")
	tw.handleTag(5, styleTableHandle)
	tw.tag(100, "AcDbSymbolTable")
	tw.intTag(70, 1)
	tw.tag(0, "STYLE")
	tw.handleTag(5, styleStandardHandle)
	tw.tag(100, "AcDbSymbolTableRecord")
	tw.tag(100, "AcDbTextStyleTableRecord")
	tw.tag(2, "STANDARD")
	tw.intTag(70, 0)
	tw.floatTag(40, 0)
	tw.floatTag(41, 1)
	tw.floatTag(50, 0)
	tw.intTag(71, 0)
	tw.floatTag(42, 2.5)
	tw.tag(3, "txt")
	tw.tag(4, "")
	tw.tag(0, "ENDTAB")

	d.encodeEmptyTable(tw, "VIEW", viewTableHandle)
	d.encodeEmptyTable(tw, "UCS", ucsTableHandle)

	tw.tag(0, "TABLE")
	tw.tag(2, "APPID")
	tw.handleTag(5, appidTableHandle)
	tw.tag(100, "AcDbSymbolTable")
	tw.intTag(70, 1)
	tw.tag(0, "APPID")
	tw.handleTag(5, appidAcadHandle)
	tw.tag(100, "AcDbSymbolTableRecord")
	tw.tag(100, "AcDbRegAppTableRecord")
	tw.tag(2, "ACAD")
	tw.intTag(70, 0)
	tw.tag(0, "ENDTAB")

	tw.endSection()
}

func (d *Document) encodeEmptyTable(tw *tagWriter, name string, handle uint64) {
	tw.tag(0, "TABLE")
	tw.tag(2, name)
	tw.handleTag(5, handle)
	tw.tag(100, "AcDbSymbolTable")
	tw.intTag(70, 0)
	tw.tag(0, "ENDTAB")
}

func (d *Document) encodeObjects(tw *tagWriter) {
	tw.section("OBJECTS")
	tw.tag(0, "DICTIONARY")
	tw.handleTag(5, rootDictHandle)
	tw.tag(100, "AcDbDictionary")
	tw.endSection()
}

func (p *polyline) encode(tw *tagWriter) {
	tw.tag(0, "LWPOLYLINE")
	tw.handleTag(5, p.handle)
	tw.tag(100, "AcDbEntity")
	tw.tag(8, "0")
	tw.tag(100, "AcDbPolyline")
	tw.intTag(90, len(p.points))
	flags := 0
	if p.closed {
		flags = 1
	}
	tw.intTag(70, flags)
	for _, pt := range p.points {
		tw.floatTag(10, pt.X)
		tw.floatTag(20, pt.Y)
	}
}

func (l *line) encode(tw *tagWriter) {
	tw.tag(0, "LINE")
	tw.handleTag(5, l.handle)
	tw.tag(100, "AcDbEntity")
	tw.tag(8, "0")
	tw.tag(100, "AcDbLine")
	tw.floatTag(10, l.from.X)
	tw.floatTag(20, l.from.Y)
	tw.floatTag(30, 0)
	tw.floatTag(11, l.to.X)
	tw.floatTag(21, l.to.Y)
	tw.floatTag(31, 0)
}

func (t *text) encode(tw *tagWriter) {
	tw.tag(0, "TEXT")
	tw.handleTag(5, t.handle)
	tw.tag(100, "AcDbEntity")
	tw.tag(8, "0")
	tw.tag(100, "AcDbText")
	tw.floatTag(10, t.at.X)
	tw.floatTag(20, t.at.Y)
	tw.floatTag(30, 0)
	tw.floatTag(40, t.height)
	tw.tag(1, t.value)
}
