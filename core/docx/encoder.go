// Package docx serializes a composed document tree as an Office Open XML
// word-processing package (.docx) built on godocx.
package docx

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gomutex/godocx"
	gdocx "github.com/gomutex/godocx/docx"
	"github.com/gomutex/godocx/wml/ctypes"
	"github.com/gomutex/godocx/wml/stypes"

	"github.com/gaurav-prasanna/brdexport/core/compose"
)

// MIMEType is the media type of a .docx package.
const MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// A4 portrait with one-inch margins, in twentieths of a point.
const (
	pageWidth    uint64 = 11906
	pageHeight   uint64 = 16838
	pageMargin          = 1440
	headerMargin        = 708
)

// Encoder writes .docx packages. The zero value is ready to use.
type Encoder struct{}

// NewEncoder creates an Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes doc to w as a complete .docx archive. Nothing is written
// to w if the tree cannot be encoded.
func (e *Encoder) Encode(w io.Writer, doc *compose.Document) error {
	rd, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("loading docx template: %w", err)
	}
	setA4(rd)

	for _, b := range doc.Blocks {
		switch v := b.(type) {
		case *compose.Paragraph:
			fillParagraph(rd.AddEmptyParagraph(), v)
		case *compose.Table:
			addTable(rd, v)
		default:
			return fmt.Errorf("unsupported block type %T", b)
		}
	}

	var buf bytes.Buffer
	if err := rd.Write(&buf); err != nil {
		return fmt.Errorf("writing docx archive: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing docx archive: %w", err)
	}
	return nil
}

func setA4(rd *gdocx.RootDoc) {
	body := rd.Document.Body
	if body.SectPr == nil {
		body.SectPr = ctypes.NewSectionProper()
	}
	w, h := pageWidth, pageHeight
	margin, header := pageMargin, headerMargin
	body.SectPr.PageSize = &ctypes.PageSize{Width: &w, Height: &h}
	body.SectPr.PageMargin = &ctypes.PageMargin{
		Top: &margin, Right: &margin, Bottom: &margin, Left: &margin,
		Header: &header, Footer: &header,
	}
}

func fillParagraph(p *gdocx.Paragraph, src *compose.Paragraph) {
	p.Spacing(uint64(max(src.Spacing.Before, 0)), uint64(max(src.Spacing.After, 0)))
	if src.Style != "" && src.Style != compose.StyleNormal {
		p.Style(string(src.Style))
	}
	for _, r := range src.Runs {
		addRun(p, r)
	}
}

func addRun(p *gdocx.Paragraph, r compose.Run) {
	run := p.AddText(r.Text)
	if r.Bold {
		run.Bold(true)
	}
	if r.Italic {
		run.Italic(true)
	}
	if r.Color != "" {
		run.Color(r.Color)
	}
	if r.Font == "" && r.Size <= 0 {
		return
	}

	// Sizes are half-points and fonts cover complex scripts too; the run
	// helpers only take whole points and Latin faces.
	children := p.GetCT().Children
	ct := children[len(children)-1].Run
	if ct.Property == nil {
		ct.Property = &ctypes.RunProperty{}
	}
	if r.Font != "" {
		ct.Property.Fonts = &ctypes.RunFonts{Ascii: r.Font, HAnsi: r.Font, CS: r.Font}
	}
	if r.Size > 0 {
		ct.Property.Size = ctypes.NewFontSize(uint64(r.Size))
		ct.Property.SizeCs = ctypes.NewFontSizeCS(uint64(r.Size))
	}
}

func addTable(rd *gdocx.RootDoc, t *compose.Table) {
	tbl := rd.AddTable()
	tbl.Width(t.Width, stypes.TableWidthDxa)
	if len(t.Rows) > 0 {
		widths := make([]uint64, 0, len(t.Rows[0].Cells))
		for _, c := range t.Rows[0].Cells {
			widths = append(widths, uint64(max(c.Width, 0)))
		}
		tbl.Grid(widths...)
	}

	for _, row := range t.Rows {
		r := tbl.AddRow()
		for _, c := range row.Cells {
			b := ctypes.NewCellBorder(stypes.BorderStyleSingle, c.Border.Color, "0", c.Border.Size)
			cell := r.AddCell().
				Width(c.Width, stypes.TableWidthDxa).
				Borders(b, b, b, b, nil, nil, nil, nil)
			fillParagraph(cell.AddEmptyPara(), &c.Paragraph)
		}
	}
}
