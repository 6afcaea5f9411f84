package compose

import "strings"

// ParagraphStyle names the word-processor style a paragraph uses.
type ParagraphStyle string

const (
	StyleNormal   ParagraphStyle = "Normal"
	StyleTitle    ParagraphStyle = "Title"
	StyleHeading1 ParagraphStyle = "Heading1"
)

// Run is a styled span of text. Size is in half-points; Color is RGB hex.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Size   int
	Color  string
	Font   string
}

// Spacing is paragraph spacing in twentieths of a point.
type Spacing struct {
	Before int
	After  int
}

// Paragraph is a block of runs.
type Paragraph struct {
	Style   ParagraphStyle
	Runs    []Run
	Spacing Spacing
}

// Border is a uniform single-line cell border.
type Border struct {
	Size  int // eighths of a point
	Color string
}

// Cell is one table cell holding a single paragraph. Width is in DXA.
type Cell struct {
	Paragraph Paragraph
	Width     int
	Border    Border
}

// Row is one table row.
type Row struct {
	Cells []Cell
}

// Table is a bordered grid. Width is in DXA.
type Table struct {
	Rows  []Row
	Width int
}

// Block is a top-level body element: *Paragraph or *Table.
type Block interface {
	block()
}

func (*Paragraph) block() {}
func (*Table) block() {}

// Document is the rich document tree: one logical section of blocks.
type Document struct {
	Title  string
	Blocks []Block
}

// Paragraphs returns the top-level paragraphs in order.
func (d *Document) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, b := range d.Blocks {
		if p, ok := b.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// Tables returns the top-level tables in order.
func (d *Document) Tables() []*Table {
	var out []*Table
	for _, b := range d.Blocks {
		if t, ok := b.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

// Text concatenates the run texts of a paragraph.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}
