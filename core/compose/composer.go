// Package compose builds the rich document tree for the word-processor
// format: a title block, then per section a heading, prose paragraphs with
// bold runs, and an optional table.
//
// Composition is synchronous and pure. Serialization is a separate
// capability (see Encoder) chosen by the caller.
package compose

import (
	"io"

	"github.com/gaurav-prasanna/brdexport/core"
	"github.com/gaurav-prasanna/brdexport/core/config"
	"github.com/gaurav-prasanna/brdexport/core/markup"
)

// Encoder serializes a finished document tree.
type Encoder interface {
	Encode(w io.Writer, doc *Document) error
}

// SectionView is the parsed structure of one section, before styling.
type SectionView struct {
	Heading    string             `json:"heading"`
	Paragraphs [][]markup.TextRun `json:"paragraphs"`
	Table      *markup.TableBlock `json:"table,omitempty"`
}

// ParseSection partitions a section into prose paragraphs and at most one
// table. All prose comes first; interleaving with table rows is dropped.
func ParseSection(s core.Section) SectionView {
	prose, rows := markup.Partition(s.Content)

	view := SectionView{Heading: s.Title, Paragraphs: make([][]markup.TextRun, 0, len(prose))}
	for _, line := range prose {
		runs := markup.SplitRuns(line)
		if runs == nil {
			runs = []markup.TextRun{}
		}
		view.Paragraphs = append(view.Paragraphs, runs)
	}
	if table, ok := markup.ParseTable(rows); ok {
		view.Table = &table
	}
	return view
}

// Composer turns export requests into document trees.
type Composer struct {
	doc  config.DocumentConfig
	rich config.RichConfig
}

// New creates a Composer.
func New(cfg config.Config) *Composer {
	return &Composer{doc: cfg.Document, rich: cfg.Rich}
}

// Compose builds the full document tree for req.
func (c *Composer) Compose(req core.ExportRequest) *Document {
	r := c.rich
	doc := &Document{Title: c.doc.Title}

	doc.Blocks = append(doc.Blocks,
		&Paragraph{
			Style:   StyleTitle,
			Runs:    []Run{{Text: c.doc.Title, Bold: true, Size: r.TitleSize, Font: r.Font}},
			Spacing: Spacing{After: r.TitleSpacingAfter},
		},
		&Paragraph{
			Style:   StyleNormal,
			Runs:    []Run{{Text: c.doc.Subtitle, Italic: true, Size: r.SubtitleSize, Color: r.SubtitleColor, Font: r.Font}},
			Spacing: Spacing{After: r.SubtitleSpacingAfter},
		},
		&Paragraph{
			Style:   StyleNormal,
			Runs:    []Run{{Text: req.MetadataLine(c.doc.DateLayout), Size: r.MetaSize, Color: r.MetaColor, Font: r.Font}},
			Spacing: Spacing{After: r.MetaSpacingAfter},
		},
	)

	for _, s := range req.Sections {
		view := ParseSection(s)
		doc.Blocks = append(doc.Blocks, &Paragraph{
			Style:   StyleHeading1,
			Runs:    []Run{{Text: view.Heading, Bold: true, Size: r.HeadingSize, Font: r.Font}},
			Spacing: Spacing{Before: r.HeadingSpacingBefore, After: r.HeadingSpacingAfter},
		})
		for _, runs := range view.Paragraphs {
			doc.Blocks = append(doc.Blocks, c.prose(runs))
		}
		if view.Table != nil {
			doc.Blocks = append(doc.Blocks, c.table(*view.Table))
		}
	}
	return doc
}

func (c *Composer) prose(runs []markup.TextRun) *Paragraph {
	p := &Paragraph{Style: StyleNormal, Spacing: Spacing{After: c.rich.BodySpacingAfter}}
	for _, tr := range runs {
		p.Runs = append(p.Runs, Run{Text: tr.Text, Bold: tr.Bold, Size: c.rich.BodySize, Font: c.rich.Font})
	}
	return p
}

// table styles the header row bold and splits the table width evenly
// across each row's own cell count.
func (c *Composer) table(tb markup.TableBlock) *Table {
	r := c.rich
	border := Border{Size: r.BorderSize, Color: r.BorderColor}
	t := &Table{Width: r.TableWidth}
	for i, cells := range tb.Rows {
		width := r.TableWidth / len(cells)
		row := Row{}
		for _, text := range cells {
			row.Cells = append(row.Cells, Cell{
				Paragraph: Paragraph{
					Style: StyleNormal,
					Runs:  []Run{{Text: text, Bold: i == 0, Size: r.CellSize, Font: r.Font}},
				},
				Width:  width,
				Border: border,
			})
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
