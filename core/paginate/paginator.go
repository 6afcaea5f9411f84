// Package paginate lays out an export request as fixed-size pages of
// positioned text for the flat (PDF) format.
//
// Layout is a pure function of the request, the config and a Measurer; the
// PDF renderer draws the result and supplies real font metrics.
package paginate

import (
	"github.com/gaurav-prasanna/brdexport/core"
	"github.com/gaurav-prasanna/brdexport/core/config"
	"github.com/gaurav-prasanna/brdexport/core/markup"
)

// Kind is the visual role of a layout item.
type Kind int

const (
	KindTitle Kind = iota
	KindSubtitle
	KindMeta
	KindRule
	KindHeading
	KindBody
)

func (k Kind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindSubtitle:
		return "subtitle"
	case KindMeta:
		return "meta"
	case KindRule:
		return "rule"
	case KindHeading:
		return "heading"
	case KindBody:
		return "body"
	default:
		return "unknown"
	}
}

// Item is one positioned element on a page. Y is the text baseline.
// Rules run horizontally from X to X2.
type Item struct {
	Kind Kind
	Text string
	X    float64
	X2   float64
	Y    float64
}

// Page holds the items drawn on one page, in drawing order.
type Page struct {
	Items []Item
}

// Layout is the finished multi-page flat document.
type Layout struct {
	Pages []Page
}

// Texts returns the text of every non-rule item in document order.
func (l Layout) Texts() []string {
	var out []string
	for _, p := range l.Pages {
		for _, it := range p.Items {
			if it.Kind != KindRule {
				out = append(out, it.Text)
			}
		}
	}
	return out
}

// Paginator wraps and places sections onto pages.
type Paginator struct {
	doc     config.DocumentConfig
	flat    config.FlatConfig
	measure Measurer
}

// New creates a Paginator. m measures body text in the body font.
func New(cfg config.Config, m Measurer) *Paginator {
	return &Paginator{doc: cfg.Document, flat: cfg.Flat, measure: m}
}

// cursor tracks the current page and vertical offset while laying out.
type cursor struct {
	top   float64
	y     float64
	pages []Page
}

func (c *cursor) place(it Item) {
	it.Y = c.y
	last := &c.pages[len(c.pages)-1]
	last.Items = append(last.Items, it)
}

func (c *cursor) newPage() {
	c.pages = append(c.pages, Page{})
	c.y = c.top
}

// Paginate lays out the title block once, then every section in order.
// A section heading starts a new page once the cursor passes
// HeadingBreakAt; each body line does so past BodyBreakAt.
func (p *Paginator) Paginate(req core.ExportRequest) Layout {
	f := p.flat
	left, right := f.Margin, f.PageWidth-f.Margin
	c := &cursor{top: f.Margin}
	c.newPage()

	c.place(Item{Kind: KindTitle, Text: p.doc.Title, X: left})
	c.y += f.TitleStep
	c.place(Item{Kind: KindSubtitle, Text: p.doc.Subtitle, X: left})
	c.y += f.SubtitleStep
	c.place(Item{Kind: KindMeta, Text: req.MetadataLine(p.doc.DateLayout), X: left})
	c.y += f.MetaStep
	c.place(Item{Kind: KindRule, X: left, X2: right})
	c.y += f.RuleStep

	for _, s := range req.Sections {
		if c.y > f.HeadingBreakAt {
			c.newPage()
		}
		c.place(Item{Kind: KindHeading, Text: s.Title, X: left})
		c.y += f.HeadingLineHeight

		lines := Wrap(markup.NormalizeForFlatText(s.Content), f.ContentWidth(), p.measure)
		for _, line := range lines {
			if c.y > f.BodyBreakAt {
				c.newPage()
			}
			c.place(Item{Kind: KindBody, Text: line, X: left})
			c.y += f.BodyLineHeight
		}
		c.y += f.SectionSpacing
	}

	return Layout{Pages: c.pages}
}
