package ingest

import (
	"bytes"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/gaurav-prasanna/brdexport/core"
)

var markdownParser = goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()

// heading is a top-level heading and the source lines it occupies.
type heading struct {
	level       int
	text        string
	first, last int
}

// SplitMarkdown splits a Markdown document into sections at its shallowest
// top-level heading level. Deeper headings stay in the section body as
// **bold** lines. Non-blank text before the first split heading becomes an
// untitled section. Headings inside code blocks or quotes are not split on.
func SplitMarkdown(src []byte) []core.Section {
	src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	lines := strings.Split(string(src), "\n")
	headings := topLevelHeadings(src, lines)

	splitLevel := 0
	byLine := make(map[int]heading, len(headings))
	for _, h := range headings {
		byLine[h.first] = h
		if splitLevel == 0 || h.level < splitLevel {
			splitLevel = h.level
		}
	}

	var (
		sections []core.Section
		title    string
		titled   bool
		body     []string
	)
	flush := func() {
		content := strings.TrimSpace(strings.Join(body, "\n"))
		if titled || content != "" {
			sections = append(sections, core.Section{Title: title, Content: content})
		}
		body = nil
	}

	for i := 0; i < len(lines); i++ {
		h, ok := byLine[i]
		if !ok {
			body = append(body, lines[i])
			continue
		}
		if h.level == splitLevel {
			flush()
			title, titled = h.text, true
		} else {
			body = append(body, "**"+h.text+"**")
		}
		i = h.last
	}
	flush()
	return sections
}

func topLevelHeadings(src []byte, lines []string) []heading {
	starts := lineStarts(src)
	lineOf := func(offset int) int {
		return sort.SearchInts(starts, offset+1) - 1
	}

	doc := markdownParser.Parse(text.NewReader(src))

	var out []heading
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Lines().Len() == 0 {
			continue
		}
		segs := h.Lines()
		first := lineOf(segs.At(0).Start)
		last := lineOf(segs.At(segs.Len() - 1).Start)
		if !strings.HasPrefix(strings.TrimLeft(lines[first], " "), "#") {
			// Setext: the underline follows the text.
			last++
		}
		var raw []string
		for i := 0; i < segs.Len(); i++ {
			seg := segs.At(i)
			raw = append(raw, string(seg.Value(src)))
		}
		out = append(out, heading{
			level: h.Level,
			text:  strings.Join(strings.Fields(strings.Join(raw, " ")), " "),
			first: first,
			last:  last,
		})
	}
	return out
}

func lineStarts(src []byte) []int {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
