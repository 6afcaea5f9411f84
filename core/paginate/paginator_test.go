package paginate

import (
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/brdexport/core"
	"github.com/gaurav-prasanna/brdexport/core/config"
)

// monospace measures every rune as 2mm, so the default 170mm content width
// holds 85 characters.
var monospace = MeasureFunc(func(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * 2
})

var fixedTime = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func request(sections ...core.Section) core.ExportRequest {
	return core.NewExportRequest(sections, 91, fixedTime)
}

func TestWrap(t *testing.T) {
	unit := MeasureFunc(func(s string) float64 { return float64(utf8.RuneCountInString(s)) })

	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{name: "fits on one line", text: "aaa bbb", width: 10, want: []string{"aaa bbb"}},
		{name: "greedy break", text: "aaa bbb ccc", width: 10, want: []string{"aaa bbb", "ccc"}},
		{name: "exact fit", text: "aaaa bbbbb", width: 10, want: []string{"aaaa bbbbb"}},
		{name: "oversized token alone", text: "a abcdefghijklmno b", width: 10, want: []string{"a", "abcdefghijklmno", "b"}},
		{name: "whitespace collapsed", text: "  a   b  ", width: 10, want: []string{"a b"}},
		{name: "blank line kept", text: "a\n\nb", width: 10, want: []string{"a", "", "b"}},
		{name: "empty", text: "", width: 10, want: nil},
		{name: "only whitespace", text: " \n  \n", width: 10, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.text, tt.width, unit))
		})
	}
}

func TestWrapNeverExceedsWidth(t *testing.T) {
	text := strings.Repeat("requirements extraction accuracy stakeholder identification ", 20) +
		"supercalifragilisticexpialidocious-and-then-some-more-characters-to-overflow-the-width-entirely"

	for _, line := range Wrap(text, 60, monospace) {
		if monospace.Width(line) > 60 {
			assert.NotContains(t, line, " ", "only a lone token may exceed the width: %q", line)
		}
	}
}

func TestPaginateTitleBlock(t *testing.T) {
	layout := New(config.Default(), monospace).Paginate(request())

	require.Len(t, layout.Pages, 1)
	items := layout.Pages[0].Items
	require.Len(t, items, 4)

	assert.Equal(t, Item{Kind: KindTitle, Text: "Business Requirements Document", X: 20, Y: 20}, items[0])
	assert.Equal(t, Item{Kind: KindSubtitle, Text: "Enron Email Analysis — Project Alpha", X: 20, Y: 28}, items[1])
	assert.Equal(t, Item{Kind: KindMeta, Text: "Accuracy: 91% | Generated: 10/19/2026", X: 20, Y: 34}, items[2])
	assert.Equal(t, Item{Kind: KindRule, X: 20, X2: 190, Y: 46}, items[3])
}

func TestPaginateEmptySectionReservesSpace(t *testing.T) {
	layout := New(config.Default(), monospace).Paginate(request(
		core.Section{Title: "1. Empty", Content: ""},
		core.Section{Title: "2. Next", Content: "body"},
	))

	items := layout.Pages[0].Items[4:]
	require.Len(t, items, 3)
	assert.Equal(t, KindHeading, items[0].Kind)
	assert.Equal(t, 56.0, items[0].Y)
	assert.Equal(t, KindHeading, items[1].Kind)
	assert.Equal(t, 72.0, items[1].Y, "heading line height plus section spacing")
	assert.Equal(t, Item{Kind: KindBody, Text: "body", X: 20, Y: 80}, items[2])
}

func TestPaginateNormalizesContent(t *testing.T) {
	layout := New(config.Default(), monospace).Paginate(request(core.Section{
		Title:   "1. Overview",
		Content: "**Objective:** Do X.\n| A | B |\n|---|---|\n| 1 | 2 |",
	}))

	for _, text := range layout.Texts()[3:] {
		assert.NotContains(t, text, "**")
		assert.NotContains(t, text, "|")
	}
	assert.Equal(t, []string{"Objective: Do X.", "A B", "1 2"}, layout.Texts()[4:])
}

func TestPaginateBodyBreak(t *testing.T) {
	rows := make([]string, 60)
	for i := range rows {
		rows[i] = fmt.Sprintf("row %d", i)
	}
	layout := New(config.Default(), monospace).Paginate(request(core.Section{
		Title:   "Long",
		Content: strings.Join(rows, "\n"),
	}))

	require.Len(t, layout.Pages, 2)

	first := layout.Pages[0].Items
	last := first[len(first)-1]
	assert.Equal(t, "row 42", last.Text)
	assert.Equal(t, 274.0, last.Y)

	second := layout.Pages[1].Items
	assert.Equal(t, Item{Kind: KindBody, Text: "row 43", X: 20, Y: 20}, second[0])
	assert.Len(t, second, 17)
}

func TestPaginateHeadingBreak(t *testing.T) {
	var sections []core.Section
	for i := 0; i < 12; i++ {
		sections = append(sections, core.Section{Title: fmt.Sprintf("Section %d", i), Content: "one line"})
	}
	layout := New(config.Default(), monospace).Paginate(request(sections...))

	require.Len(t, layout.Pages, 2)

	var headings []Item
	for _, it := range layout.Pages[0].Items {
		if it.Kind == KindHeading {
			headings = append(headings, it)
		}
	}
	require.Len(t, headings, 10)
	assert.Equal(t, 245.0, headings[9].Y)

	second := layout.Pages[1].Items
	assert.Equal(t, Item{Kind: KindHeading, Text: "Section 10", X: 20, Y: 20}, second[0])
}

func TestPaginateCursorResetsAndThresholdsHold(t *testing.T) {
	cfg := config.Default()
	var sections []core.Section
	for i := 0; i < 30; i++ {
		sections = append(sections, core.Section{
			Title:   fmt.Sprintf("Section %d", i),
			Content: strings.Repeat("word ", 10*(i%7+1)) + "\n\n**tail** | x |",
		})
	}
	layout := New(cfg, monospace).Paginate(request(sections...))
	require.Greater(t, len(layout.Pages), 2)

	for pi, page := range layout.Pages {
		require.NotEmpty(t, page.Items)
		if pi > 0 {
			assert.Equal(t, cfg.Flat.Margin, page.Items[0].Y, "page %d must start at the top margin", pi)
		}
		for ii, it := range page.Items {
			if ii == 0 && pi > 0 {
				continue
			}
			switch it.Kind {
			case KindHeading:
				assert.LessOrEqual(t, it.Y, cfg.Flat.HeadingBreakAt)
			case KindBody:
				assert.LessOrEqual(t, it.Y, cfg.Flat.BodyBreakAt)
			}
		}
	}
}

func TestPaginateOnlyDateDiffers(t *testing.T) {
	sections := []core.Section{{Title: "1. Overview", Content: "**Objective:** Do X."}}
	p := New(config.Default(), monospace)

	a := p.Paginate(core.NewExportRequest(sections, 91, fixedTime)).Texts()
	b := p.Paginate(core.NewExportRequest(sections, 91, fixedTime.AddDate(0, 1, 3))).Texts()

	require.Len(t, b, len(a))
	for i := range a {
		if i == 2 {
			assert.NotEqual(t, a[i], b[i])
			continue
		}
		assert.Equal(t, a[i], b[i])
	}
}

func TestPaginateDoesNotMutateInput(t *testing.T) {
	sections := []core.Section{{Title: "T", Content: "**x** | y |"}}
	req := core.NewExportRequest(sections, 50, fixedTime)
	New(config.Default(), monospace).Paginate(req)
	assert.Equal(t, "**x** | y |", req.Sections[0].Content)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "heading", KindHeading.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
