package compose

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/brdexport/core"
	"github.com/gaurav-prasanna/brdexport/core/config"
	"github.com/gaurav-prasanna/brdexport/core/markup"
)

var fixedTime = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func compose(sections ...core.Section) *Document {
	return New(config.Default()).Compose(core.NewExportRequest(sections, 91, fixedTime))
}

func TestComposeTitleBlock(t *testing.T) {
	doc := compose()

	paras := doc.Paragraphs()
	require.Len(t, paras, 3)
	assert.Empty(t, doc.Tables())

	title, subtitle, meta := paras[0], paras[1], paras[2]

	assert.Equal(t, StyleTitle, title.Style)
	assert.Equal(t, []Run{{Text: "Business Requirements Document", Bold: true, Size: 36, Font: "Calibri"}}, title.Runs)
	assert.Equal(t, Spacing{After: 100}, title.Spacing)

	assert.Equal(t, []Run{{Text: "Enron Email Analysis — Project Alpha", Italic: true, Size: 22, Color: "666666", Font: "Calibri"}}, subtitle.Runs)
	assert.Equal(t, Spacing{After: 50}, subtitle.Spacing)

	assert.Equal(t, []Run{{Text: "Accuracy: 91% | Generated: 10/19/2026", Size: 20, Color: "999999", Font: "Calibri"}}, meta.Runs)
	assert.Equal(t, Spacing{After: 300}, meta.Spacing)
}

func TestComposeOverviewScenario(t *testing.T) {
	doc := compose(core.Section{
		Title:   "1. Overview",
		Content: "**Objective:** Do X.\n| A | B |\n|---|---|\n| 1 | 2 |",
	})

	require.Len(t, doc.Blocks, 6)

	heading, ok := doc.Blocks[3].(*Paragraph)
	require.True(t, ok)
	assert.Equal(t, StyleHeading1, heading.Style)
	assert.Equal(t, "1. Overview", heading.Text())
	assert.Equal(t, Spacing{Before: 240, After: 120}, heading.Spacing)

	prose, ok := doc.Blocks[4].(*Paragraph)
	require.True(t, ok)
	require.Len(t, prose.Runs, 2)
	assert.Equal(t, Run{Text: "Objective:", Bold: true, Size: 22, Font: "Calibri"}, prose.Runs[0])
	assert.Equal(t, Run{Text: " Do X.", Bold: false, Size: 22, Font: "Calibri"}, prose.Runs[1])

	table, ok := doc.Blocks[5].(*Table)
	require.True(t, ok)
	assert.Equal(t, 9000, table.Width)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"A", "B"}, cellTexts(table.Rows[0]))
	assert.Equal(t, []string{"1", "2"}, cellTexts(table.Rows[1]))
	for _, cell := range table.Rows[0].Cells {
		assert.True(t, cell.Paragraph.Runs[0].Bold)
		assert.Equal(t, 4500, cell.Width)
		assert.Equal(t, Border{Size: 1, Color: "CCCCCC"}, cell.Border)
	}
	for _, cell := range table.Rows[1].Cells {
		assert.False(t, cell.Paragraph.Runs[0].Bold)
	}
}

func TestComposeEmptySection(t *testing.T) {
	doc := compose(core.Section{Title: "6. Empty", Content: ""})

	require.Len(t, doc.Blocks, 4)
	heading := doc.Blocks[3].(*Paragraph)
	assert.Equal(t, "6. Empty", heading.Text())
	assert.Empty(t, doc.Tables())
}

func TestComposeProseBeforeTable(t *testing.T) {
	doc := compose(core.Section{
		Title:   "2. Stakeholders",
		Content: "| Name | Role |\n|------|------|\n| Kenneth Lay | CEO |\nSee also **Appendix A**.\n\n| Jeff Skilling | President |",
	})

	require.Len(t, doc.Blocks, 6)
	prose := doc.Blocks[4].(*Paragraph)
	assert.Equal(t, "See also Appendix A.", prose.Text())

	table := doc.Blocks[5].(*Table)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"Jeff Skilling", "President"}, cellTexts(table.Rows[2]))
}

func TestComposeRaggedRowsUseOwnCellCount(t *testing.T) {
	doc := compose(core.Section{
		Title:   "T",
		Content: "| A | B | C |\n|---|---|---|\n| only |",
	})

	table := doc.Tables()[0]
	assert.Equal(t, 3000, table.Rows[0].Cells[0].Width)
	require.Len(t, table.Rows[1].Cells, 1)
	assert.Equal(t, 9000, table.Rows[1].Cells[0].Width)
}

func TestComposeSeparatorOnlyTableIsDropped(t *testing.T) {
	doc := compose(core.Section{Title: "T", Content: "|---|---|\nprose"})
	assert.Empty(t, doc.Tables())
	assert.Len(t, doc.Paragraphs(), 5)
}

func TestComposeSingleHeaderRowTable(t *testing.T) {
	doc := compose(core.Section{Title: "T", Content: "| H1 | H2 |"})
	require.Len(t, doc.Tables(), 1)
	assert.Len(t, doc.Tables()[0].Rows, 1)
}

func TestComposeEmptyBoldLineKeepsParagraph(t *testing.T) {
	doc := compose(core.Section{Title: "T", Content: "****"})
	paras := doc.Paragraphs()
	require.Len(t, paras, 5)
	assert.Empty(t, paras[4].Runs)
}

func TestParseSection(t *testing.T) {
	view := ParseSection(core.Section{Title: "3. Functional Requirements", Content: "**FR-001:** SSO\n\n**FR-002:** Risk"})

	assert.Equal(t, "3. Functional Requirements", view.Heading)
	assert.Equal(t, [][]markup.TextRun{
		{{Text: "FR-001:", Bold: true}, {Text: " SSO"}},
		{{Text: "FR-002:", Bold: true}, {Text: " Risk"}},
	}, view.Paragraphs)
	assert.Nil(t, view.Table)
}

func TestParseSectionEmptySlices(t *testing.T) {
	empty := ParseSection(core.Section{Title: "3. Empty"})
	assert.NotNil(t, empty.Paragraphs)
	assert.Empty(t, empty.Paragraphs)

	bare := ParseSection(core.Section{Title: "T", Content: "****"})
	require.Len(t, bare.Paragraphs, 1)
	assert.NotNil(t, bare.Paragraphs[0])
	assert.Empty(t, bare.Paragraphs[0])
}

func cellTexts(row Row) []string {
	out := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		out[i] = c.Paragraph.Text()
	}
	return out
}
