package markup

import "strings"

// TableBlock is a parsed pipe table. Rows[0] is the header row.
// Rows may be ragged; each row keeps its own cell count.
type TableBlock struct {
	Rows [][]string `json:"rows"`
}

// Header returns the header row, or nil for an empty table.
func (t TableBlock) Header() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// Body returns all rows after the header.
func (t TableBlock) Body() [][]string {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}

// IsTableRow reports whether a line is a table row (starts with | once trimmed).
func IsTableRow(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "|")
}

// ParseTableRow splits a row on | and trims each cell. Only the empty cells
// produced by the outer delimiters are dropped.
func ParseTableRow(line string) []string {
	cells := strings.Split(strings.TrimSpace(line), "|")
	if len(cells) > 0 && strings.TrimSpace(cells[0]) == "" {
		cells = cells[1:]
	}
	if n := len(cells); n > 0 && strings.TrimSpace(cells[n-1]) == "" {
		cells = cells[:n-1]
	}
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

// IsSeparatorRow reports whether a row is a header/body separator: its first
// non-empty cell is made of dashes (colon alignment markers allowed).
func IsSeparatorRow(line string) bool {
	for _, cell := range ParseTableRow(line) {
		if cell == "" {
			continue
		}
		return isDashCell(cell)
	}
	return false
}

func isDashCell(cell string) bool {
	dashes := 0
	for _, r := range cell {
		switch r {
		case '-':
			dashes++
		case ':':
		default:
			return false
		}
	}
	return dashes > 0
}

// ParseTable builds a table from table-row lines, discarding separator rows
// and rows without cells. ok is false when no row survives.
func ParseTable(lines []string) (table TableBlock, ok bool) {
	for _, line := range lines {
		if IsSeparatorRow(line) {
			continue
		}
		cells := ParseTableRow(line)
		if len(cells) == 0 {
			continue
		}
		table.Rows = append(table.Rows, cells)
	}
	return table, len(table.Rows) > 0
}

// Partition splits content into prose lines (non-blank, not table rows) and
// table-row lines, each in original order. Interleaving is not preserved.
func Partition(content string) (prose, table []string) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		switch {
		case IsTableRow(line):
			table = append(table, line)
		case strings.TrimSpace(line) != "":
			prose = append(prose, line)
		}
	}
	return prose, table
}
