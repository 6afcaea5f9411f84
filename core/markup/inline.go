package markup

import "strings"

// TextRun is a span of a prose line with uniform emphasis.
type TextRun struct {
	Text string `json:"text"`
	Bold bool   `json:"bold"`
}

// SplitRuns scans a line left to right for **marker pairs** and returns the
// alternating plain and bold segments. Zero-length segments are dropped. An
// opening marker without a closing one is kept as literal text.
func SplitRuns(line string) []TextRun {
	var runs []TextRun
	emit := func(text string, bold bool) {
		if text != "" {
			runs = append(runs, TextRun{Text: text, Bold: bold})
		}
	}

	pos := 0
	for pos < len(line) {
		open := strings.Index(line[pos:], boldMarker)
		if open < 0 {
			break
		}
		open += pos
		inner := open + len(boldMarker)
		closing := strings.Index(line[inner:], boldMarker)
		if closing < 0 {
			break
		}
		closing += inner

		emit(line[pos:open], false)
		emit(line[inner:closing], true)
		pos = closing + len(boldMarker)
	}
	emit(line[pos:], false)
	return runs
}
