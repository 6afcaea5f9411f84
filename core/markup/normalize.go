// Package markup interprets the narrow content dialect used in sections:
// **bold** spans and |pipe| table rows with dash separator rows.
//
// The flat-text path strips the dialect (NormalizeForFlatText); the rich
// path keeps its structure (SplitRuns, ParseTable, Partition).
package markup

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const boldMarker = "**"

// NormalizeForFlatText strips bold markers, turns pipes into spaces and
// removes horizontal-rule separators so table rows degrade to plain text.
// It never fails and is idempotent.
func NormalizeForFlatText(content string) string {
	text := norm.NFC.String(content)
	for {
		next := norm.NFC.String(normalizeOnce(text))
		if next == text {
			return next
		}
		text = next
	}
}

// normalizeOnce applies one pass. Removing markers can splice new dash runs
// or marker pairs together, so callers iterate until the text is stable.
func normalizeOnce(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0:0]
	for _, line := range lines {
		if isRuleLine(line) {
			continue
		}
		line = removeDashRuns(line)
		line = strings.ReplaceAll(line, "|", " ")
		line = strings.ReplaceAll(line, boldMarker, "")
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// isRuleLine reports whether a line is a horizontal rule (---, :---:) or a
// table separator row (|---|---|, |:--|--:|). Bare lines need a run of at
// least three dashes; lines opening with a pipe must be a separator row.
func isRuleLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.Trim(trimmed, "-|: \t") != "" {
		return false
	}
	if strings.HasPrefix(trimmed, "|") {
		return IsSeparatorRow(trimmed)
	}
	return strings.Contains(trimmed, "---")
}

// removeDashRuns deletes every run of three or more dashes.
func removeDashRuns(line string) string {
	if !strings.Contains(line, "---") {
		return line
	}
	var b strings.Builder
	b.Grow(len(line))
	run := 0
	flush := func() {
		if run > 0 && run < 3 {
			b.WriteString(strings.Repeat("-", run))
		}
		run = 0
	}
	for _, r := range line {
		if r == '-' {
			run++
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()
	return b.String()
}
