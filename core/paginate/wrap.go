package paginate

import "strings"

// Measurer returns the rendered width of a string in layout units.
type Measurer interface {
	Width(text string) float64
}

// MeasureFunc adapts a plain function to Measurer.
type MeasureFunc func(text string) float64

// Width calls f(text).
func (f MeasureFunc) Width(text string) float64 { return f(text) }

// Wrap greedily breaks text into display lines no wider than width.
// Each source line wraps on its own; a blank source line yields a blank
// display line. A token wider than width is placed alone, unbroken.
// Text that is entirely blank yields no lines.
func Wrap(text string, width float64, m Measurer) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var out []string
	for _, src := range strings.Split(text, "\n") {
		tokens := strings.Fields(src)
		if len(tokens) == 0 {
			out = append(out, "")
			continue
		}

		line := tokens[0]
		for _, tok := range tokens[1:] {
			candidate := line + " " + tok
			if m.Width(candidate) > width {
				out = append(out, line)
				line = tok
				continue
			}
			line = candidate
		}
		out = append(out, line)
	}
	return out
}
