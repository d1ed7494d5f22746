package layout

import "strings"

// Wrap breaks text into lines no wider than width using greedy word fill.
// Explicit newlines start a new paragraph; a paragraph with no words yields no lines.
// A single word wider than width is kept whole on its own line.
func Wrap(text string, width float64, measure func(string) float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if measure(candidate) <= width {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = word
		}
		lines = append(lines, line)
	}
	return lines
}
