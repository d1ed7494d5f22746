package rendering

import (
	"strings"
	"unicode"
)

// CleanText prepares text for a single-line PDF draw with core fonts.
// Tabs and line breaks become spaces and other control characters are dropped.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			result.WriteRune(' ')
		case unicode.IsControl(r):
			// dropped
		case r == ' ':
			result.WriteRune(' ')
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
