package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_EmptyString(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
}

func TestCleanText_PlainText(t *testing.T) {
	text := "Built scalable systems in Go"
	assert.Equal(t, text, CleanText(text))
}

func TestCleanText_WhitespaceControls(t *testing.T) {
	assert.Equal(t, "a b c d", CleanText("a\tb\nc\rd"))
}

func TestCleanText_DropsOtherControls(t *testing.T) {
	assert.Equal(t, "ab", CleanText("a\x00\x07b"))
}

func TestCleanText_KeepsMarkersAndUnicode(t *testing.T) {
	assert.Equal(t, "**bold** café – ok", CleanText("**bold** café – ok"))
}
