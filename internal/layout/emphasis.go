package layout

import (
	"strings"

	"github.com/jonathan/ats-resume/internal/types"
)

// SplitEmphasis splits a single line on marker. Even-indexed segments are normal and
// odd-indexed segments bold, so an unmatched marker leaves the rest of the line bold.
// Empty segments are omitted but still count toward parity. Markers are never returned.
func SplitEmphasis(line, marker string) []types.EmphasisRun {
	if marker == "" {
		if line == "" {
			return nil
		}
		return []types.EmphasisRun{{Text: line}}
	}

	segments := strings.Split(line, marker)
	runs := make([]types.EmphasisRun, 0, len(segments))
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		runs = append(runs, types.EmphasisRun{Text: seg, Bold: i%2 == 1})
	}
	return runs
}
