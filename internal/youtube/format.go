package youtube

import (
	"fmt"
	"strings"
)

// FormatTimestamp renders a start offset as [MM:SS]; hours roll into the
// minutes field the way YouTube's own transcript panel does.
func FormatTimestamp(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("[%02d:%02d]", total/60, total%60)
}

// FormatWithTimestamps renders one timestamped line per segment.
func FormatWithTimestamps(segments []Segment) string {
	lines := make([]string, len(segments))
	for i, seg := range segments {
		lines[i] = FormatTimestamp(seg.Start) + " " + seg.Text
	}
	return strings.Join(lines, "\n")
}

// FormatPlain joins segment texts into a single line of text.
func FormatPlain(segments []Segment) string {
	parts := make([]string, len(segments))
	for i, seg := range segments {
		parts[i] = seg.Text
	}
	return strings.Join(parts, " ")
}
