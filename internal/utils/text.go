package utils

import (
	"regexp"
	"strings"
)

var (
	cueRe        = regexp.MustCompile(`\[[^\]]*\]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CleanTranscript strips bracketed cues like [Music] or [Applause] and
// collapses whitespace. Transcript text goes through this before sentence
// splitting so cues never become summarization units.
func CleanTranscript(text string) string {
	text = cueRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func Truncate(s string, maxLength int) string {
	defaultString := "Unknown"

	if strings.ReplaceAll(s, " ", "") == "" {
		return defaultString
	}

	if len(s) <= maxLength {
		return s
	}

	return s[:maxLength]
}
