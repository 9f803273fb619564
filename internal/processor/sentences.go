package processor

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var tokenRe = regexp.MustCompile(`[\p{L}\p{N}]+`)

// abbreviations that end with a period without ending a sentence.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sr": true, "jr": true, "st": true, "vs": true, "etc": true,
	"e.g": true, "i.e": true, "eg": true, "ie": true, "cf": true,
	"inc": true, "ltd": true, "co": true, "corp": true, "dept": true,
	"approx": true, "est": true, "min": true, "max": true,
	"no": true, "nos": true, "fig": true, "vol": true, "al": true,
	"a.m": true, "p.m": true, "u.s": true, "u.k": true, "ph.d": true,
}

// SplitSentences segments text into ordered sentences, keeping the byte
// offset of each within the input. A period only ends a sentence when it is
// followed by whitespace (or ends the text) and does not terminate an
// abbreviation or a single-letter initial. Decimals and domain names never
// qualify because the dot sits between non-space runes.
func SplitSentences(text string) []Sentence {
	var sentences []Sentence
	start := 0

	flush := func(end int) {
		raw := text[start:end]
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			start = end
			return
		}
		offset := start + strings.Index(raw, trimmed)
		sentences = append(sentences, Sentence{
			Index:  len(sentences),
			Offset: offset,
			Text:   trimmed,
			Tokens: Tokenize(trimmed),
		})
		start = end
	}

	for i, r := range text {
		switch r {
		case '!', '?':
			flush(i + 1)
		case '.':
			if !followedBySpaceOrEnd(text, i) {
				continue
			}
			if isAbbreviationDot(text, start, i) {
				continue
			}
			flush(i + 1)
		}
	}
	flush(len(text))

	return sentences
}

// Tokenize lowercases and extracts letter/digit runs, so punctuation and
// symbols never count as terms.
func Tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

func followedBySpaceOrEnd(text string, i int) bool {
	rest := text[i+1:]
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsSpace(r)
}

func isAbbreviationDot(text string, start, i int) bool {
	// scan back to the beginning of the word the dot terminates
	w := i
	for w > start {
		r, size := utf8.DecodeLastRuneInString(text[start:w])
		if size == 0 || unicode.IsSpace(r) {
			break
		}
		w -= size
	}
	word := strings.ToLower(strings.TrimRight(text[w:i], "."))
	if word == "" {
		return false
	}
	if abbreviations[word] {
		return true
	}
	// single-letter initials like "J. Smith"
	r, _ := utf8.DecodeRuneInString(word)
	return utf8.RuneCountInString(word) == 1 && unicode.IsLetter(r)
}
