package processor

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple sentences",
			text: "Cats are mammals. Dogs are mammals.",
			want: []string{"Cats are mammals.", "Dogs are mammals."},
		},
		{
			name: "abbreviation does not split",
			text: "Dr. Smith arrived late. He sat down.",
			want: []string{"Dr. Smith arrived late.", "He sat down."},
		},
		{
			name: "single-letter initial does not split",
			text: "J. Smith spoke first. Everyone listened.",
			want: []string{"J. Smith spoke first.", "Everyone listened."},
		},
		{
			name: "decimal number does not split",
			text: "Pi is roughly 3.14 in value. Most people round it.",
			want: []string{"Pi is roughly 3.14 in value.", "Most people round it."},
		},
		{
			name: "question and exclamation marks",
			text: "Is that true? It is! Believe it.",
			want: []string{"Is that true?", "It is!", "Believe it."},
		},
		{
			name: "no terminal punctuation",
			text: "a plain run of words with no punctuation",
			want: []string{"a plain run of words with no punctuation"},
		},
		{
			name: "trailing text after last terminator",
			text: "First sentence. trailing fragment",
			want: []string{"First sentence.", "trailing fragment"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "only whitespace",
			text: "   \n\t ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.text)

			var texts []string
			for _, s := range got {
				texts = append(texts, s.Text)
			}
			if !reflect.DeepEqual(texts, tt.want) {
				t.Errorf("SplitSentences() = %q, want %q", texts, tt.want)
			}
		})
	}
}

func TestSplitSentencesIndicesAndOffsets(t *testing.T) {
	text := "Hello there. Bye now."
	sentences := SplitSentences(text)

	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sentences))
	}
	for i, s := range sentences {
		if s.Index != i {
			t.Errorf("sentence %d has index %d", i, s.Index)
		}
		if text[s.Offset:s.Offset+len(s.Text)] != s.Text {
			t.Errorf("offset %d does not point at %q in source", s.Offset, s.Text)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"lowercases and strips punctuation", "Cats, dogs... and BIRDS!", []string{"cats", "dogs", "and", "birds"}},
		{"keeps digits", "Version 2 shipped in 2024", []string{"version", "2", "shipped", "in", "2024"}},
		{"unicode letters", "Köln ist schön", []string{"köln", "ist", "schön"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitSentencesLongTranscript(t *testing.T) {
	// transcripts arrive as one long line; splitting must stay linear and
	// produce a sentence per terminator
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		sb.WriteString("This is a sentence about topic number ")
		sb.WriteString(strings.Repeat("x", i%5+1))
		sb.WriteString(". ")
	}
	got := SplitSentences(sb.String())
	if len(got) != 200 {
		t.Errorf("expected 200 sentences, got %d", len(got))
	}
}
