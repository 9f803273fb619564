package processor

import "fmt"

// Sentence is a single summarization unit. Index is the position in the
// original transcript and stays stable through ranking and selection.
type Sentence struct {
	Index  int
	Offset int
	Text   string
	Tokens []string
}

// Graph is a complete weighted undirected similarity graph over sentences.
// Adjacency is symmetric with a zero diagonal.
type Graph struct {
	N         int
	Adjacency [][]float64
}

type Summary struct {
	Text          string
	Sentences     []Sentence
	WordCount     int
	ReadingTime   int
	SentenceCount int
}

// InsufficientContentError reports a transcript too short to rank.
type InsufficientContentError struct {
	Sentences int
	Minimum   int
}

func (e *InsufficientContentError) Error() string {
	return fmt.Sprintf(
		"transcript has %d sentence(s), at least %d are required for a summary",
		e.Sentences, e.Minimum,
	)
}
