package processor

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"ytbrief/internal/config"
	"ytbrief/internal/utils"
)

const (
	TierShort    = "short"
	TierMedium   = "medium"
	TierDetailed = "detailed"
)

// NormalizeTier maps arbitrary input to a known length tier, defaulting to
// medium.
func NormalizeTier(tier string) string {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case TierShort:
		return TierShort
	case TierDetailed:
		return TierDetailed
	default:
		return TierMedium
	}
}

// Summarize runs the full pipeline: clean, split, build the similarity
// graph, rank, and select. lang is an ISO 639-1 code; when empty the
// language is detected from the text. All state is local to the call.
func Summarize(text, tier, lang string, cfg *config.SummaryConfig) (*Summary, error) {
	cleaned := utils.CleanTranscript(text)
	sentences := SplitSentences(cleaned)

	if len(sentences) < cfg.MinSentences {
		return nil, &InsufficientContentError{
			Sentences: len(sentences),
			Minimum:   cfg.MinSentences,
		}
	}

	if lang == "" {
		lang = DetectLanguage(cleaned)
	}

	graph := BuildGraph(sentences, StopwordsFor(lang))
	scores := Rank(graph, cfg.Damping, cfg.Tolerance, cfg.MaxIterations)

	return assemble(sentences, scores, NormalizeTier(tier), cfg), nil
}

// assemble picks the top-K sentences by rank score (ties broken by original
// index) and restores original order before concatenation.
func assemble(sentences []Sentence, scores []float64, tier string, cfg *config.SummaryConfig) *Summary {
	k := targetCount(tier, len(sentences), cfg)

	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if c := cmp.Compare(scores[b], scores[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	selected := slices.Clone(order[:k])
	slices.Sort(selected)

	parts := make([]string, len(selected))
	picked := make([]Sentence, len(selected))
	for i, idx := range selected {
		parts[i] = sentences[idx].Text
		picked[i] = sentences[idx]
	}

	text := strings.Join(parts, " ")
	wordCount := utils.CountWords(text)

	return &Summary{
		Text:          text,
		Sentences:     picked,
		WordCount:     wordCount,
		ReadingTime:   readingTime(wordCount, cfg.ReadingWPM),
		SentenceCount: len(picked),
	}
}

// targetCount resolves a tier to a sentence count: the larger of the tier's
// minimum and its share of the total, capped at the total.
func targetCount(tier string, n int, cfg *config.SummaryConfig) int {
	var tc config.TierConfig
	switch tier {
	case TierShort:
		tc = cfg.Short
	case TierDetailed:
		tc = cfg.Detailed
	default:
		tc = cfg.Medium
	}

	k := int(math.Round(tc.Percent * float64(n)))
	if k < tc.MinSentences {
		k = tc.MinSentences
	}
	if k > n {
		k = n
	}
	if k < 1 {
		k = 1
	}
	return k
}

func readingTime(wordCount, wpm int) int {
	minutes := (wordCount + wpm - 1) / wpm
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
