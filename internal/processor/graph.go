package processor

import "math"

// BuildGraph computes pairwise cosine similarity over term-frequency vectors
// and returns the complete weighted graph. Similarity is symmetric and the
// diagonal stays zero.
func BuildGraph(sentences []Sentence, stopwords map[string]bool) *Graph {
	n := len(sentences)
	graph := &Graph{N: n, Adjacency: make([][]float64, n)}

	vectors := make([]map[string]float64, n)
	norms := make([]float64, n)
	for i, s := range sentences {
		vectors[i] = termVector(s.Tokens, stopwords)
		norms[i] = vectorNorm(vectors[i])
		graph.Adjacency[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim := cosine(vectors[i], norms[i], vectors[j], norms[j])
			graph.Adjacency[i][j] = sim
			graph.Adjacency[j][i] = sim
		}
	}

	return graph
}

// termVector counts significant terms. When every token is a stop word the
// unfiltered counts are used instead, so identical sentences still reach
// similarity 1.0.
func termVector(tokens []string, stopwords map[string]bool) map[string]float64 {
	vec := make(map[string]float64)
	for _, tok := range tokens {
		if !stopwords[tok] {
			vec[tok]++
		}
	}
	if len(vec) == 0 {
		for _, tok := range tokens {
			vec[tok]++
		}
	}
	return vec
}

func vectorNorm(vec map[string]float64) float64 {
	sum := 0.0
	for _, f := range vec {
		sum += f * f
	}
	return math.Sqrt(sum)
}

func cosine(a map[string]float64, normA float64, b map[string]float64, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0.0
	}

	if len(b) < len(a) {
		a, b = b, a
	}

	dot := 0.0
	for term, fa := range a {
		if fb, ok := b[term]; ok {
			dot += fa * fb
		}
	}

	sim := dot / (normA * normB)
	// floating error can push identical vectors a hair past 1.0
	if sim > 1.0 {
		sim = 1.0
	}
	return sim
}
