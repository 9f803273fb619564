package processor

import "math"

// Rank computes the stationary distribution of the random walk over the
// similarity graph by synchronous power iteration. It stops when the L1
// change between iterates drops below tolerance or after maxIterations,
// returning the last iterate either way. Scores are non-negative and sum
// to 1 at every step.
func Rank(graph *Graph, damping, tolerance float64, maxIterations int) []float64 {
	n := graph.N
	if n == 0 {
		return nil
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}

	outSums := outgoingSums(graph)

	for iter := 0; iter < maxIterations; iter++ {
		next := rankStep(graph, scores, outSums, damping)

		delta := 0.0
		for i := range next {
			delta += math.Abs(next[i] - scores[i])
		}
		scores = next

		if delta < tolerance {
			break
		}
	}

	return scores
}

// rankStep advances one synchronous iteration:
//
//	next[i] = (1-d)/N + d * Σ_j prev[j] * w(j,i) / outSum(j)
//
// Nodes with no outgoing weight spread their mass uniformly, which keeps
// the total probability mass at exactly 1.
func rankStep(graph *Graph, prev, outSums []float64, damping float64) []float64 {
	n := graph.N
	next := make([]float64, n)
	base := (1.0 - damping) / float64(n)

	danglingMass := 0.0
	for j := 0; j < n; j++ {
		if outSums[j] == 0 {
			danglingMass += prev[j]
		}
	}

	for i := 0; i < n; i++ {
		link := danglingMass / float64(n)
		for j := 0; j < n; j++ {
			weight := graph.Adjacency[j][i]
			if weight > 0 && outSums[j] > 0 {
				link += prev[j] * (weight / outSums[j])
			}
		}
		next[i] = base + damping*link
	}

	return next
}

func outgoingSums(graph *Graph) []float64 {
	sums := make([]float64, graph.N)
	for i := range sums {
		for j := 0; j < graph.N; j++ {
			sums[i] += graph.Adjacency[i][j]
		}
	}
	return sums
}
