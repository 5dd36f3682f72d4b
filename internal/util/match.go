package util

import "github.com/sahilm/fuzzy"

// RankMatches returns candidates fuzzy-matched against input, best first,
// capped at n. An empty input ranks nothing out and returns the candidates
// in their original order.
func RankMatches(input string, candidates []string, n int) []string {
	if input == "" {
		if n > 0 && len(candidates) > n {
			return candidates[:n]
		}
		return candidates
	}
	matches := fuzzy.Find(input, candidates)
	if len(matches) == 0 {
		return nil
	}
	limit := len(matches)
	if n > 0 && n < limit {
		limit = n
	}
	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = matches[i].Str
	}
	return out
}
