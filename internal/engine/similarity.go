package engine

import (
	"math"
	"strings"
)

// Similarity scores two texts in [0,1]: the Jaccard index of their
// normalized token sets, boosted for shared tokens that belong to lexicon
// trigger lists (0.1 per category membership, scaled by 0.3). Symmetric,
// and 1.0 whenever both normalize to the same string.
func (e *Engine) Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	a = Normalize(a)
	b = Normalize(b)

	if a == b {
		return 1
	}

	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	boost := 0.0
	for token := range setA {
		if !setB[token] {
			continue
		}
		intersection++
		for _, cat := range e.lexicon {
			if containsString(cat.Triggers, token) {
				boost += 0.1
			}
		}
	}

	union := len(setA) + len(setB) - intersection
	score := float64(intersection)/float64(union) + boost*0.3

	return math.Min(1, score)
}

// tokenSet splits normalized text into a set of whitespace-delimited tokens.
func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range strings.Fields(text) {
		set[token] = true
	}
	return set
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
