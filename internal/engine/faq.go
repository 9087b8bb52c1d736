package engine

// MatchThreshold is the minimum similarity score for a FAQ entry to be
// accepted as an answer.
const MatchThreshold = 0.3

// FindBestAnswer scans the FAQ collection for the entry whose stored
// question is most similar to the message. Ties keep the earliest entry
// (strictly-greater comparison). Returns ("", 0) when no entry reaches
// MatchThreshold or the collection is empty.
func (e *Engine) FindBestAnswer(question string, entries []FaqEntry) (string, float64) {
	norm := Normalize(question)

	best := -1
	highest := 0.0
	for i := range entries {
		score := e.Similarity(norm, Normalize(entries[i].Question))
		if score > highest {
			highest = score
			best = i
		}
	}

	if best >= 0 && highest >= MatchThreshold {
		return entries[best].Answer, highest
	}
	return "", 0
}
