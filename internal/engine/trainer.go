package engine

import "strings"

// TrainFromText parses colon-delimited training text into keyword/response
// facts. Each non-empty line containing a colon becomes one fact; other
// lines are skipped. Facts accumulate in order and are never deduplicated.
// The response policy does not consult them; they are kept for inspection
// and interface parity. Returns the number of facts added.
func (e *Engine) TrainFromText(text string) int {
	added := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, ":") {
			continue
		}
		keyword, response, _ := strings.Cut(line, ":")

		e.mu.Lock()
		e.trained = append(e.trained, TrainedFact{
			Keyword:  strings.TrimSpace(keyword),
			Response: strings.TrimSpace(response),
		})
		e.mu.Unlock()
		added++
	}
	return added
}

// TrainedFacts returns a copy of the accumulated training facts.
func (e *Engine) TrainedFacts() []TrainedFact {
	e.mu.Lock()
	defer e.mu.Unlock()
	facts := make([]TrainedFact, len(e.trained))
	copy(facts, e.trained)
	return facts
}
