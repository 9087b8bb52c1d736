// Package engine implements the chatbot core: text normalization, the
// lexicon classifier, the similarity-based FAQ matcher and the response
// selection policy. The engine holds no FAQ state of its own; callers pass
// the current collection into Respond.
package engine

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// DefaultInstagramHandle is used for the human-operator hand-off reply
// unless overridden via SetInstagramHandle.
const DefaultInstagramHandle = "@apmshow_"

// Engine ties the lexicon, the trained facts and the fallback random
// source together. Safe for concurrent use.
type Engine struct {
	lexicon []Category
	handle  string

	mu      sync.Mutex // guards rng and trained
	rng     *rand.Rand
	trained []TrainedFact
}

// New creates an engine with the default lexicon and a time-seeded random
// source.
func New() *Engine {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource creates an engine whose default-reply selection draws from
// the given source, so tests can pin a seed.
func NewWithSource(src rand.Source) *Engine {
	return &Engine{
		lexicon: DefaultLexicon(),
		handle:  DefaultInstagramHandle,
		rng:     rand.New(src),
	}
}

// SetInstagramHandle overrides the contact handle used in the hand-off
// reply. Empty values are ignored.
func (e *Engine) SetInstagramHandle(handle string) {
	if handle != "" {
		e.handle = handle
	}
}

// Handoff is the fixed human-operator hand-off reply, including the
// configured contact handle.
func (e *Engine) Handoff() string {
	return fmt.Sprintf("برای ارتباط با اپراتور انسانی، لطفاً به آی‌دی اینستاگرام ما پیام دهید: %s", e.handle)
}
