package engine

// Source identifies which policy branch produced a reply.
type Source string

const (
	SourceFAQ       Source = "faq"
	SourceContext   Source = "context"
	SourceUnclear   Source = "unclear"
	SourceDefault   Source = "default"
	SourceEmpty     Source = "empty"
	SourceError     Source = "error"
	SourceInstagram Source = "instagram"
)

// FaqEntry is a stored question/answer pair. The collection is owned by the
// caller; the engine only reads it.
type FaqEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Reply is the engine's answer to a single message.
type Reply struct {
	Reply      string  `json:"reply"`
	Confidence float64 `json:"confidence"`
	Source     Source  `json:"source"`
}

// TrainedFact is one keyword/response pair parsed from training text.
type TrainedFact struct {
	Keyword  string `json:"keyword"`
	Response string `json:"response"`
}
