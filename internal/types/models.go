package types

// CallRecord is one row of a call dataset: a recorded sales call with its
// transcript text and, when known, the call length.
type CallRecord struct {
	CallID          string  `json:"call_id"`
	Agent           string  `json:"agent,omitempty"`
	Transcript      string  `json:"transcript,omitempty"`
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
}

// ToTranscript wraps the record's text as an engine input. Dataset rows carry
// no segments or word timestamps.
func (r CallRecord) ToTranscript() *Transcript {
	text := r.Transcript
	return &Transcript{Text: &text, DurationSeconds: r.DurationSeconds}
}
