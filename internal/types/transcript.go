// internal/types/transcript.go
package types

// Speaker is one of the two roles on a sales call.
type Speaker string

const (
	SpeakerAgent    Speaker = "Agent"
	SpeakerCustomer Speaker = "Customer"
)

// Sentiment is the lexical polarity label of a transcript.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Transcript is the raw engine input. Text is a pointer so a missing text can
// be told apart from an empty one; the engine rejects a nil Text.
type Transcript struct {
	Text            *string         `json:"text"`
	Segments        []Segment       `json:"segments,omitempty"`
	Words           []WordTimestamp `json:"words,omitempty"`
	DurationSeconds float64         `json:"duration_seconds,omitempty"`
}

// Segment is a time-bounded, speaker-attributed span of transcript text.
type Segment struct {
	ID           int     `json:"id"`
	StartSeconds float64 `json:"start_seconds"`
	EndSeconds   float64 `json:"end_seconds"`
	Text         string  `json:"text"`
	Speaker      Speaker `json:"speaker,omitempty"`
	Confidence   float64 `json:"confidence"`

	// Estimated marks segments synthesized from sentence splitting. Their
	// bounds are placeholders, not measured speech. Only the engine sets it.
	Estimated bool `json:"-"`
}

// Duration returns EndSeconds - StartSeconds.
func (s Segment) Duration() float64 { return s.EndSeconds - s.StartSeconds }

// WordTimestamp is a single transcribed word. Speaker is empty when the
// transcription provider did not attribute the word.
type WordTimestamp struct {
	Word         string  `json:"word"`
	StartSeconds float64 `json:"start_seconds"`
	EndSeconds   float64 `json:"end_seconds"`
	Speaker      Speaker `json:"speaker,omitempty"`
}

// Duration returns EndSeconds - StartSeconds.
func (w WordTimestamp) Duration() float64 { return w.EndSeconds - w.StartSeconds }
