// internal/types/metrics.go
package types

// --------------------------------------------
// Engine output: one bundle per transcript
// --------------------------------------------

// MetricsBundle is the full set of coaching metrics for one call. Bundles
// returned by the engine may be shared with its cache and must be treated as
// read-only.
type MetricsBundle struct {
	Sentiment          Sentiment      `json:"sentiment"`
	Keywords           []string       `json:"keywords"`
	CallScore          int            `json:"call_score"`
	TalkRatio          TalkRatio      `json:"talk_ratio"`
	SpeakingSpeed      SpeakingSpeed  `json:"speaking_speed"`
	FillerWords        FillerStats    `json:"filler_words"`
	Objections         ObjectionStats `json:"objections"`
	CustomerEngagement int            `json:"customer_engagement"`
	Confidence         float64        `json:"confidence"`

	// Word-level analyses; nil unless the transcript carried word timestamps.
	Interruptions []Interruption `json:"interruptions,omitempty"`
	Pauses        *PauseStats    `json:"pauses,omitempty"`
	Emphasis      *EmphasisStats `json:"emphasis,omitempty"`
}

// TalkRatio is the percentage split of speaking time. Agent + Customer == 100.
type TalkRatio struct {
	Agent    float64 `json:"agent"`
	Customer float64 `json:"customer"`
}

// SpeakingSpeed is words per minute, overall and per speaker.
type SpeakingSpeed struct {
	Overall  float64 `json:"overall"`
	Agent    float64 `json:"agent"`
	Customer float64 `json:"customer"`
}

type FillerStats struct {
	Count     int            `json:"count"`
	PerMinute float64        `json:"per_minute"`
	Breakdown map[string]int `json:"breakdown"`
}

type ObjectionStats struct {
	Count     int      `json:"count"`
	Instances []string `json:"instances"`
}

// Interruption is a speaker change with less than the overlap threshold of
// silence between the two words.
type Interruption struct {
	TimeSeconds         float64 `json:"time_seconds"`
	InterruptedSpeaker  Speaker `json:"interrupted_speaker"`
	InterruptingSpeaker Speaker `json:"interrupting_speaker"`
	InterruptedWord     string  `json:"interrupted_word"`
	InterruptingWord    string  `json:"interrupting_word"`
}

type PauseStats struct {
	Count           int         `json:"count"`
	AverageDuration float64     `json:"average_duration"`
	LongPauses      []LongPause `json:"long_pauses"`
}

type LongPause struct {
	StartSeconds    float64 `json:"start_seconds"`
	DurationSeconds float64 `json:"duration_seconds"`
	BeforeWord      string  `json:"before_word"`
	AfterWord       string  `json:"after_word"`
	Speaker         Speaker `json:"speaker,omitempty"`
}

type EmphasisStats struct {
	Words []string `json:"words"`
	Count int      `json:"count"`
}
