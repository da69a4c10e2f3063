package extractor

import (
	"fmt"
	"math"

	"call-metrics-go/internal/types"
)

// validate rejects transcripts the engine cannot reason about. Absent
// optional data is not an error; contradictory data is.
func validate(t *types.Transcript) error {
	if t == nil {
		return invalid("transcript", "is nil")
	}
	if t.Text == nil {
		return invalid("text", "is missing")
	}
	if !finite(t.DurationSeconds) || t.DurationSeconds < 0 {
		return invalid("duration_seconds", "must be a finite value >= 0, got %v", t.DurationSeconds)
	}
	for i, s := range t.Segments {
		field := fmt.Sprintf("segments[%d]", i)
		if !finite(s.StartSeconds) || !finite(s.EndSeconds) {
			return invalid(field, "has non-finite bounds")
		}
		if s.EndSeconds < s.StartSeconds {
			return invalid(field, "ends before it starts (%v < %v)", s.EndSeconds, s.StartSeconds)
		}
		if !finite(s.Confidence) || s.Confidence < 0 || s.Confidence > 1 {
			return invalid(field, "confidence %v outside [0,1]", s.Confidence)
		}
		if !knownSpeaker(s.Speaker) {
			return invalid(field, "has unknown speaker %q", s.Speaker)
		}
	}
	for i, w := range t.Words {
		field := fmt.Sprintf("words[%d]", i)
		if !finite(w.StartSeconds) || !finite(w.EndSeconds) {
			return invalid(field, "has non-finite bounds")
		}
		if w.EndSeconds < w.StartSeconds {
			return invalid(field, "ends before it starts (%v < %v)", w.EndSeconds, w.StartSeconds)
		}
		if !knownSpeaker(w.Speaker) {
			return invalid(field, "has unknown speaker %q", w.Speaker)
		}
	}
	return nil
}

func knownSpeaker(s types.Speaker) bool {
	return s == "" || s == types.SpeakerAgent || s == types.SpeakerCustomer
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
