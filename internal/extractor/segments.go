package extractor

import (
	"regexp"
	"strings"

	"call-metrics-go/internal/types"
)

const (
	defaultSpeakerCount = 2

	// A transcript without segments is laid out over a nominal 30 seconds.
	syntheticSpanSeconds = 30.0
	syntheticConfidence  = 0.9
)

var sentenceTerminators = regexp.MustCompile(`[.!?]+`)

// SplitBySpeaker returns speaker-labelled segments for text. Provided
// segments are copied and any missing speaker is filled by alternation;
// otherwise one estimated segment is synthesized per sentence. The result is
// never empty. Only two roles exist, so with speakerCount > 2 every index
// that is not a multiple of speakerCount maps to Customer.
func (e *Engine) SplitBySpeaker(text string, segments []types.Segment, speakerCount int) []types.Segment {
	return splitBySpeaker(text, segments, speakerCount)
}

func splitBySpeaker(text string, segments []types.Segment, speakerCount int) []types.Segment {
	if speakerCount < 1 {
		speakerCount = defaultSpeakerCount
	}
	if len(segments) > 0 {
		out := make([]types.Segment, len(segments))
		copy(out, segments)
		for i := range out {
			out[i].Estimated = false
			if out[i].Speaker == "" {
				out[i].Speaker = alternateSpeaker(i, speakerCount)
			}
		}
		return out
	}

	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return []types.Segment{{
			ID:           0,
			StartSeconds: 0,
			EndSeconds:   syntheticSpanSeconds,
			Text:         text,
			Speaker:      types.SpeakerAgent,
			Confidence:   syntheticConfidence,
			Estimated:    true,
		}}
	}
	span := syntheticSpanSeconds / float64(len(sentences))
	out := make([]types.Segment, 0, len(sentences))
	for i, s := range sentences {
		out = append(out, types.Segment{
			ID:           i,
			StartSeconds: float64(i) * span,
			EndSeconds:   float64(i+1) * span,
			Text:         s,
			Speaker:      alternateSpeaker(i, speakerCount),
			Confidence:   syntheticConfidence,
			Estimated:    true,
		})
	}
	return out
}

func alternateSpeaker(index, speakerCount int) types.Speaker {
	if index%speakerCount == 0 {
		return types.SpeakerAgent
	}
	return types.SpeakerCustomer
}

func splitSentences(text string) []string {
	var out []string
	for _, s := range sentenceTerminators.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
