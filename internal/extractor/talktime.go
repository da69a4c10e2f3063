package extractor

import (
	"math"
	"strings"

	"call-metrics-go/internal/types"
)

const (
	fallbackDurationSeconds = 60.0
	minTalkSeconds          = 1.0
)

// talkTime is the result of accumulating speaking time over segments.
type talkTime struct {
	ratio             types.TalkRatio
	speed             types.SpeakingSpeed
	effectiveDuration float64
}

// computeTalkTime accumulates per-speaker time and words. Estimated segments
// contribute words but no measured time, so an unsegmented transcript gets
// the 50/50 default split.
func computeTalkTime(segments []types.Segment, text string, durationSeconds float64) talkTime {
	var agentSec, customerSec float64
	var agentWords, customerWords int
	for _, s := range segments {
		words := len(strings.Fields(s.Text))
		sec := 0.0
		if !s.Estimated {
			sec = s.Duration()
		}
		if s.Speaker == types.SpeakerCustomer {
			customerSec += sec
			customerWords += words
		} else {
			agentSec += sec
			agentWords += words
		}
	}

	var out talkTime
	total := agentSec + customerSec
	if total > 0 {
		out.ratio.Agent = round1(agentSec / total * 100)
	} else {
		out.ratio.Agent = 50
	}
	out.ratio.Customer = 100 - out.ratio.Agent

	switch {
	case durationSeconds > 0:
		out.effectiveDuration = durationSeconds
	case total > 0:
		out.effectiveDuration = total
	default:
		out.effectiveDuration = fallbackDurationSeconds
	}

	totalWords := len(strings.Fields(text))
	if totalWords == 0 {
		totalWords = agentWords + customerWords
	}
	out.speed.Overall = round1(float64(totalWords) / (out.effectiveDuration / 60))
	if total > 0 {
		out.speed.Agent = round1(wordsPerMinute(agentWords, agentSec))
		out.speed.Customer = round1(wordsPerMinute(customerWords, customerSec))
	} else {
		// No measured time. Replaces words / max(talk, 1s) * 60, which would
		// report 60x the word count; a speaker who said anything gets the overall pace.
		if agentWords > 0 {
			out.speed.Agent = out.speed.Overall
		}
		if customerWords > 0 {
			out.speed.Customer = out.speed.Overall
		}
	}
	return out
}

func wordsPerMinute(words int, seconds float64) float64 {
	return float64(words) / math.Max(seconds, minTalkSeconds) * 60
}
