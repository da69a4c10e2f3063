package extractor

import "call-metrics-go/internal/types"

// interruptionGapSeconds is the silence below which a speaker change counts
// as an interruption. Overlapping words (negative gap) always qualify.
const interruptionGapSeconds = 0.3

// detectInterruptions scans adjacent words for speaker changes with almost
// no silence between them. It needs at least two words and two segments.
func detectInterruptions(words []types.WordTimestamp, segments []types.Segment) []types.Interruption {
	out := []types.Interruption{}
	if len(words) < 2 || len(segments) < 2 {
		return out
	}
	prevSpeaker := wordSpeaker(words[0], segments)
	for i := 1; i < len(words); i++ {
		prev, next := words[i-1], words[i]
		nextSpeaker := wordSpeaker(next, segments)
		if prevSpeaker != "" && nextSpeaker != "" && prevSpeaker != nextSpeaker &&
			next.StartSeconds-prev.EndSeconds < interruptionGapSeconds {
			out = append(out, types.Interruption{
				TimeSeconds:         next.StartSeconds,
				InterruptedSpeaker:  prevSpeaker,
				InterruptingSpeaker: nextSpeaker,
				InterruptedWord:     prev.Word,
				InterruptingWord:    next.Word,
			})
		}
		prevSpeaker = nextSpeaker
	}
	return out
}

// wordSpeaker returns the word's own speaker, else the speaker of the segment
// whose [start,end) interval contains the whole word, else the segment the
// word starts in. Empty means the word could not be attributed.
func wordSpeaker(w types.WordTimestamp, segments []types.Segment) types.Speaker {
	if w.Speaker != "" {
		return w.Speaker
	}
	for _, s := range segments {
		if w.StartSeconds >= s.StartSeconds && w.StartSeconds < s.EndSeconds && w.EndSeconds <= s.EndSeconds {
			return s.Speaker
		}
	}
	for _, s := range segments {
		if w.StartSeconds >= s.StartSeconds && w.StartSeconds < s.EndSeconds {
			return s.Speaker
		}
	}
	return ""
}
