package extractor

import "call-metrics-go/internal/types"

const (
	pauseGapSeconds     = 0.5
	longPauseGapSeconds = 2.0
)

// analyzePauses measures silences between consecutive words of the same
// speaker. A word with no speaker is assumed to continue the current turn.
func analyzePauses(words []types.WordTimestamp) *types.PauseStats {
	stats := &types.PauseStats{LongPauses: []types.LongPause{}}
	var total float64
	for i := 1; i < len(words); i++ {
		prev, next := words[i-1], words[i]
		if !sameSpeaker(prev.Speaker, next.Speaker) {
			continue
		}
		gap := next.StartSeconds - prev.EndSeconds
		if gap < pauseGapSeconds {
			continue
		}
		stats.Count++
		total += gap
		if gap >= longPauseGapSeconds {
			speaker := prev.Speaker
			if speaker == "" {
				speaker = next.Speaker
			}
			stats.LongPauses = append(stats.LongPauses, types.LongPause{
				StartSeconds:    prev.EndSeconds,
				DurationSeconds: round2(gap),
				BeforeWord:      prev.Word,
				AfterWord:       next.Word,
				Speaker:         speaker,
			})
		}
	}
	if stats.Count > 0 {
		stats.AverageDuration = round2(total / float64(stats.Count))
	}
	return stats
}

func sameSpeaker(a, b types.Speaker) bool {
	return a == "" || b == "" || a == b
}
