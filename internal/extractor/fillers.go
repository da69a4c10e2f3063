package extractor

import "call-metrics-go/internal/types"

// detectFillers counts whole-word filler terms. Breakdown holds only the
// terms that occurred.
func (e *Engine) detectFillers(text string, effectiveDuration float64) types.FillerStats {
	stats := types.FillerStats{Breakdown: map[string]int{}}
	for _, f := range e.lex.fillers {
		if n := countMatches(f.re, text); n > 0 {
			stats.Breakdown[f.text] += n
			stats.Count += n
		}
	}
	if effectiveDuration > 0 {
		stats.PerMinute = round2(float64(stats.Count) / (effectiveDuration / 60))
	}
	return stats
}
