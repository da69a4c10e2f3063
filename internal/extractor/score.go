package extractor

import (
	"strings"

	"call-metrics-go/internal/types"
)

const (
	baseCallScore      = 70
	positiveBonus      = 15
	negativePenalty    = 10
	servicePhraseBonus = 2
)

// GenerateCallScore rates a call 0-100 from its sentiment and the service
// phrases the agent used, plus a small jitter. The score is memoized per
// (text, sentiment) so repeated reads see the same number.
func (e *Engine) GenerateCallScore(text string, sentiment types.Sentiment) int {
	key := text + "\x00" + string(sentiment)
	return cached(e, e.scores, tableScore, key, func() int {
		score := baseCallScore
		switch sentiment {
		case types.SentimentPositive:
			score += positiveBonus
		case types.SentimentNegative:
			score -= negativePenalty
		}
		lower := strings.ToLower(text)
		for _, p := range e.lex.service {
			if strings.Contains(lower, p) {
				score += servicePhraseBonus
			}
		}
		score += clampInt(e.jitter.Jitter(key, jitterBound), -jitterBound, jitterBound)
		return clampInt(score, 0, 100)
	})
}
