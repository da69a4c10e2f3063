package extractor

import (
	"unicode/utf8"

	"call-metrics-go/internal/types"
)

const (
	baseEngagement = 70
	baseConfidence = 0.7
	minTextRunes   = 10
)

// customerEngagement scores customer participation 0-100 from the talk
// split, sentiment and the number of objections raised.
func customerEngagement(customerRatio float64, sentiment types.Sentiment, objections int) int {
	score := baseEngagement
	switch {
	case customerRatio >= 40 && customerRatio <= 60:
		score += 15
	case customerRatio < 30 || customerRatio > 70:
		score -= 10
	}
	switch sentiment {
	case types.SentimentPositive:
		score += 10
	case types.SentimentNegative:
		score -= 15
	}
	score -= 5 * objections
	return clampInt(score, 0, 100)
}

// confidence estimates 0-1 how far the bundle can be trusted, given how much
// of the transcript the caller actually supplied.
func confidence(t *types.Transcript) float64 {
	c := baseConfidence
	if utf8.RuneCountInString(*t.Text) < minTextRunes {
		c -= 0.3
	}
	if len(t.Segments) == 0 {
		c -= 0.2
	}
	if len(t.Words) > 0 {
		c += 0.2
	}
	for _, s := range t.Segments {
		if s.Speaker != "" {
			c += 0.1
			break
		}
	}
	return round2(clampFloat(c, 0, 1))
}
