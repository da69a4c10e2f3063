package extractor

import "call-metrics-go/internal/types"

// sentimentMargin is how many times one polarity must outnumber the other
// before a label other than neutral is given.
const sentimentMargin = 1.5

// AnalyzeSentiment labels text by counting whole-word hits against the
// positive and negative lists. Results are memoized by exact text.
func (e *Engine) AnalyzeSentiment(text string) types.Sentiment {
	return cached(e, e.sentiments, tableSentiment, text, func() types.Sentiment {
		return classify(countMatches(e.lex.positive, text), countMatches(e.lex.negative, text))
	})
}

func classify(pos, neg int) types.Sentiment {
	switch {
	case float64(pos) > float64(neg)*sentimentMargin:
		return types.SentimentPositive
	case float64(neg) > float64(pos)*sentimentMargin:
		return types.SentimentNegative
	default:
		return types.SentimentNeutral
	}
}
