package aggregator

import (
	"sort"

	"call-metrics-go/internal/types"
)

// topKeywordCount is how many keywords an Insight keeps.
const topKeywordCount = 5

// Insight summarizes the metrics of a batch of calls.
type Insight struct {
	Calls                    int                     `json:"calls"`
	SentimentCounts          map[types.Sentiment]int `json:"sentiment_counts"`
	AverageCallScore         float64                 `json:"average_call_score"`
	AverageEngagement        float64                 `json:"average_engagement"`
	AverageCustomerTalkRatio float64                 `json:"average_customer_talk_ratio"`
	AverageFillersPerMinute  float64                 `json:"average_fillers_per_minute"`
	ObjectionRate            float64                 `json:"objection_rate"`
	InterruptionsPerCall     float64                 `json:"interruptions_per_call"`
	TopKeywords              []string                `json:"top_keywords"`
}

// Aggregate folds bundles into an Insight. Nil bundles (failed calls) are skipped.
func Aggregate(bundles []*types.MetricsBundle) Insight {
	ins := Insight{SentimentCounts: map[types.Sentiment]int{}, TopKeywords: []string{}}
	var score, engagement, customer, fillers, interruptions float64
	withObjections := 0
	kwCount := map[string]int{}
	var kwOrder []string
	for _, b := range bundles {
		if b == nil {
			continue
		}
		ins.Calls++
		ins.SentimentCounts[b.Sentiment]++
		score += float64(b.CallScore)
		engagement += float64(b.CustomerEngagement)
		customer += b.TalkRatio.Customer
		fillers += b.FillerWords.PerMinute
		interruptions += float64(len(b.Interruptions))
		if b.Objections.Count > 0 {
			withObjections++
		}
		for _, k := range b.Keywords {
			if kwCount[k] == 0 {
				kwOrder = append(kwOrder, k)
			}
			kwCount[k]++
		}
	}
	if ins.Calls == 0 {
		return ins
	}
	n := float64(ins.Calls)
	ins.AverageCallScore = score / n
	ins.AverageEngagement = engagement / n
	ins.AverageCustomerTalkRatio = customer / n
	ins.AverageFillersPerMinute = fillers / n
	ins.InterruptionsPerCall = interruptions / n
	ins.ObjectionRate = float64(withObjections) / n

	sort.SliceStable(kwOrder, func(i, j int) bool { return kwCount[kwOrder[i]] > kwCount[kwOrder[j]] })
	if len(kwOrder) > topKeywordCount {
		kwOrder = kwOrder[:topKeywordCount]
	}
	ins.TopKeywords = append(ins.TopKeywords, kwOrder...)
	return ins
}
