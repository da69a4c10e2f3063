package actionable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-metrics-go/internal/aggregator"
	"call-metrics-go/internal/types"
)

func TestGenerateWithinTargets(t *testing.T) {
	cards := Generate(&types.MetricsBundle{
		Sentiment:     types.SentimentPositive,
		TalkRatio:     types.TalkRatio{Agent: 50, Customer: 50},
		SpeakingSpeed: types.SpeakingSpeed{Agent: 140},
	})
	require.Len(t, cards, 1)
	assert.Equal(t, "Call within coaching targets", cards[0].Insight)
	assert.Nil(t, Generate(nil))
}

func TestGenerateFlags(t *testing.T) {
	cards := Generate(&types.MetricsBundle{
		Sentiment:     types.SentimentNegative,
		TalkRatio:     types.TalkRatio{Agent: 80, Customer: 20},
		SpeakingSpeed: types.SpeakingSpeed{Agent: 200},
		FillerWords:   types.FillerStats{PerMinute: 5.5},
		Objections:    types.ObjectionStats{Count: 2},
		Interruptions: make([]types.Interruption, 3),
	})
	var insights []string
	for _, c := range cards {
		insights = append(insights, c.Insight)
	}
	assert.Equal(t, []string{
		"Customer sentiment was negative",
		"Customer raised 2 objection(s)",
		"Agent dominated the conversation (80% talk time)",
		"Frequent interruptions (3)",
		"High filler-word rate (5.5/min)",
		"Agent spoke fast (200 wpm)",
	}, insights)
}

func TestGenerateSlowPace(t *testing.T) {
	cards := Generate(&types.MetricsBundle{
		TalkRatio:     types.TalkRatio{Agent: 50, Customer: 50},
		SpeakingSpeed: types.SpeakingSpeed{Agent: 90},
	})
	require.Len(t, cards, 1)
	assert.Equal(t, "Agent spoke slowly (90 wpm)", cards[0].Insight)
}

func TestGenerateForTeam(t *testing.T) {
	tests := []struct {
		name string
		ins  aggregator.Insight
		want string
	}{
		{"empty", aggregator.Insight{}, "No strong coaching pattern detected"},
		{"objections", aggregator.Insight{Calls: 4, ObjectionRate: 0.5, AverageCustomerTalkRatio: 50}, "Objections raised in 50% of calls"},
		{"quiet customers", aggregator.Insight{Calls: 4, AverageCustomerTalkRatio: 20}, "Customers speak only 20% of the time"},
		{"fillers", aggregator.Insight{Calls: 4, AverageCustomerTalkRatio: 45, AverageFillersPerMinute: 6}, "Team filler-word rate 6.0/min"},
		{"healthy", aggregator.Insight{Calls: 4, AverageCustomerTalkRatio: 45}, "No strong coaching pattern detected"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateForTeam(tt.ins).Insight)
		})
	}
}
