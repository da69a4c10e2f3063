package actionable

import (
	"fmt"

	"call-metrics-go/internal/aggregator"
	"call-metrics-go/internal/types"
)

// Coaching thresholds.
const (
	maxFillersPerMinute = 4.0
	maxAgentTalkShare   = 65.0
	maxInterruptions    = 3
	maxAgentWPM         = 180.0
	minAgentWPM         = 110.0
	teamObjectionRate   = 0.35
	minCustomerShare    = 30.0
)

type ActionCard struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Impact  string `json:"impact"`
}

// Generate returns coaching cards for one call, most pressing first. A call
// inside every target yields a single "keep going" card.
func Generate(b *types.MetricsBundle) []ActionCard {
	if b == nil {
		return nil
	}
	var cards []ActionCard
	if b.Sentiment == types.SentimentNegative {
		cards = append(cards, ActionCard{
			Insight: "Customer sentiment was negative",
			Action:  "Schedule a follow-up to address the open concerns",
			Impact:  "Recover the relationship before churn risk grows",
		})
	}
	if n := b.Objections.Count; n > 0 {
		cards = append(cards, ActionCard{
			Insight: fmt.Sprintf("Customer raised %d objection(s)", n),
			Action:  "Review the objection-handling playbook for the phrases flagged in evidence",
			Impact:  "Higher conversion on similar calls",
		})
	}
	if b.TalkRatio.Agent > maxAgentTalkShare {
		cards = append(cards, ActionCard{
			Insight: fmt.Sprintf("Agent dominated the conversation (%.0f%% talk time)", b.TalkRatio.Agent),
			Action:  "Ask open discovery questions and let the customer speak",
			Impact:  "Better discovery and customer engagement",
		})
	}
	if n := len(b.Interruptions); n >= maxInterruptions {
		cards = append(cards, ActionCard{
			Insight: fmt.Sprintf("Frequent interruptions (%d)", n),
			Action:  "Wait for the other side to finish before responding",
			Impact:  "Customer feels heard",
		})
	}
	if b.FillerWords.PerMinute > maxFillersPerMinute {
		cards = append(cards, ActionCard{
			Insight: fmt.Sprintf("High filler-word rate (%.1f/min)", b.FillerWords.PerMinute),
			Action:  "Practice pausing instead of filling silence",
			Impact:  "Clearer, more confident delivery",
		})
	}
	switch wpm := b.SpeakingSpeed.Agent; {
	case wpm > maxAgentWPM:
		cards = append(cards, ActionCard{
			Insight: fmt.Sprintf("Agent spoke fast (%.0f wpm)", wpm),
			Action:  "Slow down when explaining pricing and next steps",
			Impact:  "Fewer clarification questions",
		})
	case wpm > 0 && wpm < minAgentWPM:
		cards = append(cards, ActionCard{
			Insight: fmt.Sprintf("Agent spoke slowly (%.0f wpm)", wpm),
			Action:  "Tighten the pitch and keep momentum",
			Impact:  "Holds customer attention",
		})
	}
	if len(cards) == 0 {
		cards = append(cards, ActionCard{
			Insight: "Call within coaching targets",
			Action:  "Keep the current approach",
			Impact:  "Low immediate intervention",
		})
	}
	return cards
}

// GenerateForTeam turns a batch insight into one team-level card.
func GenerateForTeam(ins aggregator.Insight) ActionCard {
	switch {
	case ins.Calls == 0:
	case ins.ObjectionRate >= teamObjectionRate:
		return ActionCard{
			Insight: fmt.Sprintf("Objections raised in %.0f%% of calls", ins.ObjectionRate*100),
			Action:  "Run an objection-handling workshop; refresh pricing talk tracks",
			Impact:  "Reduce lost deals at the pricing stage",
		}
	case ins.AverageCustomerTalkRatio < minCustomerShare:
		return ActionCard{
			Insight: fmt.Sprintf("Customers speak only %.0f%% of the time", ins.AverageCustomerTalkRatio),
			Action:  "Coach reps on discovery questions and active listening",
			Impact:  "Higher engagement and better qualification",
		}
	case ins.AverageFillersPerMinute > maxFillersPerMinute:
		return ActionCard{
			Insight: fmt.Sprintf("Team filler-word rate %.1f/min", ins.AverageFillersPerMinute),
			Action:  "Add delivery drills to weekly coaching",
			Impact:  "More confident pitches",
		}
	}
	return ActionCard{
		Insight: "No strong coaching pattern detected",
		Action:  "Monitor and collect more data",
		Impact:  "Low immediate intervention",
	}
}
