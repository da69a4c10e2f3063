package extractor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"call-metrics-go/internal/types"
)

func fixedJitter(v int) JitterFunc {
	return func(string, int) int { return v }
}

func TestGenerateCallScore(t *testing.T) {
	allPhrases := "thank you, happy to help, let me help, i understand, great question, appreciate it"
	tests := []struct {
		name      string
		text      string
		sentiment types.Sentiment
		jitter    int
		want      int
	}{
		{"base", "hello", types.SentimentNeutral, 0, 70},
		{"positive with phrases", "Thank you, happy to help", types.SentimentPositive, 0, 89},
		{"negative", "awful", types.SentimentNegative, 0, 60},
		{"jitter clamped to bound", "hello", types.SentimentNeutral, 50, 73},
		{"negative jitter clamped", "awful", types.SentimentNegative, -100, 57},
		{"capped at 100", allPhrases, types.SentimentPositive, 3, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(WithJitter(fixedJitter(tt.jitter)))
			assert.Equal(t, tt.want, e.GenerateCallScore(tt.text, tt.sentiment))
		})
	}
}

func TestGenerateCallScoreMemoizedUntilCleared(t *testing.T) {
	calls := 0
	e := New(WithJitter(JitterFunc(func(string, int) int {
		calls++
		return calls % 3
	})))

	first := e.GenerateCallScore("thank you", types.SentimentPositive)
	second := e.GenerateCallScore("thank you", types.SentimentPositive)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)

	e.GenerateCallScore("thank you", types.SentimentNeutral)
	assert.Equal(t, 2, calls)

	e.ClearCaches()
	e.GenerateCallScore("thank you", types.SentimentPositive)
	assert.Equal(t, 3, calls)
}

func TestGenerateCallScoreRange(t *testing.T) {
	e := New()
	for i := 0; i < 200; i++ {
		text := fmt.Sprintf("call %d thank you happy to help", i)
		for _, s := range []types.Sentiment{types.SentimentPositive, types.SentimentNeutral, types.SentimentNegative} {
			score := e.GenerateCallScore(text, s)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func TestHashJitter(t *testing.T) {
	var j HashJitter
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		key := fmt.Sprintf("key-%d", i)
		v := j.Jitter(key, jitterBound)
		assert.GreaterOrEqual(t, v, -jitterBound)
		assert.LessOrEqual(t, v, jitterBound)
		assert.Equal(t, v, j.Jitter(key, jitterBound))
		seen[v] = true
	}
	assert.Len(t, seen, 2*jitterBound+1)
	assert.Zero(t, j.Jitter("anything", 0))
}

func TestGenerateCallScoreStableAcrossEngines(t *testing.T) {
	a, b := New(), New()
	text := "I understand, thank you for your patience"
	assert.Equal(t, a.GenerateCallScore(text, types.SentimentPositive), b.GenerateCallScore(text, types.SentimentPositive))
}
