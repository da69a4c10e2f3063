package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-metrics-go/internal/config"
	"call-metrics-go/internal/logger"
	"call-metrics-go/internal/observe"
	"call-metrics-go/internal/types"
)

func TestNewEngineWithLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("positive: [stellar]\n"), 0o600))

	eng, err := NewEngine(&config.Config{SpeakerCount: 2, LexiconPath: path}, logger.Discard(), nil)
	require.NoError(t, err)
	assert.Equal(t, types.SentimentPositive, eng.AnalyzeSentiment("a stellar call"))
	assert.Equal(t, types.SentimentNeutral, eng.AnalyzeSentiment("a great call"))
}

func TestNewEngineBadLexicon(t *testing.T) {
	_, err := NewEngine(&config.Config{LexiconPath: filepath.Join(t.TempDir(), "nope.yaml")}, logger.Discard(), nil)
	assert.ErrorContains(t, err, "load lexicon")
}

func TestRunCacheReset(t *testing.T) {
	m := observe.NewMetrics()
	eng, err := NewEngine(&config.Config{SpeakerCount: 2}, logger.Discard(), m)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RunCacheReset(ctx, eng, 5*time.Millisecond)
		close(done)
	}()
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.CacheResets) >= 2
	}, 2*time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestRunCacheResetDisabled(t *testing.T) {
	eng, err := NewEngine(&config.Config{}, logger.Discard(), nil)
	require.NoError(t, err)
	RunCacheReset(context.Background(), eng, 0)
}
