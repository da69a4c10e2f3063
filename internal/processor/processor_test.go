package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-metrics-go/internal/extractor"
	"call-metrics-go/internal/types"
)

type stubFetcher struct {
	tr  *types.Transcript
	err error
	got string
}

func (f *stubFetcher) GetTranscript(_ context.Context, url string) (*types.Transcript, error) {
	f.got = url
	return f.tr, f.err
}

func text(s string) *string { return &s }

func TestProcessTranscript(t *testing.T) {
	eng := extractor.New()
	res, err := ProcessTranscript(eng, "call-1", &types.Transcript{Text: text("Thanks, this is great. I appreciate the help.")})
	require.NoError(t, err)
	assert.Equal(t, "call-1", res.CallID)
	require.NotNil(t, res.Metrics)
	assert.Equal(t, types.SentimentPositive, res.Metrics.Sentiment)
	assert.NotEmpty(t, res.Coaching)
	assert.Empty(t, res.Error)
}

func TestProcessTranscriptGeneratesCallID(t *testing.T) {
	res, err := ProcessTranscript(extractor.New(), "", &types.Transcript{Text: text("hello")})
	require.NoError(t, err)
	assert.Len(t, res.CallID, 36)
}

func TestProcessTranscriptInvalid(t *testing.T) {
	res, err := ProcessTranscript(extractor.New(), "bad", &types.Transcript{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, extractor.ErrInvalidInput))
	assert.Nil(t, res.Metrics)
	assert.Contains(t, res.Error, "metrics error")
	assert.Equal(t, "bad", res.CallID)
}

func TestProcessURL(t *testing.T) {
	f := &stubFetcher{tr: &types.Transcript{Text: text("we have a problem, this is terrible")}}
	res, err := ProcessURL(context.Background(), f, extractor.New(), "c2", "https://example.test/t.json")
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/t.json", f.got)
	assert.Equal(t, "https://example.test/t.json", res.TranscriptURL)
	assert.Equal(t, types.SentimentNegative, res.Metrics.Sentiment)
}

func TestProcessURLFetchError(t *testing.T) {
	boom := errors.New("boom")
	res, err := ProcessURL(context.Background(), &stubFetcher{err: boom}, extractor.New(), "c3", "u")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, res.Error, "transcription error")
	assert.Nil(t, res.Metrics)
}
