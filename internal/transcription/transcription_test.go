package transcription

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-metrics-go/internal/types"
)

const doc = `{
  "text": "Hello. Too expensive.",
  "segments": [
    {"id": 1, "start_seconds": 0, "end_seconds": 2, "text": "Hello.", "speaker": "Agent", "confidence": 0.9},
    {"id": 2, "start_seconds": 2, "end_seconds": 4, "text": "Too expensive.", "speaker": "Customer", "confidence": 0.8}
  ],
  "words": [{"word": "Hello", "start_seconds": 0, "end_seconds": 0.5}],
  "duration_seconds": 4
}`

func newTestClient() *Client {
	c := NewClient(2*time.Second, nil)
	c.MaxElapsedTime = 10 * time.Second
	return c
}

func TestGetTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(doc))
	}))
	defer srv.Close()

	tr, err := newTestClient().GetTranscript(context.Background(), srv.URL)
	require.NoError(t, err)
	require.NotNil(t, tr.Text)
	assert.Equal(t, "Hello. Too expensive.", *tr.Text)
	require.Len(t, tr.Segments, 2)
	assert.Equal(t, types.SpeakerCustomer, tr.Segments[1].Speaker)
	assert.Len(t, tr.Words, 1)
	assert.Equal(t, 4.0, tr.DurationSeconds)
}

func TestGetTranscriptRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(doc))
	}))
	defer srv.Close()

	_, err := newTestClient().GetTranscript(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGetTranscriptNotFoundIsPermanent(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := newTestClient().GetTranscript(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetTranscriptBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := newTestClient().GetTranscript(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json decode error")
}

func TestGetTranscriptMock(t *testing.T) {
	t.Setenv("USE_MOCK_TRANSCRIBE", "true")
	tr, err := newTestClient().GetTranscript(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, tr.Text)
	assert.Len(t, tr.Segments, 3)
}

func TestGetTranscriptEmptyURL(t *testing.T) {
	t.Setenv("USE_MOCK_TRANSCRIBE", "")
	_, err := newTestClient().GetTranscript(context.Background(), "")
	require.Error(t, err)
}

func TestDecodeTranscript(t *testing.T) {
	tr, err := DecodeTranscript(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Len(t, tr.Segments, 2)

	tr, err = DecodeTranscript(strings.NewReader(`{"duration_seconds": 3}`))
	require.NoError(t, err)
	assert.Nil(t, tr.Text)

	_, err = DecodeTranscript(strings.NewReader("nope"))
	require.Error(t, err)
}
