package transcription

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"

	"call-metrics-go/internal/logger"
	"call-metrics-go/internal/types"
)

// ErrNotFound is returned when the transcript store has no document at the URL.
var ErrNotFound = errors.New("transcript not found")

// Client downloads transcript documents produced by the upload pipeline.
type Client struct {
	HTTP           *http.Client
	MaxElapsedTime time.Duration
	log            *logger.Logger
}

// NewClient returns a client with the given per-request timeout.
func NewClient(timeout time.Duration, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Discard()
	}
	return &Client{
		HTTP:           &http.Client{Timeout: timeout},
		MaxElapsedTime: 12 * time.Second,
		log:            log,
	}
}

// GetTranscript fetches and decodes the transcript JSON at url. Supports mock
// mode via env USE_MOCK_TRANSCRIBE=true.
func (c *Client) GetTranscript(ctx context.Context, url string) (*types.Transcript, error) {
	if os.Getenv("USE_MOCK_TRANSCRIBE") == "true" {
		return mockTranscript(), nil
	}
	if url == "" {
		return nil, errors.New("transcript url is empty")
	}
	log := c.log.WithField("module", "transcription").WithField("transcript_url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var tr types.Transcript
	if err := c.doJSON(ctx, req, &tr); err != nil {
		log.WithField("error", err.Error()).Warn("transcript download failed")
		return nil, err
	}
	log.WithField("segments", len(tr.Segments)).WithField("words", len(tr.Words)).Info("transcript downloaded")
	return &tr, nil
}

func (c *Client) doJSON(ctx context.Context, req *http.Request, target interface{}) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = c.MaxElapsedTime
	var lastErr error
	op := func() error {
		resp, err := c.HTTP.Do(req)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		switch {
		case resp.StatusCode == http.StatusNotFound:
			lastErr = ErrNotFound
			return backoff.Permanent(lastErr)
		case resp.StatusCode >= 500:
			lastErr = fmt.Errorf("server error: %s", string(body))
			return lastErr
		case resp.StatusCode >= 400:
			lastErr = fmt.Errorf("client error %d: %s", resp.StatusCode, string(body))
			return backoff.Permanent(lastErr)
		}
		if len(body) == 0 {
			lastErr = fmt.Errorf("empty body")
			return lastErr
		}
		if err := json.Unmarshal(body, target); err != nil {
			lastErr = fmt.Errorf("json decode error: %v body=%s", err, string(body))
			return backoff.Permanent(lastErr)
		}
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		if lastErr == nil {
			lastErr = err
		}
		return lastErr
	}
	return nil
}

func mockTranscript() *types.Transcript {
	text := "Thanks for taking the call. Um, honestly it's too expensive for us right now. " +
		"I understand, let me help you find a plan that fits."
	return &types.Transcript{
		Text: &text,
		Segments: []types.Segment{
			{ID: 1, StartSeconds: 0, EndSeconds: 3, Text: "Thanks for taking the call.", Speaker: types.SpeakerAgent, Confidence: 0.94},
			{ID: 2, StartSeconds: 3, EndSeconds: 8, Text: "Um, honestly it's too expensive for us right now.", Speaker: types.SpeakerCustomer, Confidence: 0.91},
			{ID: 3, StartSeconds: 8, EndSeconds: 12, Text: "I understand, let me help you find a plan that fits.", Speaker: types.SpeakerAgent, Confidence: 0.93},
		},
		DurationSeconds: 12,
	}
}

// DecodeTranscript reads one transcript JSON document from r. Validation is
// left to the engine.
func DecodeTranscript(r io.Reader) (*types.Transcript, error) {
	var tr types.Transcript
	if err := json.NewDecoder(r).Decode(&tr); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	return &tr, nil
}
