// Package processor wraps a single metrics computation with coaching cards
// and timing.
package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"call-metrics-go/internal/actionable"
	"call-metrics-go/internal/types"
)

// Analyzer computes a metrics bundle. *extractor.Engine satisfies it.
type Analyzer interface {
	CalculateCallMetrics(t *types.Transcript) (*types.MetricsBundle, error)
}

// Fetcher retrieves a transcript by URL. *transcription.Client satisfies it.
type Fetcher interface {
	GetTranscript(ctx context.Context, url string) (*types.Transcript, error)
}

// KPIResult is returned by /analyze and written to batch reports.
type KPIResult struct {
	CallID        string                  `json:"call_id"`
	TranscriptURL string                  `json:"transcript_url,omitempty"`
	Metrics       *types.MetricsBundle    `json:"metrics,omitempty"`
	Coaching      []actionable.ActionCard `json:"coaching,omitempty"`
	DurationMs    int64                   `json:"duration_ms"`
	Error         string                  `json:"error,omitempty"`
}

// ProcessTranscript analyzes tr. An empty callID is replaced by a generated
// one. On error the result still carries the call id, timing and message.
func ProcessTranscript(a Analyzer, callID string, tr *types.Transcript) (KPIResult, error) {
	start := time.Now()
	if callID == "" {
		callID = uuid.NewString()
	}
	res := KPIResult{CallID: callID}

	b, err := a.CalculateCallMetrics(tr)
	if err != nil {
		res.Error = fmt.Sprintf("metrics error: %v", err)
		res.DurationMs = time.Since(start).Milliseconds()
		return res, fmt.Errorf("call %s: %w", callID, err)
	}
	res.Metrics = b
	res.Coaching = actionable.Generate(b)
	res.DurationMs = time.Since(start).Milliseconds()
	return res, nil
}

// ProcessURL fetches the transcript at url and analyzes it.
func ProcessURL(ctx context.Context, f Fetcher, a Analyzer, callID, url string) (KPIResult, error) {
	start := time.Now()
	tr, err := f.GetTranscript(ctx, url)
	if err != nil {
		res := KPIResult{CallID: callID, TranscriptURL: url}
		res.Error = fmt.Sprintf("transcription error: %v", err)
		res.DurationMs = time.Since(start).Milliseconds()
		return res, fmt.Errorf("fetch transcript: %w", err)
	}
	res, err := ProcessTranscript(a, callID, tr)
	res.TranscriptURL = url
	res.DurationMs = time.Since(start).Milliseconds()
	return res, err
}
