package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"call-metrics-go/internal/extractor"
	"call-metrics-go/internal/logger"
	"call-metrics-go/internal/observe"
	"call-metrics-go/internal/processor"
	"call-metrics-go/internal/transcription"
)

const maxBodyBytes = 10 << 20

type server struct {
	engine  *extractor.Engine
	fetcher processor.Fetcher
	metrics *observe.Metrics
	log     *logger.Logger
	timeout time.Duration
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /analyze", s.handleAnalyzeBody)
	mux.HandleFunc("GET /analyze", s.handleAnalyzeURL)
	mux.HandleFunc("POST /cache/clear", s.handleClearCaches)
	mux.Handle("GET /metrics", s.metrics.Handler())
	return mux
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.log.WithRequest(r).Debug("health check")
	fmt.Fprint(w, "ok")
}

// handleAnalyzeBody analyzes a transcript JSON document posted in the body.
func (s *server) handleAnalyzeBody(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r).WithField("handler", "analyze")
	tr, err := transcription.DecodeTranscript(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		reqLog.WithError(err).Warn("bad request body")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := processor.ProcessTranscript(s.engine, r.URL.Query().Get("call_id"), tr)
	s.metrics.AnalysisDone(err)
	reqLog.WithField("call_id", res.CallID).WithField("duration_ms", res.DurationMs).Info("analysis finished")
	s.writeResult(w, res, err)
}

// handleAnalyzeURL fetches the transcript named by ?transcript_url= and analyzes it.
func (s *server) handleAnalyzeURL(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r).WithField("handler", "analyze")
	url := r.URL.Query().Get("transcript_url")
	if url == "" {
		reqLog.Warn("missing transcript_url")
		http.Error(w, "missing transcript_url", http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	res, err := processor.ProcessURL(ctx, s.fetcher, s.engine, r.URL.Query().Get("call_id"), url)
	s.metrics.AnalysisDone(err)
	reqLog.WithField("transcript_url", url).WithField("duration_ms", res.DurationMs).Info("analysis finished")
	s.writeResult(w, res, err)
}

func (s *server) handleClearCaches(w http.ResponseWriter, r *http.Request) {
	s.log.WithRequest(r).Info("cache clear requested")
	s.engine.ClearCaches()
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) writeResult(w http.ResponseWriter, res processor.KPIResult, err error) {
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		s.log.WithError(err).WithField("call_id", res.CallID).Warn("processor returned error")
		w.WriteHeader(statusFor(err))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		s.log.WithError(err).Error("failed to write response")
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, extractor.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, transcription.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
