// Package app wires configuration into the metrics engine for the commands.
package app

import (
	"context"
	"fmt"
	"time"

	"call-metrics-go/internal/config"
	"call-metrics-go/internal/extractor"
	"call-metrics-go/internal/lexicon"
	"call-metrics-go/internal/logger"
)

// NewEngine builds an engine from cfg. obs may be nil.
func NewEngine(cfg *config.Config, log *logger.Logger, obs extractor.Observer) (*extractor.Engine, error) {
	opts := []extractor.Option{
		extractor.WithLogger(log.Entry),
		extractor.WithSpeakerCount(cfg.SpeakerCount),
		extractor.WithObserver(obs),
	}
	if cfg.LexiconPath != "" {
		lex, err := lexicon.LoadFile(cfg.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		log.WithField("lexicon_path", cfg.LexiconPath).Info("lexicon override loaded")
		opts = append(opts, extractor.WithLexicon(lex))
	}
	return extractor.New(opts...), nil
}

// RunCacheReset clears eng's caches every interval until ctx is done. A
// non-positive interval returns immediately.
func RunCacheReset(ctx context.Context, eng *extractor.Engine, interval time.Duration) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			eng.ClearCaches()
		}
	}
}
