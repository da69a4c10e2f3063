package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"call-metrics-go/internal/app"
	"call-metrics-go/internal/config"
	"call-metrics-go/internal/logger"
	"call-metrics-go/internal/observe"
	"call-metrics-go/internal/transcription"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	log = logger.NewFor(cfg.Environment, cfg.LogLevel)
	log.WithField("service", "call-metrics-api").Info("starting service")

	metrics := observe.NewMetrics()
	eng, err := app.NewEngine(cfg, log, metrics)
	if err != nil {
		log.WithError(err).Fatal("failed to build engine")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go app.RunCacheReset(ctx, eng, cfg.CacheResetInterval)

	s := &server{
		engine:  eng,
		fetcher: transcription.NewClient(cfg.TranscriptTimeout, log),
		metrics: metrics,
		log:     log,
		timeout: cfg.TranscriptTimeout,
	}
	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("shutdown failed")
		}
	}()

	log.WithField("addr", addr).WithField("cache_reset_interval", cfg.CacheResetInterval.String()).Info("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("server terminated")
	}
	log.Info("server stopped")
}
