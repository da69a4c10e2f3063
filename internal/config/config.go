// Package config loads the runtime settings of the call-metrics services
// from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	// DatasetPath is the xlsx file of call records read by the batch command.
	DatasetPath string
	// ReportPath is where the batch command writes its xlsx report.
	ReportPath string
	// LexiconPath optionally points to a YAML lexicon override.
	LexiconPath string

	SpeakerCount int
	// CacheResetInterval clears the engine caches periodically; zero disables it.
	CacheResetInterval time.Duration
	BatchConcurrency   int
	TranscriptTimeout  time.Duration
}

// Load reads configuration from environment variables, applying defaults
// for anything unset. Malformed values are reported together.
func Load() (*Config, error) {
	var errs []error
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "local"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DatasetPath: getEnv("DATASET_PATH", "calls.xlsx"),
		ReportPath:  getEnv("REPORT_PATH", "call_metrics_report.xlsx"),
		LexiconPath: os.Getenv("LEXICON_PATH"),
	}

	cfg.SpeakerCount = getInt("SPEAKER_COUNT", 2, &errs)
	cfg.BatchConcurrency = getInt("BATCH_CONCURRENCY", 4, &errs)
	cfg.CacheResetInterval = getDuration("CACHE_RESET_INTERVAL", time.Hour, &errs)
	cfg.TranscriptTimeout = time.Duration(getInt("TRANSCRIPT_TIMEOUT_SEC", 40, &errs)) * time.Second

	if cfg.SpeakerCount < 1 {
		errs = append(errs, fmt.Errorf("SPEAKER_COUNT must be >= 1, got %d", cfg.SpeakerCount))
	}
	if cfg.BatchConcurrency < 1 {
		errs = append(errs, fmt.Errorf("BATCH_CONCURRENCY must be >= 1, got %d", cfg.BatchConcurrency))
	}
	if cfg.CacheResetInterval < 0 {
		errs = append(errs, fmt.Errorf("CACHE_RESET_INTERVAL must not be negative, got %s", cfg.CacheResetInterval))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %q is not an integer", key, v))
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %q is not a duration", key, v))
		return fallback
	}
	return d
}
