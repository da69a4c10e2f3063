package logger

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Logger struct {
	*logrus.Entry
}

// New builds a logger from ENVIRONMENT and LOG_LEVEL.
func New() *Logger {
	return NewWithLevel(os.Getenv("LOG_LEVEL"))
}

// NewWithLevel is New with an explicit level instead of LOG_LEVEL.
func NewWithLevel(level string) *Logger {
	return NewFor(os.Getenv("ENVIRONMENT"), level)
}

// NewFor builds a logger for an explicit environment and level.
func NewFor(env, level string) *Logger {
	base := logrus.New()

	// Local env = pretty console; others = JSON
	if env == "" || env == "local" {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
			ForceColors:     true,
		})
	} else {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	}

	base.SetOutput(os.Stdout)
	base.SetLevel(ParseLevel(level))

	return &Logger{Entry: logrus.NewEntry(base)}
}

// Discard returns a logger that drops everything. Used as the default for
// library components and in tests.
func Discard() *Logger {
	base := logrus.New()
	base.SetOutput(io.Discard)
	return &Logger{Entry: logrus.NewEntry(base)}
}

// ParseLevel maps the LOG_LEVEL values to logrus levels; anything unknown is info.
func ParseLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// WithComponent tags the entry with the emitting component.
func (l *Logger) WithComponent(name string) *logrus.Entry {
	return l.WithField("component", name)
}

// WithRequest attaches request metadata and returns an entry
func (l *Logger) WithRequest(r *http.Request) *logrus.Entry {
	reqID := r.Header.Get("X-Request-ID")
	if reqID == "" {
		reqID = uuid.New().String()
	}

	return l.WithFields(logrus.Fields{
		"req_id":     reqID,
		"method":     r.Method,
		"path":       r.URL.Path,
		"remote_ip":  r.RemoteAddr,
		"user_agent": r.UserAgent(),
	})
}

// WithError standardizes error logging
func (l *Logger) WithError(err error) *logrus.Entry {
	if err == nil {
		return l.Entry
	}
	return l.Entry.WithField("error", err.Error())
}
