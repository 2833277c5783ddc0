// Package logger builds the application's structured loggers on log/slog.
//
// Loggers write JSON to stdout; when a Sentry DSN is configured, warnings and
// errors are additionally reported there. Context extractors inject
// request-scoped attributes (request id, user id) into every record.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// ContextExtractor pulls a log attribute out of a context. Returning false
// skips the attribute for that record.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// New creates a JSON logger tagged with a component name. Extractors run on
// every log call so request-scoped values stay fresh.
func New(component string, extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	l := slog.New(decorate(h, extractors...))
	if component != "" {
		l = l.With(slog.String("component", component))
	}
	return l
}

// Discard returns a logger that drops everything. Used as the default in
// constructors whose callers did not configure logging.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SentryConfig configures error reporting.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
}

// NewWithSentry creates a logger that writes to stdout and reports warnings
// and errors to Sentry. With an empty DSN, or if Sentry initialization
// fails, it degrades to stdout-only logging.
func NewWithSentry(component string, cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	stdout := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})

	if cfg.DSN == "" {
		return tagged(slog.New(decorate(stdout, extractors...)), component)
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		l := slog.New(decorate(stdout, extractors...))
		l.Error("sentry init failed, logging to stdout only", slog.Any("error", err))
		return tagged(l, component)
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())

	combined := multiHandler{handlers: []slog.Handler{stdout, sentryHandler}}
	return tagged(slog.New(decorate(combined, extractors...)), component)
}

func tagged(l *slog.Logger, component string) *slog.Logger {
	if component == "" {
		return l
	}
	return l.With(slog.String("component", component))
}
