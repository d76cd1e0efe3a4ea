package observability

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

// InitLogger configures the process-wide logger: a human-readable console
// writer in development, JSON with caller info everywhere else.
func InitLogger(serviceName, env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var out io.Writer = os.Stdout
	if env == "development" {
		out = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	builder := zerolog.New(out).With().
		Timestamp().
		Str("service", serviceName)
	if env != "development" {
		builder = builder.Caller()
	}
	log.Logger = builder.Logger()
}

// LoggerFromContext returns the request-scoped logger when the logging
// middleware stored one on the context, the global logger otherwise,
// enriched with the ids of the active trace span.
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		logger = &log.Logger
	}

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		enriched := logger.With().
			Str("trace_id", span.SpanContext().TraceID().String()).
			Str("span_id", span.SpanContext().SpanID().String()).
			Logger()
		return &enriched
	}
	return logger
}

// GetLogger returns the global logger
func GetLogger() *zerolog.Logger {
	return &log.Logger
}
