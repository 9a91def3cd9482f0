package services

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

const (
	// RedactedValue masks values that must not reach the logs
	RedactedValue = "***REDACTED***"
)

type traceIDKey struct{}

// ContextWithTraceID returns a copy of ctx carrying the request trace ID.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored by ContextWithTraceID.
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return traceID
	}
	return ""
}

// AnalyticsLogger provides structured logging for aggregation runs
type AnalyticsLogger struct {
	logger *slog.Logger
}

// NewAnalyticsLogger creates a new analytics logger
func NewAnalyticsLogger(logger *slog.Logger) AnalyticsLoggerInterface {
	return &AnalyticsLogger{
		logger: logger,
	}
}

func (al *AnalyticsLogger) LogAggregationStarted(ctx context.Context, aggregator string, filter string) {
	al.logger.DebugContext(ctx, "aggregation started",
		slog.String("event_type", "aggregation_started"),
		slog.String("aggregator", aggregator),
		slog.String("filter", filter),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *AnalyticsLogger) LogAggregationCompleted(ctx context.Context, aggregator string, rows int, durationMs int64) {
	al.logger.InfoContext(ctx, "aggregation completed",
		slog.String("event_type", "aggregation_completed"),
		slog.String("aggregator", aggregator),
		slog.Int("rows", rows),
		slog.Int64("duration_ms", durationMs),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *AnalyticsLogger) LogAggregationFailed(ctx context.Context, aggregator string, errorMsg string, durationMs int64) {
	al.logger.ErrorContext(ctx, "aggregation failed",
		slog.String("event_type", "aggregation_failed"),
		slog.String("aggregator", aggregator),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogSkippedRow records a grouped row that was ignored. The row is data,
// not a failure, so it logs at warn.
func (al *AnalyticsLogger) LogSkippedRow(ctx context.Context, aggregator, reason, value string) {
	al.logger.WarnContext(ctx, "skipping anomalous row",
		slog.String("event_type", "row_skipped"),
		slog.String("aggregator", aggregator),
		slog.String("reason", reason),
		slog.String("value", value),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *AnalyticsLogger) LogUserEvent(ctx context.Context, event, email string) {
	al.logger.InfoContext(ctx, "user directory event",
		slog.String("event_type", event),
		slog.String("email", maskEmail(email)),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// maskEmail keeps the first character of the local part and the domain.
func maskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return RedactedValue
	}
	return email[:1] + "***" + email[at:]
}
