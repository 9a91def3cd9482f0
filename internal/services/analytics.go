package services

import (
	"context"
	"errors"
	"time"
)

const (
	AggregatorCharts       = "charts"
	AggregatorTransactions = "transactions"
	AggregatorLoans        = "loans"
	AggregatorCohorts      = "cohorts"
	AggregatorSegments     = "segments"
)

var (
	ErrMissingParameter = errors.New("missing required parameter")
	ErrNoData           = errors.New("no data found for the requested period")
)

// instrumentation wraps an aggregation run with logging and metrics.
type instrumentation struct {
	logger  AnalyticsLoggerInterface
	metrics MetricsRecorderInterface
}

// start logs the run and returns the function that must be called with
// the grouped row count and the final error.
func (in instrumentation) start(ctx context.Context, aggregator, filter string) func(rows int, err error) {
	started := time.Now()
	in.logger.LogAggregationStarted(ctx, aggregator, filter)

	return func(rows int, err error) {
		elapsed := time.Since(started)
		in.metrics.RecordProcessingTime(aggregator, elapsed)
		in.metrics.IncrementCounter(MetricAnalyticsRequest, map[string]string{
			"aggregator": aggregator,
			"outcome":    outcomeOf(err),
		})

		if err != nil && !errors.Is(err, ErrNoData) {
			in.logger.LogAggregationFailed(ctx, aggregator, err.Error(), elapsed.Milliseconds())
			return
		}
		in.logger.LogAggregationCompleted(ctx, aggregator, rows, elapsed.Milliseconds())
	}
}

func (in instrumentation) skip(ctx context.Context, aggregator, reason, value string) {
	in.logger.LogSkippedRow(ctx, aggregator, reason, value)
	in.metrics.IncrementCounter(MetricAnalyticsSkipped, map[string]string{
		"aggregator": aggregator,
		"reason":     reason,
	})
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrNoData):
		return OutcomeNoData
	case errors.Is(err, ErrMissingParameter):
		return OutcomeInvalid
	default:
		return OutcomeFailed
	}
}
