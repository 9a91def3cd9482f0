package services

import (
	"context"
	"fmt"
	"strconv"

	"bank-dashboard/internal/models"
	"bank-dashboard/internal/repositories"
)

type transactionAnalyticsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	instr           instrumentation
}

func NewTransactionAnalyticsService(
	transactionRepo repositories.TransactionRepositoryInterface,
	logger AnalyticsLoggerInterface,
	metrics MetricsRecorderInterface,
) TransactionAnalyticsInterface {
	return &transactionAnalyticsService{
		transactionRepo: transactionRepo,
		instr:           instrumentation{logger: logger, metrics: metrics},
	}
}

// Aggregate returns twelve monthly totals for each channel in year. Months
// without activity are zero. Rows with a channel outside the known set are
// skipped and counted.
func (s *transactionAnalyticsService) Aggregate(ctx context.Context, year int) (series *models.TransactionSeries, err error) {
	if year <= 0 {
		return nil, fmt.Errorf("%w: year", ErrMissingParameter)
	}

	var rows int
	finish := s.instr.start(ctx, AggregatorTransactions, "year="+strconv.Itoa(year))
	defer func() { finish(rows, err) }()

	totals, err := s.transactionRepo.MonthlyChannelTotals(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate transactions: %w", err)
	}

	rows = len(totals)
	if rows == 0 {
		return nil, ErrNoData
	}

	var grid models.TransactionGrid
	for _, total := range totals {
		channel := models.ParseChannel(total.Channel)
		if !channel.IsKnown() {
			s.instr.skip(ctx, AggregatorTransactions, SkipReasonUnknownValue, total.Channel)
			continue
		}

		if !grid.Add(total.Month, channel, total.TotalAmount.InexactFloat64()) {
			s.instr.skip(ctx, AggregatorTransactions, SkipReasonMonthOutRange, strconv.Itoa(total.Month))
		}
	}

	return grid.Series(), nil
}
