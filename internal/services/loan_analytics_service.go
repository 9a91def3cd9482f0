package services

import (
	"context"
	"fmt"
	"strconv"

	"bank-dashboard/internal/models"
	"bank-dashboard/internal/repositories"
)

type loanAnalyticsService struct {
	loanRepo repositories.LoanRepositoryInterface
	instr    instrumentation
}

func NewLoanAnalyticsService(
	loanRepo repositories.LoanRepositoryInterface,
	logger AnalyticsLoggerInterface,
	metrics MetricsRecorderInterface,
) LoanAnalyticsInterface {
	return &loanAnalyticsService{
		loanRepo: loanRepo,
		instr:    instrumentation{logger: logger, metrics: metrics},
	}
}

// Aggregate returns one (type, count, amount) triple per loan type that
// started in year, in ascending type order. Types are open-ended, so
// nothing is zero-filled.
func (s *loanAnalyticsService) Aggregate(ctx context.Context, year int) (dist *models.LoanDistribution, err error) {
	if year <= 0 {
		return nil, fmt.Errorf("%w: year", ErrMissingParameter)
	}

	var rows int
	finish := s.instr.start(ctx, AggregatorLoans, "year="+strconv.Itoa(year))
	defer func() { finish(rows, err) }()

	totals, err := s.loanRepo.TypeTotals(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate loans: %w", err)
	}

	rows = len(totals)
	if rows == 0 {
		return nil, ErrNoData
	}

	dist = models.NewLoanDistribution(rows)
	for _, total := range totals {
		dist.Append(total.LoanType, total.LoanCount, total.TotalAmount.InexactFloat64())
	}

	return dist, nil
}
