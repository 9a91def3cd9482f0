package services

import (
	"context"
	"fmt"

	"bank-dashboard/internal/models"
	"bank-dashboard/internal/repositories"
)

type customerInsightsService struct {
	customerRepo repositories.CustomerRepositoryInterface
	instr        instrumentation
}

func NewCustomerInsightsService(
	customerRepo repositories.CustomerRepositoryInterface,
	logger AnalyticsLoggerInterface,
	metrics MetricsRecorderInterface,
) CustomerInsightsInterface {
	return &customerInsightsService{
		customerRepo: customerRepo,
		instr:        instrumentation{logger: logger, metrics: metrics},
	}
}

// Countries lists the distinct customer countries in ascending order.
func (s *customerInsightsService) Countries(ctx context.Context) ([]string, error) {
	countries, err := s.customerRepo.Countries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	if countries == nil {
		countries = []string{}
	}
	return countries, nil
}

// Segments counts customers per income level and per segment, optionally
// within one country.
func (s *customerInsightsService) Segments(ctx context.Context, country *string) (breakdown *models.SegmentBreakdown, err error) {
	country = normalizeCountry(country)

	filter := "country=*"
	if country != nil {
		filter = "country=" + *country
	}

	var rows int
	finish := s.instr.start(ctx, AggregatorSegments, filter)
	defer func() { finish(rows, err) }()

	income, err := s.customerRepo.IncomeLevelCounts(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("failed to count income levels: %w", err)
	}

	segments, err := s.customerRepo.SegmentCounts(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("failed to count segments: %w", err)
	}
	rows = len(income) + len(segments)

	breakdown = models.NewSegmentBreakdown()
	for _, row := range income {
		breakdown.IncomeData[row.Label] = row.Count
	}
	for _, row := range segments {
		breakdown.SegmentData[row.Label] = row.Count
	}

	return breakdown, nil
}
