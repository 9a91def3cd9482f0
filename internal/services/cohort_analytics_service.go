package services

import (
	"context"
	"fmt"
	"strings"

	"bank-dashboard/internal/models"
	"bank-dashboard/internal/repositories"
)

type cohortAnalyticsService struct {
	customerRepo repositories.CustomerRepositoryInterface
	instr        instrumentation
}

func NewCohortAnalyticsService(
	customerRepo repositories.CustomerRepositoryInterface,
	logger AnalyticsLoggerInterface,
	metrics MetricsRecorderInterface,
) CohortAnalyticsInterface {
	return &cohortAnalyticsService{
		customerRepo: customerRepo,
		instr:        instrumentation{logger: logger, metrics: metrics},
	}
}

// Aggregate counts distinct customers per account-opening year and zone.
// Every year seen in the data carries all five zones. No matching rows
// yields an empty mapping rather than an error.
func (s *cohortAnalyticsService) Aggregate(ctx context.Context, country *string) (cohorts models.CustomerCohorts, err error) {
	country = normalizeCountry(country)

	filter := "country=*"
	if country != nil {
		filter = "country=" + *country
	}

	var rows int
	finish := s.instr.start(ctx, AggregatorCohorts, filter)
	defer func() { finish(rows, err) }()

	counts, err := s.customerRepo.CohortCounts(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate cohorts: %w", err)
	}
	rows = len(counts)

	cohorts = make(models.CustomerCohorts)
	for _, count := range counts {
		if !cohorts.Add(count.OpenYear, models.ParseZone(count.Zone), count.CustomerCount) {
			s.instr.skip(ctx, AggregatorCohorts, SkipReasonUnknownValue, count.Zone)
		}
	}

	return cohorts, nil
}

// normalizeCountry treats a blank filter as no filter.
func normalizeCountry(country *string) *string {
	if country == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*country)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
