package services

import (
	"context"
	"fmt"
	"strings"

	"bank-dashboard/internal/models"
	"bank-dashboard/internal/repositories"
)

type chartResolver struct {
	chartRepo repositories.ChartRepositoryInterface
	instr     instrumentation
}

// NewChartResolver creates a resolver over the chart catalogue
func NewChartResolver(
	chartRepo repositories.ChartRepositoryInterface,
	logger AnalyticsLoggerInterface,
	metrics MetricsRecorderInterface,
) ChartResolverInterface {
	return &chartResolver{
		chartRepo: chartRepo,
		instr:     instrumentation{logger: logger, metrics: metrics},
	}
}

// Resolve returns the descriptors of every chart whose allowed-role set
// contains role, ordered by chart id. An unrecognised role sees nothing.
func (s *chartResolver) Resolve(ctx context.Context, role string) (descriptors []models.ChartDescriptor, err error) {
	if strings.TrimSpace(role) == "" {
		return nil, fmt.Errorf("%w: role", ErrMissingParameter)
	}

	finish := s.instr.start(ctx, AggregatorCharts, "role="+role)
	defer func() { finish(len(descriptors), err) }()

	charts, err := s.chartRepo.ListByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve charts: %w", err)
	}

	descriptors = make([]models.ChartDescriptor, 0, len(charts))
	for i := range charts {
		descriptors = append(descriptors, charts[i].Descriptor())
	}

	return descriptors, nil
}
