package repositories

import (
	"context"
	"testing"

	"bank-dashboard/internal/database"
	"bank-dashboard/internal/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"
)

func TestChartRepository(t *testing.T) {
	suite.Run(t, new(ChartRepositorySuite))
}

type ChartRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo ChartRepositoryInterface
	ctx  context.Context
}

func (s *ChartRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewChartRepository(s.db.DB)
	s.ctx = context.Background()

	for _, chart := range []models.Chart{
		{ID: 1, Description: "Transactions", AllowedRoles: datatypes.JSONSlice[string]{"Admin", "Business Leader"}},
		{ID: 2, Description: "Loans", AllowedRoles: datatypes.JSONSlice[string]{"Admin"}},
		{ID: 3, Description: "Cohorts", AllowedRoles: datatypes.JSONSlice[string]{"Marketing Analyst", "Business Leader"}},
		{ID: 4, Description: "Hidden"},
	} {
		chart := chart
		s.Require().NoError(s.repo.Create(s.ctx, &chart))
	}
}

func (s *ChartRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ChartRepositorySuite) TestListByRole_Containment() {
	charts, err := s.repo.ListByRole(s.ctx, "Business Leader")
	s.Require().NoError(err)
	s.Require().Len(charts, 2)
	s.Equal(uint(1), charts[0].ID)
	s.Equal(uint(3), charts[1].ID)
}

func (s *ChartRepositorySuite) TestListByRole_UnknownRole() {
	charts, err := s.repo.ListByRole(s.ctx, "Intern")
	s.Require().NoError(err)
	s.Empty(charts)
}

func (s *ChartRepositorySuite) TestListAll_RoundTripsRoles() {
	charts, err := s.repo.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(charts, 4)
	s.Equal([]string{"Admin", "Business Leader"}, []string(charts[0].AllowedRoles))
	s.Empty(charts[3].AllowedRoles)
}

func (s *ChartRepositorySuite) TestCreate_RequiresDescription() {
	err := s.repo.Create(s.ctx, &models.Chart{ID: 10})
	s.ErrorIs(err, models.ErrChartDescriptionRequired)
}
