package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"phtrs/internal/domain/stats"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
)

func TestGetOverviewUseCase_Success(t *testing.T) {
	statsRepo := new(mockStatsRepo)
	statsRepo.On("Totals", mock.Anything).
		Return(&stats.Totals{
			TotalPotholes:     12,
			AverageSize:       5.5,
			AveragePriority:   6.2,
			TotalDistricts:    3,
			RepairedCount:     4,
			InProgressCount:   2,
			TotalRepairCost:   3200,
			TotalDamageAmount: 1500,
		}, nil)
	statsRepo.On("ByDistrict", mock.Anything).
		Return([]stats.DistrictRow{
			{District: "East", PotholeCount: 5, AverageSize: 6, WorkOrders: 3, DamageReports: 2, TotalRepairCost: 1800, TotalDamageAmount: 900},
			{District: "North", PotholeCount: 7, AverageSize: 5.1, WorkOrders: 3, DamageReports: 1, TotalRepairCost: 1400, TotalDamageAmount: 600},
		}, nil)

	uc := NewGetOverviewUseCase(statsRepo, logger.NewLogger())

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.Overall.TotalPotholes)
	assert.Equal(t, int64(4), resp.Overall.RepairedCount)
	assert.Equal(t, 3200.0, resp.Overall.TotalRepairCost)
	require.Len(t, resp.ByDistrict, 2)
	assert.Equal(t, "East", resp.ByDistrict[0].District)
	assert.Equal(t, int64(2), resp.ByDistrict[0].DamageReports)
	statsRepo.AssertExpectations(t)
}

func TestGetOverviewUseCase_EmptySystem(t *testing.T) {
	statsRepo := new(mockStatsRepo)
	statsRepo.On("Totals", mock.Anything).Return(&stats.Totals{}, nil)
	statsRepo.On("ByDistrict", mock.Anything).Return([]stats.DistrictRow{}, nil)

	uc := NewGetOverviewUseCase(statsRepo, logger.NewLogger())

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Zero(t, resp.Overall.TotalPotholes)
	assert.NotNil(t, resp.ByDistrict)
	assert.Empty(t, resp.ByDistrict)
}

func TestGetOverviewUseCase_TotalsFailureBecomesInternal(t *testing.T) {
	statsRepo := new(mockStatsRepo)
	statsRepo.On("Totals", mock.Anything).Return(nil, assert.AnError)

	uc := NewGetOverviewUseCase(statsRepo, logger.NewLogger())

	resp, err := uc.Execute(context.Background())

	assert.Nil(t, resp)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}
