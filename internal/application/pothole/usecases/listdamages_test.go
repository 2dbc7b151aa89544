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

func TestListDamagesUseCase_MapsRows(t *testing.T) {
	statsRepo := new(mockStatsRepo)
	statsRepo.On("Damages", mock.Anything, (*uint)(nil)).
		Return([]stats.DamageRow{
			{
				DamageID:      1,
				PotholeID:     9,
				StreetAddress: "1 Main St",
				District:      "North",
				CitizenName:   "Ada Lovelace",
				DamageAmount:  240.50,
				HoleStatus:    "In Progress",
			},
			{
				DamageID:      2,
				PotholeID:     10,
				StreetAddress: "2 Main St",
				District:      "South",
				CitizenName:   "Grace Hopper",
				DamageAmount:  80,
				HoleStatus:    "Reported",
			},
		}, nil)

	uc := NewListDamagesUseCase(statsRepo, logger.NewLogger())

	details, err := uc.Execute(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "In Progress", details[0].HoleStatus)
	// No work order on file yet, so no status is reported on the claim.
	assert.Empty(t, details[1].HoleStatus)
	statsRepo.AssertExpectations(t)
}

func TestListDamagesUseCase_FiltersByPothole(t *testing.T) {
	potholeID := uint(9)

	statsRepo := new(mockStatsRepo)
	statsRepo.On("Damages", mock.Anything, &potholeID).
		Return([]stats.DamageRow{{DamageID: 1, PotholeID: 9, CitizenName: "Ada Lovelace"}}, nil)

	uc := NewListDamagesUseCase(statsRepo, logger.NewLogger())

	details, err := uc.Execute(context.Background(), &potholeID)

	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, uint(9), details[0].PotholeID)
}

func TestListDamagesUseCase_QueryFailureBecomesInternal(t *testing.T) {
	statsRepo := new(mockStatsRepo)
	statsRepo.On("Damages", mock.Anything, (*uint)(nil)).
		Return(nil, assert.AnError)

	uc := NewListDamagesUseCase(statsRepo, logger.NewLogger())

	details, err := uc.Execute(context.Background(), nil)

	assert.Nil(t, details)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}
