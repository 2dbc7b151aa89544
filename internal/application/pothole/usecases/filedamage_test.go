package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"phtrs/internal/application/pothole/dto"
	"phtrs/internal/domain/pothole"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
)

func validFileDamageRequest() dto.FileDamageRequest {
	return dto.FileDamageRequest{
		PotholeID:    9,
		CitizenName:  "Ada Lovelace",
		Address:      "12 Elm St",
		PhoneNumber:  "555-0100",
		TypeOfDamage: "flat tire",
		DamageAmount: 240.50,
	}
}

func reconstructedPothole(t *testing.T, id uint) *pothole.Pothole {
	p, err := pothole.ReconstructPothole(
		id, "742 Evergreen Terrace", 6, pothole.LocationMiddle, "Springfield", 6,
		time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return p
}

func TestFileDamageUseCase_ValidationErrors(t *testing.T) {
	uc := NewFileDamageUseCase(nil, nil, logger.NewLogger())

	tests := []struct {
		name    string
		modify  func(*dto.FileDamageRequest)
		wantErr string
	}{
		{
			name:    "zero pothole ID",
			modify:  func(r *dto.FileDamageRequest) { r.PotholeID = 0 },
			wantErr: "pothole ID is required",
		},
		{
			name:    "missing citizen name",
			modify:  func(r *dto.FileDamageRequest) { r.CitizenName = "" },
			wantErr: "citizen name is required",
		},
		{
			name:    "negative amount",
			modify:  func(r *dto.FileDamageRequest) { r.DamageAmount = -5 },
			wantErr: "damage amount cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validFileDamageRequest()
			tt.modify(&req)

			resp, err := uc.Execute(context.Background(), req)

			assert.Nil(t, resp)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFileDamageUseCase_PotholeNotFound(t *testing.T) {
	potholeRepo := new(mockPotholeRepo)
	potholeRepo.On("FindByID", mock.Anything, uint(9)).
		Return(nil, errors.NewNotFoundError("pothole not found"))

	uc := NewFileDamageUseCase(potholeRepo, new(mockDamageRepo), logger.NewLogger())

	resp, err := uc.Execute(context.Background(), validFileDamageRequest())

	assert.Nil(t, resp)
	assert.True(t, errors.IsNotFoundError(err))
	potholeRepo.AssertExpectations(t)
}

func TestFileDamageUseCase_Success(t *testing.T) {
	potholeRepo := new(mockPotholeRepo)
	potholeRepo.On("FindByID", mock.Anything, uint(9)).
		Return(reconstructedPothole(t, 9), nil)

	damageRepo := new(mockDamageRepo)
	damageRepo.On("Save", mock.Anything, mock.AnythingOfType("*pothole.Damage")).
		Run(func(args mock.Arguments) {
			d := args.Get(1).(*pothole.Damage)
			require.NoError(t, d.SetID(3))
		}).
		Return(nil)

	uc := NewFileDamageUseCase(potholeRepo, damageRepo, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), validFileDamageRequest())

	require.NoError(t, err)
	assert.Equal(t, uint(3), resp.ID)
	assert.Equal(t, uint(9), resp.PotholeID)
	assert.Equal(t, "Ada Lovelace", resp.CitizenName)
	assert.Equal(t, 240.50, resp.DamageAmount)
	damageRepo.AssertExpectations(t)
}

func TestFileDamageUseCase_SaveFailureBecomesInternal(t *testing.T) {
	potholeRepo := new(mockPotholeRepo)
	potholeRepo.On("FindByID", mock.Anything, uint(9)).
		Return(reconstructedPothole(t, 9), nil)

	damageRepo := new(mockDamageRepo)
	damageRepo.On("Save", mock.Anything, mock.Anything).
		Return(assert.AnError)

	uc := NewFileDamageUseCase(potholeRepo, damageRepo, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), validFileDamageRequest())

	assert.Nil(t, resp)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}
