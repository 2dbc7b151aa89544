package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"phtrs/internal/application/workorder/dto"
	"phtrs/internal/domain/crew"
	"phtrs/internal/domain/pothole"
	"phtrs/internal/domain/workorder"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
)

func validAssignRequest() dto.AssignWorkOrderRequest {
	return dto.AssignWorkOrderRequest{
		PotholeID:          1,
		CrewID:             2,
		NumberOfPeople:     3,
		EquipmentAssigned:  "patch truck",
		HoursApplied:       2.5,
		FillerMaterialUsed: 1.5,
		RepairCost:         450,
	}
}

func testPothole(t *testing.T) *pothole.Pothole {
	p, err := pothole.ReconstructPothole(
		1, "1 Main St", 4, pothole.LocationCurb, "North", 4,
		time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return p
}

func testCrew(t *testing.T) *crew.RepairCrew {
	c, err := crew.ReconstructRepairCrew(2, "North Crew")
	require.NoError(t, err)
	return c
}

func TestAssignWorkOrderUseCase_ValidationErrors(t *testing.T) {
	uc := NewAssignWorkOrderUseCase(nil, nil, nil, logger.NewLogger())

	tests := []struct {
		name    string
		modify  func(*dto.AssignWorkOrderRequest)
		wantErr string
	}{
		{
			name:    "zero pothole ID",
			modify:  func(r *dto.AssignWorkOrderRequest) { r.PotholeID = 0 },
			wantErr: "pothole ID is required",
		},
		{
			name:    "zero crew ID",
			modify:  func(r *dto.AssignWorkOrderRequest) { r.CrewID = 0 },
			wantErr: "crew ID is required",
		},
		{
			name:    "zero people",
			modify:  func(r *dto.AssignWorkOrderRequest) { r.NumberOfPeople = 0 },
			wantErr: "number of people must be at least 1",
		},
		{
			name:    "negative hours",
			modify:  func(r *dto.AssignWorkOrderRequest) { r.HoursApplied = -1 },
			wantErr: "hours applied cannot be negative",
		},
		{
			name:    "reported status rejected",
			modify:  func(r *dto.AssignWorkOrderRequest) { r.HoleStatus = "Reported" },
			wantErr: "cannot carry the Reported status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAssignRequest()
			tt.modify(&req)

			resp, err := uc.Execute(context.Background(), req)

			assert.Nil(t, resp)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAssignWorkOrderUseCase_PotholeNotFound(t *testing.T) {
	potholeRepo := new(mockPotholeRepo)
	potholeRepo.On("FindByID", mock.Anything, uint(1)).
		Return(nil, errors.NewNotFoundError("pothole not found"))

	uc := NewAssignWorkOrderUseCase(potholeRepo, new(mockCrewRepo), new(mockWorkOrderRepo), logger.NewLogger())

	resp, err := uc.Execute(context.Background(), validAssignRequest())

	assert.Nil(t, resp)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAssignWorkOrderUseCase_CrewNotFound(t *testing.T) {
	potholeRepo := new(mockPotholeRepo)
	potholeRepo.On("FindByID", mock.Anything, uint(1)).Return(testPothole(t), nil)

	crewRepo := new(mockCrewRepo)
	crewRepo.On("FindByID", mock.Anything, uint(2)).
		Return(nil, errors.NewNotFoundError("crew not found"))

	uc := NewAssignWorkOrderUseCase(potholeRepo, crewRepo, new(mockWorkOrderRepo), logger.NewLogger())

	resp, err := uc.Execute(context.Background(), validAssignRequest())

	assert.Nil(t, resp)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAssignWorkOrderUseCase_Success(t *testing.T) {
	potholeRepo := new(mockPotholeRepo)
	potholeRepo.On("FindByID", mock.Anything, uint(1)).Return(testPothole(t), nil)

	crewRepo := new(mockCrewRepo)
	crewRepo.On("FindByID", mock.Anything, uint(2)).Return(testCrew(t), nil)

	workOrderRepo := new(mockWorkOrderRepo)
	workOrderRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*workorder.WorkOrder")).
		Run(func(args mock.Arguments) {
			w := args.Get(1).(*workorder.WorkOrder)
			require.NoError(t, w.SetID(7))
		}).
		Return(nil)

	uc := NewAssignWorkOrderUseCase(potholeRepo, crewRepo, workOrderRepo, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), validAssignRequest())

	require.NoError(t, err)
	assert.Equal(t, uint(7), resp.ID)
	assert.Equal(t, "North Crew", resp.CrewName)
	assert.Equal(t, "1 Main St", resp.StreetAddress)
	assert.Equal(t, "North", resp.District)
	assert.Equal(t, workorder.StatusInProgress.String(), resp.HoleStatus)
	workOrderRepo.AssertExpectations(t)
}

func TestAssignWorkOrderUseCase_StatusHandling(t *testing.T) {
	tests := []struct {
		name       string
		holeStatus string
		want       string
	}{
		{name: "empty defaults to in progress", holeStatus: "", want: "In Progress"},
		{name: "repaired normalized", holeStatus: "repaired", want: "Repaired"},
		{name: "unrecognized falls back to unknown", holeStatus: "half done", want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			potholeRepo := new(mockPotholeRepo)
			potholeRepo.On("FindByID", mock.Anything, uint(1)).Return(testPothole(t), nil)

			crewRepo := new(mockCrewRepo)
			crewRepo.On("FindByID", mock.Anything, uint(2)).Return(testCrew(t), nil)

			workOrderRepo := new(mockWorkOrderRepo)
			workOrderRepo.On("Upsert", mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					w := args.Get(1).(*workorder.WorkOrder)
					require.NoError(t, w.SetID(7))
				}).
				Return(nil)

			uc := NewAssignWorkOrderUseCase(potholeRepo, crewRepo, workOrderRepo, logger.NewLogger())

			req := validAssignRequest()
			req.HoleStatus = tt.holeStatus

			resp, err := uc.Execute(context.Background(), req)

			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.HoleStatus)
		})
	}
}
