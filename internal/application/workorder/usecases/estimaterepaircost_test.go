package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phtrs/internal/application/workorder/dto"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
)

func TestEstimateRepairCostUseCase(t *testing.T) {
	uc := NewEstimateRepairCostUseCase(logger.NewLogger())

	tests := []struct {
		name         string
		req          dto.EstimateCostRequest
		wantErr      string
		wantLabor    float64
		wantMaterial float64
	}{
		{
			name:         "full estimate",
			req:          dto.EstimateCostRequest{HoursApplied: 2, NumberOfPeople: 3, FillerMaterialUsed: 1.5},
			wantLabor:    300,
			wantMaterial: 150,
		},
		{
			name:      "no material",
			req:       dto.EstimateCostRequest{HoursApplied: 4, NumberOfPeople: 2},
			wantLabor: 400,
		},
		{
			name:         "zero people gives zero labor",
			req:          dto.EstimateCostRequest{HoursApplied: 2, FillerMaterialUsed: 1},
			wantLabor:    0,
			wantMaterial: 100,
		},
		{
			name:    "negative people rejected",
			req:     dto.EstimateCostRequest{HoursApplied: 2, NumberOfPeople: -1},
			wantErr: "number of people cannot be negative",
		},
		{
			name:    "negative hours rejected",
			req:     dto.EstimateCostRequest{HoursApplied: -1, NumberOfPeople: 2},
			wantErr: "hours applied cannot be negative",
		},
		{
			name:    "negative filler rejected",
			req:     dto.EstimateCostRequest{NumberOfPeople: 2, FillerMaterialUsed: -1},
			wantErr: "filler material used cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), tt.req)

			if tt.wantErr != "" {
				assert.Nil(t, resp)
				assert.True(t, errors.IsValidationError(err))
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.wantLabor, resp.LaborCost, 0.001)
			assert.InDelta(t, tt.wantMaterial, resp.MaterialCost, 0.001)
			assert.InDelta(t, tt.wantLabor+tt.wantMaterial, resp.TotalCost, 0.001)
		})
	}
}
