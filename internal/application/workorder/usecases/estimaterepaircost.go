package usecases

import (
	"context"

	"phtrs/internal/application/workorder/dto"
	"phtrs/internal/domain/workorder"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
)

// EstimateRepairCostUseCase previews a repair cost breakdown. Nothing is
// persisted.
type EstimateRepairCostUseCase struct {
	logger logger.Interface
}

func NewEstimateRepairCostUseCase(logger logger.Interface) *EstimateRepairCostUseCase {
	return &EstimateRepairCostUseCase{logger: logger}
}

func (uc *EstimateRepairCostUseCase) Execute(ctx context.Context, req dto.EstimateCostRequest) (*dto.CostEstimateResponse, error) {
	if req.NumberOfPeople < 0 {
		return nil, errors.NewValidationError("number of people cannot be negative")
	}
	if req.HoursApplied < 0 {
		return nil, errors.NewValidationError("hours applied cannot be negative")
	}
	if req.FillerMaterialUsed < 0 {
		return nil, errors.NewValidationError("filler material used cannot be negative")
	}

	breakdown := workorder.ComputeRepairCost(req.HoursApplied, req.NumberOfPeople, req.FillerMaterialUsed)

	return &dto.CostEstimateResponse{
		LaborCost:    breakdown.LaborCost,
		MaterialCost: breakdown.MaterialCost,
		TotalCost:    breakdown.TotalCost,
	}, nil
}
