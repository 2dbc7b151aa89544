package usecases

import (
	"context"

	"phtrs/internal/application/crew/dto"
	"phtrs/internal/domain/crew"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
)

// ListCrewsUseCase lists repair crews with their current workloads.
type ListCrewsUseCase struct {
	crewRepo crew.Repository
	logger   logger.Interface
}

func NewListCrewsUseCase(crewRepo crew.Repository, logger logger.Interface) *ListCrewsUseCase {
	return &ListCrewsUseCase{crewRepo: crewRepo, logger: logger}
}

func (uc *ListCrewsUseCase) Execute(ctx context.Context) ([]dto.CrewWorkload, error) {
	rows, err := uc.crewRepo.ListWorkloads(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list crews", "error", err)
		return nil, errors.NewInternalError("failed to list crews")
	}

	workloads := make([]dto.CrewWorkload, 0, len(rows))
	for _, row := range rows {
		workloads = append(workloads, dto.CrewWorkload{
			CrewID:            row.CrewID,
			CrewName:          row.Name,
			ActiveOrders:      row.ActiveOrders,
			InProgressOrders:  row.InProgressOrders,
			CompletedOrders:   row.CompletedOrders,
			AverageRepairCost: row.AverageRepairCost,
		})
	}

	return workloads, nil
}
