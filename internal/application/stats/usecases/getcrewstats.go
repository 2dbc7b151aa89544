package usecases

import (
	"context"

	"phtrs/internal/application/stats/dto"
	"phtrs/internal/domain/stats"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
)

// GetCrewStatsUseCase aggregates each crew's lifetime workload.
type GetCrewStatsUseCase struct {
	statsRepo stats.Repository
	logger    logger.Interface
}

func NewGetCrewStatsUseCase(statsRepo stats.Repository, logger logger.Interface) *GetCrewStatsUseCase {
	return &GetCrewStatsUseCase{statsRepo: statsRepo, logger: logger}
}

func (uc *GetCrewStatsUseCase) Execute(ctx context.Context) ([]dto.CrewStats, error) {
	rows, err := uc.statsRepo.Crews(ctx)
	if err != nil {
		uc.logger.Errorw("failed to compute crew statistics", "error", err)
		return nil, errors.NewInternalError("failed to compute statistics")
	}

	result := make([]dto.CrewStats, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.CrewStats{
			CrewID:            row.CrewID,
			CrewName:          row.Name,
			TotalWorkOrders:   row.TotalWorkOrders,
			TotalHours:        row.TotalHours,
			AvgCrewSize:       row.AvgCrewSize,
			TotalMaterialUsed: row.TotalMaterialUsed,
			TotalRepairCost:   row.TotalRepairCost,
			CompletedRepairs:  row.CompletedRepairs,
		})
	}

	return result, nil
}
