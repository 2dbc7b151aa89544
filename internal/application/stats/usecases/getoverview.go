package usecases

import (
	"context"

	"phtrs/internal/application/stats/dto"
	"phtrs/internal/domain/stats"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
)

// GetOverviewUseCase builds the city-wide rollup plus the district breakdown.
type GetOverviewUseCase struct {
	statsRepo stats.Repository
	logger    logger.Interface
}

func NewGetOverviewUseCase(statsRepo stats.Repository, logger logger.Interface) *GetOverviewUseCase {
	return &GetOverviewUseCase{statsRepo: statsRepo, logger: logger}
}

func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*dto.OverviewResponse, error) {
	totals, err := uc.statsRepo.Totals(ctx)
	if err != nil {
		uc.logger.Errorw("failed to compute overall statistics", "error", err)
		return nil, errors.NewInternalError("failed to compute statistics")
	}

	districts, err := uc.statsRepo.ByDistrict(ctx)
	if err != nil {
		uc.logger.Errorw("failed to compute district statistics", "error", err)
		return nil, errors.NewInternalError("failed to compute statistics")
	}

	byDistrict := make([]dto.DistrictStats, 0, len(districts))
	for _, row := range districts {
		byDistrict = append(byDistrict, dto.DistrictStats{
			District:          row.District,
			PotholeCount:      row.PotholeCount,
			AverageSize:       row.AverageSize,
			WorkOrders:        row.WorkOrders,
			DamageReports:     row.DamageReports,
			TotalRepairCost:   row.TotalRepairCost,
			TotalDamageAmount: row.TotalDamageAmount,
		})
	}

	return &dto.OverviewResponse{
		Overall: dto.OverallStats{
			TotalPotholes:     totals.TotalPotholes,
			AverageSize:       totals.AverageSize,
			AveragePriority:   totals.AveragePriority,
			TotalDistricts:    totals.TotalDistricts,
			RepairedCount:     totals.RepairedCount,
			InProgressCount:   totals.InProgressCount,
			TotalRepairCost:   totals.TotalRepairCost,
			TotalDamageAmount: totals.TotalDamageAmount,
		},
		ByDistrict: byDistrict,
	}, nil
}
