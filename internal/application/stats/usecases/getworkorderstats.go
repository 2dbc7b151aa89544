package usecases

import (
	"context"

	"phtrs/internal/application/stats/dto"
	"phtrs/internal/domain/stats"
	"phtrs/internal/domain/workorder"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
)

// GetWorkOrderStatsUseCase lists every work order joined with its crew and
// pothole. Labor and material costs are recomputed from the current billing
// rates rather than read from the persisted repair cost.
type GetWorkOrderStatsUseCase struct {
	statsRepo stats.Repository
	logger    logger.Interface
}

func NewGetWorkOrderStatsUseCase(statsRepo stats.Repository, logger logger.Interface) *GetWorkOrderStatsUseCase {
	return &GetWorkOrderStatsUseCase{statsRepo: statsRepo, logger: logger}
}

func (uc *GetWorkOrderStatsUseCase) Execute(ctx context.Context) ([]dto.WorkOrderDetail, error) {
	rows, err := uc.statsRepo.WorkOrders(ctx)
	if err != nil {
		uc.logger.Errorw("failed to compute work order statistics", "error", err)
		return nil, errors.NewInternalError("failed to compute statistics")
	}

	details := make([]dto.WorkOrderDetail, 0, len(rows))
	for _, row := range rows {
		breakdown := workorder.ComputeRepairCost(row.HoursApplied, row.NumberOfPeople, row.FillerMaterialUsed)
		details = append(details, dto.WorkOrderDetail{
			ID:                 row.WorkOrderID,
			PotholeID:          row.PotholeID,
			CrewID:             row.CrewID,
			CrewName:           row.CrewName,
			StreetAddress:      row.StreetAddress,
			Size:               row.Size,
			Location:           row.Location,
			District:           row.District,
			NumberOfPeople:     row.NumberOfPeople,
			EquipmentAssigned:  row.EquipmentAssigned,
			HoursApplied:       row.HoursApplied,
			HoleStatus:         row.HoleStatus,
			FillerMaterialUsed: row.FillerMaterialUsed,
			RepairCost:         row.RepairCost,
			LaborCost:          breakdown.LaborCost,
			MaterialCost:       breakdown.MaterialCost,
			DamageReports:      row.DamageReports,
			TotalDamageAmount:  row.TotalDamageAmount,
		})
	}

	return details, nil
}
