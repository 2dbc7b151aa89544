package usecases

import (
	"context"

	"phtrs/internal/application/stats/dto"
	"phtrs/internal/domain/stats"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
)

// GetDamageStatsUseCase lists damage claims joined with their potholes,
// optionally narrowed to one pothole.
type GetDamageStatsUseCase struct {
	statsRepo stats.Repository
	logger    logger.Interface
}

func NewGetDamageStatsUseCase(statsRepo stats.Repository, logger logger.Interface) *GetDamageStatsUseCase {
	return &GetDamageStatsUseCase{statsRepo: statsRepo, logger: logger}
}

func (uc *GetDamageStatsUseCase) Execute(ctx context.Context, potholeID *uint) ([]dto.DamageStats, error) {
	rows, err := uc.statsRepo.Damages(ctx, potholeID)
	if err != nil {
		uc.logger.Errorw("failed to compute damage statistics", "error", err)
		return nil, errors.NewInternalError("failed to compute statistics")
	}

	result := make([]dto.DamageStats, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.DamageStats{
			ID:            row.DamageID,
			PotholeID:     row.PotholeID,
			StreetAddress: row.StreetAddress,
			Size:          row.Size,
			Location:      row.Location,
			District:      row.District,
			CitizenName:   row.CitizenName,
			Address:       row.Address,
			PhoneNumber:   row.PhoneNumber,
			TypeOfDamage:  row.TypeOfDamage,
			DamageAmount:  row.DamageAmount,
			HoleStatus:    row.HoleStatus,
			FiledAt:       row.FiledAt,
		})
	}

	return result, nil
}
