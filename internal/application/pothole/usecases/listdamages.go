package usecases

import (
	"context"

	"phtrs/internal/application/pothole/dto"
	"phtrs/internal/domain/stats"
	"phtrs/internal/domain/workorder"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
)

// ListDamagesUseCase lists damage claims joined with the potholes they were
// filed against, optionally narrowed to one pothole.
type ListDamagesUseCase struct {
	statsRepo stats.Repository
	logger    logger.Interface
}

func NewListDamagesUseCase(statsRepo stats.Repository, logger logger.Interface) *ListDamagesUseCase {
	return &ListDamagesUseCase{statsRepo: statsRepo, logger: logger}
}

func (uc *ListDamagesUseCase) Execute(ctx context.Context, potholeID *uint) ([]dto.DamageDetail, error) {
	rows, err := uc.statsRepo.Damages(ctx, potholeID)
	if err != nil {
		uc.logger.Errorw("failed to list damage claims", "error", err)
		return nil, errors.NewInternalError("failed to list damage claims")
	}

	details := make([]dto.DamageDetail, 0, len(rows))
	for _, row := range rows {
		detail := dto.DamageDetail{
			ID:            row.DamageID,
			PotholeID:     row.PotholeID,
			CitizenName:   row.CitizenName,
			Address:       row.Address,
			PhoneNumber:   row.PhoneNumber,
			TypeOfDamage:  row.TypeOfDamage,
			DamageAmount:  row.DamageAmount,
			StreetAddress: row.StreetAddress,
			District:      row.District,
		}
		// A derived Reported status means no work order exists; the joined
		// status field is left empty in that case.
		if row.HoleStatus != workorder.StatusReported.String() {
			detail.HoleStatus = row.HoleStatus
		}
		details = append(details, detail)
	}

	return details, nil
}
