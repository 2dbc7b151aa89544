package usecases

import (
	"context"

	"phtrs/internal/application/pothole/dto"
	"phtrs/internal/domain/pothole"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
)

// ListPotholesQuery filters the pothole listing. Empty fields match all rows.
type ListPotholesQuery struct {
	District string
	Status   string
}

type ListPotholesUseCase struct {
	queryRepo pothole.QueryRepository
	logger    logger.Interface
}

func NewListPotholesUseCase(queryRepo pothole.QueryRepository, logger logger.Interface) *ListPotholesUseCase {
	return &ListPotholesUseCase{queryRepo: queryRepo, logger: logger}
}

func (uc *ListPotholesUseCase) Execute(ctx context.Context, query ListPotholesQuery) ([]dto.PotholeSummary, error) {
	rows, err := uc.queryRepo.List(ctx, pothole.ListFilter{
		District: query.District,
		Status:   query.Status,
	})
	if err != nil {
		uc.logger.Errorw("failed to list potholes", "district", query.District, "status", query.Status, "error", err)
		return nil, errors.NewInternalError("failed to list potholes")
	}

	summaries := make([]dto.PotholeSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, dto.PotholeSummary{
			ID:             row.ID,
			StreetAddress:  row.StreetAddress,
			Size:           row.Size,
			Location:       row.Location,
			District:       row.District,
			RepairPriority: row.RepairPriority,
			ReportedAt:     row.ReportedAt,
			HoleStatus:     row.HoleStatus,
			DamageReports:  row.DamageReports,
		})
	}

	return summaries, nil
}
