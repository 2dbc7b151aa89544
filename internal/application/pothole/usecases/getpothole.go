package usecases

import (
	"context"

	"phtrs/internal/application/pothole/dto"
	"phtrs/internal/domain/pothole"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
)

type GetPotholeUseCase struct {
	queryRepo  pothole.QueryRepository
	damageRepo pothole.DamageRepository
	logger     logger.Interface
}

func NewGetPotholeUseCase(
	queryRepo pothole.QueryRepository,
	damageRepo pothole.DamageRepository,
	logger logger.Interface,
) *GetPotholeUseCase {
	return &GetPotholeUseCase{
		queryRepo:  queryRepo,
		damageRepo: damageRepo,
		logger:     logger,
	}
}

func (uc *GetPotholeUseCase) Execute(ctx context.Context, id uint) (*dto.PotholeDetail, error) {
	if id == 0 {
		return nil, errors.NewValidationError("pothole ID is required")
	}

	detail, err := uc.queryRepo.Detail(ctx, id)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load pothole", "pothole_id", id, "error", err)
		return nil, errors.NewInternalError("failed to load pothole")
	}

	claims, err := uc.damageRepo.FindByPotholeID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to load damage claims", "pothole_id", id, "error", err)
		return nil, errors.NewInternalError("failed to load pothole")
	}

	damages := make([]dto.DamageResponse, 0, len(claims))
	for _, claim := range claims {
		damages = append(damages, dto.DamageResponse{
			ID:           claim.ID(),
			PotholeID:    claim.PotholeID(),
			CitizenName:  claim.CitizenName(),
			Address:      claim.Address(),
			PhoneNumber:  claim.PhoneNumber(),
			TypeOfDamage: claim.TypeOfDamage(),
			DamageAmount: claim.DamageAmount(),
		})
	}

	return &dto.PotholeDetail{
		ID:                detail.ID,
		StreetAddress:     detail.StreetAddress,
		Size:              detail.Size,
		Location:          detail.Location,
		District:          detail.District,
		RepairPriority:    detail.RepairPriority,
		ReportedAt:        detail.ReportedAt,
		HoleStatus:        detail.HoleStatus,
		WorkOrderID:       detail.WorkOrderID,
		CrewID:            detail.CrewID,
		CrewName:          detail.CrewName,
		RepairCost:        detail.RepairCost,
		DamageReports:     detail.DamageReports,
		TotalDamageAmount: detail.TotalDamageAmount,
		Damages:           damages,
	}, nil
}
