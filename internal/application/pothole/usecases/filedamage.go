package usecases

import (
	"context"

	"phtrs/internal/application/pothole/dto"
	"phtrs/internal/domain/pothole"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
)

// FileDamageUseCase files a citizen damage claim against an existing pothole.
type FileDamageUseCase struct {
	potholeRepo pothole.Repository
	damageRepo  pothole.DamageRepository
	logger      logger.Interface
}

func NewFileDamageUseCase(
	potholeRepo pothole.Repository,
	damageRepo pothole.DamageRepository,
	logger logger.Interface,
) *FileDamageUseCase {
	return &FileDamageUseCase{
		potholeRepo: potholeRepo,
		damageRepo:  damageRepo,
		logger:      logger,
	}
}

func (uc *FileDamageUseCase) Execute(ctx context.Context, req dto.FileDamageRequest) (*dto.DamageResponse, error) {
	if req.PotholeID == 0 {
		return nil, errors.NewValidationError("pothole ID is required")
	}

	damage, err := pothole.NewDamage(
		req.PotholeID,
		req.CitizenName,
		req.Address,
		req.PhoneNumber,
		req.TypeOfDamage,
		req.DamageAmount,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if _, err := uc.potholeRepo.FindByID(ctx, req.PotholeID); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load pothole for damage claim", "pothole_id", req.PotholeID, "error", err)
		return nil, errors.NewInternalError("failed to file damage claim")
	}

	if err := uc.damageRepo.Save(ctx, damage); err != nil {
		uc.logger.Errorw("failed to save damage claim", "pothole_id", req.PotholeID, "error", err)
		return nil, errors.NewInternalError("failed to file damage claim")
	}

	uc.logger.Infow("damage claim filed",
		"damage_id", damage.ID(),
		"pothole_id", damage.PotholeID(),
		"damage_amount", damage.DamageAmount(),
	)

	return &dto.DamageResponse{
		ID:           damage.ID(),
		PotholeID:    damage.PotholeID(),
		CitizenName:  damage.CitizenName(),
		Address:      damage.Address(),
		PhoneNumber:  damage.PhoneNumber(),
		TypeOfDamage: damage.TypeOfDamage(),
		DamageAmount: damage.DamageAmount(),
	}, nil
}
