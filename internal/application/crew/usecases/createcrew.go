package usecases

import (
	"context"

	"phtrs/internal/application/crew/dto"
	"phtrs/internal/domain/crew"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
)

type CreateCrewUseCase struct {
	crewRepo crew.Repository
	logger   logger.Interface
}

func NewCreateCrewUseCase(crewRepo crew.Repository, logger logger.Interface) *CreateCrewUseCase {
	return &CreateCrewUseCase{crewRepo: crewRepo, logger: logger}
}

func (uc *CreateCrewUseCase) Execute(ctx context.Context, req dto.CreateCrewRequest) (*dto.CrewResponse, error) {
	c, err := crew.NewRepairCrew(req.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.crewRepo.FindByName(ctx, c.Name())
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to check crew name", "name", req.Name, "error", err)
		return nil, errors.NewInternalError("failed to create crew")
	}
	if existing != nil {
		return nil, errors.NewConflictError("crew name already exists")
	}

	// The unique index on name still backstops a concurrent create.
	if err := uc.crewRepo.Save(ctx, c); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to save crew", "name", req.Name, "error", err)
		return nil, errors.NewInternalError("failed to create crew")
	}

	uc.logger.Infow("crew created", "crew_id", c.ID(), "name", c.Name())

	return &dto.CrewResponse{
		ID:   c.ID(),
		Name: c.Name(),
	}, nil
}
