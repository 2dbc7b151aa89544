package usecases

import (
	"context"

	"phtrs/internal/application/pothole/dto"
	"phtrs/internal/domain/pothole"
	"phtrs/internal/domain/workorder"
	"phtrs/internal/shared/db"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
)

// ReportPotholeUseCase handles the report transaction: the pothole and an
// optional damage claim are persisted atomically, so a failed claim insert
// rolls the pothole back as well.
type ReportPotholeUseCase struct {
	potholeRepo pothole.Repository
	damageRepo  pothole.DamageRepository
	txManager   *db.TransactionManager
	logger      logger.Interface
}

func NewReportPotholeUseCase(
	potholeRepo pothole.Repository,
	damageRepo pothole.DamageRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *ReportPotholeUseCase {
	return &ReportPotholeUseCase{
		potholeRepo: potholeRepo,
		damageRepo:  damageRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *ReportPotholeUseCase) Execute(ctx context.Context, req dto.ReportPotholeRequest) (*dto.PotholeResponse, error) {
	location, err := pothole.NewLocation(req.Location)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	hasDamage := req.Damage != nil

	p, err := pothole.NewPothole(req.StreetAddress, req.Size, location, req.District, hasDamage)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var damage *pothole.Damage
	if hasDamage {
		damage, err = pothole.NewDamage(
			0,
			req.Damage.CitizenName,
			req.Damage.Address,
			req.Damage.PhoneNumber,
			req.Damage.TypeOfDamage,
			req.Damage.DamageAmount,
		)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.potholeRepo.Save(txCtx, p); err != nil {
			return err
		}
		if damage == nil {
			return nil
		}
		if err := damage.AttachTo(p.ID()); err != nil {
			return err
		}
		return uc.damageRepo.Save(txCtx, damage)
	})
	if err != nil {
		uc.logger.Errorw("failed to report pothole",
			"street_address", req.StreetAddress,
			"district", req.District,
			"error", err,
		)
		return nil, errors.NewInternalError("failed to report pothole")
	}

	uc.logger.Infow("pothole reported",
		"pothole_id", p.ID(),
		"district", p.District(),
		"repair_priority", p.Priority(),
		"with_damage", hasDamage,
	)

	resp := &dto.PotholeResponse{
		ID:             p.ID(),
		StreetAddress:  p.StreetAddress(),
		Size:           p.Size(),
		Location:       p.Location().String(),
		District:       p.District(),
		RepairPriority: p.Priority(),
		ReportedAt:     p.ReportedAt(),
		Status:         workorder.StatusReported.String(),
	}
	if damage != nil {
		resp.Damage = &dto.DamageResponse{
			ID:           damage.ID(),
			PotholeID:    damage.PotholeID(),
			CitizenName:  damage.CitizenName(),
			Address:      damage.Address(),
			PhoneNumber:  damage.PhoneNumber(),
			TypeOfDamage: damage.TypeOfDamage(),
			DamageAmount: damage.DamageAmount(),
		}
	}

	return resp, nil
}
