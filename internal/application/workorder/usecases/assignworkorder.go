package usecases

import (
	"context"

	"phtrs/internal/application/workorder/dto"
	"phtrs/internal/domain/crew"
	"phtrs/internal/domain/pothole"
	"phtrs/internal/domain/workorder"
	"phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
)

// AssignWorkOrderUseCase assigns a crew to a pothole. A pothole carries at
// most one work order; assigning again overwrites the previous assignment in
// a single upsert.
type AssignWorkOrderUseCase struct {
	potholeRepo   pothole.Repository
	crewRepo      crew.Repository
	workOrderRepo workorder.Repository
	logger        logger.Interface
}

func NewAssignWorkOrderUseCase(
	potholeRepo pothole.Repository,
	crewRepo crew.Repository,
	workOrderRepo workorder.Repository,
	logger logger.Interface,
) *AssignWorkOrderUseCase {
	return &AssignWorkOrderUseCase{
		potholeRepo:   potholeRepo,
		crewRepo:      crewRepo,
		workOrderRepo: workOrderRepo,
		logger:        logger,
	}
}

func (uc *AssignWorkOrderUseCase) Execute(ctx context.Context, req dto.AssignWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	status := workorder.StatusInProgress
	if req.HoleStatus != "" {
		status = workorder.ParseStatus(req.HoleStatus)
	}

	order, err := workorder.NewWorkOrder(
		req.PotholeID,
		req.CrewID,
		req.NumberOfPeople,
		req.EquipmentAssigned,
		req.HoursApplied,
		status,
		req.FillerMaterialUsed,
		req.RepairCost,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	target, err := uc.potholeRepo.FindByID(ctx, req.PotholeID)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load pothole for assignment", "pothole_id", req.PotholeID, "error", err)
		return nil, errors.NewInternalError("failed to assign work order")
	}

	assignedCrew, err := uc.crewRepo.FindByID(ctx, req.CrewID)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load crew for assignment", "crew_id", req.CrewID, "error", err)
		return nil, errors.NewInternalError("failed to assign work order")
	}

	if err := uc.workOrderRepo.Upsert(ctx, order); err != nil {
		uc.logger.Errorw("failed to upsert work order",
			"pothole_id", req.PotholeID,
			"crew_id", req.CrewID,
			"error", err,
		)
		return nil, errors.NewInternalError("failed to assign work order")
	}

	uc.logger.Infow("work order assigned",
		"work_order_id", order.ID(),
		"pothole_id", order.PotholeID(),
		"crew_id", order.CrewID(),
		"hole_status", order.Status().String(),
	)

	return &dto.WorkOrderResponse{
		ID:                 order.ID(),
		PotholeID:          order.PotholeID(),
		CrewID:             order.CrewID(),
		CrewName:           assignedCrew.Name(),
		StreetAddress:      target.StreetAddress(),
		District:           target.District(),
		NumberOfPeople:     order.NumberOfPeople(),
		EquipmentAssigned:  order.EquipmentAssigned(),
		HoursApplied:       order.HoursApplied(),
		HoleStatus:         order.Status().String(),
		FillerMaterialUsed: order.FillerMaterialUsed(),
		RepairCost:         order.RepairCost(),
	}, nil
}
