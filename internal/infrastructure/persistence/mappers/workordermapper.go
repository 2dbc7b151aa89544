package mappers

import (
	"phtrs/internal/domain/workorder"
	"phtrs/internal/infrastructure/persistence/models"
)

// WorkOrderMapper handles the conversion between work order domain entities
// and persistence models.
type WorkOrderMapper interface {
	ToModel(w *workorder.WorkOrder) *models.WorkOrderModel
	ToDomain(model *models.WorkOrderModel) (*workorder.WorkOrder, error)
}

type WorkOrderMapperImpl struct{}

func NewWorkOrderMapper() WorkOrderMapper {
	return &WorkOrderMapperImpl{}
}

func (m *WorkOrderMapperImpl) ToModel(w *workorder.WorkOrder) *models.WorkOrderModel {
	return &models.WorkOrderModel{
		ID:                 w.ID(),
		PotholeID:          w.PotholeID(),
		CrewID:             w.CrewID(),
		NumberOfPeople:     w.NumberOfPeople(),
		EquipmentAssigned:  w.EquipmentAssigned(),
		HoursApplied:       w.HoursApplied(),
		HoleStatus:         w.Status().String(),
		FillerMaterialUsed: w.FillerMaterialUsed(),
		RepairCost:         w.RepairCost(),
	}
}

func (m *WorkOrderMapperImpl) ToDomain(model *models.WorkOrderModel) (*workorder.WorkOrder, error) {
	return workorder.ReconstructWorkOrder(
		model.ID,
		model.PotholeID,
		model.CrewID,
		model.NumberOfPeople,
		model.EquipmentAssigned,
		model.HoursApplied,
		workorder.ParseStatus(model.HoleStatus),
		model.FillerMaterialUsed,
		model.RepairCost,
	)
}
