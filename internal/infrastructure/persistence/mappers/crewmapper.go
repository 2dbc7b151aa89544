package mappers

import (
	"phtrs/internal/domain/crew"
	"phtrs/internal/infrastructure/persistence/models"
)

// CrewMapper handles the conversion between repair crew domain entities and
// persistence models.
type CrewMapper interface {
	ToModel(c *crew.RepairCrew) *models.RepairCrewModel
	ToDomain(model *models.RepairCrewModel) (*crew.RepairCrew, error)
}

type CrewMapperImpl struct{}

func NewCrewMapper() CrewMapper {
	return &CrewMapperImpl{}
}

func (m *CrewMapperImpl) ToModel(c *crew.RepairCrew) *models.RepairCrewModel {
	return &models.RepairCrewModel{
		ID:   c.ID(),
		Name: c.Name(),
	}
}

func (m *CrewMapperImpl) ToDomain(model *models.RepairCrewModel) (*crew.RepairCrew, error) {
	return crew.ReconstructRepairCrew(model.ID, model.Name)
}
