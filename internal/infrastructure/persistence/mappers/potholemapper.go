package mappers

import (
	"time"

	"phtrs/internal/domain/pothole"
	"phtrs/internal/infrastructure/persistence/models"
)

// PotholeMapper handles the conversion between pothole domain entities and
// persistence models.
type PotholeMapper interface {
	ToModel(p *pothole.Pothole) *models.PotholeModel
	ToDomain(model *models.PotholeModel) (*pothole.Pothole, error)

	DamageToModel(d *pothole.Damage) *models.DamageModel
	DamageToDomain(model *models.DamageModel) (*pothole.Damage, error)
}

type PotholeMapperImpl struct{}

func NewPotholeMapper() PotholeMapper {
	return &PotholeMapperImpl{}
}

func (m *PotholeMapperImpl) ToModel(p *pothole.Pothole) *models.PotholeModel {
	return &models.PotholeModel{
		ID:             p.ID(),
		StreetAddress:  p.StreetAddress(),
		Size:           p.Size(),
		Location:       p.Location().String(),
		District:       p.District(),
		RepairPriority: p.Priority(),
		ReportedAt:     p.ReportedAt().UnixMilli(),
	}
}

func (m *PotholeMapperImpl) ToDomain(model *models.PotholeModel) (*pothole.Pothole, error) {
	location, err := pothole.NewLocation(model.Location)
	if err != nil {
		return nil, err
	}

	return pothole.ReconstructPothole(
		model.ID,
		model.StreetAddress,
		model.Size,
		location,
		model.District,
		model.RepairPriority,
		millisToTime(model.ReportedAt),
	)
}

func (m *PotholeMapperImpl) DamageToModel(d *pothole.Damage) *models.DamageModel {
	return &models.DamageModel{
		ID:           d.ID(),
		PotholeID:    d.PotholeID(),
		CitizenName:  d.CitizenName(),
		Address:      d.Address(),
		PhoneNumber:  d.PhoneNumber(),
		TypeOfDamage: d.TypeOfDamage(),
		DamageAmount: d.DamageAmount(),
	}
}

func (m *PotholeMapperImpl) DamageToDomain(model *models.DamageModel) (*pothole.Damage, error) {
	return pothole.ReconstructDamage(
		model.ID,
		model.PotholeID,
		model.CitizenName,
		model.Address,
		model.PhoneNumber,
		model.TypeOfDamage,
		model.DamageAmount,
	)
}

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
