package migration

import (
	"phtrs/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.PotholeModel{},
		&models.DamageModel{},
		&models.WorkOrderModel{},
		&models.RepairCrewModel{},
	}
}
