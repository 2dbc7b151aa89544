package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"phtrs/internal/domain/crew"
	"phtrs/internal/domain/pothole"
	"phtrs/internal/domain/workorder"
	"phtrs/internal/infrastructure/persistence/models"
	"phtrs/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.PotholeModel{},
		&models.DamageModel{},
		&models.WorkOrderModel{},
		&models.RepairCrewModel{},
	)
	require.NoError(t, err)

	return database
}

func seedPothole(t *testing.T, database *gorm.DB, street, district string, size int) *pothole.Pothole {
	p, err := pothole.NewPothole(street, size, pothole.LocationMiddle, district, false)
	require.NoError(t, err)

	repo := NewPotholeRepository(database)
	require.NoError(t, repo.Save(context.Background(), p))
	return p
}

func seedCrew(t *testing.T, database *gorm.DB, name string) *crew.RepairCrew {
	c, err := crew.NewRepairCrew(name)
	require.NoError(t, err)

	repo := NewCrewRepository(database)
	require.NoError(t, repo.Save(context.Background(), c))
	return c
}

func seedDamage(t *testing.T, database *gorm.DB, potholeID uint, citizen string, amount float64) *pothole.Damage {
	d, err := pothole.NewDamage(potholeID, citizen, "12 Elm St", "555-0100", "flat tire", amount)
	require.NoError(t, err)

	repo := NewDamageRepository(database)
	require.NoError(t, repo.Save(context.Background(), d))
	return d
}

func seedWorkOrder(t *testing.T, database *gorm.DB, potholeID, crewID uint, status workorder.Status, hours float64, people int, filler, cost float64) *workorder.WorkOrder {
	w, err := workorder.NewWorkOrder(potholeID, crewID, people, "patch truck", hours, status, filler, cost)
	require.NoError(t, err)

	repo := NewWorkOrderRepository(database)
	require.NoError(t, repo.Upsert(context.Background(), w))
	return w
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
