package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phtrs/internal/domain/workorder"
	"phtrs/internal/infrastructure/persistence/models"
	"phtrs/internal/shared/errors"
)

func TestWorkOrderRepository_Upsert(t *testing.T) {
	database := setupTestDB(t)
	repo := NewWorkOrderRepository(database)
	ctx := context.Background()

	p := seedPothole(t, database, "1 Main St", "North", 5)
	firstCrew := seedCrew(t, database, "North Crew")
	secondCrew := seedCrew(t, database, "South Crew")

	t.Run("insert new order", func(t *testing.T) {
		w, err := workorder.NewWorkOrder(p.ID(), firstCrew.ID(), 3, "patch truck", 2, workorder.StatusInProgress, 1, 350)
		require.NoError(t, err)

		require.NoError(t, repo.Upsert(ctx, w))
		assert.NotZero(t, w.ID())
	})

	t.Run("reassignment overwrites the same row", func(t *testing.T) {
		w, err := workorder.NewWorkOrder(p.ID(), secondCrew.ID(), 5, "jackhammer", 4, workorder.StatusRepaired, 2, 800)
		require.NoError(t, err)

		require.NoError(t, repo.Upsert(ctx, w))

		var count int64
		require.NoError(t, database.Model(&models.WorkOrderModel{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)

		saved, err := repo.FindByPotholeID(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, secondCrew.ID(), saved.CrewID())
		assert.Equal(t, 5, saved.NumberOfPeople())
		assert.Equal(t, workorder.StatusRepaired, saved.Status())
		assert.Equal(t, 800.0, saved.RepairCost())
	})

	t.Run("orders for different potholes coexist", func(t *testing.T) {
		other := seedPothole(t, database, "2 Main St", "South", 3)
		w, err := workorder.NewWorkOrder(other.ID(), firstCrew.ID(), 2, "", 1, workorder.StatusInProgress, 0.5, 150)
		require.NoError(t, err)

		require.NoError(t, repo.Upsert(ctx, w))

		var count int64
		require.NoError(t, database.Model(&models.WorkOrderModel{}).Count(&count).Error)
		assert.Equal(t, int64(2), count)
	})
}

func TestWorkOrderRepository_FindByPotholeID(t *testing.T) {
	database := setupTestDB(t)
	repo := NewWorkOrderRepository(database)
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		w, err := repo.FindByPotholeID(ctx, 999)
		assert.Nil(t, w)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("round trip", func(t *testing.T) {
		p := seedPothole(t, database, "1 Main St", "North", 5)
		c := seedCrew(t, database, "North Crew")
		seedWorkOrder(t, database, p.ID(), c.ID(), workorder.StatusInProgress, 2.5, 3, 1.5, 450)

		found, err := repo.FindByPotholeID(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, p.ID(), found.PotholeID())
		assert.Equal(t, 2.5, found.HoursApplied())
		assert.Equal(t, "patch truck", found.EquipmentAssigned())
	})
}
