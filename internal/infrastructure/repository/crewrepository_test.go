package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phtrs/internal/domain/crew"
	"phtrs/internal/domain/workorder"
	"phtrs/internal/shared/errors"
)

func TestCrewRepository_Save(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCrewRepository(database)
	ctx := context.Background()

	t.Run("save new crew", func(t *testing.T) {
		c, err := crew.NewRepairCrew("North Crew")
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, c))
		assert.NotZero(t, c.ID())
	})

	t.Run("duplicate name becomes conflict", func(t *testing.T) {
		c, err := crew.NewRepairCrew("North Crew")
		require.NoError(t, err)

		err = repo.Save(ctx, c)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestCrewRepository_FindByNameAndID(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCrewRepository(database)
	ctx := context.Background()

	seeded := seedCrew(t, database, "East Crew")

	byID, err := repo.FindByID(ctx, seeded.ID())
	require.NoError(t, err)
	assert.Equal(t, "East Crew", byID.Name())

	byName, err := repo.FindByName(ctx, "East Crew")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID(), byName.ID())

	_, err = repo.FindByID(ctx, 999)
	assert.True(t, errors.IsNotFoundError(err))

	_, err = repo.FindByName(ctx, "No Such Crew")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCrewRepository_ListWorkloads(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCrewRepository(database)
	ctx := context.Background()

	busy := seedCrew(t, database, "Busy Crew")
	seedCrew(t, database, "Idle Crew")

	first := seedPothole(t, database, "1 Main St", "North", 5)
	second := seedPothole(t, database, "2 Main St", "North", 3)
	third := seedPothole(t, database, "3 Main St", "South", 8)

	seedWorkOrder(t, database, first.ID(), busy.ID(), workorder.StatusInProgress, 2, 3, 1, 350)
	seedWorkOrder(t, database, second.ID(), busy.ID(), workorder.StatusRepaired, 4, 2, 2, 600)
	seedWorkOrder(t, database, third.ID(), busy.ID(), workorder.StatusRepaired, 1, 2, 0.5, 200)

	rows, err := repo.ListWorkloads(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Ordered by name.
	assert.Equal(t, "Busy Crew", rows[0].Name)
	assert.Equal(t, int64(3), rows[0].ActiveOrders)
	assert.Equal(t, int64(1), rows[0].InProgressOrders)
	assert.Equal(t, int64(2), rows[0].CompletedOrders)
	// Only completed repairs count toward the average: (600 + 200) / 2.
	assert.InDelta(t, 400, rows[0].AverageRepairCost, 0.001)

	assert.Equal(t, "Idle Crew", rows[1].Name)
	assert.Zero(t, rows[1].ActiveOrders)
	assert.Zero(t, rows[1].InProgressOrders)
	assert.Zero(t, rows[1].CompletedOrders)
	assert.Zero(t, rows[1].AverageRepairCost)
}
