package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phtrs/internal/domain/pothole"
	"phtrs/internal/domain/workorder"
	"phtrs/internal/shared/errors"
)

func TestPotholeQueryRepository_List(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPotholeQueryRepository(database, testLogger())
	ctx := context.Background()

	small := seedPothole(t, database, "1 Main St", "North", 2)
	big := seedPothole(t, database, "2 Main St", "North", 9)
	southern := seedPothole(t, database, "3 South Ave", "South", 5)

	c := seedCrew(t, database, "North Crew")
	seedWorkOrder(t, database, big.ID(), c.ID(), workorder.StatusInProgress, 2, 3, 1, 350)
	seedDamage(t, database, small.ID(), "Ada Lovelace", 240.50)
	seedDamage(t, database, small.ID(), "Grace Hopper", 80)

	t.Run("lists all ordered by priority", func(t *testing.T) {
		rows, err := repo.List(ctx, pothole.ListFilter{})
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, big.ID(), rows[0].ID)
		assert.Equal(t, "In Progress", rows[0].HoleStatus)
		assert.Equal(t, southern.ID(), rows[1].ID)
		assert.Equal(t, small.ID(), rows[2].ID)
		assert.Equal(t, "Reported", rows[2].HoleStatus)
		assert.Equal(t, int64(2), rows[2].DamageReports)
	})

	t.Run("filters by district", func(t *testing.T) {
		rows, err := repo.List(ctx, pothole.ListFilter{District: "South"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, southern.ID(), rows[0].ID)
	})

	t.Run("reported status selects potholes without orders", func(t *testing.T) {
		rows, err := repo.List(ctx, pothole.ListFilter{Status: "reported"})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		for _, row := range rows {
			assert.Equal(t, "Reported", row.HoleStatus)
		}
	})

	t.Run("in progress status matches the work order", func(t *testing.T) {
		rows, err := repo.List(ctx, pothole.ListFilter{Status: "in progress"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, big.ID(), rows[0].ID)
	})

	t.Run("unrecognized status matches nothing", func(t *testing.T) {
		rows, err := repo.List(ctx, pothole.ListFilter{Status: "half done"})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestPotholeQueryRepository_Detail(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPotholeQueryRepository(database, testLogger())
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		detail, err := repo.Detail(ctx, 999)
		assert.Nil(t, detail)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("pothole without order", func(t *testing.T) {
		p := seedPothole(t, database, "1 Main St", "North", 4)
		seedDamage(t, database, p.ID(), "Ada Lovelace", 240.50)

		detail, err := repo.Detail(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, "Reported", detail.HoleStatus)
		assert.Nil(t, detail.WorkOrderID)
		assert.Nil(t, detail.CrewName)
		assert.Equal(t, int64(1), detail.DamageReports)
		assert.InDelta(t, 240.50, detail.TotalDamageAmount, 0.001)
	})

	t.Run("pothole with order and crew", func(t *testing.T) {
		p := seedPothole(t, database, "2 Main St", "North", 6)
		c := seedCrew(t, database, "Detail Crew")
		w := seedWorkOrder(t, database, p.ID(), c.ID(), workorder.StatusInProgress, 2.5, 3, 1.5, 450)

		detail, err := repo.Detail(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, "In Progress", detail.HoleStatus)
		require.NotNil(t, detail.WorkOrderID)
		assert.Equal(t, w.ID(), *detail.WorkOrderID)
		require.NotNil(t, detail.CrewName)
		assert.Equal(t, "Detail Crew", *detail.CrewName)
		require.NotNil(t, detail.RepairCost)
		assert.Equal(t, 450.0, *detail.RepairCost)
		require.NotNil(t, detail.NumberOfPeople)
		assert.Equal(t, 3, *detail.NumberOfPeople)
	})
}
