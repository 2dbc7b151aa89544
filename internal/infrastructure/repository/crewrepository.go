package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"phtrs/internal/domain/crew"
	"phtrs/internal/domain/workorder"
	"phtrs/internal/infrastructure/persistence/mappers"
	"phtrs/internal/infrastructure/persistence/models"
	"phtrs/internal/shared/db"
	appErrors "phtrs/internal/shared/errors"
)

type CrewRepository struct {
	db     *gorm.DB
	mapper mappers.CrewMapper
}

func NewCrewRepository(db *gorm.DB) *CrewRepository {
	return &CrewRepository{
		db:     db,
		mapper: mappers.NewCrewMapper(),
	}
}

func (r *CrewRepository) Save(ctx context.Context, c *crew.RepairCrew) error {
	model := r.mapper.ToModel(c)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if appErrors.IsDuplicateError(err) {
			return appErrors.NewConflictError("crew name already exists")
		}
		return fmt.Errorf("failed to save crew: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CrewRepository) FindByID(ctx context.Context, id uint) (*crew.RepairCrew, error) {
	var model models.RepairCrewModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("crew not found")
		}
		return nil, fmt.Errorf("failed to find crew: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// ListWorkloads aggregates each crew's assignments. The left join keeps crews
// without orders in the listing; a CASE without ELSE leaves non-repaired rows
// out of the cost average.
func (r *CrewRepository) ListWorkloads(ctx context.Context) ([]crew.Workload, error) {
	var rows []crew.Workload

	err := db.GetTxFromContext(ctx, r.db).
		Table("repair_crews AS c").
		Select(`c.id AS crew_id, c.name,
			COUNT(w.id) AS active_orders,
			COALESCE(SUM(CASE WHEN w.hole_status = ? THEN 1 ELSE 0 END), 0) AS in_progress_orders,
			COALESCE(SUM(CASE WHEN w.hole_status = ? THEN 1 ELSE 0 END), 0) AS completed_orders,
			COALESCE(AVG(CASE WHEN w.hole_status = ? THEN w.repair_cost END), 0) AS average_repair_cost`,
			workorder.StatusInProgress.String(), workorder.StatusRepaired.String(), workorder.StatusRepaired.String()).
		Joins("LEFT JOIN work_orders w ON w.crew_id = c.id").
		Group("c.id, c.name").
		Order("c.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list crew workloads: %w", err)
	}

	return rows, nil
}

func (r *CrewRepository) FindByName(ctx context.Context, name string) (*crew.RepairCrew, error) {
	var model models.RepairCrewModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("name = ?", name).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("crew not found")
		}
		return nil, fmt.Errorf("failed to find crew: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
