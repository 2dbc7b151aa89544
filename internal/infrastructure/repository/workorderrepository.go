package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"phtrs/internal/domain/workorder"
	"phtrs/internal/infrastructure/persistence/mappers"
	"phtrs/internal/infrastructure/persistence/models"
	"phtrs/internal/shared/db"
	appErrors "phtrs/internal/shared/errors"
)

type WorkOrderRepository struct {
	db     *gorm.DB
	mapper mappers.WorkOrderMapper
}

func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{
		db:     db,
		mapper: mappers.NewWorkOrderMapper(),
	}
}

// Upsert inserts the work order, or overwrites the existing row for the same
// pothole in a single statement. The unique index on pothole_id makes
// concurrent assignments converge on one row instead of racing.
func (r *WorkOrderRepository) Upsert(ctx context.Context, w *workorder.WorkOrder) error {
	model := r.mapper.ToModel(w)

	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "pothole_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"crew_id",
				"number_of_people",
				"equipment_assigned",
				"hours_applied",
				"hole_status",
				"filler_material_used",
				"repair_cost",
				"updated_at",
			}),
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert work order: %w", err)
	}

	// On conflict the returned ID is the inserted row's, not necessarily the
	// surviving one, so reload by the natural key.
	var saved models.WorkOrderModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("pothole_id = ?", model.PotholeID).
		First(&saved).Error; err != nil {
		return fmt.Errorf("failed to reload work order: %w", err)
	}

	return w.SetID(saved.ID)
}

func (r *WorkOrderRepository) FindByPotholeID(ctx context.Context, potholeID uint) (*workorder.WorkOrder, error) {
	var model models.WorkOrderModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("pothole_id = ?", potholeID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("work order not found")
		}
		return nil, fmt.Errorf("failed to find work order: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
