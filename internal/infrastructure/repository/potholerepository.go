package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"phtrs/internal/domain/pothole"
	"phtrs/internal/infrastructure/persistence/mappers"
	"phtrs/internal/infrastructure/persistence/models"
	"phtrs/internal/shared/db"
	appErrors "phtrs/internal/shared/errors"
)

type PotholeRepository struct {
	db     *gorm.DB
	mapper mappers.PotholeMapper
}

func NewPotholeRepository(db *gorm.DB) *PotholeRepository {
	return &PotholeRepository{
		db:     db,
		mapper: mappers.NewPotholeMapper(),
	}
}

func (r *PotholeRepository) Save(ctx context.Context, p *pothole.Pothole) error {
	model := r.mapper.ToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save pothole: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *PotholeRepository) FindByID(ctx context.Context, id uint) (*pothole.Pothole, error) {
	var model models.PotholeModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("pothole not found")
		}
		return nil, fmt.Errorf("failed to find pothole: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
