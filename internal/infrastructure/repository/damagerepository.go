package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"phtrs/internal/domain/pothole"
	"phtrs/internal/infrastructure/persistence/mappers"
	"phtrs/internal/infrastructure/persistence/models"
	"phtrs/internal/shared/db"
)

type DamageRepository struct {
	db     *gorm.DB
	mapper mappers.PotholeMapper
}

func NewDamageRepository(db *gorm.DB) *DamageRepository {
	return &DamageRepository{
		db:     db,
		mapper: mappers.NewPotholeMapper(),
	}
}

func (r *DamageRepository) Save(ctx context.Context, d *pothole.Damage) error {
	model := r.mapper.DamageToModel(d)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save damage report: %w", err)
	}

	return d.SetID(model.ID)
}

func (r *DamageRepository) FindByPotholeID(ctx context.Context, potholeID uint) ([]*pothole.Damage, error) {
	var rows []models.DamageModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("pothole_id = ?", potholeID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list damage reports: %w", err)
	}

	damages := make([]*pothole.Damage, 0, len(rows))
	for i := range rows {
		d, err := r.mapper.DamageToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		damages = append(damages, d)
	}

	return damages, nil
}
