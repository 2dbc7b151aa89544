package pothole

import "context"

// Repository persists potholes. Reads that join across work orders and crews
// live behind the application layer's read-model interfaces.
type Repository interface {
	Save(ctx context.Context, p *Pothole) error
	FindByID(ctx context.Context, id uint) (*Pothole, error)
}

// DamageRepository persists damage claims. Claims are append-only; no update
// or delete is exposed.
type DamageRepository interface {
	Save(ctx context.Context, d *Damage) error
	FindByPotholeID(ctx context.Context, potholeID uint) ([]*Damage, error)
}
