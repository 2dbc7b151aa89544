package workorder

import "context"

// Repository persists work orders under the at-most-one-current-order-per-
// pothole invariant.
type Repository interface {
	// Upsert inserts the work order, or overwrites the existing row for the
	// same pothole, as one atomic store operation. On return the order's ID
	// reflects the surviving row.
	Upsert(ctx context.Context, w *WorkOrder) error

	FindByPotholeID(ctx context.Context, potholeID uint) (*WorkOrder, error)
}
