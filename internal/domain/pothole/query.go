package pothole

import (
	"context"
	"time"
)

// ListFilter narrows pothole listings. Zero values mean no filtering on that
// dimension. Status matches the derived hole status, so "Reported" selects
// potholes without a work order.
type ListFilter struct {
	District string
	Status   string
}

// Summary is a read-model row for pothole listings, joined with the derived
// hole status and the number of damage reports on file.
type Summary struct {
	ID             uint
	StreetAddress  string
	Size           int
	Location       string
	District       string
	RepairPriority int
	ReportedAt     time.Time
	HoleStatus     string
	DamageReports  int64
}

// Detail extends Summary with the current work order, if one exists, and the
// aggregated citizen damage filed against the pothole.
type Detail struct {
	Summary

	WorkOrderID        *uint
	CrewID             *uint
	CrewName           *string
	NumberOfPeople     *int
	EquipmentAssigned  *string
	HoursApplied       *float64
	FillerMaterialUsed *float64
	RepairCost         *float64

	TotalDamageAmount float64
}

// QueryRepository serves the listing and detail read paths. It is separate
// from Repository because these rows span potholes, work orders, crews and
// damages rather than a single aggregate.
type QueryRepository interface {
	List(ctx context.Context, filter ListFilter) ([]Summary, error)
	Detail(ctx context.Context, id uint) (*Detail, error)
}
