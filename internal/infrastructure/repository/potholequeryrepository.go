package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"phtrs/internal/domain/pothole"
	"phtrs/internal/domain/workorder"
	appErrors "phtrs/internal/shared/errors"
	"phtrs/internal/shared/logger"
)

// PotholeQueryRepositoryImpl implements the pothole.QueryRepository interface.
type PotholeQueryRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPotholeQueryRepository(db *gorm.DB, logger logger.Interface) pothole.QueryRepository {
	return &PotholeQueryRepositoryImpl{db: db, logger: logger}
}

type potholeSummaryRow struct {
	ID             uint
	StreetAddress  string
	Size           int
	Location       string
	District       string
	RepairPriority int
	ReportedAt     int64
	HoleStatus     string
	DamageReports  int64
}

func (r *PotholeQueryRepositoryImpl) List(ctx context.Context, filter pothole.ListFilter) ([]pothole.Summary, error) {
	query := r.db.WithContext(ctx).
		Table("potholes AS p").
		Select(`p.id, p.street_address, p.size, p.location, p.district, p.repair_priority, p.reported_at,
			COALESCE(w.hole_status, ?) AS hole_status,
			(SELECT COUNT(*) FROM damages d WHERE d.pothole_id = p.id) AS damage_reports`,
			workorder.StatusReported.String()).
		Joins("LEFT JOIN work_orders w ON w.pothole_id = p.id")

	if filter.District != "" {
		query = query.Where("p.district = ?", filter.District)
	}
	if filter.Status != "" {
		switch status := workorder.ParseStatus(filter.Status); {
		case status.Known():
			query = query.Where("w.hole_status = ?", status.String())
		case status == workorder.StatusReported:
			query = query.Where("w.id IS NULL")
		default:
			// Unrecognized status matches nothing rather than everything.
			query = query.Where("1 = 0")
		}
	}

	var rows []potholeSummaryRow
	if err := query.
		Order("p.repair_priority DESC, p.reported_at DESC, p.id DESC").
		Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to list potholes", "district", filter.District, "status", filter.Status, "error", err)
		return nil, fmt.Errorf("failed to list potholes: %w", err)
	}

	summaries := make([]pothole.Summary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, summaryFromRow(row))
	}

	return summaries, nil
}

func (r *PotholeQueryRepositoryImpl) Detail(ctx context.Context, id uint) (*pothole.Detail, error) {
	var row struct {
		ID             uint
		StreetAddress  string
		Size           int
		Location       string
		District       string
		RepairPriority int
		ReportedAt     int64
		HoleStatus     string
		DamageReports  int64

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

	err := r.db.WithContext(ctx).
		Table("potholes AS p").
		Select(`p.id, p.street_address, p.size, p.location, p.district, p.repair_priority, p.reported_at,
			COALESCE(w.hole_status, ?) AS hole_status,
			w.id AS work_order_id, w.crew_id, c.name AS crew_name,
			w.number_of_people, w.equipment_assigned, w.hours_applied, w.filler_material_used, w.repair_cost,
			(SELECT COUNT(*) FROM damages d WHERE d.pothole_id = p.id) AS damage_reports,
			(SELECT COALESCE(SUM(d.damage_amount), 0) FROM damages d WHERE d.pothole_id = p.id) AS total_damage_amount`,
			workorder.StatusReported.String()).
		Joins("LEFT JOIN work_orders w ON w.pothole_id = p.id").
		Joins("LEFT JOIN repair_crews c ON c.id = w.crew_id").
		Where("p.id = ?", id).
		Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("pothole not found")
		}
		r.logger.Errorw("failed to load pothole detail", "pothole_id", id, "error", err)
		return nil, fmt.Errorf("failed to load pothole detail: %w", err)
	}

	return &pothole.Detail{
		Summary: summaryFromRow(potholeSummaryRow{
			ID:             row.ID,
			StreetAddress:  row.StreetAddress,
			Size:           row.Size,
			Location:       row.Location,
			District:       row.District,
			RepairPriority: row.RepairPriority,
			ReportedAt:     row.ReportedAt,
			HoleStatus:     row.HoleStatus,
			DamageReports:  row.DamageReports,
		}),
		WorkOrderID:        row.WorkOrderID,
		CrewID:             row.CrewID,
		CrewName:           row.CrewName,
		NumberOfPeople:     row.NumberOfPeople,
		EquipmentAssigned:  row.EquipmentAssigned,
		HoursApplied:       row.HoursApplied,
		FillerMaterialUsed: row.FillerMaterialUsed,
		RepairCost:         row.RepairCost,
		TotalDamageAmount:  row.TotalDamageAmount,
	}, nil
}

func summaryFromRow(row potholeSummaryRow) pothole.Summary {
	return pothole.Summary{
		ID:             row.ID,
		StreetAddress:  row.StreetAddress,
		Size:           row.Size,
		Location:       row.Location,
		District:       row.District,
		RepairPriority: row.RepairPriority,
		ReportedAt:     time.Unix(0, row.ReportedAt*int64(time.Millisecond)),
		HoleStatus:     row.HoleStatus,
		DamageReports:  row.DamageReports,
	}
}
