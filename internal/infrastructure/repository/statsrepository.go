package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"phtrs/internal/domain/stats"
	"phtrs/internal/domain/workorder"
	"phtrs/internal/infrastructure/persistence/models"
	"phtrs/internal/shared/logger"
)

// StatsRepositoryImpl implements the stats.Repository interface. District
// aggregates are computed with one grouped query per source table and merged
// in memory; joining potholes, work orders and damages in a single statement
// would multiply rows and double-count the sums.
type StatsRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewStatsRepository(db *gorm.DB, logger logger.Interface) stats.Repository {
	return &StatsRepositoryImpl{db: db, logger: logger}
}

func (r *StatsRepositoryImpl) Totals(ctx context.Context) (*stats.Totals, error) {
	var potholes struct {
		TotalPotholes   int64
		AverageSize     float64
		AveragePriority float64
		TotalDistricts  int64
	}
	err := r.db.WithContext(ctx).Model(&models.PotholeModel{}).
		Select(`COUNT(*) AS total_potholes,
			COALESCE(AVG(size), 0) AS average_size,
			COALESCE(AVG(repair_priority), 0) AS average_priority,
			COUNT(DISTINCT district) AS total_districts`).
		Scan(&potholes).Error
	if err != nil {
		r.logger.Errorw("failed to aggregate potholes", "error", err)
		return nil, fmt.Errorf("failed to aggregate potholes: %w", err)
	}

	var orders struct {
		InProgressCount int64
		RepairedCount   int64
		TotalRepairCost float64
	}
	err = r.db.WithContext(ctx).Model(&models.WorkOrderModel{}).
		Select(`COALESCE(SUM(CASE WHEN hole_status = ? THEN 1 ELSE 0 END), 0) AS in_progress_count,
			COALESCE(SUM(CASE WHEN hole_status = ? THEN 1 ELSE 0 END), 0) AS repaired_count,
			COALESCE(SUM(repair_cost), 0) AS total_repair_cost`,
			workorder.StatusInProgress.String(), workorder.StatusRepaired.String()).
		Scan(&orders).Error
	if err != nil {
		r.logger.Errorw("failed to aggregate work orders", "error", err)
		return nil, fmt.Errorf("failed to aggregate work orders: %w", err)
	}

	var damages struct {
		TotalDamageAmount float64
	}
	err = r.db.WithContext(ctx).Model(&models.DamageModel{}).
		Select(`COALESCE(SUM(damage_amount), 0) AS total_damage_amount`).
		Scan(&damages).Error
	if err != nil {
		r.logger.Errorw("failed to aggregate damage reports", "error", err)
		return nil, fmt.Errorf("failed to aggregate damage reports: %w", err)
	}

	return &stats.Totals{
		TotalPotholes:     potholes.TotalPotholes,
		AverageSize:       potholes.AverageSize,
		AveragePriority:   potholes.AveragePriority,
		TotalDistricts:    potholes.TotalDistricts,
		RepairedCount:     orders.RepairedCount,
		InProgressCount:   orders.InProgressCount,
		TotalRepairCost:   orders.TotalRepairCost,
		TotalDamageAmount: damages.TotalDamageAmount,
	}, nil
}

func (r *StatsRepositoryImpl) ByDistrict(ctx context.Context) ([]stats.DistrictRow, error) {
	var potholeRows []struct {
		District     string
		PotholeCount int64
		AverageSize  float64
	}
	err := r.db.WithContext(ctx).Model(&models.PotholeModel{}).
		Select(`district, COUNT(*) AS pothole_count, COALESCE(AVG(size), 0) AS average_size`).
		Group("district").
		Order("district ASC").
		Scan(&potholeRows).Error
	if err != nil {
		r.logger.Errorw("failed to aggregate potholes by district", "error", err)
		return nil, fmt.Errorf("failed to aggregate potholes by district: %w", err)
	}

	var orderRows []struct {
		District        string
		WorkOrders      int64
		TotalRepairCost float64
	}
	err = r.db.WithContext(ctx).
		Table("work_orders AS w").
		Select(`p.district,
			COUNT(*) AS work_orders,
			COALESCE(SUM(w.repair_cost), 0) AS total_repair_cost`).
		Joins("JOIN potholes p ON p.id = w.pothole_id").
		Group("p.district").
		Scan(&orderRows).Error
	if err != nil {
		r.logger.Errorw("failed to aggregate work orders by district", "error", err)
		return nil, fmt.Errorf("failed to aggregate work orders by district: %w", err)
	}

	var damageRows []struct {
		District          string
		DamageReports     int64
		TotalDamageAmount float64
	}
	err = r.db.WithContext(ctx).
		Table("damages AS d").
		Select(`p.district,
			COUNT(*) AS damage_reports,
			COALESCE(SUM(d.damage_amount), 0) AS total_damage_amount`).
		Joins("JOIN potholes p ON p.id = d.pothole_id").
		Group("p.district").
		Scan(&damageRows).Error
	if err != nil {
		r.logger.Errorw("failed to aggregate damage reports by district", "error", err)
		return nil, fmt.Errorf("failed to aggregate damage reports by district: %w", err)
	}

	orderByDistrict := make(map[string]int, len(orderRows))
	for i := range orderRows {
		orderByDistrict[orderRows[i].District] = i
	}
	damageByDistrict := make(map[string]int, len(damageRows))
	for i := range damageRows {
		damageByDistrict[damageRows[i].District] = i
	}

	// Every work order and damage report hangs off a pothole, so the pothole
	// query already enumerates every district.
	result := make([]stats.DistrictRow, 0, len(potholeRows))
	for _, p := range potholeRows {
		row := stats.DistrictRow{
			District:     p.District,
			PotholeCount: p.PotholeCount,
			AverageSize:  p.AverageSize,
		}
		if i, ok := orderByDistrict[p.District]; ok {
			row.WorkOrders = orderRows[i].WorkOrders
			row.TotalRepairCost = orderRows[i].TotalRepairCost
		}
		if i, ok := damageByDistrict[p.District]; ok {
			row.DamageReports = damageRows[i].DamageReports
			row.TotalDamageAmount = damageRows[i].TotalDamageAmount
		}
		result = append(result, row)
	}

	return result, nil
}

func (r *StatsRepositoryImpl) WorkOrders(ctx context.Context) ([]stats.WorkOrderRow, error) {
	var rows []stats.WorkOrderRow
	err := r.db.WithContext(ctx).
		Table("work_orders AS w").
		Select(`w.id AS work_order_id, w.pothole_id,
			p.street_address, p.size, p.location, p.district,
			w.crew_id, c.name AS crew_name,
			w.number_of_people, w.equipment_assigned, w.hours_applied,
			w.hole_status, w.filler_material_used, w.repair_cost,
			(SELECT COUNT(*) FROM damages d WHERE d.pothole_id = w.pothole_id) AS damage_reports,
			(SELECT COALESCE(SUM(d.damage_amount), 0) FROM damages d WHERE d.pothole_id = w.pothole_id) AS total_damage_amount`).
		Joins("JOIN potholes p ON p.id = w.pothole_id").
		Joins("JOIN repair_crews c ON c.id = w.crew_id").
		Order("w.id DESC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list work order stats", "error", err)
		return nil, fmt.Errorf("failed to list work order stats: %w", err)
	}

	return rows, nil
}

func (r *StatsRepositoryImpl) Damages(ctx context.Context, potholeID *uint) ([]stats.DamageRow, error) {
	query := r.db.WithContext(ctx).
		Table("damages AS d").
		Select(`d.id AS damage_id, d.pothole_id,
			p.street_address, p.size, p.location, p.district,
			d.citizen_name, d.address, d.phone_number, d.type_of_damage, d.damage_amount,
			COALESCE(w.hole_status, ?) AS hole_status,
			d.created_at AS filed_at_millis`,
			workorder.StatusReported.String()).
		Joins("JOIN potholes p ON p.id = d.pothole_id").
		Joins("LEFT JOIN work_orders w ON w.pothole_id = d.pothole_id")

	if potholeID != nil {
		query = query.Where("d.pothole_id = ?", *potholeID)
	}

	var rows []struct {
		DamageID      uint
		PotholeID     uint
		StreetAddress string
		Size          int
		Location      string
		District      string
		CitizenName   string
		Address       string
		PhoneNumber   string
		TypeOfDamage  string
		DamageAmount  float64
		HoleStatus    string
		FiledAtMillis int64
	}
	if err := query.Order("d.damage_amount DESC, d.id ASC").Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to list damage stats", "error", err)
		return nil, fmt.Errorf("failed to list damage stats: %w", err)
	}

	result := make([]stats.DamageRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, stats.DamageRow{
			DamageID:      row.DamageID,
			PotholeID:     row.PotholeID,
			StreetAddress: row.StreetAddress,
			Size:          row.Size,
			Location:      row.Location,
			District:      row.District,
			CitizenName:   row.CitizenName,
			Address:       row.Address,
			PhoneNumber:   row.PhoneNumber,
			TypeOfDamage:  row.TypeOfDamage,
			DamageAmount:  row.DamageAmount,
			HoleStatus:    row.HoleStatus,
			FiledAt:       time.Unix(0, row.FiledAtMillis*int64(time.Millisecond)),
		})
	}

	return result, nil
}

func (r *StatsRepositoryImpl) Crews(ctx context.Context) ([]stats.CrewRow, error) {
	var rows []stats.CrewRow
	err := r.db.WithContext(ctx).
		Table("repair_crews AS c").
		Select(`c.id AS crew_id, c.name,
			COUNT(w.id) AS total_work_orders,
			COALESCE(SUM(w.hours_applied), 0) AS total_hours,
			COALESCE(AVG(w.number_of_people), 0) AS avg_crew_size,
			COALESCE(SUM(w.filler_material_used), 0) AS total_material_used,
			COALESCE(SUM(w.repair_cost), 0) AS total_repair_cost,
			COALESCE(SUM(CASE WHEN w.hole_status = ? THEN 1 ELSE 0 END), 0) AS completed_repairs`,
			workorder.StatusRepaired.String()).
		Joins("LEFT JOIN work_orders w ON w.crew_id = c.id").
		Group("c.id, c.name").
		Order("total_work_orders DESC, c.name ASC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to aggregate crew workloads", "error", err)
		return nil, fmt.Errorf("failed to aggregate crew workloads: %w", err)
	}

	return rows, nil
}
