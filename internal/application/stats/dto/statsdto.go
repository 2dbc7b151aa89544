package dto

import "time"

// OverallStats is the system-wide rollup over all three entities.
type OverallStats struct {
	TotalPotholes     int64   `json:"total_potholes"`
	AverageSize       float64 `json:"average_size"`
	AveragePriority   float64 `json:"average_priority"`
	TotalDistricts    int64   `json:"total_districts"`
	RepairedCount     int64   `json:"repaired_count"`
	InProgressCount   int64   `json:"in_progress_count"`
	TotalRepairCost   float64 `json:"total_repair_cost"`
	TotalDamageAmount float64 `json:"total_damage_amount"`
}

// DistrictStats is the per-district rollup. Only districts with at least one
// pothole appear; absent related rows contribute zeros.
type DistrictStats struct {
	District          string  `json:"district"`
	PotholeCount      int64   `json:"pothole_count"`
	AverageSize       float64 `json:"average_size"`
	WorkOrders        int64   `json:"work_orders"`
	DamageReports     int64   `json:"damage_reports"`
	TotalRepairCost   float64 `json:"total_repair_cost"`
	TotalDamageAmount float64 `json:"total_damage_amount"`
}

// OverviewResponse bundles the overall summary with the district breakdown.
type OverviewResponse struct {
	Overall    OverallStats    `json:"overall"`
	ByDistrict []DistrictStats `json:"by_district"`
}

// WorkOrderDetail is one work order joined with its crew and pothole, plus
// derived costs recomputed at query time and damage aggregates. The derived
// costs are independent of the persisted repair cost.
type WorkOrderDetail struct {
	ID                 uint    `json:"id"`
	PotholeID          uint    `json:"pothole_id"`
	CrewID             uint    `json:"crew_id"`
	CrewName           string  `json:"crew_name"`
	StreetAddress      string  `json:"street_address"`
	Size               int     `json:"size"`
	Location           string  `json:"location"`
	District           string  `json:"district"`
	NumberOfPeople     int     `json:"number_of_people"`
	EquipmentAssigned  string  `json:"equipment_assigned"`
	HoursApplied       float64 `json:"hours_applied"`
	HoleStatus         string  `json:"hole_status"`
	FillerMaterialUsed float64 `json:"filler_material_used"`
	RepairCost         float64 `json:"repair_cost"`
	LaborCost          float64 `json:"labor_cost"`
	MaterialCost       float64 `json:"material_cost"`
	DamageReports      int64   `json:"damage_reports"`
	TotalDamageAmount  float64 `json:"total_damage_amount"`
}

// DamageStats is one damage claim joined with the pothole it was filed
// against.
type DamageStats struct {
	ID            uint      `json:"id"`
	PotholeID     uint      `json:"pothole_id"`
	StreetAddress string    `json:"street_address"`
	Size          int       `json:"size"`
	Location      string    `json:"location"`
	District      string    `json:"district"`
	CitizenName   string    `json:"citizen_name"`
	Address       string    `json:"address"`
	PhoneNumber   string    `json:"phone_number"`
	TypeOfDamage  string    `json:"type_of_damage"`
	DamageAmount  float64   `json:"damage_amount"`
	HoleStatus    string    `json:"hole_status"`
	FiledAt       time.Time `json:"filed_at"`
}

// CrewStats is the per-crew workload rollup.
type CrewStats struct {
	CrewID            uint    `json:"crew_id"`
	CrewName          string  `json:"crew_name"`
	TotalWorkOrders   int64   `json:"total_work_orders"`
	TotalHours        float64 `json:"total_hours"`
	AvgCrewSize       float64 `json:"avg_crew_size"`
	TotalMaterialUsed float64 `json:"total_material_used"`
	TotalRepairCost   float64 `json:"total_repair_cost"`
	CompletedRepairs  int64   `json:"completed_repairs"`
}
