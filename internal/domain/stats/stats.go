package stats

import (
	"context"
	"time"
)

// Totals is the city-wide aggregate across potholes, work orders and damage
// reports.
type Totals struct {
	TotalPotholes     int64
	AverageSize       float64
	AveragePriority   float64
	TotalDistricts    int64
	RepairedCount     int64
	InProgressCount   int64
	TotalRepairCost   float64
	TotalDamageAmount float64
}

// DistrictRow aggregates pothole activity for one district. Only districts
// with at least one pothole appear.
type DistrictRow struct {
	District          string
	PotholeCount      int64
	AverageSize       float64
	WorkOrders        int64
	DamageReports     int64
	TotalRepairCost   float64
	TotalDamageAmount float64
}

// WorkOrderRow is a work order joined with its pothole, crew and the damage
// filed against the pothole. Hours, people and filler are carried raw so the
// caller can derive a fresh cost breakdown.
type WorkOrderRow struct {
	WorkOrderID        uint
	PotholeID          uint
	StreetAddress      string
	Size               int
	Location           string
	District           string
	CrewID             uint
	CrewName           string
	NumberOfPeople     int
	EquipmentAssigned  string
	HoursApplied       float64
	HoleStatus         string
	FillerMaterialUsed float64
	RepairCost         float64
	DamageReports      int64
	TotalDamageAmount  float64
}

// DamageRow is a citizen damage report joined with the pothole it was filed
// against and that pothole's derived status.
type DamageRow struct {
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
	FiledAt       time.Time
}

// CrewRow aggregates the lifetime workload of one repair crew.
type CrewRow struct {
	CrewID            uint
	Name              string
	TotalWorkOrders   int64
	TotalHours        float64
	AvgCrewSize       float64
	TotalMaterialUsed float64
	TotalRepairCost   float64
	CompletedRepairs  int64
}

// Repository serves the statistics read paths. All methods aggregate over
// current rows; nothing is cached.
type Repository interface {
	Totals(ctx context.Context) (*Totals, error)
	ByDistrict(ctx context.Context) ([]DistrictRow, error)
	WorkOrders(ctx context.Context) ([]WorkOrderRow, error)
	Damages(ctx context.Context, potholeID *uint) ([]DamageRow, error)
	Crews(ctx context.Context) ([]CrewRow, error)
}
