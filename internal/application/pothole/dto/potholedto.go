package dto

import "time"

// DamageInput carries an optional damage claim filed together with a new
// pothole report.
type DamageInput struct {
	CitizenName  string  `json:"citizen_name" validate:"required,max=100"`
	Address      string  `json:"address" validate:"required,max=255"`
	PhoneNumber  string  `json:"phone_number" validate:"required,max=30"`
	TypeOfDamage string  `json:"type_of_damage" validate:"required,max=100"`
	DamageAmount float64 `json:"damage_amount" validate:"gte=0"`
}

// ReportPotholeRequest is the input of the report transaction.
type ReportPotholeRequest struct {
	StreetAddress string       `json:"street_address"`
	Size          int          `json:"size"`
	Location      string       `json:"location"`
	District      string       `json:"district"`
	Damage        *DamageInput `json:"damage,omitempty"`
}

// FileDamageRequest files a damage claim against an existing pothole.
type FileDamageRequest struct {
	PotholeID    uint    `json:"pothole_id" validate:"required"`
	CitizenName  string  `json:"citizen_name" validate:"required,max=100"`
	Address      string  `json:"address" validate:"required,max=255"`
	PhoneNumber  string  `json:"phone_number" validate:"required,max=30"`
	TypeOfDamage string  `json:"type_of_damage" validate:"required,max=100"`
	DamageAmount float64 `json:"damage_amount" validate:"required,gte=0"`
}

// DamageResponse mirrors a persisted damage claim.
type DamageResponse struct {
	ID           uint    `json:"id"`
	PotholeID    uint    `json:"pothole_id"`
	CitizenName  string  `json:"citizen_name"`
	Address      string  `json:"address"`
	PhoneNumber  string  `json:"phone_number"`
	TypeOfDamage string  `json:"type_of_damage"`
	DamageAmount float64 `json:"damage_amount"`
}

// PotholeResponse is the materialized result of the report transaction,
// joined with the claim created alongside it when one was filed.
type PotholeResponse struct {
	ID             uint            `json:"id"`
	StreetAddress  string          `json:"street_address"`
	Size           int             `json:"size"`
	Location       string          `json:"location"`
	District       string          `json:"district"`
	RepairPriority int             `json:"repair_priority"`
	ReportedAt     time.Time       `json:"reported_at"`
	Status         string          `json:"status"`
	Damage         *DamageResponse `json:"damage,omitempty"`
}

// PotholeSummary is one row of the pothole listing: the pothole annotated
// with its current work order status and damage report count.
type PotholeSummary struct {
	ID             uint      `json:"id"`
	StreetAddress  string    `json:"street_address"`
	Size           int       `json:"size"`
	Location       string    `json:"location"`
	District       string    `json:"district"`
	RepairPriority int       `json:"repair_priority"`
	ReportedAt     time.Time `json:"reported_at"`
	HoleStatus     string    `json:"hole_status"`
	DamageReports  int64     `json:"damage_reports"`
}

// PotholeDetail is a single pothole joined with its current work order, the
// assigned crew, aggregated damage figures and the individual claims.
type PotholeDetail struct {
	ID                uint             `json:"id"`
	StreetAddress     string           `json:"street_address"`
	Size              int              `json:"size"`
	Location          string           `json:"location"`
	District          string           `json:"district"`
	RepairPriority    int              `json:"repair_priority"`
	ReportedAt        time.Time        `json:"reported_at"`
	HoleStatus        string           `json:"hole_status"`
	WorkOrderID       *uint            `json:"work_order_id,omitempty"`
	CrewID            *uint            `json:"crew_id,omitempty"`
	CrewName          *string          `json:"crew_name,omitempty"`
	RepairCost        *float64         `json:"repair_cost,omitempty"`
	DamageReports     int64            `json:"damage_reports"`
	TotalDamageAmount float64          `json:"total_damage_amount"`
	Damages           []DamageResponse `json:"damages"`
}

// DamageDetail is a damage claim joined with its pothole and the pothole's
// current work order status. HoleStatus is empty when no order exists.
type DamageDetail struct {
	ID            uint    `json:"id"`
	PotholeID     uint    `json:"pothole_id"`
	CitizenName   string  `json:"citizen_name"`
	Address       string  `json:"address"`
	PhoneNumber   string  `json:"phone_number"`
	TypeOfDamage  string  `json:"type_of_damage"`
	DamageAmount  float64 `json:"damage_amount"`
	StreetAddress string  `json:"street_address"`
	District      string  `json:"district"`
	HoleStatus    string  `json:"hole_status,omitempty"`
}
