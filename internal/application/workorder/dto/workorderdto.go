package dto

// AssignWorkOrderRequest is the input of the assignment upsert.
type AssignWorkOrderRequest struct {
	PotholeID          uint    `json:"pothole_id" validate:"required"`
	CrewID             uint    `json:"crew_id" validate:"required"`
	NumberOfPeople     int     `json:"number_of_people" validate:"gte=1"`
	EquipmentAssigned  string  `json:"equipment_assigned"`
	HoursApplied       float64 `json:"hours_applied" validate:"gte=0"`
	HoleStatus         string  `json:"hole_status"`
	FillerMaterialUsed float64 `json:"filler_material_used" validate:"gte=0"`
	RepairCost         float64 `json:"repair_cost" validate:"gte=0"`
}

// WorkOrderResponse is the current work order joined with crew and pothole
// summary fields.
type WorkOrderResponse struct {
	ID                 uint    `json:"id"`
	PotholeID          uint    `json:"pothole_id"`
	CrewID             uint    `json:"crew_id"`
	CrewName           string  `json:"crew_name"`
	StreetAddress      string  `json:"street_address"`
	District           string  `json:"district"`
	NumberOfPeople     int     `json:"number_of_people"`
	EquipmentAssigned  string  `json:"equipment_assigned"`
	HoursApplied       float64 `json:"hours_applied"`
	HoleStatus         string  `json:"hole_status"`
	FillerMaterialUsed float64 `json:"filler_material_used"`
	RepairCost         float64 `json:"repair_cost"`
}

// EstimateCostRequest is the input of the persistence-free cost preview.
type EstimateCostRequest struct {
	HoursApplied       float64 `json:"hours_applied" validate:"gte=0"`
	NumberOfPeople     int     `json:"number_of_people" validate:"gte=0"`
	FillerMaterialUsed float64 `json:"filler_material_used" validate:"gte=0"`
}

// CostEstimateResponse is a derived cost breakdown.
type CostEstimateResponse struct {
	LaborCost    float64 `json:"labor_cost"`
	MaterialCost float64 `json:"material_cost"`
	TotalCost    float64 `json:"total_cost"`
}
