package workorder

// Billing rates applied when estimating repair cost.
const (
	// LaborRate is charged per person per hour.
	LaborRate = 50.0
	// MaterialRate is charged per cubic yard of filler material.
	MaterialRate = 100.0
)

// CostBreakdown is the result of a repair cost estimate.
type CostBreakdown struct {
	LaborCost    float64 `json:"labor_cost"`
	MaterialCost float64 `json:"material_cost"`
	TotalCost    float64 `json:"total_cost"`
}

// ComputeRepairCost estimates the cost of a repair from crew effort and
// material usage. Pure; it knows nothing about which work order it estimates
// for, and the persisted repair cost is not forced to match the estimate.
func ComputeRepairCost(hoursApplied float64, numberOfPeople int, fillerMaterialUsed float64) CostBreakdown {
	labor := hoursApplied * float64(numberOfPeople) * LaborRate
	material := fillerMaterialUsed * MaterialRate
	return CostBreakdown{
		LaborCost:    labor,
		MaterialCost: material,
		TotalCost:    labor + material,
	}
}
