package dto

// CreateCrewRequest creates a repair crew. Names are unique.
type CreateCrewRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CrewResponse mirrors a persisted repair crew.
type CrewResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CrewWorkload is one row of the crew listing: the crew with its order
// counts and average repair cost. Crews without orders report zeros.
type CrewWorkload struct {
	CrewID            uint    `json:"crew_id"`
	CrewName          string  `json:"crew_name"`
	ActiveOrders      int64   `json:"active_orders"`
	InProgressOrders  int64   `json:"in_progress_orders"`
	CompletedOrders   int64   `json:"completed_orders"`
	AverageRepairCost float64 `json:"average_repair_cost"`
}
