package crew

import "context"

// Workload is a read-model row for crew listings: the crew with its order
// counts and the average cost of its completed repairs. Crews without orders
// report zeros.
type Workload struct {
	CrewID            uint
	Name              string
	ActiveOrders      int64
	InProgressOrders  int64
	CompletedOrders   int64
	AverageRepairCost float64
}

// Repository persists repair crews. Crew names are unique.
type Repository interface {
	Save(ctx context.Context, c *RepairCrew) error
	FindByID(ctx context.Context, id uint) (*RepairCrew, error)
	FindByName(ctx context.Context, name string) (*RepairCrew, error)
	ListWorkloads(ctx context.Context) ([]Workload, error)
}
