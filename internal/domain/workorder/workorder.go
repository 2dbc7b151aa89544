package workorder

import "fmt"

// WorkOrder is the single current repair record for a pothole. Reassigning a
// crew overwrites the row in place; there is no append-only history.
type WorkOrder struct {
	id                 uint
	potholeID          uint
	crewID             uint
	numberOfPeople     int
	equipmentAssigned  string
	hoursApplied       float64
	status             Status
	fillerMaterialUsed float64
	repairCost         float64
}

// NewWorkOrder builds a work order from an assignment request.
func NewWorkOrder(
	potholeID uint,
	crewID uint,
	numberOfPeople int,
	equipmentAssigned string,
	hoursApplied float64,
	status Status,
	fillerMaterialUsed float64,
	repairCost float64,
) (*WorkOrder, error) {
	if potholeID == 0 {
		return nil, fmt.Errorf("pothole ID is required")
	}
	if crewID == 0 {
		return nil, fmt.Errorf("crew ID is required")
	}
	if numberOfPeople < 1 {
		return nil, fmt.Errorf("number of people must be at least 1")
	}
	if hoursApplied < 0 {
		return nil, fmt.Errorf("hours applied cannot be negative")
	}
	if fillerMaterialUsed < 0 {
		return nil, fmt.Errorf("filler material used cannot be negative")
	}
	if repairCost < 0 {
		return nil, fmt.Errorf("repair cost cannot be negative")
	}
	if status == StatusReported {
		return nil, fmt.Errorf("a work order cannot carry the Reported status")
	}

	return &WorkOrder{
		potholeID:          potholeID,
		crewID:             crewID,
		numberOfPeople:     numberOfPeople,
		equipmentAssigned:  equipmentAssigned,
		hoursApplied:       hoursApplied,
		status:             status,
		fillerMaterialUsed: fillerMaterialUsed,
		repairCost:         repairCost,
	}, nil
}

// ReconstructWorkOrder rebuilds a work order from persisted state.
func ReconstructWorkOrder(
	id uint,
	potholeID uint,
	crewID uint,
	numberOfPeople int,
	equipmentAssigned string,
	hoursApplied float64,
	status Status,
	fillerMaterialUsed float64,
	repairCost float64,
) (*WorkOrder, error) {
	if id == 0 {
		return nil, fmt.Errorf("work order ID cannot be zero")
	}
	if potholeID == 0 {
		return nil, fmt.Errorf("pothole ID is required")
	}
	if crewID == 0 {
		return nil, fmt.Errorf("crew ID is required")
	}

	return &WorkOrder{
		id:                 id,
		potholeID:          potholeID,
		crewID:             crewID,
		numberOfPeople:     numberOfPeople,
		equipmentAssigned:  equipmentAssigned,
		hoursApplied:       hoursApplied,
		status:             status,
		fillerMaterialUsed: fillerMaterialUsed,
		repairCost:         repairCost,
	}, nil
}

func (w *WorkOrder) ID() uint {
	return w.id
}

func (w *WorkOrder) PotholeID() uint {
	return w.potholeID
}

func (w *WorkOrder) CrewID() uint {
	return w.crewID
}

func (w *WorkOrder) NumberOfPeople() int {
	return w.numberOfPeople
}

func (w *WorkOrder) EquipmentAssigned() string {
	return w.equipmentAssigned
}

func (w *WorkOrder) HoursApplied() float64 {
	return w.hoursApplied
}

func (w *WorkOrder) Status() Status {
	return w.status
}

func (w *WorkOrder) FillerMaterialUsed() float64 {
	return w.fillerMaterialUsed
}

func (w *WorkOrder) RepairCost() float64 {
	return w.repairCost
}

func (w *WorkOrder) SetID(id uint) error {
	if w.id != 0 {
		return fmt.Errorf("work order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("work order ID cannot be zero")
	}
	w.id = id
	return nil
}

// EstimatedCost recomputes the derived cost breakdown from the order's own
// effort figures. Independent of the persisted repairCost.
func (w *WorkOrder) EstimatedCost() CostBreakdown {
	return ComputeRepairCost(w.hoursApplied, w.numberOfPeople, w.fillerMaterialUsed)
}
