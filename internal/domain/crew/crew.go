package crew

import "fmt"

// RepairCrew is a named team that work orders are assigned to. Crews are
// created administratively and never deleted by the engine.
type RepairCrew struct {
	id   uint
	name string
}

func NewRepairCrew(name string) (*RepairCrew, error) {
	if name == "" {
		return nil, fmt.Errorf("crew name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("crew name exceeds maximum length of 100 characters")
	}

	return &RepairCrew{name: name}, nil
}

func ReconstructRepairCrew(id uint, name string) (*RepairCrew, error) {
	if id == 0 {
		return nil, fmt.Errorf("crew ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("crew name is required")
	}

	return &RepairCrew{id: id, name: name}, nil
}

func (c *RepairCrew) ID() uint {
	return c.id
}

func (c *RepairCrew) Name() string {
	return c.name
}

func (c *RepairCrew) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("crew ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("crew ID cannot be zero")
	}
	c.id = id
	return nil
}
