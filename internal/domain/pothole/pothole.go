package pothole

import (
	"fmt"
	"time"
)

// Location categorizes where in the roadway a pothole sits.
type Location string

const (
	LocationMiddle Location = "middle"
	LocationCurb   Location = "curb"
	LocationOther  Location = "other"
)

func NewLocation(value string) (Location, error) {
	l := Location(value)
	if !l.IsValid() {
		return "", fmt.Errorf("invalid location: %s", value)
	}
	return l, nil
}

func (l Location) IsValid() bool {
	switch l {
	case LocationMiddle, LocationCurb, LocationOther:
		return true
	}
	return false
}

func (l Location) String() string {
	return string(l)
}

// Pothole is a reported road-surface defect. Its repair priority is fixed at
// report time and never recomputed; its visible status is derived from the
// current work order, if any.
type Pothole struct {
	id            uint
	streetAddress string
	size          int
	location      Location
	district      string
	priority      int
	reportedAt    time.Time
}

// NewPothole builds a pothole from a citizen or operator report. Size must
// already be within the reportable range; hasDamage raises the computed
// priority when a damage claim accompanies the report.
func NewPothole(streetAddress string, size int, location Location, district string, hasDamage bool) (*Pothole, error) {
	if streetAddress == "" {
		return nil, fmt.Errorf("street address is required")
	}
	if district == "" {
		return nil, fmt.Errorf("district is required")
	}
	if !location.IsValid() {
		return nil, fmt.Errorf("invalid location: %s", location)
	}
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("size must be between %d and %d", MinSize, MaxSize)
	}

	return &Pothole{
		streetAddress: streetAddress,
		size:          size,
		location:      location,
		district:      district,
		priority:      ComputePriority(size, hasDamage),
		reportedAt:    time.Now(),
	}, nil
}

// ReconstructPothole rebuilds a pothole from persisted state.
func ReconstructPothole(
	id uint,
	streetAddress string,
	size int,
	location Location,
	district string,
	priority int,
	reportedAt time.Time,
) (*Pothole, error) {
	if id == 0 {
		return nil, fmt.Errorf("pothole ID cannot be zero")
	}
	if streetAddress == "" {
		return nil, fmt.Errorf("street address is required")
	}
	if !location.IsValid() {
		return nil, fmt.Errorf("invalid location: %s", location)
	}

	return &Pothole{
		id:            id,
		streetAddress: streetAddress,
		size:          ClampSize(size),
		location:      location,
		district:      district,
		priority:      priority,
		reportedAt:    reportedAt,
	}, nil
}

func (p *Pothole) ID() uint {
	return p.id
}

func (p *Pothole) StreetAddress() string {
	return p.streetAddress
}

func (p *Pothole) Size() int {
	return p.size
}

func (p *Pothole) Location() Location {
	return p.location
}

func (p *Pothole) District() string {
	return p.district
}

func (p *Pothole) Priority() int {
	return p.priority
}

func (p *Pothole) ReportedAt() time.Time {
	return p.reportedAt
}

func (p *Pothole) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("pothole ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("pothole ID cannot be zero")
	}
	p.id = id
	return nil
}
