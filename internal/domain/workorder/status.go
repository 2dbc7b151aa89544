package workorder

import "strings"

// Status is the repair lifecycle state carried by a work order. Input arrives
// as free text; anything outside the recognized set maps to StatusUnknown
// rather than being stored as a new ad-hoc state.
type Status string

const (
	// StatusReported is the derived display state of a pothole that has no
	// work order yet. It is never persisted on a work order row.
	StatusReported Status = "Reported"

	StatusInProgress Status = "In Progress"
	StatusRepaired   Status = "Repaired"
	StatusUnknown    Status = "Unknown"
)

// ParseStatus normalizes caller-supplied status text. Matching is
// case-insensitive; unrecognized input falls back to StatusUnknown.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "reported":
		return StatusReported
	case "in progress", "in_progress":
		return StatusInProgress
	case "repaired":
		return StatusRepaired
	default:
		return StatusUnknown
	}
}

func (s Status) String() string {
	return string(s)
}

// Known reports whether the status is one of the recognized lifecycle states.
func (s Status) Known() bool {
	return s == StatusInProgress || s == StatusRepaired
}

// IsTerminal reports whether the status marks the repair as finished. The
// engine still accepts further assignments on a terminal order; callers
// typically stop offering them.
func (s Status) IsTerminal() bool {
	return s == StatusRepaired
}
