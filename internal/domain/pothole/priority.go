package pothole

// Reportable size range. Sizes arriving from outside the engine are rejected
// when out of range; values handled internally are clamped instead.
const (
	MinSize = 1
	MaxSize = 10
)

// damagePriorityBoost is added to the size when a damage claim accompanies
// the report.
const damagePriorityBoost = 2

// ClampSize forces a size into the [MinSize, MaxSize] range.
func ClampSize(size int) int {
	if size < MinSize {
		return MinSize
	}
	if size > MaxSize {
		return MaxSize
	}
	return size
}

// ComputePriority derives the repair priority for a report. Without a damage
// claim the priority equals the size; with one it is raised by two, capped at
// MaxSize. Pure so callers can preview the value before committing a report.
func ComputePriority(size int, hasDamage bool) int {
	size = ClampSize(size)
	if !hasDamage {
		return size
	}
	priority := size + damagePriorityBoost
	if priority > MaxSize {
		priority = MaxSize
	}
	return priority
}
