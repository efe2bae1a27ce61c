package domain

import "time"

// PlanItem is one scheduled entry inside a plan. Name and Kind are
// snapshots taken when the item is created; the catalog record may be
// renamed afterwards without affecting existing itineraries.
type PlanItem struct {
	ID         string
	PlanID     string
	ActivityID string
	Name       string
	Kind       ActivityKind
	TimeFrom   time.Time
	TimeTo     time.Time
	Amount     int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Overlaps reports whether the two items' [TimeFrom, TimeTo) ranges intersect.
func (i *PlanItem) Overlaps(other *PlanItem) bool {
	return i.TimeFrom.Before(other.TimeTo) && other.TimeFrom.Before(i.TimeTo)
}
