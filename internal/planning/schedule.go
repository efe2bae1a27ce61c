package planning

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mkarpenko/tripweaver/internal/domain"
)

// Item is one scheduled entry in a working schedule. Price and Tags are
// carried from the source catalog activity so rebalancing passes can score
// and reprice items without further catalog reads.
type Item struct {
	ID         string
	ActivityID string
	Name       string
	Kind       domain.ActivityKind
	Price      int64
	Tags       []string
	TimeFrom   time.Time
	TimeTo     time.Time
	Amount     int64

	added bool
	dirty bool
}

// Schedule is the mutable working copy of one plan and its items for the
// duration of a single operation. All passes mutate the schedule in local
// scope; the caller flushes the recorded changes to storage exactly once,
// inside the operation's transaction. TotalCost on the embedded plan is the
// running accumulator every pass maintains.
type Schedule struct {
	Plan    domain.Plan
	items   []*Item
	removed []string
}

// NewSchedule builds a working copy from a plan's persisted state.
func NewSchedule(plan domain.Plan, items []Item) *Schedule {
	s := &Schedule{Plan: plan}
	for i := range items {
		it := items[i]
		s.items = append(s.items, &it)
	}
	s.sortItems()
	return s
}

func (s *Schedule) sortItems() {
	sort.Slice(s.items, func(i, j int) bool {
		if !s.items[i].TimeFrom.Equal(s.items[j].TimeFrom) {
			return s.items[i].TimeFrom.Before(s.items[j].TimeFrom)
		}
		return s.items[i].ID < s.items[j].ID
	})
}

// Items returns the current items ordered by start time.
func (s *Schedule) Items() []*Item {
	return s.items
}

// Add appends a new item, assigns it an identity if absent and adds its
// amount to the running total cost.
func (s *Schedule) Add(it Item) *Item {
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	it.added = true
	added := &it
	s.items = append(s.items, added)
	s.sortItems()
	s.Plan.TotalCost += it.Amount
	return added
}

// Remove deletes an item and subtracts its amount from the running total.
// Previously persisted items are recorded for deletion at flush time.
func (s *Schedule) Remove(target *Item) {
	for i, it := range s.items {
		if it == target {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.Plan.TotalCost -= target.Amount
			if !target.added {
				s.removed = append(s.removed, target.ID)
			}
			return
		}
	}
}

// MarkDirty flags a persisted item as mutated in place.
func (s *Schedule) MarkDirty(it *Item) {
	if !it.added {
		it.dirty = true
	}
}

// RecomputeTotalCost replaces the running accumulator with the exact sum
// over current items.
func (s *Schedule) RecomputeTotalCost() {
	var total int64
	for _, it := range s.items {
		total += it.Amount
	}
	s.Plan.TotalCost = total
}

// Transports returns the schedule's transport items in start order.
func (s *Schedule) Transports() []*Item {
	var out []*Item
	for _, it := range s.items {
		if it.Kind == domain.KindTransport {
			out = append(out, it)
		}
	}
	return out
}

// Accommodations returns the schedule's accommodation items.
func (s *Schedule) Accommodations() []*Item {
	var out []*Item
	for _, it := range s.items {
		if it.Kind == domain.KindAccommodation {
			out = append(out, it)
		}
	}
	return out
}

// Outbound returns the earliest transport item, or nil.
func (s *Schedule) Outbound() *Item {
	ts := s.Transports()
	if len(ts) == 0 {
		return nil
	}
	return ts[0]
}

// Return returns the latest transport item, or nil.
func (s *Schedule) Return() *Item {
	ts := s.Transports()
	if len(ts) == 0 {
		return nil
	}
	return ts[len(ts)-1]
}

// Optional returns the non-mandatory (leisure) items.
func (s *Schedule) Optional() []*Item {
	var out []*Item
	for _, it := range s.items {
		if it.Kind == domain.KindLeisure {
			out = append(out, it)
		}
	}
	return out
}

// Added returns items created during this operation.
func (s *Schedule) Added() []*Item {
	var out []*Item
	for _, it := range s.items {
		if it.added {
			out = append(out, it)
		}
	}
	return out
}

// Dirty returns persisted items mutated during this operation.
func (s *Schedule) Dirty() []*Item {
	var out []*Item
	for _, it := range s.items {
		if it.dirty && !it.added {
			out = append(out, it)
		}
	}
	return out
}

// Removed returns IDs of persisted items deleted during this operation.
func (s *Schedule) Removed() []string {
	return s.removed
}
