package planning

import (
	"sort"
	"time"

	"github.com/mkarpenko/tripweaver/internal/domain"
)

// Interval is a half-open [From, To) time range.
type Interval struct {
	From time.Time
	To   time.Time
}

// Duration returns the interval length.
func (iv Interval) Duration() time.Duration {
	return iv.To.Sub(iv.From)
}

// FindSlot returns the earliest [from, to) placement of durationMin minutes
// inside the window that keeps at least gapMin minutes of clearance from
// every existing non-accommodation item. Accommodation items never block a
// slot: lodging is a backdrop for the day, not a scheduled activity.
func FindSlot(window Interval, items []*Item, durationMin, gapMin int) (Interval, bool) {
	duration := time.Duration(durationMin) * time.Minute
	gap := time.Duration(gapMin) * time.Minute

	busy := busyIntervals(window, items, gap)

	// Before the first busy interval.
	cursor := window.From
	for _, b := range busy {
		if b.From.Sub(cursor) >= duration {
			return Interval{From: cursor, To: cursor.Add(duration)}, true
		}
		if b.To.After(cursor) {
			cursor = b.To
		}
	}

	// After the last interval (or an empty window).
	if window.To.Sub(cursor) >= duration {
		return Interval{From: cursor, To: cursor.Add(duration)}, true
	}
	return Interval{}, false
}

// busyIntervals collects the non-accommodation items intersecting the
// window, clips them to it, pads both ends by gap and merges overlaps into
// a sorted disjoint list.
func busyIntervals(window Interval, items []*Item, gap time.Duration) []Interval {
	var raw []Interval
	for _, it := range items {
		if it.Kind == domain.KindAccommodation {
			continue
		}
		if !it.TimeFrom.Before(window.To) || !it.TimeTo.After(window.From) {
			continue
		}
		from := it.TimeFrom
		to := it.TimeTo
		if from.Before(window.From) {
			from = window.From
		}
		if to.After(window.To) {
			to = window.To
		}
		raw = append(raw, Interval{From: from.Add(-gap), To: to.Add(gap)})
	}
	if len(raw) == 0 {
		return nil
	}

	sort.Slice(raw, func(i, j int) bool { return raw[i].From.Before(raw[j].From) })

	merged := []Interval{raw[0]}
	for _, iv := range raw[1:] {
		last := &merged[len(merged)-1]
		if !iv.From.After(last.To) {
			if iv.To.After(last.To) {
				last.To = iv.To
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
