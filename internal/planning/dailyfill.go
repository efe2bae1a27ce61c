package planning

import (
	"time"

	"github.com/mkarpenko/tripweaver/internal/domain"
)

// FillDays walks the calendar days in [from, to] and greedily places
// optional leisure items into each day's usable window. Priced candidates
// go first, cheapest first, until the budget utilization target is reached;
// free candidates then fill remaining gaps up to the per-day and per-plan
// caps. FillDays is best-effort and never fails: when nothing more fits it
// simply stops.
func FillDays(s *Schedule, catalog *Catalog, cfg Settings, from, to time.Time) {
	priced, free := catalog.LeisureCandidates(&s.Plan)
	if len(priced) == 0 && len(free) == 0 {
		return
	}

	pax := int64(s.Plan.PassengerCount)
	target := s.Plan.Budget * utilizationPct / 100

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		window, ok := dayWindow(s, cfg, day)
		if !ok {
			continue
		}

		for _, act := range priced {
			if s.Plan.TotalCost >= target {
				break
			}
			amount := act.Price * pax
			if s.Plan.TotalCost+amount > s.Plan.Budget {
				continue
			}
			slot, found := FindSlot(window, s.Items(), act.DurationMin, cfg.GapMin)
			if !found {
				continue
			}
			s.Add(Item{
				ActivityID: act.ID,
				Name:       act.Name,
				Kind:       domain.KindLeisure,
				Price:      act.Price,
				Tags:       act.TagSet(),
				TimeFrom:   slot.From,
				TimeTo:     slot.To,
				Amount:     amount,
			})
		}

		for _, act := range free {
			// Plan-wide cap ends the free pass only; later days still
			// receive priced items.
			if freeItemCount(s) >= maxFreePerPlan {
				break
			}
			if freeItemCountOnDay(s, day) >= maxFreePerDay {
				break
			}
			slot, found := FindSlot(window, s.Items(), act.DurationMin, cfg.GapMin)
			if !found {
				continue
			}
			s.Add(Item{
				ActivityID: act.ID,
				Name:       act.Name,
				Kind:       domain.KindLeisure,
				Price:      0,
				Tags:       act.TagSet(),
				TimeFrom:   slot.From,
				TimeTo:     slot.To,
				Amount:     0,
			})
		}
	}
}

// dayWindow computes the usable window of a calendar day. The first trip
// day only opens after the outbound leg plus its rest buffer; the last day
// closes before the return leg minus its buffer. Returns false when the
// window is empty or inverted.
func dayWindow(s *Schedule, cfg Settings, day time.Time) (Interval, bool) {
	start := at(day, cfg.DayStart)
	end := at(day, cfg.DayEnd)

	if day.Equal(s.Plan.StartDate) {
		if outbound := s.Outbound(); outbound != nil {
			start = outbound.TimeTo.Add(time.Duration(cfg.BufferAfterOutboundMin) * time.Minute)
		}
	}
	if day.Equal(s.Plan.EndDate) {
		if ret := s.Return(); ret != nil {
			end = ret.TimeFrom.Add(-time.Duration(cfg.BufferBeforeReturnMin) * time.Minute)
		}
	}

	if !start.Before(end) {
		return Interval{}, false
	}
	return Interval{From: start, To: end}, true
}

// freeItemCount counts zero-amount leisure items across the plan.
func freeItemCount(s *Schedule) int {
	n := 0
	for _, it := range s.Optional() {
		if it.Amount == 0 {
			n++
		}
	}
	return n
}

// freeItemCountOnDay counts zero-amount leisure items starting on the given day.
func freeItemCountOnDay(s *Schedule, day time.Time) int {
	n := 0
	for _, it := range s.Optional() {
		if it.Amount == 0 && dayOf(it.TimeFrom).Equal(day) {
			n++
		}
	}
	return n
}
