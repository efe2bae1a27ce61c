package planning

import (
	"fmt"
	"sort"
	"time"

	"github.com/mkarpenko/tripweaver/internal/domain"
)

// RebalanceDates reacts to a plan date change that has already been applied
// to the schedule's plan fields. Mandatory items are repositioned in place
// (same underlying activities, new times, recomputed amounts), optional
// items falling outside the new window or the first/last day cut times are
// pruned, newly opened days are filled and the budget-shaped shrink or
// expand pass runs as needed.
func RebalanceDates(s *Schedule, catalog *Catalog, cfg Settings, oldStart, oldEnd time.Time) error {
	plan := &s.Plan

	outbound, ret, accommodation, err := mandatoryItems(s)
	if err != nil {
		return err
	}

	outboundAct := catalog.Get(outbound.ActivityID)
	returnAct := catalog.Get(ret.ActivityID)
	accommodationAct := catalog.Get(accommodation.ActivityID)
	if outboundAct == nil || returnAct == nil || accommodationAct == nil {
		return newError(ErrMandatoryVariantNotFound,
			"a mandatory item references an activity no longer in the catalog")
	}

	pax := int64(plan.PassengerCount)
	nights := int64(plan.Nights())
	floor := (outboundAct.Price+returnAct.Price)*pax + accommodationAct.Price*nights*pax
	if floor > plan.Budget {
		return newError(ErrBudgetTooLowForMandatory,
			fmt.Sprintf("mandatory items cost %d which exceeds budget %d", floor, plan.Budget))
	}

	repositionTransport(s, outbound, outboundAct, plan.StartDate, cfg.OutboundStart)
	repositionTransport(s, ret, returnAct, plan.EndDate, cfg.ReturnStart)

	accommodation.TimeFrom = at(plan.StartDate, cfg.CheckinTime)
	accommodation.TimeTo = at(plan.EndDate, cfg.CheckoutTime)
	newAmount := accommodationAct.Price * nights * pax
	plan.TotalCost += newAmount - accommodation.Amount
	accommodation.Amount = newAmount
	s.MarkDirty(accommodation)

	pruneOutsideWindow(s, cfg, outbound, ret)

	startGrew := plan.StartDate.Before(oldStart)
	endGrew := plan.EndDate.After(oldEnd)
	if startGrew {
		last := oldStart.AddDate(0, 0, -1)
		if last.After(plan.EndDate) {
			last = plan.EndDate
		}
		FillDays(s, catalog, cfg, plan.StartDate, last)
	}
	if endGrew {
		first := oldEnd.AddDate(0, 0, 1)
		if first.Before(plan.StartDate) {
			first = plan.StartDate
		}
		FillDays(s, catalog, cfg, first, plan.EndDate)
	}
	if startGrew || endGrew {
		expandTowardBudget(s, catalog, cfg)
	}

	shrank := plan.StartDate.After(oldStart) || plan.EndDate.Before(oldEnd)
	if shrank || plan.TotalCost > plan.Budget {
		shrinkToBudget(s)
	}

	s.RecomputeTotalCost()
	return nil
}

// RebalancePassengers reacts to a passenger count change. Every item's
// amount is recomputed under the new count; freed headroom is spent on more
// optional items, while an over-budget result triggers the shrink pass and,
// if that is not enough, fails the whole operation.
func RebalancePassengers(s *Schedule, catalog *Catalog, cfg Settings, oldCount, newCount int) error {
	plan := &s.Plan
	plan.PassengerCount = newCount

	pax := int64(newCount)
	nights := int64(plan.Nights())
	for _, it := range s.Items() {
		var amount int64
		switch it.Kind {
		case domain.KindAccommodation:
			amount = it.Price * nights * pax
		default:
			amount = it.Price * pax
		}
		if amount != it.Amount {
			it.Amount = amount
			s.MarkDirty(it)
		}
	}
	s.RecomputeTotalCost()

	if newCount < oldCount {
		expandTowardBudget(s, catalog, cfg)
	} else if plan.TotalCost > plan.Budget {
		shrinkToBudget(s)
		if plan.TotalCost > plan.Budget {
			return newError(ErrBudgetTooLowAfterPax,
				fmt.Sprintf("cost %d for %d passengers exceeds budget %d",
					plan.TotalCost, newCount, plan.Budget))
		}
	}

	s.RecomputeTotalCost()
	return nil
}

// RebalanceBudget reacts to a budget change. Lowering the budget below the
// current cost is rejected outright; raising it triggers the expand pass.
func RebalanceBudget(s *Schedule, catalog *Catalog, cfg Settings, oldBudget, newBudget int64) error {
	plan := &s.Plan
	if newBudget < plan.TotalCost {
		return newError(ErrBudgetExceeded,
			fmt.Sprintf("current cost %d exceeds requested budget %d", plan.TotalCost, newBudget))
	}

	plan.Budget = newBudget
	if newBudget > oldBudget {
		expandTowardBudget(s, catalog, cfg)
	}

	s.RecomputeTotalCost()
	return nil
}

// mandatoryItems resolves the outbound leg, return leg and accommodation of
// a schedule, failing when the expected structure is not present.
func mandatoryItems(s *Schedule) (outbound, ret, accommodation *Item, err error) {
	transports := s.Transports()
	accommodations := s.Accommodations()
	if len(transports) != 2 || len(accommodations) == 0 {
		return nil, nil, nil, newError(ErrMandatoryMissing,
			fmt.Sprintf("expected 2 transport legs and an accommodation, found %d and %d",
				len(transports), len(accommodations)))
	}
	return transports[0], transports[1], accommodations[0], nil
}

// repositionTransport moves a transport leg to the given day and recomputes
// its duration and amount from the source activity.
func repositionTransport(s *Schedule, it *Item, act *domain.Activity, day time.Time, startClock int) {
	it.TimeFrom = at(day, startClock)
	it.TimeTo = it.TimeFrom.Add(time.Duration(act.DurationMin) * time.Minute)
	it.Price = act.Price
	newAmount := act.Price * int64(s.Plan.PassengerCount)
	s.Plan.TotalCost += newAmount - it.Amount
	it.Amount = newAmount
	s.MarkDirty(it)
}

// pruneOutsideWindow removes optional items that the new date window no
// longer accommodates: items fully outside the window, items on the first
// day starting before the post-outbound cut, and items on the last day
// ending after the pre-return cut.
func pruneOutsideWindow(s *Schedule, cfg Settings, outbound, ret *Item) {
	firstCut := outbound.TimeTo.Add(time.Duration(cfg.BufferAfterOutboundMin) * time.Minute)
	lastCut := ret.TimeFrom.Add(-time.Duration(cfg.BufferBeforeReturnMin) * time.Minute)
	winEnd := windowEnd(&s.Plan)

	for _, it := range s.Optional() {
		switch {
		case !it.TimeFrom.Before(winEnd) || !it.TimeTo.After(s.Plan.StartDate):
			s.Remove(it)
		case dayOf(it.TimeFrom).Equal(s.Plan.StartDate) && it.TimeFrom.Before(firstCut):
			s.Remove(it)
		case dayOf(it.TimeTo).Equal(s.Plan.EndDate) && it.TimeTo.After(lastCut):
			s.Remove(it)
		}
	}
}

// shrinkToBudget removes the least valuable optional items until the plan
// fits its budget again or nothing optional is left. Items are ranked by
// utility (shared preference tags plus a cheapness bonus); the lowest
// utility goes first, with the pricier of equal-utility items preferred for
// removal.
func shrinkToBudget(s *Schedule) {
	plan := &s.Plan
	for plan.TotalCost > plan.Budget {
		optional := s.Optional()
		if len(optional) == 0 {
			return
		}

		victim := optional[0]
		victimScore := utilityScore(victim, plan.Preferences)
		for _, it := range optional[1:] {
			score := utilityScore(it, plan.Preferences)
			if score < victimScore || (score == victimScore && it.Price > victim.Price) {
				victim = it
				victimScore = score
			}
		}
		s.Remove(victim)
	}
}

// utilityScore ranks an optional item for the shrink pass: one point per
// preference tag shared with the plan plus a cheapness bonus fading to zero
// at price 100.
func utilityScore(it *Item, prefs []string) float64 {
	score := float64(domain.SharedTagCount(it.Tags, prefs))
	bonus := 1 - float64(it.Price)/100
	if bonus > 0 {
		score += bonus
	}
	return score
}

// expandTowardBudget opportunistically spends remaining headroom on more
// optional items. It mirrors the daily fill's priced-then-free structure
// but round-robins across all trip days over the existing schedule,
// placing expensive candidates first to approach the budget faster. The
// pass is a no-op when headroom is already inside the closeness threshold,
// and per-day caps count existing items, so re-running it without a state
// change places nothing.
func expandTowardBudget(s *Schedule, catalog *Catalog, cfg Settings) {
	plan := &s.Plan

	threshold := plan.Budget * 5 / 100
	if threshold < 10 {
		threshold = 10
	}
	if plan.Budget-plan.TotalCost <= threshold {
		return
	}

	priced, free := catalog.LeisureCandidates(plan)
	// Most expensive first for the priced pass.
	sort.SliceStable(priced, func(i, j int) bool { return priced[i].Price > priced[j].Price })

	var days []time.Time
	for day := plan.StartDate; !day.After(plan.EndDate); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}

	pax := int64(plan.PassengerCount)
	for placed := true; placed; {
		placed = false
		for _, day := range days {
			if pricedItemCountOnDay(s, day) >= maxPricedPerDay {
				continue
			}
			window, ok := dayWindow(s, cfg, day)
			if !ok {
				continue
			}
			for _, act := range priced {
				if scheduledOnDay(s, act.ID, day) {
					continue
				}
				amount := act.Price * pax
				if plan.TotalCost+amount > plan.Budget {
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
				placed = true
				break
			}
		}
	}

	for _, day := range days {
		if freeItemCount(s) >= maxFreePerPlan {
			return
		}
		window, ok := dayWindow(s, cfg, day)
		if !ok {
			continue
		}
		for _, act := range free {
			if freeItemCountOnDay(s, day) >= maxFreePerDay {
				break
			}
			if freeItemCount(s) >= maxFreePerPlan {
				return
			}
			if scheduledOnDay(s, act.ID, day) {
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
				Price:      0,
				Tags:       act.TagSet(),
				TimeFrom:   slot.From,
				TimeTo:     slot.To,
				Amount:     0,
			})
		}
	}
}

// scheduledOnDay reports whether an item from the given activity already
// starts on the given day. The expand pass never schedules the same
// activity twice on one day; this also makes re-running the pass on an
// unchanged schedule a no-op.
func scheduledOnDay(s *Schedule, activityID string, day time.Time) bool {
	for _, it := range s.Items() {
		if it.ActivityID == activityID && dayOf(it.TimeFrom).Equal(day) {
			return true
		}
	}
	return false
}

// pricedItemCountOnDay counts priced leisure items starting on the given day.
func pricedItemCountOnDay(s *Schedule, day time.Time) int {
	n := 0
	for _, it := range s.Optional() {
		if it.Amount > 0 && dayOf(it.TimeFrom).Equal(day) {
			n++
		}
	}
	return n
}
