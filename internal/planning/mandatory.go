package planning

import (
	"fmt"
	"time"

	"github.com/mkarpenko/tripweaver/internal/domain"
)

// GenerateMandatory selects and places the three required items of a plan:
// the outbound transport leg, the full-stay accommodation and the return
// transport leg. The outbound leg uses the most expensive matching variant
// and the return leg the cheapest; when only one variant exists both legs
// use it. The asymmetry is a business rule carried over from the pricing
// team, not an optimization.
func GenerateMandatory(s *Schedule, catalog *Catalog, cfg Settings) error {
	plan := &s.Plan

	transports := catalog.TransportVariants(plan)
	accommodations := catalog.AccommodationVariants(plan)
	if len(transports) == 0 || len(accommodations) == 0 {
		return newError(ErrMandatoryVariantsMissing,
			fmt.Sprintf("no %s connection %s-%s or no %s accommodation in %s",
				plan.TransportMode, plan.StartLocation, plan.Destination,
				plan.AccommodationClass, plan.Destination))
	}

	outboundAct := transports[len(transports)-1]
	returnAct := transports[0]
	accommodationAct := accommodations[0]

	pax := int64(plan.PassengerCount)
	nights := int64(plan.Nights())
	floor := (outboundAct.Price+returnAct.Price)*pax + accommodationAct.Price*nights*pax
	if floor > plan.Budget {
		return newError(ErrBudgetTooLowForMandatory,
			fmt.Sprintf("mandatory items cost %d which exceeds budget %d", floor, plan.Budget))
	}

	if err := placeTransport(s, outboundAct, plan.StartDate, cfg.OutboundStart); err != nil {
		return err
	}

	s.Add(Item{
		ActivityID: accommodationAct.ID,
		Name:       accommodationAct.Name,
		Kind:       domain.KindAccommodation,
		Price:      accommodationAct.Price,
		TimeFrom:   at(plan.StartDate, cfg.CheckinTime),
		TimeTo:     at(plan.EndDate, cfg.CheckoutTime),
		Amount:     accommodationAct.Price * nights * pax,
	})

	return placeTransport(s, returnAct, plan.EndDate, cfg.ReturnStart)
}

// placeTransport schedules one transport leg on the given day, rejecting
// placements that leave the travel window or collide with existing
// non-accommodation items.
func placeTransport(s *Schedule, act *domain.Activity, day time.Time, startClock int) error {
	from := at(day, startClock)
	to := from.Add(time.Duration(act.DurationMin) * time.Minute)

	if from.Before(s.Plan.StartDate) || to.After(windowEnd(&s.Plan)) {
		return newError(ErrMandatoryOutsideWindow,
			fmt.Sprintf("%s does not fit inside the travel period", act.Name))
	}
	for _, it := range s.Items() {
		if it.Kind == domain.KindAccommodation {
			continue
		}
		if from.Before(it.TimeTo) && it.TimeFrom.Before(to) {
			return newError(ErrMandatoryOverlap,
				fmt.Sprintf("%s overlaps %s", act.Name, it.Name))
		}
	}

	s.Add(Item{
		ActivityID: act.ID,
		Name:       act.Name,
		Kind:       domain.KindTransport,
		Price:      act.Price,
		TimeFrom:   from,
		TimeTo:     to,
		Amount:     act.Price * int64(s.Plan.PassengerCount),
	})
	return nil
}

// windowEnd returns the exclusive end of the plan's travel period, midnight
// after the last day.
func windowEnd(p *domain.Plan) time.Time {
	return p.EndDate.AddDate(0, 0, 1)
}
