package planning

import (
	"fmt"

	"github.com/mkarpenko/tripweaver/internal/domain"
)

// Validate asserts the schedule's structural invariants after a mutation:
// the three mandatory items exist, the accommodation spans the whole stay,
// no two non-accommodation items overlap and every item lies inside the
// travel period. Callers run it as the last step of every operation, still
// inside the transaction, so a violation rolls the whole operation back.
func Validate(s *Schedule, cfg Settings) error {
	if err := assertMandatoryItems(s, cfg); err != nil {
		return err
	}
	return assertNoOverlapsAndInWindow(s)
}

func assertMandatoryItems(s *Schedule, cfg Settings) error {
	transports := s.Transports()
	accommodations := s.Accommodations()
	if len(transports) != 2 || len(accommodations) < 1 {
		return newError(ErrMandatoryMissing,
			fmt.Sprintf("plan must have exactly 2 transport legs and an accommodation, found %d and %d",
				len(transports), len(accommodations)))
	}

	wantFrom := at(s.Plan.StartDate, cfg.CheckinTime)
	wantTo := at(s.Plan.EndDate, cfg.CheckoutTime)
	for _, acc := range accommodations {
		if !acc.TimeFrom.Equal(wantFrom) || !acc.TimeTo.Equal(wantTo) {
			return newError(ErrAccommodationNotSpanning,
				fmt.Sprintf("%s does not span check-in to check-out of the stay", acc.Name))
		}
	}
	return nil
}

func assertNoOverlapsAndInWindow(s *Schedule) error {
	winEnd := windowEnd(&s.Plan)

	var prev *Item
	for _, it := range s.Items() {
		if it.TimeFrom.Before(s.Plan.StartDate) || it.TimeTo.After(winEnd) {
			return newError(ErrOutsideTravelPeriod,
				fmt.Sprintf("%s lies outside the travel period", it.Name))
		}
		if it.Kind == domain.KindAccommodation {
			continue
		}
		if prev != nil && it.TimeFrom.Before(prev.TimeTo) {
			return newError(ErrTimeOverlap,
				fmt.Sprintf("%s overlaps %s", it.Name, prev.Name))
		}
		prev = it
	}
	return nil
}
