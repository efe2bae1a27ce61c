package domain

import (
	"fmt"
	"time"
)

// Activity is a catalog record describing something a plan item can be
// created from. Exactly one of Transport, Accommodation or Leisure is
// populated, matching Kind; callers dispatch by switching on Kind instead
// of comparing free-form type strings.
type Activity struct {
	ID          string
	Name        string
	Kind        ActivityKind
	Price       int64 // per passenger; per passenger-night for accommodation
	DurationMin int
	Location    string

	Transport     *TransportInfo
	Accommodation *AccommodationInfo
	Leisure       *LeisureInfo

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TransportInfo carries transport-specific catalog fields. Location on the
// parent Activity is the arrival side of the route.
type TransportInfo struct {
	Mode          TransportMode
	StartLocation string
}

type AccommodationInfo struct {
	Class AccommodationClass
}

type LeisureInfo struct {
	Tags []string
}

// TagSet returns the activity's preference tags, empty for non-leisure kinds.
func (a *Activity) TagSet() []string {
	if a.Leisure == nil {
		return nil
	}
	return a.Leisure.Tags
}

// MatchesPreferences reports whether the activity shares at least one tag
// with prefs. An empty prefs set matches everything.
func (a *Activity) MatchesPreferences(prefs []string) bool {
	if len(prefs) == 0 {
		return true
	}
	return SharedTagCount(a.TagSet(), prefs) > 0
}

// SharedTagCount counts tags present in both sets.
func SharedTagCount(tags, prefs []string) int {
	if len(tags) == 0 || len(prefs) == 0 {
		return 0
	}
	set := make(map[string]bool, len(prefs))
	for _, p := range prefs {
		set[p] = true
	}
	n := 0
	for _, t := range tags {
		if set[t] {
			n++
		}
	}
	return n
}

// Validate checks kind-specific structural invariants.
func (a *Activity) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("activity name is required")
	}
	if a.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if a.DurationMin <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if a.Location == "" {
		return fmt.Errorf("location is required")
	}
	switch a.Kind {
	case KindTransport:
		if a.Transport == nil {
			return fmt.Errorf("transport activity missing transport details")
		}
		if a.Transport.StartLocation == "" {
			return fmt.Errorf("transport activity missing start location")
		}
		if !ValidTransportModes[string(a.Transport.Mode)] {
			return fmt.Errorf("unknown transport mode %q", a.Transport.Mode)
		}
	case KindAccommodation:
		if a.Accommodation == nil {
			return fmt.Errorf("accommodation activity missing accommodation details")
		}
		if !ValidAccommodationClasses[string(a.Accommodation.Class)] {
			return fmt.Errorf("unknown accommodation class %q", a.Accommodation.Class)
		}
	case KindLeisure:
		if a.Leisure == nil {
			return fmt.Errorf("leisure activity missing leisure details")
		}
	default:
		return fmt.Errorf("unknown activity kind %q", a.Kind)
	}
	return nil
}

// AmountFor computes the charge for one occurrence of this activity on the
// given plan: accommodation is priced per night per passenger, everything
// else per passenger.
func (a *Activity) AmountFor(p *Plan) int64 {
	if a.Kind == KindAccommodation {
		return a.Price * int64(p.Nights()) * int64(p.PassengerCount)
	}
	return a.Price * int64(p.PassengerCount)
}
