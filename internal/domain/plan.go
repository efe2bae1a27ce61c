package domain

import (
	"fmt"
	"time"
)

type Plan struct {
	ID                 string
	Name               string
	StartLocation      string
	Destination        string
	StartDate          time.Time
	EndDate            time.Time
	Budget             int64
	TotalCost          int64
	PassengerCount     int
	Preferences        []string
	TransportMode      TransportMode
	AccommodationClass AccommodationClass
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Nights returns the number of accommodation nights for the stay.
// A same-day trip still counts as one night.
func (p *Plan) Nights() int {
	nights := int(p.EndDate.Sub(p.StartDate).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// Days returns the number of calendar days covered by the plan, inclusive.
func (p *Plan) Days() int {
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}

// Headroom returns the remaining spendable amount under the budget.
func (p *Plan) Headroom() int64 {
	return p.Budget - p.TotalCost
}

// Validate checks the plan's scalar invariants.
func (p *Plan) Validate() error {
	if p.Destination == "" {
		return fmt.Errorf("destination is required")
	}
	if p.StartLocation == "" {
		return fmt.Errorf("start location is required")
	}
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("end date %s is before start date %s",
			p.EndDate.Format("2006-01-02"), p.StartDate.Format("2006-01-02"))
	}
	if p.Budget < 0 {
		return fmt.Errorf("budget must not be negative")
	}
	if p.PassengerCount < 1 {
		return fmt.Errorf("passenger count must be at least 1")
	}
	if !ValidTransportModes[string(p.TransportMode)] {
		return fmt.Errorf("unknown transport mode %q", p.TransportMode)
	}
	if !ValidAccommodationClasses[string(p.AccommodationClass)] {
		return fmt.Errorf("unknown accommodation class %q", p.AccommodationClass)
	}
	return nil
}

// DisplayID returns a short identifier for display, truncating the UUID.
func (p *Plan) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
