package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mkarpenko/tripweaver/internal/domain"
)

// Date builds a UTC midnight date, the only time shape plans store.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Plan options

type PlanOption func(*domain.Plan)

func WithBudget(b int64) PlanOption {
	return func(p *domain.Plan) { p.Budget = b }
}

func WithPassengers(n int) PlanOption {
	return func(p *domain.Plan) { p.PassengerCount = n }
}

func WithDates(start, end time.Time) PlanOption {
	return func(p *domain.Plan) {
		p.StartDate = start
		p.EndDate = end
	}
}

func WithPreferences(tags ...string) PlanOption {
	return func(p *domain.Plan) { p.Preferences = tags }
}

func WithRoute(from, to string) PlanOption {
	return func(p *domain.Plan) {
		p.StartLocation = from
		p.Destination = to
	}
}

// NewTestPlan builds a valid plan: Riga to Vienna by train, three nights,
// two passengers, budget 1000.
func NewTestPlan(opts ...PlanOption) *domain.Plan {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.Plan{
		ID:                 uuid.New().String(),
		Name:               "test trip",
		StartLocation:      "Riga",
		Destination:        "Vienna",
		StartDate:          Date(2026, 6, 1),
		EndDate:            Date(2026, 6, 4),
		Budget:             1000,
		PassengerCount:     2,
		TransportMode:      domain.ModeTrain,
		AccommodationClass: domain.ClassStandard,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Activity options

type ActivityOption func(*domain.Activity)

func WithPrice(price int64) ActivityOption {
	return func(a *domain.Activity) { a.Price = price }
}

func WithDuration(min int) ActivityOption {
	return func(a *domain.Activity) { a.DurationMin = min }
}

func WithName(name string) ActivityOption {
	return func(a *domain.Activity) { a.Name = name }
}

// NewTransport builds a transport catalog activity for the given route.
func NewTransport(from, to string, mode domain.TransportMode, opts ...ActivityOption) *domain.Activity {
	a := baseActivity("transport "+from+"-"+to, domain.KindTransport, to)
	a.Price = 100
	a.DurationMin = 180
	a.Transport = &domain.TransportInfo{Mode: mode, StartLocation: from}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewAccommodation builds an accommodation catalog activity at the location.
func NewAccommodation(location string, class domain.AccommodationClass, opts ...ActivityOption) *domain.Activity {
	a := baseActivity("stay in "+location, domain.KindAccommodation, location)
	a.Price = 50
	a.DurationMin = 60
	a.Accommodation = &domain.AccommodationInfo{Class: class}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewLeisure builds a leisure catalog activity with the given tags.
func NewLeisure(location string, tags []string, opts ...ActivityOption) *domain.Activity {
	a := baseActivity("leisure in "+location, domain.KindLeisure, location)
	a.Price = 20
	a.DurationMin = 90
	a.Leisure = &domain.LeisureInfo{Tags: tags}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func baseActivity(name string, kind domain.ActivityKind, location string) *domain.Activity {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Activity{
		ID:        uuid.New().String(),
		Name:      name,
		Kind:      kind,
		Location:  location,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
