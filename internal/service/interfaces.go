package service

import (
	"context"
	"time"

	"github.com/mkarpenko/tripweaver/internal/domain"
)

// CreatePlanInput carries the attributes for a new plan. The three
// mandatory items and an initial set of optional activities are generated
// as part of creation.
type CreatePlanInput struct {
	Name               string
	StartLocation      string
	Destination        string
	StartDate          time.Time
	EndDate            time.Time
	Budget             int64
	PassengerCount     int
	Preferences        []string
	TransportMode      domain.TransportMode
	AccommodationClass domain.AccommodationClass
}

// PlanService owns the lifecycle of plans and their itineraries. Every
// mutating operation is atomic: it either returns the refreshed plan with
// all invariants holding, or a typed planning error with the stored state
// untouched.
type PlanService interface {
	CreatePlan(ctx context.Context, in CreatePlanInput) (*domain.Plan, error)
	AdjustDates(ctx context.Context, planID string, newStart, newEnd time.Time) (*domain.Plan, error)
	AdjustPassengerCount(ctx context.Context, planID string, newCount int) (*domain.Plan, error)
	AdjustBudget(ctx context.Context, planID string, newBudget int64) (*domain.Plan, error)
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	ListItems(ctx context.Context, planID string) ([]*domain.PlanItem, error)
	Delete(ctx context.Context, id string) error
}

// CatalogService manages the activity catalog the planner draws from.
type CatalogService interface {
	Add(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	Seed(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}

// SettingsService exposes the persisted planner configuration.
type SettingsService interface {
	All(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
}
