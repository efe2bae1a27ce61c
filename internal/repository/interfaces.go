package repository

import (
	"context"

	"github.com/mkarpenko/tripweaver/internal/domain"
)

// ActivityFilter narrows catalog queries. Zero values mean "any".
type ActivityFilter struct {
	Kind          domain.ActivityKind
	Location      string
	StartLocation string
	Mode          domain.TransportMode
	Class         domain.AccommodationClass
}

// ScheduledItem is a plan item joined with its source catalog activity,
// used by the planner to score and reprice items without extra reads. The
// activity pointer is nil when the catalog record has been deleted.
type ScheduledItem struct {
	Item     domain.PlanItem
	Activity *domain.Activity
}

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	Query(ctx context.Context, f ActivityFilter) ([]*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	Delete(ctx context.Context, id string) error
}

type PlanRepo interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	// UpdateScalars persists the plan's mutable scalar fields: dates,
	// budget, total cost and passenger count.
	UpdateScalars(ctx context.Context, p *domain.Plan) error
	Delete(ctx context.Context, id string) error
}

type PlanItemRepo interface {
	Create(ctx context.Context, it *domain.PlanItem) error
	Update(ctx context.Context, it *domain.PlanItem) error
	Delete(ctx context.Context, id string) error
	ListByPlan(ctx context.Context, planID string) ([]*domain.PlanItem, error)
	ListByPlanWithActivity(ctx context.Context, planID string) ([]ScheduledItem, error)
	SumAmounts(ctx context.Context, planID string) (int64, error)
}

type SettingsRepo interface {
	Get(ctx context.Context, key, fallback string) (string, error)
	Set(ctx context.Context, key, value string) error
	All(ctx context.Context) (map[string]string, error)
}
