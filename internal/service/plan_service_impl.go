package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mkarpenko/tripweaver/internal/db"
	"github.com/mkarpenko/tripweaver/internal/domain"
	"github.com/mkarpenko/tripweaver/internal/planning"
	"github.com/mkarpenko/tripweaver/internal/repository"
)

type planService struct {
	plans  repository.PlanRepo
	items  repository.PlanItemRepo
	uow    db.UnitOfWork
	logger *slog.Logger
}

func NewPlanService(plans repository.PlanRepo, items repository.PlanItemRepo, uow db.UnitOfWork, logger *slog.Logger) PlanService {
	return &planService{plans: plans, items: items, uow: uow, logger: logger}
}

func (s *planService) CreatePlan(ctx context.Context, in CreatePlanInput) (*domain.Plan, error) {
	now := nowUTC()
	plan := domain.Plan{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		StartLocation:      in.StartLocation,
		Destination:        in.Destination,
		StartDate:          in.StartDate,
		EndDate:            in.EndDate,
		Budget:             in.Budget,
		PassengerCount:     in.PassengerCount,
		Preferences:        in.Preferences,
		TransportMode:      in.TransportMode,
		AccommodationClass: in.AccommodationClass,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	var result *domain.Plan
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		txItems := repository.NewSQLitePlanItemRepo(tx)

		cfg, catalog, err := loadSnapshot(ctx,
			repository.NewSQLiteSettingsRepo(tx), repository.NewSQLiteActivityRepo(tx))
		if err != nil {
			return err
		}

		if err := txPlans.Create(ctx, &plan); err != nil {
			return err
		}

		sched := planning.NewSchedule(plan, nil)
		if err := planning.GenerateMandatory(sched, catalog, cfg); err != nil {
			return err
		}
		planning.FillDays(sched, catalog, cfg, plan.StartDate, plan.EndDate)
		sched.RecomputeTotalCost()
		if err := planning.Validate(sched, cfg); err != nil {
			return err
		}

		if err := flushSchedule(ctx, sched, txPlans, txItems); err != nil {
			return err
		}
		result = &sched.Plan
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("plan created",
		"plan", result.ID, "total_cost", result.TotalCost, "budget", result.Budget)
	return result, nil
}

func (s *planService) AdjustDates(ctx context.Context, planID string, newStart, newEnd time.Time) (*domain.Plan, error) {
	if newEnd.Before(newStart) {
		return nil, fmt.Errorf("end date %s is before start date %s",
			newEnd.Format("2006-01-02"), newStart.Format("2006-01-02"))
	}

	var result *domain.Plan
	err := s.rebalance(ctx, planID, func(sched *planning.Schedule, catalog *planning.Catalog, cfg planning.Settings) error {
		oldStart, oldEnd := sched.Plan.StartDate, sched.Plan.EndDate
		sched.Plan.StartDate = newStart
		sched.Plan.EndDate = newEnd
		return planning.RebalanceDates(sched, catalog, cfg, oldStart, oldEnd)
	}, &result)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("plan dates adjusted", "plan", planID,
		"start", newStart.Format("2006-01-02"), "end", newEnd.Format("2006-01-02"),
		"total_cost", result.TotalCost)
	return result, nil
}

func (s *planService) AdjustPassengerCount(ctx context.Context, planID string, newCount int) (*domain.Plan, error) {
	if newCount < 1 {
		return nil, fmt.Errorf("passenger count must be at least 1")
	}

	var result *domain.Plan
	err := s.rebalance(ctx, planID, func(sched *planning.Schedule, catalog *planning.Catalog, cfg planning.Settings) error {
		oldCount := sched.Plan.PassengerCount
		return planning.RebalancePassengers(sched, catalog, cfg, oldCount, newCount)
	}, &result)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("plan passenger count adjusted", "plan", planID,
		"passengers", newCount, "total_cost", result.TotalCost)
	return result, nil
}

func (s *planService) AdjustBudget(ctx context.Context, planID string, newBudget int64) (*domain.Plan, error) {
	if newBudget < 0 {
		return nil, fmt.Errorf("budget must not be negative")
	}

	var result *domain.Plan
	err := s.rebalance(ctx, planID, func(sched *planning.Schedule, catalog *planning.Catalog, cfg planning.Settings) error {
		oldBudget := sched.Plan.Budget
		return planning.RebalanceBudget(sched, catalog, cfg, oldBudget, newBudget)
	}, &result)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("plan budget adjusted", "plan", planID,
		"budget", newBudget, "total_cost", result.TotalCost)
	return result, nil
}

// rebalance runs one rebalancing step inside a single transaction: load the
// plan and its joined items into a working schedule, apply the step,
// validate, flush. Any error rolls everything back.
func (s *planService) rebalance(
	ctx context.Context,
	planID string,
	step func(*planning.Schedule, *planning.Catalog, planning.Settings) error,
	result **domain.Plan,
) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		txItems := repository.NewSQLitePlanItemRepo(tx)

		plan, err := txPlans.GetByID(ctx, planID)
		if err != nil {
			return err
		}
		rows, err := txItems.ListByPlanWithActivity(ctx, planID)
		if err != nil {
			return err
		}
		cfg, catalog, err := loadSnapshot(ctx,
			repository.NewSQLiteSettingsRepo(tx), repository.NewSQLiteActivityRepo(tx))
		if err != nil {
			return err
		}

		sched := planning.NewSchedule(*plan, toScheduleItems(plan, rows))
		if err := step(sched, catalog, cfg); err != nil {
			return err
		}
		if err := planning.Validate(sched, cfg); err != nil {
			return err
		}

		if err := flushSchedule(ctx, sched, txPlans, txItems); err != nil {
			return err
		}
		*result = &sched.Plan
		return nil
	})
}

func (s *planService) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *planService) List(ctx context.Context) ([]*domain.Plan, error) {
	return s.plans.List(ctx)
}

func (s *planService) ListItems(ctx context.Context, planID string) ([]*domain.PlanItem, error) {
	return s.items.ListByPlan(ctx, planID)
}

func (s *planService) Delete(ctx context.Context, id string) error {
	return s.plans.Delete(ctx, id)
}
