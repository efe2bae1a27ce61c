package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mkarpenko/tripweaver/internal/domain"
	"github.com/mkarpenko/tripweaver/internal/planning"
	"github.com/mkarpenko/tripweaver/internal/repository"
)

func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// loadSnapshot reads everything one planning operation needs through the
// given tx-scoped repositories: the settings snapshot and the full catalog.
func loadSnapshot(ctx context.Context, settings repository.SettingsRepo, activities repository.ActivityRepo) (planning.Settings, *planning.Catalog, error) {
	raw, err := settings.All(ctx)
	if err != nil {
		return planning.Settings{}, nil, err
	}
	cfg, err := planning.ParseSettings(raw)
	if err != nil {
		return planning.Settings{}, nil, err
	}
	acts, err := activities.List(ctx)
	if err != nil {
		return planning.Settings{}, nil, err
	}
	return cfg, planning.NewCatalog(acts), nil
}

// toScheduleItems maps persisted joined rows into working-copy items.
// Price and tags come from the source activity when it still exists;
// otherwise the unit price is derived back from the stored amount so
// repricing stays consistent for orphaned items.
func toScheduleItems(plan *domain.Plan, rows []repository.ScheduledItem) []planning.Item {
	pax := int64(plan.PassengerCount)
	nights := int64(plan.Nights())

	items := make([]planning.Item, 0, len(rows))
	for _, row := range rows {
		it := planning.Item{
			ID:         row.Item.ID,
			ActivityID: row.Item.ActivityID,
			Name:       row.Item.Name,
			Kind:       row.Item.Kind,
			TimeFrom:   row.Item.TimeFrom,
			TimeTo:     row.Item.TimeTo,
			Amount:     row.Item.Amount,
		}
		if row.Activity != nil {
			it.Price = row.Activity.Price
			it.Tags = row.Activity.TagSet()
		} else if pax > 0 {
			if row.Item.Kind == domain.KindAccommodation && nights > 0 {
				it.Price = row.Item.Amount / (nights * pax)
			} else {
				it.Price = row.Item.Amount / pax
			}
		}
		items = append(items, it)
	}
	return items
}

// flushSchedule writes the working copy's recorded changes back through the
// tx-scoped repositories: deletions, in-place updates, insertions and the
// plan's scalar fields, in that order.
func flushSchedule(ctx context.Context, s *planning.Schedule, plans repository.PlanRepo, items repository.PlanItemRepo) error {
	for _, id := range s.Removed() {
		if err := items.Delete(ctx, id); err != nil {
			return fmt.Errorf("removing item: %w", err)
		}
	}
	for _, it := range s.Dirty() {
		if err := items.Update(ctx, &domain.PlanItem{
			ID:       it.ID,
			TimeFrom: it.TimeFrom,
			TimeTo:   it.TimeTo,
			Amount:   it.Amount,
		}); err != nil {
			return fmt.Errorf("updating item: %w", err)
		}
	}
	now := nowUTC()
	for _, it := range s.Added() {
		if err := items.Create(ctx, &domain.PlanItem{
			ID:         it.ID,
			PlanID:     s.Plan.ID,
			ActivityID: it.ActivityID,
			Name:       it.Name,
			Kind:       it.Kind,
			TimeFrom:   it.TimeFrom,
			TimeTo:     it.TimeTo,
			Amount:     it.Amount,
			CreatedAt:  now,
			UpdatedAt:  now,
		}); err != nil {
			return fmt.Errorf("creating item: %w", err)
		}
	}
	if err := plans.UpdateScalars(ctx, &s.Plan); err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}
	return nil
}
