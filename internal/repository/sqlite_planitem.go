package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mkarpenko/tripweaver/internal/db"
	"github.com/mkarpenko/tripweaver/internal/domain"
)

const planItemColumns = `id, plan_id, activity_id, name, kind, time_from, time_to,
		amount, created_at, updated_at`

// SQLitePlanItemRepo implements PlanItemRepo over SQLite.
type SQLitePlanItemRepo struct {
	db db.DBTX
}

func NewSQLitePlanItemRepo(conn db.DBTX) *SQLitePlanItemRepo {
	return &SQLitePlanItemRepo{db: conn}
}

func (r *SQLitePlanItemRepo) Create(ctx context.Context, it *domain.PlanItem) error {
	query := `INSERT INTO plan_items (` + planItemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		it.ID,
		it.PlanID,
		it.ActivityID,
		it.Name,
		string(it.Kind),
		it.TimeFrom.Format(timeLayout),
		it.TimeTo.Format(timeLayout),
		it.Amount,
		it.CreatedAt.Format(timeLayout),
		it.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting plan item: %w", err)
	}
	return nil
}

func (r *SQLitePlanItemRepo) Update(ctx context.Context, it *domain.PlanItem) error {
	query := `UPDATE plan_items SET time_from = ?, time_to = ?, amount = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		it.TimeFrom.Format(timeLayout),
		it.TimeTo.Format(timeLayout),
		it.Amount,
		nowUTC().Format(timeLayout),
		it.ID,
	)
	if err != nil {
		return fmt.Errorf("updating plan item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating plan item: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("plan item %s not found", it.ID)
	}
	return nil
}

func (r *SQLitePlanItemRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plan_items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting plan item: %w", err)
	}
	return nil
}

func (r *SQLitePlanItemRepo) ListByPlan(ctx context.Context, planID string) ([]*domain.PlanItem, error) {
	query := `SELECT ` + planItemColumns + ` FROM plan_items
		WHERE plan_id = ? ORDER BY time_from, id`
	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("listing plan items: %w", err)
	}
	defer rows.Close()

	var out []*domain.PlanItem
	for rows.Next() {
		it, err := scanPlanItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// ListByPlanWithActivity returns a plan's items joined with their source
// catalog activities. The join is LEFT so items survive catalog deletions;
// such rows carry a nil activity.
func (r *SQLitePlanItemRepo) ListByPlanWithActivity(ctx context.Context, planID string) ([]ScheduledItem, error) {
	query := `SELECT i.id, i.plan_id, i.activity_id, i.name, i.kind, i.time_from, i.time_to,
			i.amount, i.created_at, i.updated_at,
			a.id, a.name, a.kind, a.price, a.duration_min, a.location,
			a.mode, a.start_location, a.class, a.tags, a.created_at, a.updated_at
		FROM plan_items i
		LEFT JOIN activities a ON i.activity_id = a.id
		WHERE i.plan_id = ?
		ORDER BY i.time_from, i.id`
	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("listing plan items with activities: %w", err)
	}
	defer rows.Close()

	var out []ScheduledItem
	for rows.Next() {
		var it domain.PlanItem
		var kind, timeFrom, timeTo, createdAt, updatedAt string
		var aID, aName, aKind, aLocation, aCreated, aUpdated sql.NullString
		var aPrice, aDuration sql.NullInt64
		var aMode, aStart, aClass, aTags sql.NullString

		err := rows.Scan(&it.ID, &it.PlanID, &it.ActivityID, &it.Name, &kind, &timeFrom, &timeTo,
			&it.Amount, &createdAt, &updatedAt,
			&aID, &aName, &aKind, &aPrice, &aDuration, &aLocation,
			&aMode, &aStart, &aClass, &aTags, &aCreated, &aUpdated)
		if err != nil {
			return nil, fmt.Errorf("scanning joined plan item: %w", err)
		}

		it.Kind = domain.ActivityKind(kind)
		if it.TimeFrom, err = time.Parse(timeLayout, timeFrom); err != nil {
			return nil, fmt.Errorf("parsing item time_from: %w", err)
		}
		if it.TimeTo, err = time.Parse(timeLayout, timeTo); err != nil {
			return nil, fmt.Errorf("parsing item time_to: %w", err)
		}
		if it.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parsing item created_at: %w", err)
		}
		if it.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
			return nil, fmt.Errorf("parsing item updated_at: %w", err)
		}

		scheduled := ScheduledItem{Item: it}
		if aID.Valid {
			act := domain.Activity{
				ID:          aID.String,
				Name:        aName.String,
				Kind:        domain.ActivityKind(aKind.String),
				Price:       aPrice.Int64,
				DurationMin: int(aDuration.Int64),
				Location:    aLocation.String,
			}
			switch act.Kind {
			case domain.KindTransport:
				act.Transport = &domain.TransportInfo{
					Mode:          domain.TransportMode(aMode.String),
					StartLocation: aStart.String,
				}
			case domain.KindAccommodation:
				act.Accommodation = &domain.AccommodationInfo{
					Class: domain.AccommodationClass(aClass.String),
				}
			case domain.KindLeisure:
				act.Leisure = &domain.LeisureInfo{Tags: splitTags(aTags.String)}
			}
			scheduled.Activity = &act
		}
		out = append(out, scheduled)
	}
	return out, rows.Err()
}

func (r *SQLitePlanItemRepo) SumAmounts(ctx context.Context, planID string) (int64, error) {
	var sum int64
	query := `SELECT COALESCE(SUM(amount), 0) FROM plan_items WHERE plan_id = ?`
	if err := r.db.QueryRowContext(ctx, query, planID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("summing plan item amounts: %w", err)
	}
	return sum, nil
}

func scanPlanItem(scan func(dest ...any) error) (*domain.PlanItem, error) {
	var it domain.PlanItem
	var kind, timeFrom, timeTo, createdAt, updatedAt string

	err := scan(&it.ID, &it.PlanID, &it.ActivityID, &it.Name, &kind, &timeFrom, &timeTo,
		&it.Amount, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning plan item: %w", err)
	}

	it.Kind = domain.ActivityKind(kind)
	if it.TimeFrom, err = time.Parse(timeLayout, timeFrom); err != nil {
		return nil, fmt.Errorf("parsing item time_from: %w", err)
	}
	if it.TimeTo, err = time.Parse(timeLayout, timeTo); err != nil {
		return nil, fmt.Errorf("parsing item time_to: %w", err)
	}
	if it.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing item created_at: %w", err)
	}
	if it.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing item updated_at: %w", err)
	}
	return &it, nil
}
