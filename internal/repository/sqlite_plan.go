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

const planColumns = `id, name, start_location, destination, start_date, end_date,
		budget, total_cost, passenger_count, preferences,
		transport_mode, accommodation_class, created_at, updated_at`

// SQLitePlanRepo implements PlanRepo over SQLite.
type SQLitePlanRepo struct {
	db db.DBTX
}

func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.Plan) error {
	query := `INSERT INTO plans (` + planColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.StartLocation,
		p.Destination,
		p.StartDate.Format(dateLayout),
		p.EndDate.Format(dateLayout),
		p.Budget,
		p.TotalCost,
		p.PassengerCount,
		joinTags(p.Preferences),
		string(p.TransportMode),
		string(p.AccommodationClass),
		p.CreatedAt.Format(timeLayout),
		p.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanPlan(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("plan %s not found", id)
	}
	return p, err
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans ORDER BY start_date, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var out []*domain.Plan
	for rows.Next() {
		p, err := scanPlan(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *SQLitePlanRepo) UpdateScalars(ctx context.Context, p *domain.Plan) error {
	query := `UPDATE plans SET start_date = ?, end_date = ?, budget = ?,
		total_cost = ?, passenger_count = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.StartDate.Format(dateLayout),
		p.EndDate.Format(dateLayout),
		p.Budget,
		p.TotalCost,
		p.PassengerCount,
		nowUTC().Format(timeLayout),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("plan %s not found", p.ID)
	}
	return nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	// Items cascade via the plan_items foreign key.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return nil
}

func scanPlan(scan func(dest ...any) error) (*domain.Plan, error) {
	var p domain.Plan
	var startDate, endDate, createdAt, updatedAt, prefs, mode, class string

	err := scan(&p.ID, &p.Name, &p.StartLocation, &p.Destination, &startDate, &endDate,
		&p.Budget, &p.TotalCost, &p.PassengerCount, &prefs,
		&mode, &class, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	p.Preferences = splitTags(prefs)
	p.TransportMode = domain.TransportMode(mode)
	p.AccommodationClass = domain.AccommodationClass(class)

	if p.StartDate, err = time.Parse(dateLayout, startDate); err != nil {
		return nil, fmt.Errorf("parsing plan start_date: %w", err)
	}
	if p.EndDate, err = time.Parse(dateLayout, endDate); err != nil {
		return nil, fmt.Errorf("parsing plan end_date: %w", err)
	}
	if p.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing plan created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing plan updated_at: %w", err)
	}
	return &p, nil
}
