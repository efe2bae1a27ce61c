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

// activityColumns is the canonical SELECT column list for activities.
const activityColumns = `id, name, kind, price, duration_min, location,
		mode, start_location, class, tags, created_at, updated_at`

// SQLiteActivityRepo implements ActivityRepo over SQLite.
type SQLiteActivityRepo struct {
	db db.DBTX
}

func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: conn}
}

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	var mode, startLocation, class any
	var tags string
	switch a.Kind {
	case domain.KindTransport:
		mode = string(a.Transport.Mode)
		startLocation = a.Transport.StartLocation
	case domain.KindAccommodation:
		class = string(a.Accommodation.Class)
	case domain.KindLeisure:
		tags = joinTags(a.Leisure.Tags)
	}

	query := `INSERT INTO activities (id, name, kind, price, duration_min, location,
		mode, start_location, class, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Name,
		string(a.Kind),
		a.Price,
		a.DurationMin,
		a.Location,
		mode,
		startLocation,
		class,
		tags,
		a.CreatedAt.Format(timeLayout),
		a.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	a, err := scanActivity(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("activity %s not found", id)
	}
	return a, err
}

func (r *SQLiteActivityRepo) Query(ctx context.Context, f ActivityFilter) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE 1=1`
	var args []any
	if f.Kind != "" {
		query += ` AND kind = ?`
		args = append(args, string(f.Kind))
	}
	if f.Location != "" {
		query += ` AND location = ?`
		args = append(args, f.Location)
	}
	if f.StartLocation != "" {
		query += ` AND start_location = ?`
		args = append(args, f.StartLocation)
	}
	if f.Mode != "" {
		query += ` AND mode = ?`
		args = append(args, string(f.Mode))
	}
	if f.Class != "" {
		query += ` AND class = ?`
		args = append(args, string(f.Class))
	}
	query += ` ORDER BY price, name, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying activities: %w", err)
	}
	defer rows.Close()
	return scanActivities(rows)
}

func (r *SQLiteActivityRepo) List(ctx context.Context) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities ORDER BY kind, location, price, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()
	return scanActivities(rows)
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	return nil
}

func scanActivities(rows *sql.Rows) ([]*domain.Activity, error) {
	var out []*domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanActivity(scan func(dest ...any) error) (*domain.Activity, error) {
	var a domain.Activity
	var kind, createdAt, updatedAt, tags string
	var mode, startLocation, class sql.NullString

	err := scan(&a.ID, &a.Name, &kind, &a.Price, &a.DurationMin, &a.Location,
		&mode, &startLocation, &class, &tags, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}

	a.Kind = domain.ActivityKind(kind)
	switch a.Kind {
	case domain.KindTransport:
		a.Transport = &domain.TransportInfo{
			Mode:          domain.TransportMode(mode.String),
			StartLocation: startLocation.String,
		}
	case domain.KindAccommodation:
		a.Accommodation = &domain.AccommodationInfo{
			Class: domain.AccommodationClass(class.String),
		}
	case domain.KindLeisure:
		a.Leisure = &domain.LeisureInfo{Tags: splitTags(tags)}
	}

	if a.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing activity created_at: %w", err)
	}
	if a.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing activity updated_at: %w", err)
	}
	return &a, nil
}
