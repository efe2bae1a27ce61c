package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies all schema migrations in order. Statements are written to
// be re-runnable; "duplicate column name" errors from ALTER TABLE are
// tolerated so the full list can be replayed against existing databases.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS activities (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		kind           TEXT NOT NULL
		               CHECK(kind IN ('transport','accommodation','leisure')),
		price          INTEGER NOT NULL DEFAULT 0 CHECK(price >= 0),
		duration_min   INTEGER NOT NULL CHECK(duration_min > 0),
		location       TEXT NOT NULL,
		mode           TEXT,
		start_location TEXT,
		class          TEXT,
		tags           TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_kind_location ON activities(kind, location)`,

	`CREATE TABLE IF NOT EXISTS plans (
		id                  TEXT PRIMARY KEY,
		name                TEXT NOT NULL DEFAULT '',
		start_location      TEXT NOT NULL,
		destination         TEXT NOT NULL,
		start_date          TEXT NOT NULL,
		end_date            TEXT NOT NULL,
		budget              INTEGER NOT NULL CHECK(budget >= 0),
		total_cost          INTEGER NOT NULL DEFAULT 0 CHECK(total_cost >= 0),
		passenger_count     INTEGER NOT NULL CHECK(passenger_count >= 1),
		preferences         TEXT NOT NULL DEFAULT '',
		transport_mode      TEXT NOT NULL
		                    CHECK(transport_mode IN ('train','bus','plane','car')),
		accommodation_class TEXT NOT NULL
		                    CHECK(accommodation_class IN ('hostel','standard','comfort','luxury')),
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plan_items (
		id          TEXT PRIMARY KEY,
		plan_id     TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		-- No foreign key: items carry name and kind snapshots and must
		-- outlive catalog deletions.
		activity_id TEXT NOT NULL,
		name        TEXT NOT NULL,
		kind        TEXT NOT NULL
		            CHECK(kind IN ('transport','accommodation','leisure')),
		time_from   TEXT NOT NULL,
		time_to     TEXT NOT NULL,
		amount      INTEGER NOT NULL DEFAULT 0 CHECK(amount >= 0),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plan_items_plan ON plan_items(plan_id)`,
	`CREATE INDEX IF NOT EXISTS idx_plan_items_time ON plan_items(plan_id, time_from)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,

	// Seed planner defaults. INSERT OR IGNORE keeps user overrides intact.
	`INSERT OR IGNORE INTO settings (key, value) VALUES
		('outbound_start', '09:00'),
		('checkin_time', '15:00'),
		('checkout_time', '11:00'),
		('return_start', '18:00'),
		('default_day_start', '09:00'),
		('default_day_end', '21:00'),
		('buffer_after_outbound_min', '120'),
		('buffer_before_return_min', '180'),
		('gap_between_activities_min', '30')`,
}
