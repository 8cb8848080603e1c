package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		country TEXT NOT NULL,
		city TEXT NOT NULL,
		location_code TEXT NOT NULL UNIQUE
	);
	`

	createTransportationsQuery := `
	CREATE TABLE IF NOT EXISTS transportations (
		id BIGSERIAL PRIMARY KEY,
		origin_location_id BIGINT NOT NULL REFERENCES locations(id),
		destination_location_id BIGINT NOT NULL REFERENCES locations(id),
		transportation_type TEXT NOT NULL
	);
	`

	createOperatingDaysQuery := `
	CREATE TABLE IF NOT EXISTS transportation_operating_days (
		transportation_id BIGINT NOT NULL REFERENCES transportations(id) ON DELETE CASCADE,
		day_of_week INT NOT NULL CHECK (day_of_week BETWEEN 1 AND 7),
		PRIMARY KEY (transportation_id, day_of_week)
	);
	`

	createOriginIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_transportations_origin
	ON transportations(origin_location_id);
	`

	createDayIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_operating_days_day
	ON transportation_operating_days(day_of_week, transportation_id);
	`

	statements := []string{
		createLocationsQuery,
		createTransportationsQuery,
		createOperatingDaysQuery,
		createOriginIndexQuery,
		createDayIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
