package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mahmutsamiyagmur/flightsystem/internal/domain"
)

// Postgres-backed implementation of the LocationRepository port.
type PostgresLocationRepository struct{ DB *sql.DB }

func NewPostgresLocationRepository(db *sql.DB) *PostgresLocationRepository {
	return &PostgresLocationRepository{DB: db}
}

func (r *PostgresLocationRepository) List(ctx context.Context) ([]domain.Location, error) {
	q := `
	SELECT id, name, country, city, location_code
	FROM locations
	ORDER BY id;
	`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list locations: query locations table: %w", err)
	}
	defer rows.Close()

	locations := make([]domain.Location, 0, 64)
	for rows.Next() {
		var loc domain.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Country, &loc.City, &loc.LocationCode); err != nil {
			return nil, fmt.Errorf("list locations: scan row: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations: row iteration: %w", err)
	}

	return locations, nil
}

func (r *PostgresLocationRepository) GetByID(ctx context.Context, id int64) (domain.Location, error) {
	q := `
	SELECT id, name, country, city, location_code
	FROM locations
	WHERE id = $1;
	`
	var loc domain.Location
	err := r.DB.QueryRowContext(ctx, q, id).
		Scan(&loc.ID, &loc.Name, &loc.Country, &loc.City, &loc.LocationCode)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Location{}, fmt.Errorf("location id=%d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Location{}, fmt.Errorf("get location id=%d: %w", id, err)
	}

	return loc, nil
}

func (r *PostgresLocationRepository) GetByCode(ctx context.Context, code string) (domain.Location, error) {
	q := `
	SELECT id, name, country, city, location_code
	FROM locations
	WHERE location_code = $1;
	`
	var loc domain.Location
	err := r.DB.QueryRowContext(ctx, q, code).
		Scan(&loc.ID, &loc.Name, &loc.Country, &loc.City, &loc.LocationCode)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Location{}, fmt.Errorf("location code %q: %w", code, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Location{}, fmt.Errorf("get location code=%q: %w", code, err)
	}

	return loc, nil
}

func (r *PostgresLocationRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	q := `SELECT EXISTS (SELECT 1 FROM locations WHERE location_code = $1);`

	var exists bool
	if err := r.DB.QueryRowContext(ctx, q, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("location code exists %q: %w", code, err)
	}
	return exists, nil
}

func (r *PostgresLocationRepository) Create(ctx context.Context, loc domain.Location) (domain.Location, error) {
	q := `
	INSERT INTO locations (name, country, city, location_code)
	VALUES ($1, $2, $3, $4)
	RETURNING id;
	`
	err := r.DB.QueryRowContext(ctx, q, loc.Name, loc.Country, loc.City, loc.LocationCode).
		Scan(&loc.ID)
	if err != nil {
		return domain.Location{}, fmt.Errorf("insert location code=%q: %w", loc.LocationCode, err)
	}

	return loc, nil
}

func (r *PostgresLocationRepository) Update(ctx context.Context, loc domain.Location) (domain.Location, error) {
	q := `
	UPDATE locations
	SET name = $1, country = $2, city = $3, location_code = $4
	WHERE id = $5;
	`
	res, err := r.DB.ExecContext(ctx, q, loc.Name, loc.Country, loc.City, loc.LocationCode, loc.ID)
	if err != nil {
		return domain.Location{}, fmt.Errorf("update location id=%d: %w", loc.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return domain.Location{}, fmt.Errorf("update location id=%d: rows affected: %w", loc.ID, err)
	}
	if n == 0 {
		return domain.Location{}, fmt.Errorf("location id=%d: %w", loc.ID, domain.ErrNotFound)
	}

	return loc, nil
}

func (r *PostgresLocationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM locations WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete location id=%d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete location id=%d: rows affected: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("location id=%d: %w", id, domain.ErrNotFound)
	}

	return nil
}
