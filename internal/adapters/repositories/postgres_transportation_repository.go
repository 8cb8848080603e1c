package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mahmutsamiyagmur/flightsystem/internal/domain"
)

// Postgres-backed implementation of the TransportationRepository port.
//
// Operating days live in a transportation_operating_days side table; list
// queries join it and fold one row per (transportation, day) back into a
// day set in Go.
type PostgresTransportationRepository struct{ DB *sql.DB }

func NewPostgresTransportationRepository(db *sql.DB) *PostgresTransportationRepository {
	return &PostgresTransportationRepository{DB: db}
}

const transportationSelect = `
	SELECT
		t.id,
		t.origin_location_id,
		o.location_code,
		t.destination_location_id,
		d.location_code,
		t.transportation_type,
		od.day_of_week
	FROM transportations t
	JOIN locations o ON o.id = t.origin_location_id
	JOIN locations d ON d.id = t.destination_location_id
	JOIN transportation_operating_days od ON od.transportation_id = t.id
`

func (r *PostgresTransportationRepository) List(ctx context.Context) ([]domain.Transportation, error) {
	q := transportationSelect + `
	ORDER BY t.id, od.day_of_week;
	`
	return r.queryTransportations(ctx, "list transportations", q)
}

func (r *PostgresTransportationRepository) GetByID(ctx context.Context, id int64) (domain.Transportation, error) {
	q := transportationSelect + `
	WHERE t.id = $1
	ORDER BY od.day_of_week;
	`
	out, err := r.queryTransportations(ctx, "get transportation", q, id)
	if err != nil {
		return domain.Transportation{}, err
	}
	if len(out) == 0 {
		return domain.Transportation{}, fmt.Errorf("transportation id=%d: %w", id, domain.ErrNotFound)
	}

	return out[0], nil
}

func (r *PostgresTransportationRepository) ListByEndpoints(ctx context.Context, originID, destinationID int64) ([]domain.Transportation, error) {
	q := transportationSelect + `
	WHERE t.origin_location_id = $1 AND t.destination_location_id = $2
	ORDER BY t.id, od.day_of_week;
	`
	return r.queryTransportations(ctx, "list transportations by endpoints", q, originID, destinationID)
}

func (r *PostgresTransportationRepository) ListOperatingOn(ctx context.Context, weekday int) ([]domain.Transportation, error) {
	q := transportationSelect + `
	WHERE EXISTS (
		SELECT 1 FROM transportation_operating_days w
		WHERE w.transportation_id = t.id AND w.day_of_week = $1
	)
	ORDER BY t.id, od.day_of_week;
	`
	return r.queryTransportations(ctx, "list transportations by weekday", q, weekday)
}

func (r *PostgresTransportationRepository) ListOperatingFrom(ctx context.Context, weekday int, originID int64) ([]domain.Transportation, error) {
	q := transportationSelect + `
	WHERE t.origin_location_id = $2
		AND EXISTS (
			SELECT 1 FROM transportation_operating_days w
			WHERE w.transportation_id = t.id AND w.day_of_week = $1
		)
	ORDER BY t.id, od.day_of_week;
	`
	return r.queryTransportations(ctx, "list transportations by weekday and origin", q, weekday, originID)
}

func (r *PostgresTransportationRepository) Create(ctx context.Context, t domain.Transportation) (domain.Transportation, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return domain.Transportation{}, fmt.Errorf("insert transportation: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	q := `
	INSERT INTO transportations (origin_location_id, destination_location_id, transportation_type)
	VALUES ($1, $2, $3)
	RETURNING id;
	`
	err = tx.QueryRowContext(ctx, q, t.OriginLocationID, t.DestinationLocationID, string(t.Type)).
		Scan(&t.ID)
	if err != nil {
		return domain.Transportation{}, fmt.Errorf("insert transportation: %w", err)
	}

	if err := insertOperatingDays(ctx, tx, t.ID, t.OperatingDays); err != nil {
		return domain.Transportation{}, fmt.Errorf("insert transportation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Transportation{}, fmt.Errorf("insert transportation: commit: %w", err)
	}

	return t, nil
}

func (r *PostgresTransportationRepository) Update(ctx context.Context, t domain.Transportation) (domain.Transportation, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return domain.Transportation{}, fmt.Errorf("update transportation: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	q := `
	UPDATE transportations
	SET origin_location_id = $1, destination_location_id = $2, transportation_type = $3
	WHERE id = $4;
	`
	res, err := tx.ExecContext(ctx, q, t.OriginLocationID, t.DestinationLocationID, string(t.Type), t.ID)
	if err != nil {
		return domain.Transportation{}, fmt.Errorf("update transportation id=%d: %w", t.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return domain.Transportation{}, fmt.Errorf("update transportation id=%d: rows affected: %w", t.ID, err)
	}
	if n == 0 {
		return domain.Transportation{}, fmt.Errorf("transportation id=%d: %w", t.ID, domain.ErrNotFound)
	}

	// Replace the day set wholesale; diffing buys nothing at this size.
	if _, err := tx.ExecContext(ctx, `DELETE FROM transportation_operating_days WHERE transportation_id = $1;`, t.ID); err != nil {
		return domain.Transportation{}, fmt.Errorf("update transportation id=%d: clear operating days: %w", t.ID, err)
	}
	if err := insertOperatingDays(ctx, tx, t.ID, t.OperatingDays); err != nil {
		return domain.Transportation{}, fmt.Errorf("update transportation id=%d: %w", t.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Transportation{}, fmt.Errorf("update transportation id=%d: commit: %w", t.ID, err)
	}

	return t, nil
}

func (r *PostgresTransportationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM transportations WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete transportation id=%d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transportation id=%d: rows affected: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("transportation id=%d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func insertOperatingDays(ctx context.Context, tx *sql.Tx, id int64, days []int) error {
	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO transportation_operating_days (transportation_id, day_of_week)
	VALUES ($1, $2)
	ON CONFLICT DO NOTHING;
	`)
	if err != nil {
		return fmt.Errorf("prepare operating days insert: %w", err)
	}
	defer stmt.Close()

	for _, day := range days {
		if _, err := stmt.ExecContext(ctx, id, day); err != nil {
			return fmt.Errorf("insert operating day %d: %w", day, err)
		}
	}
	return nil
}

// queryTransportations runs a joined select and folds the per-day rows
// into transportations, preserving first-seen order.
func (r *PostgresTransportationRepository) queryTransportations(ctx context.Context, op, q string, args ...any) ([]domain.Transportation, error) {
	if r.DB == nil {
		return nil, errors.New(op + ": db is nil")
	}

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	var out []domain.Transportation
	index := map[int64]int{}
	for rows.Next() {
		var (
			t   domain.Transportation
			day int
		)
		err := rows.Scan(
			&t.ID,
			&t.OriginLocationID,
			&t.OriginLocationCode,
			&t.DestinationLocationID,
			&t.DestinationLocationCode,
			&t.Type,
			&day,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		if i, ok := index[t.ID]; ok {
			out[i].OperatingDays = append(out[i].OperatingDays, day)
			continue
		}
		t.OperatingDays = []int{day}
		index[t.ID] = len(out)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: row iteration: %w", op, err)
	}

	return out, nil
}
