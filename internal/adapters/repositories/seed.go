package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jszwec/csvutil"
)

// LocationSeed is one row of a locations seed CSV:
//
//	name,country,city,location_code
type LocationSeed struct {
	Name         string `csv:"name"`
	Country      string `csv:"country"`
	City         string `csv:"city"`
	LocationCode string `csv:"location_code"`
}

// TransportationSeed is one row of a transportations seed CSV. Endpoints
// are named by location code; operating days are pipe-separated, e.g.
//
//	origin_code,destination_code,transportation_type,operating_days
//	TAK,IST,BUS,1|3|4|7
type TransportationSeed struct {
	OriginCode      string `csv:"origin_code"`
	DestinationCode string `csv:"destination_code"`
	Type            string `csv:"transportation_type"`
	OperatingDays   string `csv:"operating_days"`
}

// Days parses the pipe-separated operating-days column.
func (s TransportationSeed) Days() ([]int, error) {
	parts := strings.Split(s.OperatingDays, "|")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		day, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse operating day %q: %w", p, err)
		}
		if day < 1 || day > 7 {
			return nil, fmt.Errorf("operating day %d out of range 1..7", day)
		}
		days = append(days, day)
	}
	return days, nil
}

// SeedFromCSV populates locations and transportations from two CSV files.
// Locations are upserted by code first so transportation rows can refer
// to them.
func SeedFromCSV(ctx context.Context, db *sql.DB, locationsPath, transportationsPath string) error {
	locations, err := readSeedFile[LocationSeed](locationsPath)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	transportations, err := readSeedFile[TransportationSeed](transportationsPath)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	codeToID := make(map[string]int64, len(locations))
	insertLocation := `
	INSERT INTO locations (name, country, city, location_code)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (location_code) DO UPDATE
	SET name = EXCLUDED.name, country = EXCLUDED.country, city = EXCLUDED.city
	RETURNING id;
	`
	for i, loc := range locations {
		code := strings.TrimSpace(loc.LocationCode)
		if code == "" {
			return fmt.Errorf("seed: locations row %d: location_code is empty", i+1)
		}

		var id int64
		err := tx.QueryRowContext(ctx, insertLocation, loc.Name, loc.Country, loc.City, code).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed: insert location %q: %w", code, err)
		}
		codeToID[code] = id
	}

	insertTransportation := `
	INSERT INTO transportations (origin_location_id, destination_location_id, transportation_type)
	VALUES ($1, $2, $3)
	RETURNING id;
	`
	for i, tr := range transportations {
		originID, ok := codeToID[tr.OriginCode]
		if !ok {
			return fmt.Errorf("seed: transportations row %d: unknown origin code %q", i+1, tr.OriginCode)
		}
		destinationID, ok := codeToID[tr.DestinationCode]
		if !ok {
			return fmt.Errorf("seed: transportations row %d: unknown destination code %q", i+1, tr.DestinationCode)
		}

		days, err := tr.Days()
		if err != nil {
			return fmt.Errorf("seed: transportations row %d: %w", i+1, err)
		}

		var id int64
		err = tx.QueryRowContext(ctx, insertTransportation, originID, destinationID, strings.ToUpper(tr.Type)).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed: insert transportation row %d: %w", i+1, err)
		}
		if err := insertOperatingDays(ctx, tx, id, days); err != nil {
			return fmt.Errorf("seed: transportation row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}

	return nil
}

func readSeedFile[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}

	var rows []T
	if err := csvutil.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return rows, nil
}
