package repositories

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTransportationSeedDays(t *testing.T) {
	days, err := TransportationSeed{OperatingDays: "1|3|7"}.Days()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 3 || days[0] != 1 || days[1] != 3 || days[2] != 7 {
		t.Fatalf("Days() = %v, want [1 3 7]", days)
	}

	if _, err := (TransportationSeed{OperatingDays: "1|8"}.Days()); err == nil {
		t.Fatal("day 8 should be rejected")
	}
	if _, err := (TransportationSeed{OperatingDays: "mon"}.Days()); err == nil {
		t.Fatal("non-numeric day should be rejected")
	}
}

func TestReadSeedFileDecodesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.csv")
	csv := "name,country,city,location_code\n" +
		"Istanbul Airport,Turkey,Istanbul,IST\n" +
		"Heathrow Airport,UK,London,LHR\n"
	if err := os.WriteFile(path, []byte(csv), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}

	rows, err := readSeedFile[LocationSeed](path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].LocationCode != "IST" || rows[1].City != "London" {
		t.Fatalf("decoded rows mismatch: %+v", rows)
	}
}

func TestReadSeedFileMissingFile(t *testing.T) {
	if _, err := readSeedFile[LocationSeed]("does/not/exist.csv"); err == nil {
		t.Fatal("missing file should error")
	}
}
