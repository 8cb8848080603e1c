package domain

// A named place that transportations connect.
// The location code (e.g. "IST") is globally unique and immutable once
// assigned; routing joins segments to query endpoints through it.
type Location struct {
	ID           int64
	Name         string
	Country      string
	City         string
	LocationCode string
}
