package ledger

import "fmt"

// Filter selects records by an optional month and an optional year. A zero
// field means that axis is not filtered. Both axes may be set at once; the
// match is conjunctive, so Filter{Month: 3, Year: 2024} matches only records
// in exactly that month, while the zero Filter matches everything.
type Filter struct {
	Month int `json:"month,omitempty"`
	Year  int `json:"year,omitempty"`
}

// Matches reports whether a record in period p passes the filter.
func (f Filter) Matches(p Period) bool {
	if f.Month != 0 && p.Month != f.Month {
		return false
	}
	if f.Year != 0 && p.Year != f.Year {
		return false
	}
	return true
}

// IsZero reports whether the filter matches all records.
func (f Filter) IsZero() bool {
	return f.Month == 0 && f.Year == 0
}

// Label returns the human-readable description of the filtered window, as
// shown in report headers: "All Time", "Year 2024", "All 03 months", or
// "03/2024".
func (f Filter) Label() string {
	switch {
	case f.Month != 0 && f.Year != 0:
		return fmt.Sprintf("%02d/%d", f.Month, f.Year)
	case f.Month != 0:
		return fmt.Sprintf("All %02d months", f.Month)
	case f.Year != 0:
		return fmt.Sprintf("Year %d", f.Year)
	default:
		return "All Time"
	}
}

// FilterRecords returns the records matching f, preserving the insertion
// order of the source slice. The input is never mutated; an empty result is
// a nil slice.
func FilterRecords[T Record](records []T, f Filter) []T {
	if f.IsZero() {
		return records
	}
	var matched []T
	for _, r := range records {
		if f.Matches(r.When()) {
			matched = append(matched, r)
		}
	}
	return matched
}
