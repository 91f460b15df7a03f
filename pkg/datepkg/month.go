package datepkg

import (
	"encoding/json"
	"fmt"
	"time"
)

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth returns a normalized Month, so NewMonth(2023, 13) is January 2024.
func NewMonth(year int, month time.Month) Month {
	return New(year, month, 1).MonthOf()
}

// First returns the first day of the month.
func (m Month) First() Date { return New(m.Year, m.Month, 1) }

// Last returns the last day of the month.
func (m Month) Last() Date { return New(m.Year, m.Month+1, 0) }

// Days returns the number of days in the month.
func (m Month) Days() int { return m.Last().Day() }

// Contains reports whether d falls within the month.
func (m Month) Contains(d Date) bool { return d.y == m.Year && d.m == m.Month }

// String formats the month as YYYYMM.
func (m Month) String() string { return m.First().time().Format(MonthLayout) }

// ParseMonth parses a YYYYMM month.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format YYYYMM: %w", s, err)
	}

	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MarshalJSON encodes the month as a YYYYMM string.
func (m Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a YYYYMM string.
func (m *Month) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := ParseMonth(s)
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}
