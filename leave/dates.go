package leave

import (
	"encoding/json"
	"fmt"
	"time"
)

// =============================================================================
// DATE - Day-granularity calendar date, always UTC midnight
// =============================================================================

// Date is a calendar date with no time-of-day component. All arithmetic
// normalizes to midnight UTC so that day counts are timezone-invariant:
// differencing two dates never crosses a local-time/UTC boundary.
type Date struct {
	t time.Time
}

const dateLayout = "2006-01-02"

// NewDate builds a Date from calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t: t.UTC()}, nil
}

// MustDate is ParseDate for seed data and tests; a bad literal yields the
// zero Date rather than a panic, matching the defensive day-count contract.
func MustDate(s string) Date {
	d, _ := ParseDate(s)
	return d
}

// DateOf truncates an arbitrary instant to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar date.
func Today() Date { return DateOf(time.Now()) }

// Comparison
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) IsZero() bool           { return d.t.IsZero() }

// Arithmetic
func (d Date) AddDays(n int) Date   { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) AddMonths(n int) Date { return Date{t: d.t.AddDate(0, n, 0)} }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

func (d Date) String() string { return d.t.Format(dateLayout) }

// =============================================================================
// JSON - dates travel as ISO calendar strings
// =============================================================================

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// =============================================================================
// DAY COUNTING
// =============================================================================

// InclusiveDayCount counts calendar days from start to end, inclusive on both
// ends: |end - start| in whole days, plus one. Both operands are already at
// midnight UTC, so the division is exact. Returns 0 when either date is the
// zero value, which is what a failed parse produces.
func InclusiveDayCount(start, end Date) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	diff := end.t.Sub(start.t)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours()/24) + 1
}

// =============================================================================
// MONTH HELPERS - used by the calendar grid builder
// =============================================================================

// StartOfMonth returns the first day of the month containing d.
func (d Date) StartOfMonth() Date { return NewDate(d.Year(), d.Month(), 1) }

// MondayOffset maps the weekday to its position in a Monday-start week:
// Monday=0 .. Sunday=6.
func (d Date) MondayOffset() int {
	return (int(d.Weekday()) + 6) % 7
}
