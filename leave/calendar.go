/*
calendar.go - Month grid builder for the team calendar

PURPOSE:
  Turns a reference month plus the team-leave index into the fixed 6x7 grid
  the calendar panel renders: the whole displayed month padded with leading
  and trailing days from the adjacent months so every week is complete.

WEEK ALIGNMENT:
  Weeks start on Monday. If the month opens on a Sunday it sits at position
  6 of the first row (Monday=0 .. Sunday=6), so the row above is never lost.
*/
package leave

import "time"

// GridCells is the fixed size of the month grid: 6 rows of 7 days.
const GridCells = 42

// CalendarDay is one cell of the grid.
type CalendarDay struct {
	Date           Date     `json:"date"`
	IsCurrentMonth bool     `json:"is_current_month"`
	IsToday        bool     `json:"is_today"`
	Leaves         []string `json:"leaves,omitempty"`
}

// CalendarGrid builds the 42-cell grid for the given month. Cells outside the
// reference month belong to the adjacent months, carry IsCurrentMonth=false
// and are never marked today. Leave names come from an exact-date match
// against the team-leave index.
func (s *Store) CalendarGrid(year int, month time.Month) []CalendarDay {
	index := s.TeamLeaveIndex()
	today := DateOf(s.now())

	first := NewDate(year, month, 1)
	start := first.AddDays(-first.MondayOffset())

	grid := make([]CalendarDay, GridCells)
	for i := range grid {
		day := start.AddDays(i)
		inMonth := day.Year() == year && day.Month() == month
		grid[i] = CalendarDay{
			Date:           day,
			IsCurrentMonth: inMonth,
			IsToday:        inMonth && day.Equal(today),
			Leaves:         leavesOn(index, day),
		}
	}
	return grid
}
