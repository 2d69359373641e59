package leave_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-engine/leave"
)

// =============================================================================
// GRID SHAPE
// =============================================================================

func TestCalendarGrid_Always42Cells(t *testing.T) {
	s, _ := newTestStore(t)

	months := []struct {
		year  int
		month time.Month
	}{
		{2024, time.February}, // leap February
		{2024, time.July},
		{2024, time.September}, // starts on a Sunday
		{2025, time.February},  // 28 days starting Saturday
		{2024, time.December},
	}
	for _, m := range months {
		grid := s.CalendarGrid(m.year, m.month)
		assert.Lenf(t, grid, leave.GridCells, "%d-%d", m.year, m.month)
	}
}

func TestCalendarGrid_MondayAlignment(t *testing.T) {
	s, _ := newTestStore(t)

	// September 2024 starts on a Sunday: it must sit at position 6 of the
	// first Monday-start week, preceded by Aug 26..31.
	grid := s.CalendarGrid(2024, time.September)
	assert.Equal(t, leave.MustDate("2024-08-26"), grid[0].Date)
	assert.Equal(t, leave.MustDate("2024-09-01"), grid[6].Date)
	assert.False(t, grid[0].IsCurrentMonth)
	assert.True(t, grid[6].IsCurrentMonth)

	// July 2024 starts on a Monday: no leading padding at all.
	grid = s.CalendarGrid(2024, time.July)
	assert.Equal(t, leave.MustDate("2024-07-01"), grid[0].Date)
	assert.True(t, grid[0].IsCurrentMonth)
}

func TestCalendarGrid_AdjacentMonthCells(t *testing.T) {
	s, _ := newTestStore(t)
	grid := s.CalendarGrid(2024, time.July)

	for _, cell := range grid {
		inJuly := cell.Date.Month() == time.July && cell.Date.Year() == 2024
		assert.Equal(t, inJuly, cell.IsCurrentMonth, "cell %s", cell.Date)
		if !inJuly {
			assert.False(t, cell.IsToday, "padding cell %s must never be today", cell.Date)
		}
	}
}

// =============================================================================
// TODAY MARKING
// =============================================================================

func TestCalendarGrid_ExactlyOneToday(t *testing.T) {
	// Store clock fixed to 2024-07-22 (see newTestStore).
	s, _ := newTestStore(t)

	grid := s.CalendarGrid(2024, time.July)
	var todays []leave.Date
	for _, cell := range grid {
		if cell.IsToday {
			todays = append(todays, cell.Date)
		}
	}
	require.Len(t, todays, 1)
	assert.Equal(t, leave.MustDate("2024-07-22"), todays[0])

	// A month that does not contain the current date has no today cell.
	for _, cell := range s.CalendarGrid(2024, time.March) {
		assert.False(t, cell.IsToday)
	}
}

// =============================================================================
// LEAVE LOOKUP
// =============================================================================

func TestCalendarGrid_LeaveNamesOnCoveredDays(t *testing.T) {
	s, _ := newTestStore(t)

	// Seed approval: Elena on vacation 2024-07-20..25.
	grid := s.CalendarGrid(2024, time.July)

	byDate := make(map[string][]string, len(grid))
	for _, cell := range grid {
		byDate[cell.Date.String()] = cell.Leaves
	}

	for d := leave.MustDate("2024-07-20"); !d.After(leave.MustDate("2024-07-25")); d = d.AddDays(1) {
		assert.Contains(t, byDate[d.String()], "Elena Rodríguez", "day %s", d)
	}
	assert.Empty(t, byDate["2024-07-19"])
	assert.Empty(t, byDate["2024-07-26"])
}

func TestCalendarGrid_PaddingCellsCarryAdjacentMonthLeaves(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Decide(4, leave.StatusApproved)) // 2024-12-24..2025-01-02

	// December's grid runs into early January; the trailing padding cells
	// must still show the approved span.
	grid := s.CalendarGrid(2024, time.December)
	var jan1 leave.CalendarDay
	for _, cell := range grid {
		if cell.Date.Equal(leave.MustDate("2025-01-01")) {
			jan1 = cell
		}
	}
	require.False(t, jan1.Date.IsZero(), "January 1st must appear as trailing padding")
	assert.False(t, jan1.IsCurrentMonth)
	assert.Contains(t, jan1.Leaves, "Elena Rodríguez")
}
