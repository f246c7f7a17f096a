package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYearMonth(t *testing.T) {
	ym, err := ParseYearMonth("2024-12")
	require.NoError(t, err)
	assert.Equal(t, YearMonth{Year: 2024, Month: time.December}, ym)
	assert.Equal(t, "2024-12", ym.String())
	assert.Equal(t, "December 2024", ym.Title())
}

func TestParseYearMonth_Invalid(t *testing.T) {
	for _, in := range []string{"", "2024", "2024-13", "12-2024", "2024-12-01"} {
		_, err := ParseYearMonth(in)
		assert.ErrorIs(t, err, ErrInvalidMonth, in)
	}
}

func TestYearMonth_PrevNextWrapYears(t *testing.T) {
	jan := YearMonth{Year: 2025, Month: time.January}
	assert.Equal(t, YearMonth{Year: 2024, Month: time.December}, jan.Prev())
	assert.Equal(t, jan, jan.Prev().Next())
}

func TestBuildMonth_Layout(t *testing.T) {
	// December 2024 starts on a Sunday and has 31 days.
	m := BuildMonth(YearMonth{Year: 2024, Month: time.December}, time.UTC, nil)

	require.Len(t, m.Weeks, 5)
	assert.Equal(t, 1, m.Weeks[0][0].Date.Day())
	assert.Equal(t, 31, m.Weeks[4][2].Date.Day())
	assert.True(t, m.Weeks[4][3].IsBlank())
}

func TestBuildMonth_LeadingBlanks(t *testing.T) {
	// November 2024 starts on a Friday.
	m := BuildMonth(YearMonth{Year: 2024, Month: time.November}, time.UTC, nil)

	for i := range 5 {
		assert.True(t, m.Weeks[0][i].IsBlank(), "cell %d", i)
	}
	assert.Equal(t, 1, m.Weeks[0][5].Date.Day())
	assert.Equal(t, time.Friday, m.Weeks[0][5].Date.Weekday())
}

func TestBuildMonth_PlacesAssignments(t *testing.T) {
	assignments := []Assignment{
		{Name: "Science Project", DueAt: time.Date(2024, 12, 5, 23, 0, 0, 0, time.UTC)},
		{Name: "Math Homework", DueAt: time.Date(2024, 12, 5, 23, 0, 0, 0, time.UTC)},
		{Name: "English Essay", DueAt: time.Date(2024, 12, 12, 9, 0, 0, 0, time.UTC)},
		{Name: "Undated"},
		{Name: "Next Month", DueAt: time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)},
	}

	m := BuildMonth(YearMonth{Year: 2024, Month: time.December}, time.UTC, assignments)

	day5, ok := m.Day(5)
	require.True(t, ok)
	require.Len(t, day5.Assignments, 2)
	assert.Equal(t, "Math Homework", day5.Assignments[0].Name)
	assert.Equal(t, "Science Project", day5.Assignments[1].Name)

	day12, ok := m.Day(12)
	require.True(t, ok)
	assert.True(t, day12.HasAssignments())

	day13, ok := m.Day(13)
	require.True(t, ok)
	assert.False(t, day13.HasAssignments())

	assert.Len(t, m.Assignments(), 3)
}

func TestBuildMonth_UsesLocationForDueDate(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	// 03:00 UTC on the 6th is still the 5th at UTC-5.
	a := Assignment{Name: "Late", DueAt: time.Date(2024, 12, 6, 3, 0, 0, 0, time.UTC)}

	m := BuildMonth(YearMonth{Year: 2024, Month: time.December}, loc, []Assignment{a})

	day5, _ := m.Day(5)
	assert.Len(t, day5.Assignments, 1)
}
