package model

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"
)

// ErrInvalidMonth is returned when a month string is not in YYYY-MM form.
var ErrInvalidMonth = errors.New("invalid month: expected YYYY-MM")

// YearMonth identifies a calendar month independent of time zone.
type YearMonth struct {
	Year  int
	Month time.Month
}

// YearMonthOf returns the month containing t, in t's location.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth parses a "YYYY-MM" string.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return YearMonthOf(t), nil
}

// String formats the month as "YYYY-MM".
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Title formats the month for display, e.g. "December 2024".
func (ym YearMonth) Title() string {
	return fmt.Sprintf("%s %d", ym.Month, ym.Year)
}

// Start returns midnight on the first day of the month in loc.
func (ym YearMonth) Start(loc *time.Location) time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, loc)
}

// End returns midnight on the first day of the following month in loc.
func (ym YearMonth) End(loc *time.Location) time.Time {
	return ym.Start(loc).AddDate(0, 1, 0)
}

// Prev returns the preceding month.
func (ym YearMonth) Prev() YearMonth {
	return YearMonthOf(time.Date(ym.Year, ym.Month-1, 1, 0, 0, 0, 0, time.UTC))
}

// Next returns the following month.
func (ym YearMonth) Next() YearMonth {
	return YearMonthOf(time.Date(ym.Year, ym.Month+1, 1, 0, 0, 0, 0, time.UTC))
}

// Day is one cell of a month grid. Padding cells before the first and after
// the last day of the month have a zero Date.
type Day struct {
	Date        time.Time
	Assignments []Assignment
}

// IsBlank reports whether the cell is padding.
func (d Day) IsBlank() bool {
	return d.Date.IsZero()
}

// HasAssignments reports whether anything is due on the day.
func (d Day) HasAssignments() bool {
	return len(d.Assignments) > 0
}

// Week is a Sunday-first row of seven cells.
type Week [7]Day

// Month is a month grid with assignments placed on their due dates.
type Month struct {
	YearMonth
	Location *time.Location
	Weeks    []Week
}

// BuildMonth lays out ym as Sunday-first weeks and attaches each dated
// assignment to the day it is due, evaluated in loc. Assignments that are
// undated or due outside the month are ignored. Within a day assignments are
// ordered by due time, then name.
func BuildMonth(ym YearMonth, loc *time.Location, assignments []Assignment) Month {
	if loc == nil {
		loc = time.Local
	}

	first := ym.Start(loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := int(first.Weekday())

	byDay := make(map[int][]Assignment)
	for _, a := range assignments {
		if !a.HasDueDate() {
			continue
		}
		due := a.DueAt.In(loc)
		if due.Year() != ym.Year || due.Month() != ym.Month {
			continue
		}
		byDay[due.Day()] = append(byDay[due.Day()], a)
	}
	for _, list := range byDay {
		slices.SortStableFunc(list, func(a, b Assignment) int {
			if c := a.DueAt.Compare(b.DueAt); c != 0 {
				return c
			}
			return cmp.Compare(a.Name, b.Name)
		})
	}

	cells := (offset + daysInMonth + 6) / 7 * 7
	weeks := make([]Week, cells/7)
	for day := 1; day <= daysInMonth; day++ {
		idx := offset + day - 1
		weeks[idx/7][idx%7] = Day{
			Date:        time.Date(ym.Year, ym.Month, day, 0, 0, 0, 0, loc),
			Assignments: byDay[day],
		}
	}

	return Month{YearMonth: ym, Location: loc, Weeks: weeks}
}

// Day returns the cell for the given day of the month.
func (m Month) Day(day int) (Day, bool) {
	for _, w := range m.Weeks {
		for _, d := range w {
			if !d.IsBlank() && d.Date.Day() == day {
				return d, true
			}
		}
	}
	return Day{}, false
}

// Assignments returns every assignment in the month in calendar order.
func (m Month) Assignments() []Assignment {
	var out []Assignment
	for _, w := range m.Weeks {
		for _, d := range w {
			out = append(out, d.Assignments...)
		}
	}
	return out
}
