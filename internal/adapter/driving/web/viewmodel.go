package web

import (
	"fmt"
	"time"

	vm "github.com/ericfisherdev/canvascal/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/canvascal/internal/domain/model"
)

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// calendarPath returns the page path for a month, optionally with a selected day.
func calendarPath(ym model.YearMonth, day int) string {
	if day == 0 {
		return fmt.Sprintf("/calendar?month=%s", ym)
	}
	return fmt.Sprintf("/calendar?month=%s&day=%s-%02d", ym, ym, day)
}

// toCalendarViewModel converts a month grid into its page view model.
// selectedDay is 0 when no day is selected; today marks the current date.
func toCalendarViewModel(m model.Month, selectedDay int, today time.Time) vm.CalendarViewModel {
	today = today.In(m.Location)

	weeks := make([][]vm.DayViewModel, 0, len(m.Weeks))
	for _, week := range m.Weeks {
		row := make([]vm.DayViewModel, 0, len(week))
		for _, d := range week {
			if d.IsBlank() {
				row = append(row, vm.DayViewModel{Blank: true})
				continue
			}
			day := d.Date.Day()
			row = append(row, vm.DayViewModel{
				Day:            day,
				HasAssignments: d.HasAssignments(),
				IsToday:        sameDate(d.Date, today),
				IsSelected:     day == selectedDay,
				Path:           calendarPath(m.YearMonth, day),
			})
		}
		weeks = append(weeks, row)
	}

	cal := vm.CalendarViewModel{
		Title:    m.Title(),
		Month:    m.String(),
		PrevPath: calendarPath(m.Prev(), 0),
		NextPath: calendarPath(m.Next(), 0),
		Weekdays: weekdays,
		Weeks:    weeks,
	}

	if d, ok := m.Day(selectedDay); ok {
		cal.Selected = toSelectedDayViewModel(d, m.Location)
	}
	return cal
}

func toSelectedDayViewModel(d model.Day, loc *time.Location) *vm.SelectedDayViewModel {
	sel := &vm.SelectedDayViewModel{
		Label:       d.Date.Format("Monday, January 2"),
		Assignments: make([]vm.AssignmentViewModel, 0, len(d.Assignments)),
	}
	for _, a := range d.Assignments {
		sel.Assignments = append(sel.Assignments, vm.AssignmentViewModel{
			Name:            a.Name,
			Course:          a.Course,
			DueTime:         a.DueAt.In(loc).Format("15:04"),
			URL:             a.URL,
			DescriptionHTML: SanitizeHTML(a.Description),
		})
	}
	if len(sel.Assignments) == 0 {
		sel.EmptyText = model.MsgNoAssignments
	}
	return sel
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
