// Package viewmodel defines presentation-ready structs for the HTML templates.
// View models decouple template rendering from domain model types.
package viewmodel

import "html/template"

// CalendarViewModel holds everything the month page renders.
type CalendarViewModel struct {
	Title    string
	Month    string // YYYY-MM
	PrevPath string
	NextPath string
	Weekdays []string
	Weeks    [][]DayViewModel
	Selected *SelectedDayViewModel
}

// DayViewModel is one grid cell. Blank cells pad the first and last week.
type DayViewModel struct {
	Blank          bool
	Day            int
	HasAssignments bool
	IsToday        bool
	IsSelected     bool
	Path           string
}

// SelectedDayViewModel lists the assignments of the day the user clicked.
type SelectedDayViewModel struct {
	Label       string
	Assignments []AssignmentViewModel
	EmptyText   string
}

// AssignmentViewModel is a single assignment entry in the day list.
type AssignmentViewModel struct {
	Name            string
	Course          string
	DueTime         string
	URL             string
	DescriptionHTML template.HTML // Sanitized.
}
