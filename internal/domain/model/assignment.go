package model

import "time"

// Assignment is a Canvas course assignment cached locally for the calendar
// and grade summary. DueAt is the zero time for undated assignments. Score is
// only meaningful when Graded is set.
type Assignment struct {
	ID             int64
	CanvasID       int64
	Course         string
	Name           string
	DueAt          time.Time
	Description    string // Canvas HTML, unsanitized.
	URL            string
	PointsPossible float64
	Score          float64
	Graded         bool
	GradeWeight    float64 // Share of the course grade, 0..1; 0 when unweighted.
	Completed      bool
	FetchedAt      time.Time
}

// HasDueDate reports whether the assignment has a due date.
func (a Assignment) HasDueDate() bool {
	return !a.DueAt.IsZero()
}
