package model

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidTotal is returned when a grade is computed against a total of zero
// or fewer points.
var ErrInvalidTotal = errors.New("total points must be positive")

// CalculateGrade returns earned as a percentage of total.
func CalculateGrade(earned, total float64) (float64, error) {
	if total <= 0 {
		return 0, fmt.Errorf("%w: %g", ErrInvalidTotal, total)
	}
	return earned / total * 100, nil
}

// CourseGrade sums the graded work of one course.
type CourseGrade struct {
	Course      string
	Earned      float64
	Possible    float64
	Graded      int
	Completed   int
	Assignments int
}

// Percent returns the course grade as a percentage of the points possible on
// graded work. It fails with ErrInvalidTotal while nothing is graded.
func (g CourseGrade) Percent() (float64, error) {
	return CalculateGrade(g.Earned, g.Possible)
}

// GradeCourses groups assignments by course, ordered by course name. Only
// graded assignments worth points count toward Earned and Possible.
func GradeCourses(assignments []Assignment) []CourseGrade {
	byCourse := make(map[string]*CourseGrade)
	for _, a := range assignments {
		g, ok := byCourse[a.Course]
		if !ok {
			g = &CourseGrade{Course: a.Course}
			byCourse[a.Course] = g
		}

		g.Assignments++
		if a.Completed {
			g.Completed++
		}
		if a.Graded && a.PointsPossible > 0 {
			g.Graded++
			g.Earned += a.Score
			g.Possible += a.PointsPossible
		}
	}

	grades := make([]CourseGrade, 0, len(byCourse))
	for _, g := range byCourse {
		grades = append(grades, *g)
	}
	sort.Slice(grades, func(i, j int) bool { return grades[i].Course < grades[j].Course })
	return grades
}
