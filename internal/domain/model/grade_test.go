package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateGrade(t *testing.T) {
	got, err := CalculateGrade(45, 50)
	require.NoError(t, err)
	assert.InDelta(t, 90.0, got, 1e-9)

	got, err = CalculateGrade(0, 10)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = CalculateGrade(12, 10)
	require.NoError(t, err)
	assert.InDelta(t, 120.0, got, 1e-9, "extra credit is not capped")
}

func TestCalculateGrade_RejectsNonPositiveTotal(t *testing.T) {
	for _, total := range []float64{0, -5} {
		_, err := CalculateGrade(3, total)
		require.ErrorIs(t, err, ErrInvalidTotal)
	}
}

func TestGradeCourses(t *testing.T) {
	grades := GradeCourses([]Assignment{
		{Course: "MATH 2", Name: "Quiz 1", PointsPossible: 10, Score: 8, Graded: true, Completed: true},
		{Course: "CS 101", Name: "Lab 1", PointsPossible: 20, Score: 20, Graded: true, Completed: true},
		{Course: "MATH 2", Name: "Quiz 2", PointsPossible: 10, Score: 6, Graded: true, Completed: true},
		{Course: "MATH 2", Name: "Homework", PointsPossible: 30, Completed: true},
		{Course: "MATH 2", Name: "Ungraded survey", Graded: true, Completed: true},
		{Course: "CS 101", Name: "Lab 2", PointsPossible: 20},
	})

	require.Len(t, grades, 2)

	cs := grades[0]
	assert.Equal(t, "CS 101", cs.Course)
	assert.Equal(t, 2, cs.Assignments)
	assert.Equal(t, 1, cs.Completed)
	assert.Equal(t, 1, cs.Graded)
	pct, err := cs.Percent()
	require.NoError(t, err)
	assert.InDelta(t, 100.0, pct, 1e-9)

	math := grades[1]
	assert.Equal(t, "MATH 2", math.Course)
	assert.Equal(t, 4, math.Assignments)
	assert.Equal(t, 4, math.Completed)
	assert.Equal(t, 2, math.Graded)
	assert.InDelta(t, 14.0, math.Earned, 1e-9)
	assert.InDelta(t, 20.0, math.Possible, 1e-9)
	pct, err = math.Percent()
	require.NoError(t, err)
	assert.InDelta(t, 70.0, pct, 1e-9)
}

func TestCourseGrade_PercentWithoutGradedWork(t *testing.T) {
	grades := GradeCourses([]Assignment{{Course: "ART 1", Name: "Sketch", PointsPossible: 10}})

	require.Len(t, grades, 1)
	_, err := grades[0].Percent()
	assert.ErrorIs(t, err, ErrInvalidTotal)
}
