package application

import (
	"context"
	"fmt"

	"github.com/ericfisherdev/canvascal/internal/domain/model"
	"github.com/ericfisherdev/canvascal/internal/domain/port/driven"
)

// GradeService summarizes grades per course from the local assignment cache.
type GradeService struct {
	store driven.AssignmentStore
}

// NewGradeService creates a GradeService.
func NewGradeService(store driven.AssignmentStore) *GradeService {
	return &GradeService{store: store}
}

// CourseGrades returns one summary per cached course, ordered by course name.
func (s *GradeService) CourseGrades(ctx context.Context) ([]model.CourseGrade, error) {
	assignments, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return model.GradeCourses(assignments), nil
}
