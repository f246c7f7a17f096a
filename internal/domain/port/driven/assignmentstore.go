package driven

import (
	"context"
	"time"

	"github.com/ericfisherdev/canvascal/internal/domain/model"
)

// AssignmentStore defines the driven port for the local assignment cache.
type AssignmentStore interface {
	// ReplaceAll atomically replaces the cached assignments.
	ReplaceAll(ctx context.Context, assignments []model.Assignment) error

	// ListDueBetween returns dated assignments due in [from, to), ordered by
	// due time then name.
	ListDueBetween(ctx context.Context, from, to time.Time) ([]model.Assignment, error)

	// List returns every cached assignment, dated or not, ordered by course
	// then name.
	List(ctx context.Context) ([]model.Assignment, error)

	// Count returns the number of cached assignments, dated or not.
	Count(ctx context.Context) (int, error)
}
