package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ericfisherdev/canvascal/internal/domain/port/driven"
)

// RefreshService pulls assignments from the backend into the local cache.
type RefreshService struct {
	source driven.AssignmentSource
	store  driven.AssignmentStore
	logger *slog.Logger
	now    func() time.Time
}

// NewRefreshService creates a RefreshService.
func NewRefreshService(source driven.AssignmentSource, store driven.AssignmentStore, logger *slog.Logger) *RefreshService {
	return &RefreshService{
		source: source,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Refresh fetches the current assignment list and replaces the cache with it.
// It returns the number of assignments stored. The cache is left untouched
// when the fetch fails.
func (s *RefreshService) Refresh(ctx context.Context) (int, error) {
	start := s.now()

	assignments, err := s.source.FetchAssignments(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch assignments: %w", err)
	}

	fetchedAt := s.now().UTC()
	for i := range assignments {
		assignments[i].FetchedAt = fetchedAt
	}

	if err := s.store.ReplaceAll(ctx, assignments); err != nil {
		return 0, fmt.Errorf("store assignments: %w", err)
	}

	s.logger.Info("assignments refreshed",
		"count", len(assignments),
		"duration", s.now().Sub(start).Round(time.Millisecond),
	)
	return len(assignments), nil
}
