package application

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/ericfisherdev/canvascal/internal/domain/model"
	"github.com/ericfisherdev/canvascal/internal/domain/port/driven"
)

// CalendarService builds month views from the local assignment cache.
type CalendarService struct {
	store   driven.AssignmentStore
	loc     *time.Location
	pageURL string
	now     func() time.Time
}

// NewCalendarService creates a CalendarService. pageURL is the absolute URL
// of the web calendar page; loc is the zone due dates are shown in (nil means
// the local zone).
func NewCalendarService(store driven.AssignmentStore, loc *time.Location, pageURL string) *CalendarService {
	if loc == nil {
		loc = time.Local
	}
	return &CalendarService{
		store:   store,
		loc:     loc,
		pageURL: pageURL,
		now:     time.Now,
	}
}

// CurrentMonth returns the month containing today.
func (s *CalendarService) CurrentMonth() model.YearMonth {
	return model.YearMonthOf(s.now().In(s.loc))
}

// Location returns the zone due dates are evaluated in.
func (s *CalendarService) Location() *time.Location {
	return s.loc
}

// Month loads the assignments due in ym and lays them out as a grid.
func (s *CalendarService) Month(ctx context.Context, ym model.YearMonth) (model.Month, error) {
	assignments, err := s.store.ListDueBetween(ctx, ym.Start(s.loc).UTC(), ym.End(s.loc).UTC())
	if err != nil {
		return model.Month{}, fmt.Errorf("list assignments for %s: %w", ym, err)
	}
	return model.BuildMonth(ym, s.loc, assignments), nil
}

// CachedCount returns how many assignments are cached, dated or not.
func (s *CalendarService) CachedCount(ctx context.Context) (int, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count cached assignments: %w", err)
	}
	return n, nil
}

// PageURL returns the web calendar address for ym.
func (s *CalendarService) PageURL(ym model.YearMonth) string {
	if s.pageURL == "" {
		return ""
	}
	u, err := url.Parse(s.pageURL)
	if err != nil {
		return s.pageURL
	}
	q := u.Query()
	q.Set("month", ym.String())
	u.RawQuery = q.Encode()
	return u.String()
}
