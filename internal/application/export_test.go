package application

import "time"

// SetNow overrides the clock for tests.
func (s *CalendarService) SetNow(now func() time.Time) { s.now = now }

// SetNow overrides the clock for tests.
func (s *RefreshService) SetNow(now func() time.Time) { s.now = now }
