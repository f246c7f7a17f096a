package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ericfisherdev/canvascal/internal/domain/model"
	"github.com/ericfisherdev/canvascal/internal/domain/port/driven"
	"github.com/ericfisherdev/canvascal/internal/domain/port/driving"
)

// ErrAlreadyStarted is returned when Start is called more than once.
var ErrAlreadyStarted = errors.New("event shim already started")

// EventShim binds the surface's triggers to the login, refresh and calendar
// behaviors. Network work runs in the background so the surface keeps
// handling input; Wait drains it.
type EventShim struct {
	login    *LoginService
	refresh  *RefreshService
	calendar *CalendarService
	opener   driven.PageOpener // nil disables opening the calendar page.
	logger   *slog.Logger

	started  atomic.Bool
	inflight sync.WaitGroup
}

// NewEventShim creates an EventShim. opener may be nil.
func NewEventShim(
	login *LoginService,
	refresh *RefreshService,
	calendar *CalendarService,
	opener driven.PageOpener,
	logger *slog.Logger,
) *EventShim {
	return &EventShim{
		login:    login,
		refresh:  refresh,
		calendar: calendar,
		opener:   opener,
		logger:   logger,
	}
}

// Start binds all handlers to surface. It must be called once, after the
// surface has created its elements. A second call returns ErrAlreadyStarted
// without binding anything.
func (s *EventShim) Start(surface driving.Surface) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	bindings := []struct {
		id string
		h  driving.Handler
	}{
		{driving.LoginTrigger, func(ctx context.Context) { s.onLogin(ctx, surface) }},
		{driving.RefreshTrigger, func(ctx context.Context) { s.onRefresh(ctx, surface) }},
		{driving.CalendarTrigger, func(ctx context.Context) { s.onCalendar(ctx, surface) }},
	}

	for _, b := range bindings {
		if err := surface.Bind(b.id, b.h); err != nil {
			return fmt.Errorf("bind %s: %w", b.id, err)
		}
	}

	s.logger.Debug("event handlers bound", "count", len(bindings))
	return nil
}

// Wait blocks until every background submission started by a handler has
// finished and notified the user.
func (s *EventShim) Wait() {
	s.inflight.Wait()
}

// onLogin prompts on the surface's goroutine, then submits in the background.
// Clicks are not deduplicated; each answered prompt sends its own request.
func (s *EventShim) onLogin(ctx context.Context, surface driving.Surface) {
	key, ok := s.login.CollectAPIKey(ctx, surface)
	if !ok {
		surface.Notify(model.LoginEmptyInput.Message())
		return
	}

	s.background(ctx, func(ctx context.Context) {
		result := s.login.Submit(ctx, key)
		surface.Notify(result.Outcome.Message())
	})
}

func (s *EventShim) onRefresh(ctx context.Context, surface driving.Surface) {
	s.background(ctx, func(ctx context.Context) {
		if _, err := s.refresh.Refresh(ctx); err != nil {
			s.logger.Error("refresh failed", "error", err)
			surface.Notify(model.MsgRefreshFailed)
			return
		}
		surface.Notify(model.MsgRefreshSucceeded)
	})
}

func (s *EventShim) onCalendar(ctx context.Context, surface driving.Surface) {
	ym := s.calendar.CurrentMonth()
	month, err := s.calendar.Month(ctx, ym)
	if err != nil {
		s.logger.Error("load calendar failed", "month", ym.String(), "error", err)
		surface.Notify(model.MsgCalendarFailed)
		return
	}

	pageURL := s.calendar.PageURL(ym)
	surface.ShowCalendar(month, pageURL)

	if s.opener != nil && pageURL != "" {
		if err := s.opener.Open(ctx, pageURL); err != nil {
			s.logger.Warn("open calendar page failed", "url", pageURL, "error", err)
		}
	}
}

// background runs fn on its own goroutine with a context that outlives
// cancellation of ctx; submissions are never cancelled once sent.
func (s *EventShim) background(ctx context.Context, fn func(context.Context)) {
	detached := context.WithoutCancel(ctx)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		fn(detached)
	}()
}
