package application_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/ericfisherdev/canvascal/internal/domain/model"
	"github.com/ericfisherdev/canvascal/internal/domain/port/driving"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockLoginAPI records every submitted key.
type mockLoginAPI struct {
	mu     sync.Mutex
	keys   []model.APIKey
	status int
	err    error
}

func (m *mockLoginAPI) SubmitAPIKey(_ context.Context, key model.APIKey) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, key)
	return m.status, m.err
}

func (m *mockLoginAPI) submitted() []model.APIKey {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.APIKey(nil), m.keys...)
}

type mockAssignmentSource struct {
	assignments []model.Assignment
	err         error
	calls       int
}

func (m *mockAssignmentSource) FetchAssignments(_ context.Context) ([]model.Assignment, error) {
	m.calls++
	return m.assignments, m.err
}

type mockAssignmentStore struct {
	stored     []model.Assignment
	replaced   bool
	replaceErr error
	listErr    error
	countErr   error
	from, to   time.Time
}

func (m *mockAssignmentStore) ReplaceAll(_ context.Context, assignments []model.Assignment) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaced = true
	m.stored = assignments
	return nil
}

func (m *mockAssignmentStore) ListDueBetween(_ context.Context, from, to time.Time) ([]model.Assignment, error) {
	m.from, m.to = from, to
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []model.Assignment
	for _, a := range m.stored {
		if a.HasDueDate() && !a.DueAt.Before(from) && a.DueAt.Before(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAssignmentStore) List(_ context.Context) ([]model.Assignment, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.stored, nil
}

func (m *mockAssignmentStore) Count(_ context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return len(m.stored), nil
}

type mockOpener struct {
	urls []string
	err  error
}

func (m *mockOpener) Open(_ context.Context, url string) error {
	m.urls = append(m.urls, url)
	return m.err
}

// fakeSurface is an in-memory driving.Surface. Prompt answers are consumed in
// order; a nil entry means the user cancelled.
type fakeSurface struct {
	mu            sync.Mutex
	handlers      map[string][]driving.Handler
	missing       map[string]bool
	answers       []*string
	prompts       []string
	notifications []string
	shown         []model.Month
	shownURLs     []string
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{handlers: map[string][]driving.Handler{}, missing: map[string]bool{}}
}

func answer(s string) *string { return &s }

func (f *fakeSurface) Bind(id string, h driving.Handler) error {
	if f.missing[id] {
		return driving.ErrElementNotFound
	}
	f.handlers[id] = append(f.handlers[id], h)
	return nil
}

func (f *fakeSurface) click(ctx context.Context, id string) {
	for _, h := range f.handlers[id] {
		h(ctx)
	}
}

func (f *fakeSurface) Prompt(_ context.Context, message string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, message)
	if len(f.answers) == 0 {
		return "", false
	}
	a := f.answers[0]
	f.answers = f.answers[1:]
	if a == nil {
		return "", false
	}
	return *a, true
}

func (f *fakeSurface) Notify(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications = append(f.notifications, message)
}

func (f *fakeSurface) ShowCalendar(month model.Month, pageURL string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shown = append(f.shown, month)
	f.shownURLs = append(f.shownURLs, pageURL)
}

func (f *fakeSurface) notified() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.notifications...)
}
