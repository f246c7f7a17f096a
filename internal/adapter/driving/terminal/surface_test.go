package terminal

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/canvascal/internal/domain/model"
	"github.com/ericfisherdev/canvascal/internal/domain/port/driving"
)

// syncBuffer is a bytes.Buffer safe for concurrent writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestSurface(input string) (*Surface, *syncBuffer) {
	out := &syncBuffer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(strings.NewReader(input), out, logger, DefaultElements()...), out
}

func TestSurface_BindUnknownElement(t *testing.T) {
	s, _ := newTestSurface("")

	err := s.Bind("logout-btn", func(context.Context) {})

	assert.ErrorIs(t, err, driving.ErrElementNotFound)
}

func TestSurface_BindRequiresExactID(t *testing.T) {
	s, _ := newTestSurface("")

	assert.ErrorIs(t, s.Bind("login", func(context.Context) {}), driving.ErrElementNotFound)
	assert.NoError(t, s.Bind(driving.LoginTrigger, func(context.Context) {}))
}

func TestSurface_ClickByIDAliasAndNumber(t *testing.T) {
	s, _ := newTestSurface("")
	clicks := 0
	require.NoError(t, s.Bind(driving.RefreshTrigger, func(context.Context) { clicks++ }))
	ctx := context.Background()

	require.NoError(t, s.Click(ctx, driving.RefreshTrigger))
	require.NoError(t, s.Click(ctx, "Refresh"))
	require.NoError(t, s.Click(ctx, "2"))

	assert.Equal(t, 3, clicks)
}

func TestSurface_DoubleBindRunsBothHandlers(t *testing.T) {
	s, _ := newTestSurface("")
	clicks := 0
	h := func(context.Context) { clicks++ }
	require.NoError(t, s.Bind(driving.LoginTrigger, h))
	require.NoError(t, s.Bind(driving.LoginTrigger, h))

	require.NoError(t, s.Click(context.Background(), "login"))

	assert.Equal(t, 2, clicks)
}

func TestSurface_PromptReadsLine(t *testing.T) {
	s, out := newTestSurface("abc123\r\n")

	answer, ok := s.Prompt(context.Background(), model.PromptAPIKey)

	assert.True(t, ok)
	assert.Equal(t, "abc123", answer)
	assert.Contains(t, out.String(), "Enter your Canvas API Key: ")
}

func TestSurface_PromptEmptyLineIsAnswered(t *testing.T) {
	s, _ := newTestSurface("\n")

	answer, ok := s.Prompt(context.Background(), "key")

	assert.True(t, ok)
	assert.Equal(t, "", answer)
}

func TestSurface_PromptEOFIsCancel(t *testing.T) {
	s, _ := newTestSurface("")

	_, ok := s.Prompt(context.Background(), "key")

	assert.False(t, ok)
}

func TestSurface_PromptContextCancelled(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })
	s := New(r, io.Discard, slog.New(slog.NewTextHandler(io.Discard, nil)), DefaultElements()...)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, ok := s.Prompt(ctx, "key")

	assert.False(t, ok)
}

func TestSurface_RunDispatchesAndPrompts(t *testing.T) {
	s, out := newTestSurface("login\nabc123\nbogus\n\nquit\nrefresh\n")
	var got []string
	refreshed := false
	require.NoError(t, s.Bind(driving.LoginTrigger, func(ctx context.Context) {
		key, ok := s.Prompt(ctx, model.PromptAPIKey)
		require.True(t, ok)
		got = append(got, key)
		s.Notify(model.MsgLoginSucceeded)
	}))
	require.NoError(t, s.Bind(driving.RefreshTrigger, func(context.Context) { refreshed = true }))

	err := s.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"abc123"}, got)
	assert.False(t, refreshed, "input after quit is not processed")
	text := out.String()
	assert.Contains(t, text, "1) Login")
	assert.Contains(t, text, "2) Refresh Data")
	assert.Contains(t, text, "3) View Calendar")
	assert.Contains(t, text, "! Login successful")
	assert.Contains(t, text, `Unknown action "bogus"`)
}

func TestSurface_RunEndsOnEOF(t *testing.T) {
	s, _ := newTestSurface("help\n")

	assert.NoError(t, s.Run(context.Background()))
}

func TestSurface_ShowCalendar(t *testing.T) {
	s, out := newTestSurface("")
	m := model.BuildMonth(model.YearMonth{Year: 2024, Month: time.December}, time.UTC, nil)

	s.ShowCalendar(m, "http://127.0.0.1:8090/calendar?month=2024-12")

	assert.Contains(t, out.String(), "December 2024")
	assert.Contains(t, out.String(), "Full calendar: http://127.0.0.1:8090/calendar?month=2024-12")
}

func TestSurface_CloseStopsInputReader(t *testing.T) {
	s, _ := newTestSurface("first\nsecond\nthird\n")

	line, ok := s.Prompt(context.Background(), "key")
	require.True(t, ok)
	require.Equal(t, "first", line)

	// The reader now holds "second" with nobody left to take it.
	s.Close()

	select {
	case <-s.scanDone:
	case <-time.After(time.Second):
		t.Fatal("input reader still running after Close")
	}

	_, ok = s.Prompt(context.Background(), "key")
	assert.False(t, ok, "prompts after Close are cancelled")
	assert.NoError(t, s.Run(context.Background()))

	s.Close()
}
