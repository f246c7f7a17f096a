// Package terminal implements an interactive line-oriented UI surface. Each
// element is a named action the user triggers by typing its name, number or
// identifier.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/ericfisherdev/canvascal/internal/domain/model"
	"github.com/ericfisherdev/canvascal/internal/domain/port/driving"
)

// Compile-time interface satisfaction check.
var _ driving.Surface = (*Surface)(nil)

// Element describes one clickable action on the surface.
type Element struct {
	ID      string
	Label   string
	Aliases []string
}

// DefaultElements returns the three triggers of the calendar client.
func DefaultElements() []Element {
	return []Element{
		{ID: driving.LoginTrigger, Label: "Login", Aliases: []string{"login", "1"}},
		{ID: driving.RefreshTrigger, Label: "Refresh Data", Aliases: []string{"refresh", "2"}},
		{ID: driving.CalendarTrigger, Label: "View Calendar", Aliases: []string{"calendar", "3"}},
	}
}

type element struct {
	Element
	handlers []driving.Handler
}

// Surface reads commands and prompt answers from one input stream and writes
// notifications and views to one output stream. Handlers run on the goroutine
// that calls Run or Click.
type Surface struct {
	logger *slog.Logger

	in        io.Reader
	lines     chan string
	readOnce  sync.Once
	done      chan struct{}
	closeOnce sync.Once
	scanDone  chan struct{}

	outMu sync.Mutex
	out   io.Writer

	mu       sync.RWMutex
	elements []*element
	byName   map[string]*element
}

// New constructs a surface with the given elements. Elements exist from
// construction on, so handlers may be bound as soon as New returns.
func New(in io.Reader, out io.Writer, logger *slog.Logger, elements ...Element) *Surface {
	s := &Surface{
		logger:   logger,
		in:       in,
		lines:    make(chan string),
		done:     make(chan struct{}),
		scanDone: make(chan struct{}),
		out:      out,
		byName:   make(map[string]*element),
	}
	for _, e := range elements {
		el := &element{Element: e}
		s.elements = append(s.elements, el)
		s.byName[strings.ToLower(e.ID)] = el
		for _, alias := range e.Aliases {
			s.byName[strings.ToLower(alias)] = el
		}
	}
	return s
}

// Bind registers h for clicks on the element with the given identifier.
// Binding twice registers both handlers.
func (s *Surface) Bind(elementID string, h driving.Handler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.byName[strings.ToLower(elementID)]
	if !ok || el.ID != elementID {
		return fmt.Errorf("%w: %s", driving.ErrElementNotFound, elementID)
	}
	el.handlers = append(el.handlers, h)
	return nil
}

// Click runs the handlers bound to the element named by an identifier or alias.
func (s *Surface) Click(ctx context.Context, name string) error {
	s.mu.RLock()
	el, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	var handlers []driving.Handler
	if ok {
		handlers = append(handlers, el.handlers...)
	}
	s.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", driving.ErrElementNotFound, name)
	}

	s.logger.Debug("element clicked", "element", el.ID, "handlers", len(handlers))
	for _, h := range handlers {
		h(ctx)
	}
	return nil
}

// Prompt writes message and waits for one line of input. End of input or a
// cancelled context counts as the user dismissing the prompt.
func (s *Surface) Prompt(ctx context.Context, message string) (string, bool) {
	s.printf("%s: ", message)
	line, ok := s.readLine(ctx)
	if !ok {
		s.printf("\n")
	}
	return line, ok
}

// Notify writes a message line.
func (s *Surface) Notify(message string) {
	s.printf("! %s\n", message)
}

// ShowCalendar writes the month grid and, when known, the page address.
func (s *Surface) ShowCalendar(month model.Month, pageURL string) {
	view := RenderMonth(month)
	if pageURL != "" {
		view += "\nFull calendar: " + pageURL + "\n"
	}
	s.printf("%s", view)
}

// Run prints the menu and dispatches each input line to the matching element
// until the user quits, input ends or ctx is cancelled.
func (s *Surface) Run(ctx context.Context) error {
	s.printMenu()

	for {
		s.printf("> ")
		line, ok := s.readLine(ctx)
		if !ok {
			s.printf("\n")
			return ctx.Err()
		}

		cmd := strings.TrimSpace(line)
		switch strings.ToLower(cmd) {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		case "?", "help":
			s.printMenu()
			continue
		}

		if err := s.Click(ctx, cmd); err != nil {
			s.Notify(fmt.Sprintf("Unknown action %q. Type help for the list.", cmd))
		}
	}
}

func (s *Surface) printMenu() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	b.WriteString("Canvas Calendar\n")
	for i, el := range s.elements {
		fmt.Fprintf(&b, "  %d) %s\n", i+1, el.Label)
	}
	b.WriteString("  q) Quit\n")
	s.printf("%s", b.String())
}

// readLine returns the next input line without its line terminator.
func (s *Surface) readLine(ctx context.Context) (string, bool) {
	s.readOnce.Do(func() { go s.scan() })

	select {
	case <-ctx.Done():
		return "", false
	case <-s.done:
		return "", false
	case line, ok := <-s.lines:
		if !ok {
			return "", false
		}
		return strings.TrimSuffix(line, "\r"), true
	}
}

// Close stops the input reader and makes pending and later prompts return as
// cancelled. A read already blocked on the input stream ends at its next line
// or at end of input.
func (s *Surface) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Surface) scan() {
	defer close(s.scanDone)
	defer close(s.lines)

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		select {
		case s.lines <- scanner.Text():
		case <-s.done:
			return
		}
	}
	if err := scanner.Err(); err != nil {
		s.logger.Error("read input failed", "error", err)
	}
}

func (s *Surface) printf(format string, args ...any) {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	_, _ = fmt.Fprintf(s.out, format, args...)
}
