// Package driving defines the ports through which a user interface drives the
// application.
package driving

import (
	"context"
	"errors"

	"github.com/ericfisherdev/canvascal/internal/domain/model"
)

// Element identifiers every surface must provide.
const (
	LoginTrigger    = "login-btn"
	RefreshTrigger  = "refresh-btn"
	CalendarTrigger = "calendar-btn"
)

// ErrElementNotFound is returned by Bind when the surface has no element with
// the requested identifier.
var ErrElementNotFound = errors.New("element not found")

// Handler reacts to a click on a bound element.
type Handler func(ctx context.Context)

// Prompter collects a single line of input from the user. The call blocks
// until the user answers or cancels; ok is false on cancel.
type Prompter interface {
	Prompt(ctx context.Context, message string) (answer string, ok bool)
}

// Notifier shows a message to the user.
type Notifier interface {
	Notify(message string)
}

// CalendarView displays a month grid along with the address of the full
// calendar page.
type CalendarView interface {
	ShowCalendar(month model.Month, pageURL string)
}

// Surface is a constructed user interface whose elements can be bound to
// handlers. Binding the same element twice registers both handlers.
type Surface interface {
	Bind(elementID string, h Handler) error
	Prompter
	Notifier
	CalendarView
}
