// Package web implements the HTML calendar page driving adapter.
package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/canvascal/internal/application"
	"github.com/ericfisherdev/canvascal/internal/domain/model"
)

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Handler is the web GUI driving adapter that serves the calendar page.
type Handler struct {
	calendarSvc *application.CalendarService
	logger      *slog.Logger
	now         func() time.Time
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(calendarSvc *application.CalendarService, logger *slog.Logger) *Handler {
	return &Handler{
		calendarSvc: calendarSvc,
		logger:      logger,
		now:         time.Now,
	}
}

// Calendar renders a month grid. Query parameters: month (YYYY-MM, default
// current month) and day (YYYY-MM-DD, selects a day; implies its month when
// month is absent).
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	loc := h.calendarSvc.Location()

	ym := h.calendarSvc.CurrentMonth()
	if v := q.Get("month"); v != "" {
		parsed, err := model.ParseYearMonth(v)
		if err != nil {
			http.Error(w, "invalid month: expected YYYY-MM", http.StatusBadRequest)
			return
		}
		ym = parsed
	}

	selectedDay := 0
	if v := q.Get("day"); v != "" {
		day, err := time.ParseInLocation(time.DateOnly, v, loc)
		if err != nil {
			http.Error(w, "invalid day: expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if q.Get("month") == "" {
			ym = model.YearMonthOf(day)
		}
		if model.YearMonthOf(day) == ym {
			selectedDay = day.Day()
		}
	}

	month, err := h.calendarSvc.Month(r.Context(), ym)
	if err != nil {
		h.logger.Error("failed to load calendar", "month", ym.String(), "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Render into a buffer so a template error does not leave a half-written page.
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "calendar.html", toCalendarViewModel(month, selectedDay, h.now())); err != nil {
		h.logger.Error("failed to render calendar", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
