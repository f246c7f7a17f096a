// Package httphandler implements the JSON API driving adapter.
package httphandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/canvascal/internal/application"
	"github.com/ericfisherdev/canvascal/internal/domain/model"
)

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	calendarSvc *application.CalendarService
	gradeSvc    *application.GradeService
	logger      *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(calendarSvc *application.CalendarService, gradeSvc *application.GradeService, logger *slog.Logger) *Handler {
	return &Handler{
		calendarSvc: calendarSvc,
		gradeSvc:    gradeSvc,
		logger:      logger,
	}
}

// RegisterAPIRoutes registers all API routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.HandleFunc("GET /api/v1/assignments", h.ListAssignments)
	mux.HandleFunc("GET /api/v1/grades", h.ListGrades)
}

// ListAssignments returns the cached assignments due in the month given by the
// "month" query parameter (YYYY-MM), defaulting to the current month.
func (h *Handler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	ym := h.calendarSvc.CurrentMonth()
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := model.ParseYearMonth(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid month: expected YYYY-MM")
			return
		}
		ym = parsed
	}

	month, err := h.calendarSvc.Month(r.Context(), ym)
	if err != nil {
		h.logger.Error("failed to load month", "month", ym.String(), "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	assignments := month.Assignments()
	resp := MonthResponse{
		Month:       ym.String(),
		Assignments: make([]AssignmentResponse, 0, len(assignments)),
	}
	for _, a := range assignments {
		resp.Assignments = append(resp.Assignments, toAssignmentResponse(a, month.Location))
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListGrades returns the grade summary of every cached course.
func (h *Handler) ListGrades(w http.ResponseWriter, r *http.Request) {
	grades, err := h.gradeSvc.CourseGrades(r.Context())
	if err != nil {
		h.logger.Error("failed to load grades", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := GradesResponse{Courses: make([]CourseGradeResponse, 0, len(grades))}
	for _, g := range grades {
		resp.Courses = append(resp.Courses, toCourseGradeResponse(g))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Health returns a simple health check response. A cache that cannot be
// counted is logged but does not fail the check.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	}

	if n, err := h.calendarSvc.CachedCount(r.Context()); err != nil {
		h.logger.Warn("failed to count cached assignments", "error", err)
	} else {
		resp.CachedAssignments = &n
	}

	writeJSON(w, http.StatusOK, resp)
}
