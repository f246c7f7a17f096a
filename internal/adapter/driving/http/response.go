package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/canvascal/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status            string `json:"status"`
	Time              string `json:"time"`
	CachedAssignments *int   `json:"cached_assignments,omitempty"`
}

// MonthResponse lists the assignments due in one month.
type MonthResponse struct {
	Month       string               `json:"month"`
	Assignments []AssignmentResponse `json:"assignments"`
}

// AssignmentResponse is the JSON representation of a cached assignment.
type AssignmentResponse struct {
	CanvasID int64  `json:"canvas_id,omitempty"`
	Course   string `json:"course"`
	Name     string `json:"name"`
	DueAt    string `json:"due_at"`
	DueDate  string `json:"due_date"`
	URL      string `json:"url,omitempty"`
}

// toAssignmentResponse converts a domain Assignment to its JSON representation.
// DueDate is the calendar day in loc the assignment is shown on.
func toAssignmentResponse(a model.Assignment, loc *time.Location) AssignmentResponse {
	return AssignmentResponse{
		CanvasID: a.CanvasID,
		Course:   a.Course,
		Name:     a.Name,
		DueAt:    a.DueAt.UTC().Format(time.RFC3339),
		DueDate:  a.DueAt.In(loc).Format(time.DateOnly),
		URL:      a.URL,
	}
}

// GradesResponse lists the grade summary per course.
type GradesResponse struct {
	Courses []CourseGradeResponse `json:"courses"`
}

// CourseGradeResponse is the JSON representation of one course's grade.
// Percent is null until the course has graded work worth points.
type CourseGradeResponse struct {
	Course      string   `json:"course"`
	Earned      float64  `json:"earned"`
	Possible    float64  `json:"possible"`
	Percent     *float64 `json:"percent"`
	Graded      int      `json:"graded"`
	Completed   int      `json:"completed"`
	Assignments int      `json:"assignments"`
}

func toCourseGradeResponse(g model.CourseGrade) CourseGradeResponse {
	resp := CourseGradeResponse{
		Course:      g.Course,
		Earned:      g.Earned,
		Possible:    g.Possible,
		Graded:      g.Graded,
		Completed:   g.Completed,
		Assignments: g.Assignments,
	}
	if pct, err := g.Percent(); err == nil {
		resp.Percent = &pct
	}
	return resp
}
