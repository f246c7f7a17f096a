package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/ericfisherdev/canvascal/internal/domain/model"
)

const (
	assignmentPrefix = "Assignment:"
	dueDateSeparator = ", Due Date:"
)

// textPolicy strips all markup from names; Canvas lets instructors put HTML
// almost anywhere.
var textPolicy = bluemonday.StrictPolicy()

// assignmentJSON is the object form of a /course-assignments entry, using
// Canvas assignment field names. The score may come at the top level or in an
// embedded submission (include[]=submission).
type assignmentJSON struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Course         string          `json:"course"`
	DueAt          *string         `json:"due_at"`
	Description    string          `json:"description"`
	HTMLURL        string          `json:"html_url"`
	PointsPossible *float64        `json:"points_possible"`
	Score          *float64        `json:"score"`
	GradeWeight    float64         `json:"grade_weight"`
	Completed      bool            `json:"completed"`
	Submission     *submissionJSON `json:"submission"`
}

type submissionJSON struct {
	Score         *float64 `json:"score"`
	WorkflowState string   `json:"workflow_state"`
}

// completedStates are Canvas submission workflow states that mean the work
// was handed in.
var completedStates = map[string]bool{
	"submitted":      true,
	"pending_review": true,
	"graded":         true,
}

// decodeAssignments reads a JSON array whose entries are either summary
// strings ("Assignment: NAME, Due Date: DATE") or assignment objects. Entries
// without a name are skipped.
func decodeAssignments(r io.Reader) ([]model.Assignment, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}

	assignments := make([]model.Assignment, 0, len(raw))
	for i, entry := range raw {
		a, err := decodeAssignment(entry)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if a.Name == "" {
			continue
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}

func decodeAssignment(entry json.RawMessage) (model.Assignment, error) {
	trimmed := bytes.TrimSpace(entry)
	if len(trimmed) == 0 {
		return model.Assignment{}, fmt.Errorf("empty entry")
	}

	switch trimmed[0] {
	case '"':
		var summary string
		if err := json.Unmarshal(trimmed, &summary); err != nil {
			return model.Assignment{}, err
		}
		return parseSummary(summary)
	case '{':
		var obj assignmentJSON
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return model.Assignment{}, err
		}
		return fromJSON(obj)
	default:
		return model.Assignment{}, fmt.Errorf("unsupported entry %s", trimmed)
	}
}

// parseSummary parses "Assignment: NAME, Due Date: DATE". The name may itself
// contain commas, so the last separator wins.
func parseSummary(s string) (model.Assignment, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), assignmentPrefix))

	name, due := s, ""
	if idx := strings.LastIndex(s, dueDateSeparator); idx >= 0 {
		name = s[:idx]
		due = strings.TrimSpace(s[idx+len(dueDateSeparator):])
	}

	dueAt, err := parseDueDate(due)
	if err != nil {
		return model.Assignment{}, err
	}

	return model.Assignment{
		Name:  plainText(name),
		DueAt: dueAt,
	}, nil
}

func fromJSON(obj assignmentJSON) (model.Assignment, error) {
	var due string
	if obj.DueAt != nil {
		due = *obj.DueAt
	}

	dueAt, err := parseDueDate(due)
	if err != nil {
		return model.Assignment{}, err
	}

	a := model.Assignment{
		CanvasID:    obj.ID,
		Course:      plainText(obj.Course),
		Name:        plainText(obj.Name),
		DueAt:       dueAt,
		Description: obj.Description,
		URL:         obj.HTMLURL,
		GradeWeight: obj.GradeWeight,
		Completed:   obj.Completed,
	}
	if obj.PointsPossible != nil {
		a.PointsPossible = *obj.PointsPossible
	}

	score := obj.Score
	if sub := obj.Submission; sub != nil {
		if score == nil {
			score = sub.Score
		}
		if completedStates[sub.WorkflowState] {
			a.Completed = true
		}
	}
	if score != nil {
		a.Score = *score
		a.Graded = true
	}

	return a, nil
}

// parseDueDate accepts RFC 3339 timestamps, zone-less timestamps (UTC) and
// bare dates (midnight local time). Empty and "null" mean undated.
func parseDueDate(s string) (time.Time, error) {
	if s == "" || strings.EqualFold(s, "null") {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, s, time.Local); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid due date %q", s)
}

func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}
