package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ericfisherdev/canvascal/internal/domain/model"
	"github.com/ericfisherdev/canvascal/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.AssignmentStore = (*AssignmentRepo)(nil)

// AssignmentRepo is the SQLite implementation of the AssignmentStore port interface.
type AssignmentRepo struct {
	db *DB
}

// NewAssignmentRepo creates a new AssignmentRepo backed by the given DB.
func NewAssignmentRepo(db *DB) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

// ReplaceAll deletes every cached assignment and inserts the given ones in a
// single transaction.
func (r *AssignmentRepo) ReplaceAll(ctx context.Context, assignments []model.Assignment) error {
	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace assignments: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM assignments`); err != nil {
		return fmt.Errorf("clear assignments: %w", err)
	}

	const query = `
		INSERT INTO assignments (
			canvas_id, course, name, due_at, description, url,
			points_possible, score, grade_weight, completed, fetched_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare insert assignment: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, a := range assignments {
		var dueAt sql.NullString
		if a.HasDueDate() {
			dueAt = sql.NullString{String: formatTime(a.DueAt), Valid: true}
		}

		var score sql.NullFloat64
		if a.Graded {
			score = sql.NullFloat64{Float64: a.Score, Valid: true}
		}

		fetchedAt := a.FetchedAt
		if fetchedAt.IsZero() {
			fetchedAt = now
		}

		if _, err := stmt.ExecContext(ctx,
			a.CanvasID, a.Course, a.Name, dueAt, a.Description, a.URL,
			a.PointsPossible, score, a.GradeWeight, a.Completed, formatTime(fetchedAt),
		); err != nil {
			return fmt.Errorf("insert assignment %q: %w", a.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace assignments: %w", err)
	}
	return nil
}

// ListDueBetween returns dated assignments due in [from, to), ordered by due
// time then name.
func (r *AssignmentRepo) ListDueBetween(ctx context.Context, from, to time.Time) ([]model.Assignment, error) {
	const query = `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE due_at IS NOT NULL AND due_at >= ? AND due_at < ?
		ORDER BY due_at, name`

	rows, err := r.db.Reader.QueryContext(ctx, query, formatTime(from), formatTime(to))
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return collectAssignments(rows)
}

// List returns every cached assignment, dated or not, ordered by course then
// name.
func (r *AssignmentRepo) List(ctx context.Context) ([]model.Assignment, error) {
	const query = `
		SELECT ` + assignmentColumns + `
		FROM assignments
		ORDER BY course, name, id`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all assignments: %w", err)
	}
	return collectAssignments(rows)
}

// Count returns the number of cached assignments.
func (r *AssignmentRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.Reader.QueryRowContext(ctx, `SELECT COUNT(*) FROM assignments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count assignments: %w", err)
	}
	return n, nil
}

const assignmentColumns = `id, canvas_id, course, name, due_at, description, url,
		points_possible, score, grade_weight, completed, fetched_at`

// collectAssignments scans and closes rows. The result is never nil.
func collectAssignments(rows *sql.Rows) ([]model.Assignment, error) {
	defer rows.Close()

	assignments := []model.Assignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignments: %w", err)
	}
	return assignments, nil
}

func scanAssignment(rows *sql.Rows) (model.Assignment, error) {
	var (
		a         model.Assignment
		dueAt     sql.NullString
		score     sql.NullFloat64
		fetchedAt string
	)
	if err := rows.Scan(
		&a.ID, &a.CanvasID, &a.Course, &a.Name, &dueAt, &a.Description, &a.URL,
		&a.PointsPossible, &score, &a.GradeWeight, &a.Completed, &fetchedAt,
	); err != nil {
		return model.Assignment{}, fmt.Errorf("scan assignment: %w", err)
	}
	if score.Valid {
		a.Score, a.Graded = score.Float64, true
	}

	var err error
	if dueAt.Valid {
		if a.DueAt, err = parseTime(dueAt.String); err != nil {
			return model.Assignment{}, fmt.Errorf("parse due_at for assignment %d: %w", a.ID, err)
		}
	}
	if a.FetchedAt, err = parseTime(fetchedAt); err != nil {
		return model.Assignment{}, fmt.Errorf("parse fetched_at for assignment %d: %w", a.ID, err)
	}

	return a, nil
}
