package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/canvascal/internal/domain/model"
)

// ErrUnexpectedStatus is returned by AssignmentSource implementations when the
// backend answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// AssignmentSource defines the driven port for fetching assignments from the
// backend that proxies Canvas.
type AssignmentSource interface {
	FetchAssignments(ctx context.Context) ([]model.Assignment, error)
}
