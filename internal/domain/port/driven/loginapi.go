package driven

import (
	"context"

	"github.com/ericfisherdev/canvascal/internal/domain/model"
)

// LoginAPI defines the driven port for the external login service.
type LoginAPI interface {
	// SubmitAPIKey sends the key to the login endpoint and returns the HTTP
	// status code of the response. A non-nil error means no response was
	// received; non-2xx statuses are not errors at this boundary.
	SubmitAPIKey(ctx context.Context, key model.APIKey) (int, error)
}
