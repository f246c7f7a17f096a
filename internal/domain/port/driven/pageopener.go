package driven

import "context"

// PageOpener opens a URL for the user, typically in the system browser.
type PageOpener interface {
	Open(ctx context.Context, url string) error
}
