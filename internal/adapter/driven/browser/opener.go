// Package browser opens pages in the user's default web browser.
package browser

import (
	"context"
	"fmt"
	"io"

	"github.com/cli/browser"

	"github.com/ericfisherdev/canvascal/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.PageOpener = (*Opener)(nil)

// Opener implements driven.PageOpener with github.com/cli/browser.
type Opener struct {
	open func(url string) error
}

// NewOpener creates an Opener. Output of the launched browser process is
// sent to w (io.Discard when nil) so it does not interleave with the terminal UI.
func NewOpener(w io.Writer) *Opener {
	if w == nil {
		w = io.Discard
	}
	browser.Stdout = w
	browser.Stderr = w
	return &Opener{open: browser.OpenURL}
}

// Open launches the system browser at url.
func (o *Opener) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := o.open(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}
