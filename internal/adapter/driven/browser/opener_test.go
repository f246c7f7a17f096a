package browser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpener_Open(t *testing.T) {
	var opened []string
	o := &Opener{open: func(url string) error {
		opened = append(opened, url)
		return nil
	}}

	require.NoError(t, o.Open(context.Background(), "http://127.0.0.1:8090/calendar"))
	assert.Equal(t, []string{"http://127.0.0.1:8090/calendar"}, opened)
}

func TestOpener_OpenError(t *testing.T) {
	o := &Opener{open: func(string) error { return errors.New("no display") }}

	err := o.Open(context.Background(), "http://x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
}

func TestOpener_CancelledContext(t *testing.T) {
	called := false
	o := &Opener{open: func(string) error { called = true; return nil }}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, o.Open(ctx, "http://x"), context.Canceled)
	assert.False(t, called)
}
