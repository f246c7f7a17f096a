package main

import (
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/canvascal/internal/domain/model"
)

func executeCmd(cmd *cobra.Command, args ...string) error {
	cmd.SetArgs(args)
	cmd.SetIn(eofReader{})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }

func TestWithDefaultCommand(t *testing.T) {
	assert.Equal(t, []string{"run"}, withDefaultCommand(nil))
	assert.Equal(t, []string{"run"}, withDefaultCommand([]string{}))
	assert.Equal(t, []string{"login"}, withDefaultCommand([]string{"login"}))
	assert.Equal(t, []string{"--version"}, withDefaultCommand([]string{"--version"}))
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"run", "login", "refresh", "calendar"} {
		assert.Contains(t, names, want)
	}
}

func TestCalendarCmd_InvalidMonth(t *testing.T) {
	for _, month := range []string{"2024-13", "december", "2024-12-01"} {
		t.Run(month, func(t *testing.T) {
			err := executeCmd(newCalendarCmd(), "--month", month)

			require.ErrorIs(t, err, model.ErrInvalidMonth)
			assert.Contains(t, err.Error(), "--month")
		})
	}
}

func TestOneShotCmds_InvalidConfig(t *testing.T) {
	t.Setenv("CANVASCAL_LOG_LEVEL", "verbose")

	for _, newCmd := range []func() *cobra.Command{newLoginCmd, newRefreshCmd, newCalendarCmd, newRunCmd} {
		cmd := newCmd()
		t.Run(cmd.Name(), func(t *testing.T) {
			err := executeCmd(cmd)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "CANVASCAL_LOG_LEVEL")
		})
	}
}

func TestCmds_RejectPositionalArgs(t *testing.T) {
	for _, newCmd := range []func() *cobra.Command{newLoginCmd, newRefreshCmd, newCalendarCmd, newRunCmd} {
		cmd := newCmd()
		t.Run(cmd.Name(), func(t *testing.T) {
			assert.Error(t, executeCmd(cmd, "extra"))
		})
	}
}
