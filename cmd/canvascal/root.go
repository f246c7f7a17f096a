package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "canvascal",
	Short: "Canvas assignment calendar",
	Long: `canvascal logs in to a Canvas backend with an API key, caches your course
assignments and shows them as a month calendar.

Without a subcommand it starts the interactive menu together with the web
calendar page (same as "canvascal run").`,
	SilenceUsage: true,
}

func setVersion(v string) {
	rootCmd.Version = v
}

func execute() {
	rootCmd.SetVersionTemplate(`{{printf "canvascal version %s\n" .Version}}`)

	rootCmd.SetArgs(withDefaultCommand(os.Args[1:]))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// withDefaultCommand runs the interactive mode when no arguments are given.
func withDefaultCommand(args []string) []string {
	if len(args) == 0 {
		return []string{"run"}
	}
	return args
}

func init() {
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newRefreshCmd())
	rootCmd.AddCommand(newCalendarCmd())
}
