package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive menu and the web calendar",
		Long: `Start the interactive menu (Login, Refresh Data, View Calendar) and serve
the web calendar page and JSON API on CANVASCAL_LISTEN_ADDR until you quit or
the process is interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer a.close()

			srv := a.newServer()
			go func() {
				a.logger.Info("http server starting", "addr", a.cfg.ListenAddr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					a.logger.Error("http server error", "error", err)
				}
			}()

			pingCtx, cancelPing := context.WithTimeout(ctx, 3*time.Second)
			if err := a.backend.Ping(pingCtx); err != nil {
				a.logger.Warn("backend not reachable", "server_url", a.cfg.ServerURL, "error", err)
			}
			cancelPing()

			runErr := a.surface.Run(ctx)
			if errors.Is(runErr, context.Canceled) {
				runErr = nil
			}

			a.logger.Info("shutting down")
			a.shim.Wait()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.logger.Error("http server shutdown error", "error", err)
			}

			return runErr
		},
	}
}
