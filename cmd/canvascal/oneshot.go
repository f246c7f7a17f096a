package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/canvascal/internal/domain/model"
	"github.com/ericfisherdev/canvascal/internal/domain/port/driving"
)

// clickOnce builds the app, clicks one element and waits for the work it
// started to finish.
func clickOnce(cmd *cobra.Command, elementID string) error {
	a, err := newApp(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer a.close()

	return a.surface.Click(cmd.Context(), elementID)
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Prompt for a Canvas API key and submit it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return clickOnce(cmd, driving.LoginTrigger)
		},
	}
}

func newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Download course assignments into the local cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return clickOnce(cmd, driving.RefreshTrigger)
		},
	}
}

func newCalendarCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print a month of cached assignments",
		Long: `Print the month grid with every cached assignment. Days with something due
are marked with "*". The web page address printed below the grid is served
by "canvascal run".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if month == "" {
				return clickOnce(cmd, driving.CalendarTrigger)
			}

			ym, err := model.ParseYearMonth(month)
			if err != nil {
				return fmt.Errorf("--month: %w", err)
			}

			a, err := newApp(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer a.close()

			m, err := a.calendar.Month(cmd.Context(), ym)
			if err != nil {
				a.surface.Notify(model.MsgCalendarFailed)
				return err
			}
			a.surface.ShowCalendar(m, a.calendar.PageURL(ym))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to show as YYYY-MM (default: current month)")
	return cmd
}
