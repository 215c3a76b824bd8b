package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newClockInCmd(app *App) *cobra.Command {
	var dateFlag, atFlag string

	cmd := &cobra.Command{
		Use:   "in",
		Short: "Clock in (open a session)",
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseMoment(dateFlag, atFlag)
			if err != nil {
				return err
			}
			if err := app.Workdays.ClockIn(context.Background(), at); err != nil {
				return err
			}
			fmt.Printf("Clocked in at %s\n", at.Format("2006-01-02 15:04"))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Workday date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&atFlag, "at", "", "Clock-in time (HH:MM or RFC3339, default now)")

	return cmd
}

func newClockOutCmd(app *App) *cobra.Command {
	var dateFlag, atFlag string

	cmd := &cobra.Command{
		Use:   "out",
		Short: "Clock out (close the open session)",
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseMoment(dateFlag, atFlag)
			if err != nil {
				return err
			}
			if err := app.Workdays.ClockOut(context.Background(), at); err != nil {
				return err
			}
			fmt.Printf("Clocked out at %s\n", at.Format("2006-01-02 15:04"))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Workday date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&atFlag, "at", "", "Clock-out time (HH:MM or RFC3339, default now)")

	return cmd
}
