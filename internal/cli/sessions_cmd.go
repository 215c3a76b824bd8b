package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/workclock/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSessionsCmd(app *App) *cobra.Command {
	var dateFlag, fromFlag, toFlag string

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List a workday's sessions, optionally filtered to a time range",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(dateFlag)
			if err != nil {
				return err
			}

			start := date
			if fromFlag != "" {
				start, err = parseMoment(dateFlag, fromFlag)
				if err != nil {
					return err
				}
			}

			var end *time.Time
			if toFlag != "" {
				e, err := parseMoment(dateFlag, toFlag)
				if err != nil {
					return err
				}
				end = &e
			}

			sessions, err := app.Workdays.SessionsInRange(context.Background(), date, start, end)
			if err != nil {
				return err
			}

			if len(sessions) == 0 {
				fmt.Println("No sessions in range.")
				return nil
			}

			headers := []string{"STARTED", "ENDED", "DURATION", "STATE"}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				started := s.StartedAt()
				rows = append(rows, []string{
					formatter.ClockTime(&started),
					formatter.ClockTime(s.EndedAt()),
					formatter.Duration(s),
					formatter.SessionIndicator(s.Open()),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Workday date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&fromFlag, "from", "", "Range start (HH:MM, default start of day)")
	cmd.Flags().StringVar(&toFlag, "to", "", "Range end (HH:MM, default unbounded)")

	return cmd
}
