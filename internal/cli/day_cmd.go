package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/workclock/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Manage workdays",
	}

	cmd.AddCommand(
		newDayCreateCmd(app),
		newDayListCmd(app),
	)

	return cmd
}

func newDayCreateCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register an empty workday",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(dateFlag)
			if err != nil {
				return err
			}
			if err := app.Workdays.Create(context.Background(), date); err != nil {
				return err
			}
			fmt.Printf("Created workday %s\n", date.Format(dateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Workday date (YYYY-MM-DD, default today)")

	return cmd
}

func newDayListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all workdays",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := app.Workdays.ListAll(context.Background())
			if err != nil {
				return err
			}

			if len(all) == 0 {
				fmt.Println("No workdays recorded.")
				return nil
			}

			headers := []string{"DATE", "SESSIONS", "TOTAL"}
			rows := make([][]string, 0, len(all))
			for _, wd := range all {
				rows = append(rows, []string{
					wd.Date().Format(dateLayout),
					formatter.SessionSummary(wd),
					formatter.WorkdayTotal(wd),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	return cmd
}
