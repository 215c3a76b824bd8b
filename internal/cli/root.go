package cli

import (
	"github.com/alexanderramin/workclock/internal/service"
	"github.com/spf13/cobra"
)

// App holds the service interfaces used by CLI commands.
type App struct {
	Workdays service.WorkdayService
}

// NewRootCmd creates the top-level "workclock" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "workclock",
		Short:         "Track workdays as clock-in/clock-out sessions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newDayCmd(app),
		newClockInCmd(app),
		newClockOutCmd(app),
		newSessionsCmd(app),
	)

	return root
}
