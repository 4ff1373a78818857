package cli

import (
	"time"

	"github.com/alexanderramin/phasewise/internal/config"
	"github.com/alexanderramin/phasewise/internal/service"
	"github.com/spf13/cobra"
)

// App holds what CLI commands need: the plan service and the process
// configuration.
type App struct {
	Plans   service.PlanService
	Config  config.Config
	UserID  string
	Version string

	// Now defaults to time.Now. Tests pin it.
	Now func() time.Time
	// IsInteractive reports whether stdin and stdout are a terminal.
	IsInteractive func() bool
}

func (a *App) today() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "phasewise" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "phasewise",
		Short:         "Cycle-aware weekly activity planner",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&app.UserID, "user", app.UserID, "Owner of the stored schedule")

	root.AddCommand(
		newPlanCmd(app),
		newValidateCmd(app),
		newPhaseCmd(app),
		newScheduleCmd(app),
		newResolveCmd(app),
		newWeekCmd(app),
		newMCPCmd(app),
		newConfigCmd(app),
	)

	return root
}
