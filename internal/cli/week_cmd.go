package cli

import (
	"fmt"

	"github.com/alexanderramin/phasewise/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	var start dateValue

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Browse the stored schedule one week at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Plans.Snapshot(cmd.Context(), app.UserID)
			if err != nil {
				return err
			}

			from := start.orToday(app.today())
			day := app.Plans.CycleDay(snap, from)

			if !app.interactive() {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(snap.Schedule))
				return nil
			}

			p := tea.NewProgram(newWeekModel(snap.Schedule, from, day),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().Var(&start, "date", "First day shown, YYYY-MM-DD (default: today)")
	return cmd
}
