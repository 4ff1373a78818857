package cli

import (
	"fmt"

	"github.com/alexanderramin/phasewise/internal/cli/formatter"
	"github.com/alexanderramin/phasewise/internal/conflict"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the stored schedule and any conflicts in it",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Plans.Snapshot(cmd.Context(), app.UserID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, snap)
			}
			day := app.Plans.CycleDay(snap, app.today())
			fmt.Fprintf(out, "%s\n\n", formatter.FormatPhaseStrip(day))
			fmt.Fprint(out, formatter.FormatSchedule(snap.Schedule))
			if len(snap.Schedule) > 0 {
				fmt.Fprint(out, formatter.FormatConflicts(conflict.FindConflicts(snap.Schedule)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the stored snapshot as JSON")
	return cmd
}
