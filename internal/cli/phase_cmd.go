package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/phasewise/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPhaseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "phase [day]",
		Short: "Show the cycle phase of a day (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var day int
			if len(args) == 1 {
				d, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("day must be a number: %q", args[0])
				}
				day = d
			} else {
				snap, err := app.Plans.Snapshot(cmd.Context(), app.UserID)
				if err != nil {
					return err
				}
				day = app.Plans.CycleDay(snap, app.today())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatPhaseCard(day))
			fmt.Fprintln(out, formatter.FormatPhaseStrip(day))
			return nil
		},
	}
}
