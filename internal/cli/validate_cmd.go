package cli

import (
	"fmt"

	"github.com/alexanderramin/phasewise/internal/cli/formatter"
	"github.com/alexanderramin/phasewise/internal/conflict"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	var file string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a schedule file for overlapping entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := loadScheduleFile(file)
			if err != nil {
				return err
			}

			conflicts := conflict.FindConflicts(tasks)
			out := cmd.OutOrStdout()
			if asJSON {
				if err := writeJSON(out, conflicts); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, formatter.FormatConflicts(conflicts))
			}
			if len(conflicts) > 0 {
				return fmt.Errorf("%d conflict(s) in %s", len(conflicts), file)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Schedule file (YAML or JSON)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print conflicts as JSON")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
