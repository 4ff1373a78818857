package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/phasewise/internal/cli/formatter"
	"github.com/alexanderramin/phasewise/internal/domain"
	"github.com/spf13/cobra"
)

func newResolveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <id>...",
		Short: "Remove schedule entries by id to clear conflicts",
		Long: `Remove schedule entries by id. Ids may be the full id or the
8-character prefix shown by 'phasewise schedule'.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			snap, err := app.Plans.Snapshot(ctx, app.UserID)
			if err != nil {
				return err
			}

			ids := make([]string, 0, len(args))
			for _, a := range args {
				id, err := expandID(a, snap.Schedule)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			res, err := app.Plans.Resolve(ctx, app.UserID, ids)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.StyleGreen.Render(fmt.Sprintf("✔ Removed %d entr%s", res.Removed, plural(res.Removed, "y", "ies"))))
			fmt.Fprint(out, formatter.FormatConflicts(res.Conflicts))
			return nil
		},
	}
}

// expandID resolves a unique id prefix against the schedule. Unknown ids
// pass through unchanged.
func expandID(prefix string, tasks []domain.ScheduledTask) (string, error) {
	var match string
	for _, t := range tasks {
		id := t.ID
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			if match != "" && match != id {
				return "", fmt.Errorf("id prefix %q is ambiguous", prefix)
			}
			match = id
		}
	}
	if match == "" {
		return prefix, nil
	}
	return match, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
