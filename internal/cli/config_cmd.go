package cli

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/alexanderramin/phasewise/internal/cli/formatter"
	"github.com/alexanderramin/phasewise/internal/config"
	"github.com/alexanderramin/phasewise/internal/logger"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change where phasewise stores data",
	}
	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigSetDSNCmd(app),
		newConfigDeleteDSNCmd(),
	)
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the active configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config
			rows := [][]string{
				{"database", redactDSN(cfg.DB)},
				{"user", app.UserID},
				{"data dir", cfg.DataDir},
				{"log file", logger.LogFile(cfg.DataDir)},
				{"debug", fmt.Sprint(cfg.Debug)},
			}
			if _, err := config.StoredDSN(); err == nil {
				rows = append(rows, []string{"keyring dsn", "stored"})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"SETTING", "VALUE"}, rows))
			return nil
		},
	}
}

func newConfigSetDSNCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-dsn [postgres-dsn]",
		Short: "Store a PostgreSQL connection string in the OS keyring",
		Long: `Store a PostgreSQL connection string in the OS keyring. Passwords belong
here rather than in PHASEWISE_DB. Without an argument the DSN is read from a
hidden prompt.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dsn string
			if len(args) == 1 {
				dsn = args[0]
			} else {
				if !app.interactive() {
					return errors.New("pass the DSN as an argument or run in a terminal")
				}
				if err := secretForm("PostgreSQL connection string", &dsn).Run(); err != nil {
					return err
				}
			}

			if err := config.SetStoredDSN(strings.TrimSpace(dsn)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔ Connection string stored in keyring"))
			return nil
		},
	}
}

func newConfigDeleteDSNCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-dsn",
		Short: "Remove the stored connection string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.DeleteStoredDSN(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔ Connection string removed"))
			return nil
		},
	}
}

// redactDSN hides the password of a postgres URL.
func redactDSN(dsn string) string {
	if !config.IsPostgresDSN(dsn) {
		return dsn
	}
	u, err := url.Parse(dsn)
	if err != nil {
		return "postgres://…"
	}
	return u.Redacted()
}
