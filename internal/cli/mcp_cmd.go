package cli

import (
	"github.com/alexanderramin/phasewise/internal/logger"
	"github.com/alexanderramin/phasewise/internal/mcpserver"
	"github.com/spf13/cobra"
)

func newMCPCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve phasewise tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tools := &mcpserver.Tools{Plans: app.Plans, UserID: app.UserID, Now: app.Now}
			logger.Info("mcp server starting", "user", app.UserID)
			return mcpserver.Serve(cmd.Context(), mcpserver.New(tools, app.Version), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
