// Package mcpserver exposes plan generation, conflict checking and phase
// lookup as MCP tools over stdio.
package mcpserver

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/phasewise/internal/service"
	"github.com/mark3labs/mcp-go/server"
)

const serverName = "phasewise"

// Tools holds what the tool handlers need.
type Tools struct {
	Plans  service.PlanService
	UserID string
	Now    func() time.Time
}

func (t *Tools) today() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// New builds an MCP server with every phasewise tool registered.
func New(tools *Tools, version string) *server.MCPServer {
	s := server.NewMCPServer(serverName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	RegisterTools(s, tools)
	return s
}

// Serve runs s over the given streams until ctx is cancelled or in closes.
func Serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s).Listen(ctx, in, out)
}
