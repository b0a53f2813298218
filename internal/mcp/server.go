// Package mcp exposes the projection engine as MCP tools over stdio.
package mcp

import (
	"context"
	"time"

	"scm-mcp/internal/contract"

	"github.com/google/uuid"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

const serverName = "scm-mcp"

// Server holds the engine service and the MCP server bound to it.
type Server struct {
	svc    *contract.Service
	server *sdk.Server
}

// NewServer creates a new MCP server with every tool registered.
func NewServer(svc *contract.Service, version string) *Server {
	s := &Server{
		svc:    svc,
		server: sdk.NewServer(&sdk.Implementation{Name: serverName, Version: version}, nil),
	}
	s.registerTools()
	return s
}

// Serve runs the MCP session over stdin/stdout until the client disconnects
// or ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	log.Info().Str("server", serverName).Msg("Serving MCP over stdio")
	return s.serveWithTransport(ctx, &sdk.StdioTransport{})
}

func (s *Server) serveWithTransport(ctx context.Context, transport sdk.Transport) error {
	return s.server.Run(ctx, transport)
}

// handle wraps a service call with request-scoped logging. Errors are
// returned to the client as tool errors.
func handle[In, Out any](tool string, fn func(context.Context, In) (Out, error)) sdk.ToolHandlerFor[In, Out] {
	return func(ctx context.Context, _ *sdk.CallToolRequest, in In) (*sdk.CallToolResult, Out, error) {
		logger := log.With().Str("tool", tool).Str("request_id", uuid.NewString()).Logger()
		start := time.Now()
		logger.Debug().Msg("Tool call received")

		out, err := fn(ctx, in)
		if err != nil {
			logger.Warn().Err(err).Dur("elapsed", time.Since(start)).Msg("Tool call failed")
			var zero Out
			return nil, zero, err
		}

		logger.Info().Dur("elapsed", time.Since(start)).Msg("Tool call completed")
		return nil, out, nil
	}
}
