// Package mcp exposes a calculator backend as MCP tools so it can be driven
// without a display.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/gridcalc/internal/calc"
)

const (
	ServerName    = "gridcalc"
	ServerVersion = "0.1.0"
)

// Server is the MCP server wrapping a single calculator.
type Server struct {
	mcpServer *mcpsdk.Server
	logger    *slog.Logger

	mu      sync.Mutex
	backend *calc.Backend
}

// NewServer creates a server with a cleared calculator.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		logger:  logger,
		backend: calc.NewBackend(),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "press",
		Description: "Press calculator keys in order and return the resulting display. All keys are validated before any is applied. Arithmetic errors (division by zero, 128-bit overflow) are reported in errors and shown on the display; the next key clears them.",
	}, s.handlePress)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "display",
		Description: "Return the current calculator display and internal state without pressing anything.",
	}, s.handleDisplay)
}

func (s *Server) handlePress(_ context.Context, _ *mcpsdk.CallToolRequest, args PressInput) (*mcpsdk.CallToolResult, PressOutput, error) {
	if len(args.Keys) == 0 {
		return nil, PressOutput{}, fmt.Errorf("keys must not be empty")
	}

	tags := make([]calc.Tag, 0, len(args.Keys))
	for i, key := range args.Keys {
		tag, err := calc.ParseTag(key)
		if err != nil {
			return nil, PressOutput{}, fmt.Errorf("keys[%d]: %w", i, err)
		}
		tags = append(tags, tag)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := PressOutput{Applied: make([]string, 0, len(tags))}
	for _, tag := range tags {
		if err := s.backend.Apply(tag); err != nil {
			s.logger.Warn("arithmetic error", "tag", tag.String(), "error", err)
			out.Errors = append(out.Errors, err.Error())
		}
		out.Applied = append(out.Applied, tag.String())
	}
	out.State = s.backend.Snapshot()

	s.logger.Debug("press", "keys", len(tags), "display", out.State.Display)
	return nil, out, nil
}

func (s *Server) handleDisplay(_ context.Context, _ *mcpsdk.CallToolRequest, _ DisplayInput) (*mcpsdk.CallToolResult, DisplayOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nil, DisplayOutput{State: s.backend.Snapshot()}, nil
}
