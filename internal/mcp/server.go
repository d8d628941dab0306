// ABOUTME: MCP server setup for the lift document store.
// ABOUTME: Wraps the MCP server around a shared store handle.
package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"

	"github.com/harperreed/lift/internal/store"
)

// Server wraps the MCP server with store access.
type Server struct {
	mcpServer *mcp.Server
	store     *store.Store
}

// NewServer creates a new MCP server backed by st.
func NewServer(st *store.Store, version string) (*Server, error) {
	if st == nil {
		return nil, errors.New("mcp: nil store")
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "lift",
			Version: version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     st,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	log.Info("mcp server listening on stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// profileID resolves ref to a profile id, defaulting to the active profile.
func (s *Server) profileID(ref string) (string, error) {
	if ref == "" {
		p, ok := s.store.ActiveProfile()
		if !ok {
			return "", errors.New("no active profile; create one with list_profiles/set_active_profile")
		}
		return p.ID, nil
	}
	p, err := s.store.Profile(ref)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

// persistWarning turns a persistence failure into a warning string so the
// caller still sees the applied change. Other errors pass through.
func persistWarning(err error) (string, error) {
	if err == nil {
		return "", nil
	}
	if store.IsPersistence(err) {
		log.WithError(err).Warn("mcp change applied in memory only")
		return "change applied but not saved: " + err.Error(), nil
	}
	return "", err
}
