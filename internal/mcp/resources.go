// ABOUTME: MCP resource implementations for lift.
// ABOUTME: Provides lift://dashboard, lift://sessions/recent, and lift://exercises resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/lift/internal/metrics"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/store"
)

const recentSessionLimit = 10

func (s *Server) registerResources() {
	// lift://dashboard - this week's workouts, volume, and top records
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lift://dashboard",
		Name:        "Training Dashboard",
		Description: "Workouts and volume over the last 7 days plus top personal records for the active profile",
		MIMEType:    "application/json",
	}, s.handleDashboardResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lift://sessions/recent",
		Name:        "Recent Sessions",
		Description: "Last 10 sessions for the active profile",
		MIMEType:    "application/json",
	}, s.handleRecentSessionsResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lift://exercises",
		Name:        "Exercise Library",
		Description: "Active exercises available for logging",
		MIMEType:    "application/json",
	}, s.handleExercisesResource)
}

// Resource handlers

func (s *Server) handleDashboardResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	var sessions []models.Session
	result := map[string]any{}
	if p, ok := s.store.ActiveProfile(); ok {
		sessions = s.store.ProfileSessions(p.ID)
		result["profile"] = p.Name
	}

	settings := s.store.Settings()
	result["units"] = settings.Units
	result["summary"] = metrics.Dashboard(sessions, settings.Formula(), s.store.Now())

	return jsonResource("lift://dashboard", result)
}

func (s *Server) handleRecentSessionsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sessions := []models.Session{}
	if p, ok := s.store.ActiveProfile(); ok {
		sessions = append(sessions, s.store.ProfileSessions(p.ID)...)
	}
	if len(sessions) > recentSessionLimit {
		sessions = sessions[:recentSessionLimit]
	}

	return jsonResource("lift://sessions/recent", map[string]any{
		"sessions": sessions,
	})
}

func (s *Server) handleExercisesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	exercises := append([]models.Exercise{}, s.store.Exercises(store.FilterActive)...)
	return jsonResource("lift://exercises", map[string]any{
		"exercises": exercises,
		"templates": models.DayTemplates,
	})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
