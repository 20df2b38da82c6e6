package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for lightbar resources.
	uriScheme = "lightbar://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for recently opened files.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Files recently opened through the launcher, most recent first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	// Static resource for saved notes.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "notes",
		Name:        "notes",
		Description: "Saved notes, most recently updated first",
		MIMEType:    "application/json",
	}, s.handleNotesResource)
}

// emptyListResult is the response for resources with no backing store.
func emptyListResult(uri string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     "[]",
		}},
	}
}

// handleHistoryResource returns the recent-file list.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return emptyListResult(req.Params.URI), nil
	}

	entries, err := s.ports.History.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	type historyInfo struct {
		Path     string    `json:"path"`
		Name     string    `json:"name"`
		LastUsed time.Time `json:"last_used"`
		UseCount int       `json:"use_count"`
	}

	infos := make([]historyInfo, len(entries))
	for i, e := range entries {
		infos[i] = historyInfo{
			Path:     e.Path,
			Name:     e.Name,
			LastUsed: e.LastUsed,
			UseCount: e.UseCount,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleNotesResource returns the saved notes.
func (s *Server) handleNotesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Notes == nil {
		return emptyListResult(req.Params.URI), nil
	}

	notes, err := s.ports.Notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	type noteInfo struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Body      string    `json:"body,omitempty"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	infos := make([]noteInfo, len(notes))
	for i, n := range notes {
		infos[i] = noteInfo{
			ID:        n.ID,
			Title:     n.Title,
			Body:      n.Body,
			UpdatedAt: n.UpdatedAt,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling notes: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
