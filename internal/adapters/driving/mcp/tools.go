package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the text to search for"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 20)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`

	// IndexError reports an index-branch failure. The results of the
	// remaining sources are still present.
	IndexError string `json:"index_error,omitempty"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Path   string `json:"path,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search installed applications, recent files, folders, notes, and the file index",
	}, s.handleSearch)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	// An index-branch failure still returns every other source's
	// results; report the failure in-band instead of dropping them.
	set, err := s.ports.Launcher.Search(ctx, input.Query)
	indexError := ""
	if err != nil {
		indexError = domain.ClassifyError(err).Description()
	}

	// Quick-launch entries lead, then the list, both in lane order.
	items := make([]domain.ResultItem, 0, set.Len())
	items = append(items, set.Horizontal...)
	items = append(items, set.Vertical...)
	if len(items) > limit {
		items = items[:limit]
	}

	output := SearchOutput{
		Results:    make([]SearchResultOutput, len(items)),
		Count:      len(items),
		IndexError: indexError,
	}
	for i := range items {
		output.Results[i] = SearchResultOutput{
			Kind:   items[i].Kind.String(),
			Name:   items[i].DisplayName,
			Path:   items[i].Path,
			Detail: items[i].Detail,
		}
	}

	return nil, output, nil
}
