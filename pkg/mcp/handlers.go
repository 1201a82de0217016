package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/laufblocks/laufblocks/pkg/category"
	"github.com/laufblocks/laufblocks/pkg/registry"
	"github.com/laufblocks/laufblocks/pkg/theme"
)

// jsonResult marshals v into a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// stringArg extracts an optional string argument.
func stringArg(req mcp.CallToolRequest, key string) string {
	if v, ok := req.GetArguments()[key].(string); ok {
		return v
	}
	return ""
}

func (s *Server) handleListCategories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	counts := s.registry.CountByCategory()

	type entry struct {
		ID         category.ID `json:"id"`
		Label      string      `json:"label"`
		BlockCount int         `json:"block_count"`
	}
	cats := category.All()
	out := make([]entry, 0, len(cats))
	for _, meta := range cats {
		out = append(out, entry{ID: meta.ID, Label: meta.Label, BlockCount: counts[meta.ID]})
	}
	return jsonResult(out)
}

func (s *Server) handleListBlocks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filters := registry.Filters{
		Category: category.ID(stringArg(req, "category")),
		Tier:     registry.Tier(stringArg(req, "tier")),
		Style:    theme.Style(stringArg(req, "style")),
	}
	return jsonResult(s.registry.Filter(filters))
}

func (s *Server) handleSearchBlocks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := stringArg(req, "query")
	if query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}
	return jsonResult(s.registry.Search(query))
}

func (s *Server) handleGetBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug := stringArg(req, "slug")
	if slug == "" {
		return mcp.NewToolResultError("slug is required"), nil
	}

	block, ok := s.registry.Get(slug)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("block %q not found", slug)), nil
	}
	return jsonResult(s.loader.WithSource(block))
}

func (s *Server) handleGetBlockSource(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug := stringArg(req, "slug")
	if slug == "" {
		return mcp.NewToolResultError("slug is required"), nil
	}

	block, ok := s.registry.Get(slug)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("block %q not found", slug)), nil
	}

	style := theme.Normalize(stringArg(req, "style"))
	source, ok := s.loader.Variant(block, style)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no source on disk for block %q", slug)), nil
	}
	return mcp.NewToolResultText(source), nil
}

func (s *Server) handleGetThemes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type entry struct {
		Style       theme.Style       `json:"style"`
		Name        string            `json:"name"`
		Description string            `json:"description"`
		CSSVars     map[string]string `json:"css_vars"`
		Default     bool              `json:"default"`
	}
	styles := theme.AllStyles()
	out := make([]entry, 0, len(styles))
	for _, style := range styles {
		cfg, ok := theme.Get(style)
		if !ok {
			continue
		}
		out = append(out, entry{
			Style:       style,
			Name:        cfg.Name,
			Description: cfg.Description,
			CSSVars:     theme.StyleObject(style),
			Default:     style == theme.DefaultStyle,
		})
	}
	return jsonResult(out)
}
