package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laufblocks/laufblocks/pkg/loader"
	"github.com/laufblocks/laufblocks/pkg/registry"
	"github.com/laufblocks/laufblocks/pkg/util"
)

// --- helpers ---

func testMCPServer(t *testing.T) (*Server, *loader.Loader) {
	t.Helper()
	reg := registry.New(registry.Seed()...)
	l := loader.New(t.TempDir(), loader.WithLogger(util.NewNopLogger()))
	return NewServer(reg, l), l
}

func callTool(t *testing.T, s *Server, req mcp.CallToolRequest) *mcp.CallToolResult {
	t.Helper()
	var handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

	switch req.Params.Name {
	case "list_categories":
		handler = s.handleListCategories
	case "list_blocks":
		handler = s.handleListBlocks
	case "search_blocks":
		handler = s.handleSearchBlocks
	case "get_block":
		handler = s.handleGetBlock
	case "get_block_source":
		handler = s.handleGetBlockSource
	case "get_themes":
		handler = s.handleGetThemes
	default:
		t.Fatalf("unknown tool: %s", req.Params.Name)
	}

	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func makeRequest(toolName string, args map[string]any) mcp.CallToolRequest {
	var arguments any
	if args != nil {
		arguments = args
	}
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      toolName,
			Arguments: arguments,
		},
	}
}

func resultJSON(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return textContent.Text
}

// --- list_categories ---

func TestHandleListCategories(t *testing.T) {
	s, _ := testMCPServer(t)
	result := callTool(t, s, makeRequest("list_categories", nil))
	assert.False(t, result.IsError)

	var cats []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &cats))
	assert.Len(t, cats, 15)
	assert.Equal(t, "hero", cats[0]["id"])
	assert.Equal(t, float64(5), cats[0]["block_count"])
}

// --- list_blocks ---

func TestHandleListBlocks_NoFilter(t *testing.T) {
	s, _ := testMCPServer(t)
	result := callTool(t, s, makeRequest("list_blocks", nil))
	assert.False(t, result.IsError)

	var blocks []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &blocks))
	assert.Len(t, blocks, 25)
}

func TestHandleListBlocks_Filtered(t *testing.T) {
	s, _ := testMCPServer(t)
	result := callTool(t, s, makeRequest("list_blocks", map[string]any{
		"category": "hero",
		"tier":     "pro",
	}))

	var blocks []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &blocks))
	require.NotEmpty(t, blocks)
	for _, b := range blocks {
		assert.Equal(t, "hero", b["category"])
		assert.Equal(t, "pro", b["tier"])
	}
}

// --- search_blocks ---

func TestHandleSearchBlocks(t *testing.T) {
	s, _ := testMCPServer(t)
	result := callTool(t, s, makeRequest("search_blocks", map[string]any{"query": "gradient"}))
	assert.False(t, result.IsError)

	var blocks []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &blocks))
	assert.NotEmpty(t, blocks)
}

func TestHandleSearchBlocks_MissingQuery(t *testing.T) {
	s, _ := testMCPServer(t)
	result := callTool(t, s, makeRequest("search_blocks", nil))
	assert.True(t, result.IsError)
}

// --- get_block ---

func TestHandleGetBlock(t *testing.T) {
	s, l := testMCPServer(t)

	path := l.BlockPath("hero", "hero-gradient")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("export function HeroGradient() {}"), 0o644))

	result := callTool(t, s, makeRequest("get_block", map[string]any{"slug": "hero-gradient"}))
	assert.False(t, result.IsError)

	var detail map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &detail))
	assert.Equal(t, "hero-gradient", detail["slug"])
	assert.Equal(t, "npx laufblocks add hero-gradient", detail["cli_command"])
	assert.Contains(t, detail["source"], "HeroGradient")
}

func TestHandleGetBlock_NotFound(t *testing.T) {
	s, _ := testMCPServer(t)
	result := callTool(t, s, makeRequest("get_block", map[string]any{"slug": "nope"}))
	assert.True(t, result.IsError)
}

func TestHandleGetBlock_MissingSlug(t *testing.T) {
	s, _ := testMCPServer(t)
	result := callTool(t, s, makeRequest("get_block", nil))
	assert.True(t, result.IsError)
}

// --- get_block_source ---

func TestHandleGetBlockSource_VariantFallback(t *testing.T) {
	s, l := testMCPServer(t)

	path := l.BlockPath("hero", "hero-gradient")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("base source"), 0o644))

	// Requested variant does not exist on disk, base is served.
	result := callTool(t, s, makeRequest("get_block_source", map[string]any{
		"slug":  "hero-gradient",
		"style": "high_brand",
	}))
	assert.False(t, result.IsError)
	assert.Equal(t, "base source", resultJSON(t, result))
}

func TestHandleGetBlockSource_NoFile(t *testing.T) {
	s, _ := testMCPServer(t)
	result := callTool(t, s, makeRequest("get_block_source", map[string]any{"slug": "hero-gradient"}))
	assert.True(t, result.IsError)
}

// --- get_themes ---

func TestHandleGetThemes(t *testing.T) {
	s, _ := testMCPServer(t)
	result := callTool(t, s, makeRequest("get_themes", nil))
	assert.False(t, result.IsError)

	var themes []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &themes))
	require.Len(t, themes, 3)
	assert.Equal(t, "minimalist", themes[0]["style"])
	assert.Equal(t, true, themes[0]["default"])
}
