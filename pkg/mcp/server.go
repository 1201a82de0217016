// Package mcp exposes the block catalog to AI agents over the Model
// Context Protocol. Tools are read-only views over the registry, loader,
// and theme packages; nothing here mutates state.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/laufblocks/laufblocks/pkg/loader"
	"github.com/laufblocks/laufblocks/pkg/registry"
)

const serverVersion = "0.1.0-dev"

// Server implements the MCP server for the block catalog.
type Server struct {
	mcpServer *server.MCPServer
	registry  *registry.Registry
	loader    *loader.Loader
}

// NewServer creates an MCP server over the given registry and loader.
func NewServer(reg *registry.Registry, l *loader.Loader) *Server {
	s := &Server{registry: reg, loader: l}

	s.mcpServer = server.NewMCPServer(
		"laufblocks",
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: listCategoriesTool(), Handler: s.handleListCategories},
		server.ServerTool{Tool: listBlocksTool(), Handler: s.handleListBlocks},
		server.ServerTool{Tool: searchBlocksTool(), Handler: s.handleSearchBlocks},
		server.ServerTool{Tool: getBlockTool(), Handler: s.handleGetBlock},
		server.ServerTool{Tool: getBlockSourceTool(), Handler: s.handleGetBlockSource},
		server.ServerTool{Tool: getThemesTool(), Handler: s.handleGetThemes},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
