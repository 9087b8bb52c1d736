// Package mcp exposes the chatbot over the Model Context Protocol, so AI
// agents can chat with the engine and inspect the FAQ collection.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/apmshow/apm-chatbot/internal/engine"
	"github.com/apmshow/apm-chatbot/internal/faqstore"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server over the chatbot engine and FAQ store.
type Server struct {
	engine *engine.Engine
	store  *faqstore.Store
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(eng *engine.Engine, store *faqstore.Store) *Server {
	s := &Server{
		engine: eng,
		store:  store,
	}

	s.mcp = server.NewMCPServer(
		"apm-chatbot",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers.
func (s *Server) registerTools() {
	s.mcp.AddTool(chatTool, s.handleChat)
	s.mcp.AddTool(searchFAQTool, s.handleSearchFAQ)
	s.mcp.AddTool(listFAQTool, s.handleListFAQ)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
