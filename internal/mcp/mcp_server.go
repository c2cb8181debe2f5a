// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/smellscan/smellscan/internal/contract"
)

// NewMCPServer initializes and configures the Smellscan MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, loader contract.SourceLoader) *server.MCPServer {
	s := server.NewMCPServer(
		"Smellscan Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		loader:  loader,
	}

	// --- 1. Tool: scan_project ---
	s.AddTool(mcp.NewTool("scan_project",
		mcp.WithDescription("Scan a source tree and rank files by complexity and maintainability."),
		mcp.WithString("path", mcp.Description("Path to the project root (defaults to current directory if not specified).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleScanProject)

	// --- 2. Tool: find_duplicates ---
	s.AddTool(mcp.NewTool("find_duplicates",
		mcp.WithDescription("Find duplicate blocks, near-duplicate functions and similar files in a source tree."),
		mcp.WithString("path", mcp.Description("Path to the project root.")),
		mcp.WithNumber("window", mcp.Description("Sliding window size in lines for exact block detection (minimum 2).")),
	), h.handleFindDuplicates)

	// --- 3. Tool: get_suggestions ---
	s.AddTool(mcp.NewTool("get_suggestions",
		mcp.WithDescription("Produce categorized improvement suggestions for a source tree."),
		mcp.WithString("path", mcp.Description("Path to the project root.")),
	), h.handleGetSuggestions)

	return s
}

// StartMCPServer starts the Smellscan MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, loader contract.SourceLoader) error {
	s := NewMCPServer(baseCfg, loader)
	return server.ServeStdio(s)
}
