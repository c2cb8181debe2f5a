package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/smellscan/smellscan/core"
	"github.com/smellscan/smellscan/internal/contract"
	"github.com/smellscan/smellscan/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	loader  contract.SourceLoader
}

// runAnalysis loads sources and runs the pipeline with the given config.
func (h *toolHandler) runAnalysis(ctx context.Context, cfg *contract.Config) (*schema.ProjectReport, error) {
	units, warnings, err := h.loader.Load(ctx, cfg)
	if err != nil {
		return nil, err
	}
	report, err := core.AnalyzeProject(ctx, cfg, units)
	if err != nil {
		return nil, err
	}
	report.Warnings = append(warnings, report.Warnings...)
	return report, nil
}

func (h *toolHandler) handleScanProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("path", ""); p != "" {
		cfg.RootPath = p
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	report, err := h.runAnalysis(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	report.Files = core.RankFiles(report.Files, cfg.ResultLimit)

	jsonData, _ := json.MarshalIndent(report.Files, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleFindDuplicates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("path", ""); p != "" {
		cfg.RootPath = p
	}
	if win := request.GetInt("window", 0); win > 0 {
		if win < 2 {
			return mcp.NewToolResultError("window must be at least 2 lines"), nil
		}
		cfg.Thresholds.WindowSize = win
	}

	report, err := h.runAnalysis(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	type fileBlocks struct {
		Path   string                         `json:"path"`
		Blocks []schema.DuplicateBlockFinding `json:"blocks"`
	}
	var blocks []fileBlocks
	for _, f := range report.Files {
		if len(f.DuplicateBlocks) > 0 {
			blocks = append(blocks, fileBlocks{Path: f.Path, Blocks: f.DuplicateBlocks})
		}
	}

	result := map[string]any{
		"duplicate_blocks":    blocks,
		"duplicate_functions": report.FunctionDups,
		"similar_files":       report.FileSims,
	}
	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSuggestions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("path", ""); p != "" {
		cfg.RootPath = p
	}

	report, err := h.runAnalysis(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report.Suggestions, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
