package mcp_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/smellscan/smellscan/internal/contract"
	mcp_internal "github.com/smellscan/smellscan/internal/mcp"
	"github.com/smellscan/smellscan/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticLoader serves fixed in-memory units, so handler tests never touch disk.
type staticLoader struct {
	units []schema.SourceUnit
	err   error
}

func (l *staticLoader) Load(_ context.Context, _ *contract.Config) ([]schema.SourceUnit, []schema.Warning, error) {
	return l.units, nil, l.err
}

func baseConfig() *contract.Config {
	return &contract.Config{
		RootPath:   ".",
		Workers:    2,
		Thresholds: contract.DefaultThresholds(),
	}
}

func pyUnit(path, text string) schema.SourceUnit {
	return schema.SourceUnit{Path: path, Language: schema.PythonLang, Text: text, LineCount: 3}
}

func TestMCPServerScanProject(t *testing.T) {
	loader := &staticLoader{units: []schema.SourceUnit{
		pyUnit("app.py", "def run():\n    x = 1\n    return x\n"),
	}}
	s := mcp_internal.NewMCPServer(baseConfig(), loader)

	tool := s.GetTool("scan_project")
	require.NotNil(t, tool, "Tool scan_project should exist")

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "scan_project",
			Arguments: map[string]any{"limit": 5.0},
		},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "app.py")
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	loader := &staticLoader{units: []schema.SourceUnit{
		pyUnit("app.py", "def run():\n    x = 1\n    return x\n"),
	}}
	s := mcp_internal.NewMCPServer(baseConfig(), loader)

	ctx := context.Background()

	t.Run("find_duplicates rejects tiny window", func(t *testing.T) {
		tool := s.GetTool("find_duplicates")
		require.NotNil(t, tool, "Tool find_duplicates should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "find_duplicates",
				Arguments: map[string]any{"window": 1.0},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "window must be at least 2")
	})

	t.Run("scan_project surfaces loader failures", func(t *testing.T) {
		broken := mcp_internal.NewMCPServer(baseConfig(), &staticLoader{err: errors.New("boom")})
		tool := broken.GetTool("scan_project")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "scan_project"},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "analysis failed")
	})
}

func TestMCPServerGetSuggestions(t *testing.T) {
	// Files with no comments at all trip the documentation floor.
	loader := &staticLoader{units: []schema.SourceUnit{
		pyUnit("a.py", "def run():\n    x = 1\n    return x\n"),
	}}
	s := mcp_internal.NewMCPServer(baseConfig(), loader)

	tool := s.GetTool("get_suggestions")
	require.NotNil(t, tool)

	res, err := tool.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: "get_suggestions"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "Documentation")
}
