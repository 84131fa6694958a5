package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rtighilt/MARS/internal/application"
	"github.com/rtighilt/MARS/internal/domain"
)

// registerTools registers all MARS MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string, detector Detector) {
	// 1. mars_detect
	s.AddTool(
		mcplib.NewTool("mars_detect",
			mcplib.WithDescription("Run antipattern detection on a metamodel document and return the report as JSON"),
			mcplib.WithString("metamodel",
				mcplib.Required(),
				mcplib.Description("Path to the metamodel JSON document, relative to the project path"),
			),
			mcplib.WithString("only", mcplib.Description("Comma-separated rule ids to run (default: all)")),
			mcplib.WithString("skip", mcplib.Description("Comma-separated rule ids to skip")),
		),
		handleDetect(projectPath, detector),
	)

	// 2. mars_list_rules
	s.AddTool(
		mcplib.NewTool("mars_list_rules",
			mcplib.WithDescription("List every antipattern rule with its id, title, category and description"),
			mcplib.WithString("category", mcplib.Description("Only list rules of this category")),
		),
		handleListRules(),
	)
}

func handleDetect(projectPath string, detector Detector) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("metamodel")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(projectPath, path)
		}

		args := request.GetArguments()
		only, _ := args["only"].(string)
		skip, _ := args["skip"].(string)

		report, err := detector.Detect(ctx, application.DetectRequest{
			MetamodelPath: path,
			ProjectPath:   projectPath,
			Only:          splitList(only),
			Skip:          splitList(skip),
		})
		if err != nil {
			return errorResult(fmt.Sprintf("detection failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleListRules() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		category, _ := request.GetArguments()["category"].(string)
		if category == "" {
			return jsonResult(domain.RuleCatalog)
		}

		var out []domain.RuleInfo
		for _, r := range domain.RuleCatalog {
			if string(r.Category) == category {
				out = append(out, r)
			}
		}
		if len(out) == 0 {
			return errorResult(fmt.Sprintf("unknown category %q", category)), nil
		}
		return jsonResult(out)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
