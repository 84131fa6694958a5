package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtighilt/MARS/internal/application"
	"github.com/rtighilt/MARS/internal/domain"
)

type recordingDetector struct {
	got    application.DetectRequest
	report *domain.Report
	err    error
}

func (d *recordingDetector) Detect(_ context.Context, req application.DetectRequest) (*domain.Report, error) {
	d.got = req
	return d.report, d.err
}

func callTool(t *testing.T, h func(context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error), args map[string]any) (*mcplib.CallToolResult, string) {
	t.Helper()
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return res, text.Text
}

func TestHandleDetect(t *testing.T) {
	det := &recordingDetector{report: domain.BuildReport(domain.AggregateStats{NbServices: 2}, []domain.RuleResult{
		{Rule: domain.RuleNanoService},
	})}

	res, text := callTool(t, handleDetect("/proj", det), map[string]any{
		"metamodel": "out/metamodel.json",
		"only":      "nano_service, mega_service",
	})

	assert.False(t, res.IsError)
	assert.Equal(t, filepath.Join("/proj", "out/metamodel.json"), det.got.MetamodelPath)
	assert.Equal(t, "/proj", det.got.ProjectPath)
	assert.Equal(t, []string{"nano_service", "mega_service"}, det.got.Only)
	assert.Empty(t, det.got.Skip)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &out))
	assert.Contains(t, out, "rules")
	assert.Contains(t, out, "total_findings")
}

func TestHandleDetect_MissingMetamodel(t *testing.T) {
	res, _ := callTool(t, handleDetect(".", &recordingDetector{}), map[string]any{})
	assert.True(t, res.IsError)
}

func TestHandleDetect_Failure(t *testing.T) {
	det := &recordingDetector{err: errors.New("boom")}
	res, text := callTool(t, handleDetect(".", det), map[string]any{"metamodel": "/abs.json"})

	assert.True(t, res.IsError)
	assert.Contains(t, text, "boom")
	assert.Equal(t, "/abs.json", det.got.MetamodelPath)
}

func TestHandleListRules(t *testing.T) {
	_, text := callTool(t, handleListRules(), map[string]any{})
	var all []domain.RuleInfo
	require.NoError(t, json.Unmarshal([]byte(text), &all))
	assert.Len(t, all, len(domain.RuleCatalog))

	_, text = callTool(t, handleListRules(), map[string]any{"category": "coupling"})
	var coupling []domain.RuleInfo
	require.NoError(t, json.Unmarshal([]byte(text), &coupling))
	assert.Len(t, coupling, 2)

	res, _ := callTool(t, handleListRules(), map[string]any{"category": "nope"})
	assert.True(t, res.IsError)
}

func TestHandleRuleResource(t *testing.T) {
	req := mcplib.ReadResourceRequest{}
	req.Params.URI = "mars://rules/timeouts"

	contents, err := handleRuleResource(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text := contents[0].(mcplib.TextResourceContents).Text
	assert.Contains(t, text, `"id": "timeouts"`)

	req.Params.URI = "mars://rules/god_service"
	_, err = handleRuleResource(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrUnknownRule)
}

func TestHandleRulesResource(t *testing.T) {
	req := mcplib.ReadResourceRequest{}
	req.Params.URI = rulesURI

	contents, err := handleRulesResource(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, contents[0].(mcplib.TextResourceContents).Text, "circular_dependencies")
}
