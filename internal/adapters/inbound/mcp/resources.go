package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rtighilt/MARS/internal/domain"
)

const (
	rulesURI       = "mars://rules"
	rulePrefix     = rulesURI + "/"
	ruleTemplateID = rulePrefix + "{id}"
)

// registerResources registers all MARS MCP resources on the given server.
func registerResources(s *server.MCPServer) {
	// 1. mars://rules - the full rule catalog
	s.AddResource(
		mcplib.NewResource(
			rulesURI,
			"Rule Catalog",
			mcplib.WithResourceDescription("Every antipattern rule MARS evaluates"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource,
	)

	// 2. mars://rules/{id} - one rule
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			ruleTemplateID,
			"Rule",
			mcplib.WithTemplateDescription("Description of a single antipattern rule"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleRuleResource,
	)
}

func handleRulesResource(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	return jsonContents(request.Params.URI, domain.RuleCatalog)
}

func handleRuleResource(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	id := strings.TrimPrefix(request.Params.URI, rulePrefix)
	info, ok := domain.LookupRule(domain.RuleID(id))
	if !ok {
		return nil, fmt.Errorf("%w %q", domain.ErrUnknownRule, id)
	}
	return jsonContents(request.Params.URI, info)
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
