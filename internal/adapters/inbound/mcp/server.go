package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/rtighilt/MARS/internal/application"
	"github.com/rtighilt/MARS/internal/domain"
)

const serverVersion = "0.1.0"

// Detector runs one detection pass. *application.DetectService satisfies it.
type Detector interface {
	Detect(ctx context.Context, req application.DetectRequest) (*domain.Report, error)
}

// NewMARSMCPServer creates a new MCP server with all MARS tools and
// resources registered. projectPath is the directory holding .mars.yaml;
// relative metamodel paths resolve against it.
func NewMARSMCPServer(projectPath string, detector Detector) *server.MCPServer {
	s := server.NewMCPServer(
		"mars",
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, detector)
	registerResources(s)

	return s
}
