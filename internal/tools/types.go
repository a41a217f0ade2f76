// Package tools provides tool registry and common types for MCP tools.
package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/d-kuro/tana-mcp/internal/tana"
)

// ServerTool pairs a tool definition with the function that registers its
// typed handler on a server.
type ServerTool struct {
	Tool         *mcp.Tool
	RegisterFunc func(*mcp.Server)
}

// Context contains common dependencies needed by tools.
type Context struct {
	Logger    Logger
	Validator Validator
	Client    NodeClient
}

// Logger defines the logging interface for tools.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithTool(toolName string) Logger
	WithRequest(requestID string) Logger
}

// Validator defines the argument validation interface.
type Validator interface {
	ValidateURL(url string) error
	ValidateDate(date string) error
	ValidateBase64(data string) error
	ValidateContentType(contentType string) error
}

// NodeClient is the subset of the Tana API client used by tools.
type NodeClient interface {
	CreateNodes(ctx context.Context, targetNodeID string, nodes []tana.Node) ([]tana.NodeResponse, error)
	CreateNode(ctx context.Context, targetNodeID string, node tana.Node) (tana.NodeResponse, error)
	SetNodeName(ctx context.Context, nodeID, newName string) (tana.NodeResponse, error)
	Endpoint() string
}

// TargetArgs is embedded by tools that insert nodes below an existing node.
type TargetArgs struct {
	TargetNodeID string `json:"targetNodeId,omitempty" jsonschema:"ID of the node to insert under. Omit to use the workspace root (Library)"`
}

// ContentArgs holds the optional fields shared by most node-creating tools.
type ContentArgs struct {
	Description string          `json:"description,omitempty" jsonschema:"Node description"`
	Supertags   []tana.Supertag `json:"supertags,omitempty" jsonschema:"Supertags to apply to the node"`
}

// AdditiveAnnotations describes tools that only add new nodes to the workspace.
func AdditiveAnnotations(title string) *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		Title:           title,
		DestructiveHint: ptr(false),
		OpenWorldHint:   ptr(true),
	}
}

// UpdateAnnotations describes tools that modify existing nodes.
func UpdateAnnotations(title string) *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		Title:           title,
		DestructiveHint: ptr(true),
		IdempotentHint:  true,
		OpenWorldHint:   ptr(true),
	}
}

func ptr[T any](v T) *T { return &v }
