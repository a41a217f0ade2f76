// Package tools provides tool registry and unified registration framework for MCP tools.
package tools

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Registry manages the collection of available tools.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*ServerTool
	ctx   *Context
}

// NewRegistry creates a new tool registry with the given context.
func NewRegistry(ctx *Context) *Registry {
	return &Registry{
		tools: make(map[string]*ServerTool),
		ctx:   ctx,
	}
}

// Register registers a tool with the registry.
func (r *Registry) Register(tool *ServerTool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tool == nil || tool.Tool == nil {
		return fmt.Errorf("tool definition cannot be nil")
	}

	name := tool.Tool.Name
	if name == "" {
		return fmt.Errorf("tool name cannot be empty")
	}

	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %s is already registered", name)
	}

	r.tools[name] = tool
	return nil
}

// RegisterAll registers every tool, stopping at the first failure.
func (r *Registry) RegisterAll(tools []*ServerTool) error {
	for _, tool := range tools {
		if err := r.Register(tool); err != nil {
			return err
		}
	}
	return nil
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (*ServerTool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, exists := r.tools[name]
	return tool, exists
}

// List returns all registered tool names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tools)
}

// Validate checks if all registered tools are properly configured.
func (r *Registry) Validate() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for name, tool := range r.tools {
		if tool.Tool.Name != name {
			return fmt.Errorf("tool name mismatch: registered as %s but reports name %s", name, tool.Tool.Name)
		}

		if tool.Tool.Description == "" {
			return fmt.Errorf("tool %s has empty description", name)
		}

		if tool.RegisterFunc == nil {
			return fmt.Errorf("tool %s has nil register function", name)
		}
	}

	return nil
}

// Install adds every registered tool to server, in name order.
func (r *Registry) Install(server *mcp.Server) {
	for _, name := range r.List() {
		tool, _ := r.Get(name)
		tool.RegisterFunc(server)
	}
}

// Handler is the body of a tool. It returns the value rendered as the
// tool's JSON result, or an error rendered as a failure result.
type Handler[T any] func(ctx context.Context, logger Logger, args T) (any, error)

// ToolBuilder provides a fluent interface for building tools with type safety.
type ToolBuilder[T any] struct {
	name        string
	description string
	annotations *mcp.ToolAnnotations
	handler     Handler[T]
	ctx         *Context
}

// NewToolBuilder creates a new tool builder with type-safe parameter validation.
func NewToolBuilder[T any](name, description string, ctx *Context) *ToolBuilder[T] {
	return &ToolBuilder[T]{
		name:        name,
		description: description,
		ctx:         ctx,
	}
}

// WithAnnotations sets behavioural hints advertised to clients.
func (b *ToolBuilder[T]) WithAnnotations(annotations *mcp.ToolAnnotations) *ToolBuilder[T] {
	b.annotations = annotations
	return b
}

// WithHandler sets the tool handler function.
func (b *ToolBuilder[T]) WithHandler(handler Handler[T]) *ToolBuilder[T] {
	b.handler = handler
	return b
}

// Build creates the ServerTool with all configured options.
func (b *ToolBuilder[T]) Build() *ServerTool {
	if b.handler == nil {
		panic(fmt.Sprintf("handler not set for tool %s", b.name))
	}

	tool := &mcp.Tool{
		Name:        b.name,
		Description: b.description,
		Annotations: b.annotations,
	}

	name, handler, toolCtx := b.name, b.handler, b.ctx
	typed := func(ctx context.Context, _ *mcp.CallToolRequest, args T) (*mcp.CallToolResult, any, error) {
		logger := toolCtx.Logger.WithTool(name).WithRequest(uuid.NewString())
		logger.Debug("Tool call started")

		start := time.Now()
		result, err := handler(ctx, logger, args)
		if err != nil {
			logger.Error("Tool call failed",
				slog.String("error", err.Error()),
				slog.Duration("duration", time.Since(start)),
			)
			return ErrorFromErr(err), nil, nil
		}

		logger.Info("Tool call succeeded", slog.Duration("duration", time.Since(start)))
		return JSONResponse(result), nil, nil
	}

	return &ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, typed)
		},
	}
}
