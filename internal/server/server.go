// Package server implements the MCP server for the Tana Input API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/d-kuro/tana-mcp/internal/config"
	"github.com/d-kuro/tana-mcp/internal/errors"
	"github.com/d-kuro/tana-mcp/internal/logging"
	"github.com/d-kuro/tana-mcp/internal/prompts"
	"github.com/d-kuro/tana-mcp/internal/resources"
	"github.com/d-kuro/tana-mcp/internal/tana"
	"github.com/d-kuro/tana-mcp/internal/tools"
	"github.com/d-kuro/tana-mcp/internal/tools/edit"
	"github.com/d-kuro/tana-mcp/internal/tools/node"
	"github.com/d-kuro/tana-mcp/internal/tools/schema"
	"github.com/d-kuro/tana-mcp/internal/validation"
	"github.com/d-kuro/tana-mcp/pkg/version"
)

// Name is the implementation name reported to clients.
const Name = "tana-mcp"

const shutdownTimeout = 5 * time.Second

// loggerAdapter wraps logging.Logger to implement tools.Logger interface.
// This avoids circular dependency between logging and tools packages.
type loggerAdapter struct {
	*logging.Logger
}

// WithTool implements tools.Logger interface.
func (a *loggerAdapter) WithTool(toolName string) tools.Logger {
	return &loggerAdapter{Logger: a.Logger.WithTool(toolName)}
}

// WithRequest implements tools.Logger interface.
func (a *loggerAdapter) WithRequest(requestID string) tools.Logger {
	return &loggerAdapter{Logger: a.Logger.WithRequest(requestID)}
}

// Server represents the Tana MCP server.
type Server struct {
	mcpServer *mcp.Server
	registry  *tools.Registry
	client    *tana.Client
	logger    *logging.Logger
	prompts   []string
	resources []string

	mu         sync.RWMutex
	transport  string
	session    *mcp.ServerSession
	httpServer *http.Server
}

// Options configures the server instance.
type Options struct {
	// Config is required and must pass Validate.
	Config *config.Config
	Logger *logging.Logger
	// Validator defaults to validation.NewDefaultValidator.
	Validator tools.Validator
	// HTTPClient is the base client for Tana API calls. The bearer token is
	// layered on top of its transport.
	HTTPClient *http.Client
}

// New creates a new Tana MCP server with the given options.
func New(opts *Options) (*Server, error) {
	if opts == nil || opts.Config == nil {
		return nil, errors.Configuration("server configuration is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	if opts.Logger == nil {
		opts.Logger = logging.NewLogger(opts.Config.LogLevel)
	}
	if opts.Validator == nil {
		opts.Validator = validation.NewDefaultValidator()
	}

	clientOpts := []tana.Option{
		tana.WithEndpoint(opts.Config.Endpoint),
		tana.WithLogger(opts.Logger),
	}
	if opts.HTTPClient != nil {
		clientOpts = append(clientOpts, tana.WithHTTPClient(opts.HTTPClient))
	}
	client, err := tana.NewClient(opts.Config.APIToken, clientOpts...)
	if err != nil {
		return nil, err
	}

	toolCtx := &tools.Context{
		Logger:    &loggerAdapter{Logger: opts.Logger},
		Validator: opts.Validator,
		Client:    client,
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    Name,
		Version: version.GetVersion().Version,
	}, &mcp.ServerOptions{
		Instructions: prompts.ServerInstructions,
		Logger:       opts.Logger.Logger,
	})

	server := &Server{
		mcpServer: mcpServer,
		registry:  tools.NewRegistry(toolCtx),
		client:    client,
		logger:    opts.Logger,
		transport: "stdio",
	}

	if err := server.registerTools(toolCtx); err != nil {
		return nil, errors.Wrap(err, "failed to register tools")
	}
	server.prompts = prompts.Register(mcpServer)
	server.resources = resources.Register(mcpServer, server.Info)

	return server, nil
}

// Start validates the server before it begins serving.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("Starting Tana MCP server",
		slog.String("version", version.GetVersion().Version),
		slog.String("endpoint", s.client.Endpoint()),
		slog.Int("tools", s.registry.Count()),
		slog.Int("prompts", len(s.prompts)),
		slog.Int("resources", len(s.resources)),
	)

	if err := s.registry.Validate(); err != nil {
		return errors.Wrap(err, "tool registry validation failed")
	}

	return nil
}

// Stop closes the active stdio session and shuts down the HTTP transport,
// waiting for in-flight HTTP requests until ctx is done. It is a no-op when
// nothing is being served.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping Tana MCP server")

	s.mu.Lock()
	session, httpServer := s.session, s.httpServer
	s.session, s.httpServer = nil, nil
	s.mu.Unlock()

	var errs []error
	if httpServer != nil {
		if err := httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, errors.Wrap(err, "http server shutdown failed"))
		}
	}
	if session != nil {
		if err := session.Close(); err != nil {
			errs = append(errs, errors.Wrap(err, "failed to close MCP session"))
		}
	}

	if err := errors.Join(errs...); err != nil {
		s.logger.Warn("Server stop incomplete", slog.String("error", err.Error()))
		return err
	}

	s.logger.Info("Server stopped successfully")
	return nil
}

// GetRegistry returns the tool registry.
func (s *Server) GetRegistry() *tools.Registry {
	return s.registry
}

// Prompts returns the names of the registered prompts.
func (s *Server) Prompts() []string {
	return s.prompts
}

// Resources returns the URIs of the registered resources.
func (s *Server) Resources() []string {
	return s.resources
}

// Info reports the live server state for the server info resource.
func (s *Server) Info() resources.ServerInfo {
	s.mu.RLock()
	transport := s.transport
	s.mu.RUnlock()

	return resources.ServerInfo{
		Name:      Name,
		Version:   version.GetVersion().Version,
		Endpoint:  s.client.Endpoint(),
		Transport: transport,
		Tools:     s.registry.List(),
		Prompts:   s.prompts,
		Resources: len(s.resources),
	}
}

func (s *Server) setTransport(name string) {
	s.mu.Lock()
	s.transport = name
	s.mu.Unlock()
}

// releaseSession stops tracking session and reports whether the caller now
// owns closing it.
func (s *Server) releaseSession(session *mcp.ServerSession) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != session {
		return false
	}
	s.session = nil
	return true
}

// releaseHTTP is releaseSession for the HTTP server.
func (s *Server) releaseHTTP(httpServer *http.Server) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.httpServer != httpServer {
		return false
	}
	s.httpServer = nil
	return true
}

// registerTools registers all Tana tools with the server.
func (s *Server) registerTools(toolCtx *tools.Context) error {
	s.logger.Debug("Registering tools with MCP server")

	allTools := slices.Concat(
		node.CreateNodeTools(toolCtx),
		edit.CreateEditTools(toolCtx),
		schema.CreateSchemaTools(toolCtx),
	)

	if err := s.registry.RegisterAll(allTools); err != nil {
		return err
	}
	s.registry.Install(s.mcpServer)

	s.logger.Info("Successfully registered tools",
		slog.Int("count", s.registry.Count()),
		slog.Any("tools", s.registry.List()),
	)

	return nil
}

// Serve runs the MCP server with the specified transport.
// It connects the MCP server to the transport and waits for either
// the session to complete or the context to be cancelled.
func (s *Server) Serve(ctx context.Context, transport mcp.Transport) error {
	s.logger.Info("Starting MCP server transport",
		slog.String("transport", fmt.Sprintf("%T", transport)),
	)

	session, err := s.mcpServer.Connect(ctx, transport, nil)
	if err != nil {
		return errors.Wrap(err, "failed to connect MCP server")
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	defer s.releaseSession(session)

	sessionDone := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("MCP session goroutine panicked",
					slog.Any("panic", r))
				sessionDone <- fmt.Errorf("session panicked: %v", r)
			}
		}()
		sessionDone <- session.Wait()
	}()

	select {
	case err := <-sessionDone:
		s.logger.Info("MCP session finished")
		return err
	case <-ctx.Done():
		s.logger.Info("MCP server shutting down due to context cancellation")
		if s.releaseSession(session) {
			_ = session.Close()
		}
		return ctx.Err()
	}
}

// Handler returns an http.Handler serving the streamable HTTP transport.
func (s *Server) Handler() http.Handler {
	s.setTransport("http")
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, &mcp.StreamableHTTPOptions{Logger: s.logger.Logger})
}

// ServeHTTP serves the streamable HTTP transport on addr until ctx is cancelled.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.mu.Lock()
	s.httpServer = httpServer
	s.mu.Unlock()
	defer s.releaseHTTP(httpServer)

	s.logger.Info("Starting MCP HTTP transport", slog.String("addr", addr))

	serveDone := make(chan error, 1)
	go func() {
		serveDone <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveDone:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "http server failed")
	case <-ctx.Done():
		s.logger.Info("MCP HTTP transport shutting down due to context cancellation")
		if s.releaseHTTP(httpServer) {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return errors.Wrap(err, "http server shutdown failed")
			}
		}
		return ctx.Err()
	}
}
