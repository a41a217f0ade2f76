// Package main implements the Tana MCP server executable.
// It provides a Model Context Protocol server that lets MCP clients create
// and rename nodes in a Tana workspace through the Tana Input API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/d-kuro/tana-mcp/internal/cmd"
	"github.com/d-kuro/tana-mcp/internal/config"
	"github.com/d-kuro/tana-mcp/internal/logging"
	"github.com/d-kuro/tana-mcp/internal/server"
	"github.com/d-kuro/tana-mcp/pkg/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tana-mcp",
	Short: "Tana MCP server",
	Long: `Tana MCP server provides a Model Context Protocol server that creates
and renames nodes in a Tana workspace through the Tana Input API.

The API token is read from TANA_API_TOKEN or the api_token key of the
config file.`,
	SilenceUsage: true,
	RunE:         runServer,
}

// serverFlags holds the flags for the server command
type serverFlags struct {
	httpAddr   string
	configPath string
}

var serverOpts = &serverFlags{}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information and exit")
	rootCmd.Flags().StringVar(&serverOpts.httpAddr, "http", "", "Serve the streamable HTTP transport on this address (e.g., :8080) instead of stdio")
	rootCmd.PersistentFlags().StringVar(&serverOpts.configPath, "config", "", "Path to a YAML config file (default $"+config.EnvConfigPath+")")

	rootCmd.AddCommand(cmd.NewVersionCmd())
	rootCmd.AddCommand(statusCmd)
}

// runServer starts the MCP server
func runServer(cmd *cobra.Command, args []string) error {
	if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetVersion().String())
		return nil
	}

	cfg, err := config.Load(serverOpts.configPath)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.LogLevel)

	srv, err := server.New(&server.Options{Config: cfg, Logger: logger})
	if err != nil {
		logger.Error("Failed to create server", slog.Any("error", err))
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := srv.Start(ctx); err != nil {
		logger.Error("Failed to start server", slog.Any("error", err))
		return fmt.Errorf("failed to start server: %w", err)
	}

	logger.Info("Tana MCP Server starting",
		slog.String("version", version.GetVersion().Version),
		slog.Int("tools_available", srv.GetRegistry().Count()))

	serverDone := make(chan error, 1)
	go func() {
		if serverOpts.httpAddr != "" {
			serverDone <- srv.ServeHTTP(ctx, serverOpts.httpAddr)
			return
		}
		if term.IsTerminal(int(os.Stdin.Fd())) {
			logger.Warn("stdin is a terminal; this server expects an MCP client on stdio")
		}
		serverDone <- srv.Serve(ctx, &mcp.StdioTransport{})
	}()

	var serveErr error
	select {
	case err := <-serverDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Server error", slog.Any("error", err))
			serveErr = err
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("Error stopping server", slog.Any("error", err))
	}

	logger.Info("Tana MCP Server stopped")
	return serveErr
}
