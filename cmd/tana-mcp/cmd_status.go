package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/d-kuro/tana-mcp/internal/config"
	"github.com/d-kuro/tana-mcp/internal/logging"
	"github.com/d-kuro/tana-mcp/internal/server"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the resolved configuration",
	Long: `Show the configuration the server would start with, with the API token
masked, and the tools, prompts and resources it would register.`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serverOpts.configPath)
	if err != nil {
		return err
	}
	return printStatus(cmd.OutOrStdout(), cfg)
}

func printStatus(w io.Writer, cfg *config.Config) error {
	configFile := cfg.Path
	if configFile == "" {
		configFile = "(none)"
	}

	fmt.Fprintf(w, "Config file: %s\n", configFile)
	fmt.Fprintf(w, "API token:   %s\n", cfg.MaskedToken())
	fmt.Fprintf(w, "Endpoint:    %s\n", cfg.Endpoint)
	fmt.Fprintf(w, "Log level:   %s\n", cfg.LogLevel)
	fmt.Fprintf(w, "Allow HTTP:  %t\n", cfg.AllowHTTP)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(w, "\n❌ Not ready: %v\n", err)
		return nil
	}

	srv, err := server.New(&server.Options{Config: cfg, Logger: logging.Discard()})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "✓ Ready")
	fmt.Fprintf(w, "   Tools:     %d\n", srv.GetRegistry().Count())
	fmt.Fprintf(w, "   Prompts:   %d\n", len(srv.Prompts()))
	fmt.Fprintf(w, "   Resources: %d\n", len(srv.Resources()))
	return nil
}
