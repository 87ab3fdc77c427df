package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/veridoc-io/veridoc/internal/mcptools"
)

var (
	mcpListen  string
	mcpDir     string
	mcpVerbose bool
)

var serveMCPCmd = &cobra.Command{
	Use:   "serve-mcp",
	Short: "Serve the validation tools over MCP",
	Long: `Starts a streamable HTTP MCP server exposing validate_document,
estimate_cost, and list_tiers for agent integration.`,
	RunE: runServeMCP,
}

func init() {
	serveMCPCmd.Flags().StringVarP(&mcpListen, "listen", "l", ":8090", "address to listen on")
	serveMCPCmd.Flags().StringVarP(&mcpDir, "config-dir", "c", ".", "directory holding veridoc.yml")
	serveMCPCmd.Flags().BoolVarP(&mcpVerbose, "verbose", "v", false, "enable debug logging")
}

func runServeMCP(cmd *cobra.Command, args []string) error {
	log := newLogger(mcpVerbose)

	engine, cfg, _, err := buildEngine(mcpDir, "", log)
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.WithField("addr", mcpListen).Info("validation MCP server listening")
	return mcptools.RunMCPServer(ctx, mcptools.NewValidationService(engine, cfg), mcpListen)
}
