package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewValidationMCPServer creates an MCP server with all validation tools registered.
func NewValidationMCPServer(svc *ValidationService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "veridoc-validation",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_document",
		Description: "Validate a rendered document with the specialist ensemble. Fans out to every specialist enabled by the tier, aggregates a weighted composite score, deduplicates findings, and classifies a verdict.",
	}, svc.ValidateDocument)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "estimate_cost",
		Description: "Estimate the cost of validating a document at a given tier without running any evaluation.",
	}, svc.EstimateCost)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_tiers",
		Description: "List the available validation tiers, the specialists each one enables, and the per-page cost.",
	}, svc.ListTiers)

	return server
}

// RunMCPServer starts an HTTP server exposing the validation MCP tools.
func RunMCPServer(ctx context.Context, svc *ValidationService, addr string) error {
	server := NewValidationMCPServer(svc)

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
