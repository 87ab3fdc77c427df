package mcptools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/veridoc-io/veridoc/internal/ensemble"
	"github.com/veridoc-io/veridoc/internal/export"
)

// ValidationService holds the engine used by MCP tool handlers.
type ValidationService struct {
	engine *ensemble.Engine
	cfg    ensemble.Config
}

// NewValidationService creates a ValidationService around an engine.
func NewValidationService(engine *ensemble.Engine, cfg ensemble.Config) *ValidationService {
	return &ValidationService{engine: engine, cfg: cfg}
}

// ValidateDocument runs the full specialist ensemble over a document and
// returns the scorecard.
func (s *ValidationService) ValidateDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ValidateDocumentInput,
) (*mcp.CallToolResult, ValidateDocumentOutput, error) {
	if len(input.Pages) == 0 {
		return nil, ValidateDocumentOutput{}, fmt.Errorf("pages is required")
	}

	doc := ensemble.Document{Metadata: input.Metadata}
	for _, p := range input.Pages {
		if p.Number < 1 {
			return nil, ValidateDocumentOutput{}, fmt.Errorf("page number %d: pages are 1-based", p.Number)
		}
		doc.Pages = append(doc.Pages, ensemble.PageImage{Number: p.Number, Path: p.Path, Data: p.Data})
	}

	report := s.engine.Validate(ctx, doc, input.Tier)
	return nil, ValidateDocumentOutput{Scorecard: export.BuildScorecard(report)}, nil
}

// EstimateCost prices a validation run without executing it.
func (s *ValidationService) EstimateCost(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input EstimateCostInput,
) (*mcp.CallToolResult, EstimateCostOutput, error) {
	if input.Pages < 0 {
		return nil, EstimateCostOutput{}, fmt.Errorf("pages must not be negative")
	}

	tier, _ := ensemble.ParseTier(input.Tier)
	est := ensemble.EstimateCost(ensemble.ResolveTier(tier), input.Pages, input.Enrichment)

	out := export.CostExport{
		Total:    est.Total,
		PerPage:  est.PerPage,
		Currency: est.Currency,
	}
	if len(est.PerSpecialist) > 0 {
		out.PerSpecialist = make(map[string]float64, len(est.PerSpecialist))
		for kind, cost := range est.PerSpecialist {
			out.PerSpecialist[kind.String()] = cost
		}
	}
	return nil, EstimateCostOutput{Cost: out}, nil
}

// ListTiers describes the available validation tiers and their per-page cost.
func (s *ValidationService) ListTiers(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListTiersInput,
) (*mcp.CallToolResult, ListTiersOutput, error) {
	var out ListTiersOutput
	for _, tier := range ensemble.AllTiers {
		kinds := ensemble.ResolveTier(tier)
		names := make([]string, 0, len(kinds))
		for _, k := range kinds {
			names = append(names, k.String())
		}
		out.Tiers = append(out.Tiers, TierInfo{
			Name:        tier.String(),
			Specialists: names,
			CostPerPage: ensemble.EstimateCost(kinds, 1, false).Total,
		})
	}
	return nil, out, nil
}
