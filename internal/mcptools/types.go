package mcptools

import "github.com/veridoc-io/veridoc/internal/export"

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// PageInput describes one rendered page of the document under validation.
type PageInput struct {
	Number int    `json:"number" jsonschema:"1-based page number"`
	Path   string `json:"path,omitempty" jsonschema:"filesystem path of the rendered page image"`
	Data   []byte `json:"data,omitempty" jsonschema:"base64-encoded page image bytes, as an alternative to path"`
}

// ValidateDocumentInput is the input for the validate_document MCP tool.
type ValidateDocumentInput struct {
	Pages    []PageInput       `json:"pages" jsonschema:"rendered pages of the document, in order"`
	Metadata map[string]string `json:"metadata,omitempty" jsonschema:"document metadata such as title, language, brand profile, and per-page extracted text"`
	Tier     string            `json:"tier,omitempty" jsonschema:"validation tier: fast, balanced, or premium (default: balanced)"`
}

// ValidateDocumentOutput is the result of the validate_document MCP tool.
type ValidateDocumentOutput struct {
	Scorecard *export.Scorecard `json:"scorecard"`
}

// EstimateCostInput is the input for the estimate_cost MCP tool.
type EstimateCostInput struct {
	Tier       string `json:"tier,omitempty" jsonschema:"validation tier: fast, balanced, or premium (default: balanced)"`
	Pages      int    `json:"pages" jsonschema:"number of pages in the document"`
	Enrichment bool   `json:"enrichment,omitempty" jsonschema:"include the visual enrichment addon in the estimate"`
}

// EstimateCostOutput is the result of the estimate_cost MCP tool.
type EstimateCostOutput struct {
	Cost export.CostExport `json:"cost"`
}

// ListTiersInput is the input for the list_tiers MCP tool.
type ListTiersInput struct{}

// TierInfo describes one validation tier.
type TierInfo struct {
	Name        string   `json:"name"`
	Specialists []string `json:"specialists"`
	CostPerPage float64  `json:"costPerPage"`
}

// ListTiersOutput is the result of the list_tiers MCP tool.
type ListTiersOutput struct {
	Tiers []TierInfo `json:"tiers"`
}
