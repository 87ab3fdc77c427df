package remote

import (
	"fmt"

	"github.com/veridoc-io/veridoc/internal/ensemble"
)

// EvaluateRequest asks a remote evaluator to score a rendered document.
type EvaluateRequest struct {
	Specialist string   `json:"specialist"`
	Document   Document `json:"document"`
}

// Document is the wire form of an ensemble.Document.
type Document struct {
	Pages    []Page            `json:"pages"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Page carries one rendered page. Data is base64-encoded on the wire.
type Page struct {
	Number int    `json:"number"`
	Path   string `json:"path,omitempty"`
	Data   []byte `json:"data,omitempty"`
}

// EvaluateResponse is the remote evaluator's verdict on a document.
type EvaluateResponse struct {
	Score  float64 `json:"score"`
	Issues []Issue `json:"issues,omitempty"`
}

// Issue is the wire form of a single finding.
type Issue struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Page     int    `json:"page,omitempty"`
	Message  string `json:"message"`
}

// EvaluatorCard is the self-describing manifest served at the
// well-known discovery URI.
type EvaluatorCard struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Version     string   `json:"version"`
	Specialists []string `json:"specialists"`
	Provider    string   `json:"provider,omitempty"`
}

// Supports reports whether the card advertises the given specialist kind.
func (c EvaluatorCard) Supports(kind ensemble.SpecialistKind) bool {
	for _, s := range c.Specialists {
		if s == kind.String() {
			return true
		}
	}
	return false
}

// EncodeDocument converts an in-process document to its wire form.
func EncodeDocument(doc ensemble.Document) Document {
	out := Document{Metadata: doc.Metadata}
	for _, p := range doc.Pages {
		out.Pages = append(out.Pages, Page{Number: p.Number, Path: p.Path, Data: p.Data})
	}
	return out
}

// DecodeDocument converts a wire document back to the in-process form.
func DecodeDocument(doc Document) ensemble.Document {
	out := ensemble.Document{Metadata: doc.Metadata}
	for _, p := range doc.Pages {
		out.Pages = append(out.Pages, ensemble.PageImage{Number: p.Number, Path: p.Path, Data: p.Data})
	}
	return out
}

// ToEvaluation converts a wire response into an ensemble.Evaluation,
// stamping each issue with the local specialist kind. Scores outside
// [0, 1] and unknown severities are rejected rather than silently
// coerced, so a misbehaving evaluator surfaces as a failed outcome
// instead of skewing the consensus.
func (r EvaluateResponse) ToEvaluation(source ensemble.SpecialistKind) (ensemble.Evaluation, error) {
	// The negated form also catches NaN.
	if !(r.Score >= 0 && r.Score <= 1) {
		return ensemble.Evaluation{}, fmt.Errorf("remote: score %v outside [0, 1]", r.Score)
	}
	eval := ensemble.Evaluation{Score: r.Score}
	for _, is := range r.Issues {
		sev, ok := ensemble.ParseSeverity(is.Severity)
		if !ok {
			return ensemble.Evaluation{}, fmt.Errorf("remote: unknown severity %q in issue %q", is.Severity, is.Type)
		}
		eval.Issues = append(eval.Issues, ensemble.Issue{
			Type:     is.Type,
			Severity: sev,
			Page:     is.Page,
			Message:  is.Message,
			Source:   source,
		})
	}
	return eval, nil
}

// EncodeIssues converts in-process issues to their wire form.
func EncodeIssues(issues []ensemble.Issue) []Issue {
	var out []Issue
	for _, is := range issues {
		out = append(out, Issue{
			Type:     is.Type,
			Severity: is.Severity.String(),
			Page:     is.Page,
			Message:  is.Message,
		})
	}
	return out
}
