package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/veridoc-io/veridoc/internal/ensemble"
)

// Scorecard is the top-level JSON export structure for a validation run.
type Scorecard struct {
	RunID      string            `json:"runId"`
	ExportedAt string            `json:"exportedAt"`
	Tier       string            `json:"tier"`
	Score      float64           `json:"score"`
	Grade      string            `json:"grade"`
	Status     string            `json:"status"`
	Summary    string            `json:"summary"`
	Breakdown  []BreakdownExport `json:"breakdown"`
	Issues     []IssueExport     `json:"issues,omitempty"`
	Cost       CostExport        `json:"cost"`
	Artifacts  []ArtifactExport  `json:"artifacts,omitempty"`
	DurationMs int64             `json:"durationMs"`
}

// BreakdownExport describes one specialist's contribution.
type BreakdownExport struct {
	Specialist   string  `json:"specialist"`
	Score        float64 `json:"score"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
	Grade        string  `json:"grade"`
	Error        string  `json:"error,omitempty"`
}

// IssueExport describes a deduplicated finding.
type IssueExport struct {
	Type        string   `json:"type"`
	Severity    string   `json:"severity"`
	Page        int      `json:"page,omitempty"`
	Message     string   `json:"message"`
	Sources     []string `json:"sources"`
	Occurrences int      `json:"occurrences"`
}

// CostExport describes the estimated spend of the run.
type CostExport struct {
	Total         float64            `json:"total"`
	PerPage       float64            `json:"perPage"`
	Currency      string             `json:"currency"`
	PerSpecialist map[string]float64 `json:"perSpecialist,omitempty"`
}

// ArtifactExport points at a synthesized correction preview.
type ArtifactExport struct {
	Page   int      `json:"page"`
	Path   string   `json:"path,omitempty"`
	Issues []string `json:"issues,omitempty"`
}

// BuildScorecard converts a validation report to its export form.
func BuildScorecard(report *ensemble.Report) *Scorecard {
	sc := &Scorecard{
		RunID:      report.RunID,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Tier:       report.Tier,
		Score:      report.OverallScore,
		Grade:      report.Verdict.Grade,
		Status:     string(report.Verdict.Status),
		Summary:    report.Verdict.Description,
		DurationMs: report.DurationMs,
		Cost: CostExport{
			Total:    report.Cost.Total,
			PerPage:  report.Cost.PerPage,
			Currency: report.Cost.Currency,
		},
	}

	if len(report.Cost.PerSpecialist) > 0 {
		sc.Cost.PerSpecialist = make(map[string]float64, len(report.Cost.PerSpecialist))
		for kind, cost := range report.Cost.PerSpecialist {
			sc.Cost.PerSpecialist[kind.String()] = cost
		}
	}

	for _, entry := range report.Breakdown {
		sc.Breakdown = append(sc.Breakdown, BreakdownExport{
			Specialist:   entry.Specialist.String(),
			Score:        entry.Score,
			Weight:       entry.Weight,
			Contribution: entry.Contribution,
			Grade:        entry.Grade,
			Error:        entry.Error,
		})
	}

	for _, is := range report.Issues {
		sources := make([]string, 0, len(is.Sources))
		for _, src := range is.Sources {
			sources = append(sources, src.String())
		}
		sc.Issues = append(sc.Issues, IssueExport{
			Type:        is.Type,
			Severity:    is.Severity.String(),
			Page:        is.Page,
			Message:     is.Message,
			Sources:     sources,
			Occurrences: is.Occurrences,
		})
	}

	for _, a := range report.Artifacts {
		sc.Artifacts = append(sc.Artifacts, ArtifactExport{
			Page:   a.Page,
			Path:   a.Path,
			Issues: a.Issues,
		})
	}

	return sc
}

// WriteJSON writes the report as an indented scorecard document.
func WriteJSON(w io.Writer, report *ensemble.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(BuildScorecard(report)); err != nil {
		return fmt.Errorf("encode scorecard: %w", err)
	}
	return nil
}
