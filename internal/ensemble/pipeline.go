package ensemble

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Report is the composite result of one validation run. Created fresh per
// invocation, never persisted by the engine, and handed as-is to downstream
// reporting layers.
type Report struct {
	RunID     string    `json:"runId"`
	Tier      string    `json:"tier"`
	Timestamp time.Time `json:"timestamp"`

	EnabledSpecialists []SpecialistKind `json:"enabledSpecialists"`

	OverallScore     float64                    `json:"overallScore"`
	SpecialistScores map[SpecialistKind]float64 `json:"specialistScores"`
	Breakdown        []BreakdownEntry           `json:"breakdown"`

	Issues  []DeduplicatedIssue `json:"issues,omitempty"`
	Verdict Verdict             `json:"verdict"`

	Cost CostEstimate `json:"cost"`

	// Artifacts are corrected-reference visuals, present only when
	// enrichment was requested and produced anything.
	Artifacts []VisualArtifact `json:"artifacts,omitempty"`

	DurationMs int64 `json:"durationMs"`
}

// Engine runs the full ensemble validation pipeline: tier resolution,
// concurrent fan-out, weighted aggregation, issue deduplication, verdict
// classification, cost estimation, and optional enrichment.
type Engine struct {
	cfg         Config
	specialists map[SpecialistKind]Specialist
	fanout      *FanOut
	enricher    *Enricher
	progress    *ProgressReporter
	log         *logrus.Logger
}

// NewEngine creates an Engine with the given immutable configuration and
// specialist set. synth may be nil when enrichment is disabled; a nil logger
// falls back to logrus.New().
func NewEngine(cfg Config, specialists map[SpecialistKind]Specialist, synth Synthesizer, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.New()
	}
	progress := NewProgressReporter()

	return &Engine{
		cfg:         cfg,
		specialists: specialists,
		fanout:      NewFanOut(cfg.SpecialistTimeout, progress.Emit, log),
		enricher:    NewEnricher(synth, log),
		progress:    progress,
		log:         log,
	}
}

// Progress returns a channel that emits per-specialist progress events.
func (e *Engine) Progress() <-chan ProgressEvent {
	return e.progress.Subscribe()
}

// Close shuts down the progress reporter. Callers should invoke this when
// the engine is no longer needed.
func (e *Engine) Close() {
	e.progress.Close()
}

// Validate runs the full pipeline against a document. It is total: every
// failure mode ends up inside the Report (failed specialists as zero-score
// slots with error strings, degenerate input as a worst-tier verdict), never
// as an error or panic escaping to the caller.
func (e *Engine) Validate(ctx context.Context, doc Document, tierName string) *Report {
	start := time.Now()

	tier, enabled := e.cfg.enabledFor(tierName)
	e.log.WithFields(logrus.Fields{
		"tier":        tier.String(),
		"specialists": len(enabled),
		"pages":       doc.PageCount(),
	}).Debug("validation run starting")

	outcomes := e.fanout.Run(ctx, e.specialists, enabled, doc)

	overall, scores, breakdown := Aggregate(outcomes, e.cfg)
	issues := Deduplicate(collectIssues(outcomes, enabled))
	verdict := Classify(overall, issues)

	report := &Report{
		RunID:              uuid.NewString(),
		Tier:               tier.String(),
		Timestamp:          start.UTC(),
		EnabledSpecialists: enabled,
		OverallScore:       overall,
		SpecialistScores:   scores,
		Breakdown:          breakdown,
		Issues:             issues,
		Verdict:            verdict,
		Cost:               EstimateCost(enabled, doc.PageCount(), e.cfg.Enrichment),
	}

	// Enrichment reads the finished issue list and can only append
	// artifacts; the verdict above is already final.
	if e.cfg.Enrichment {
		report.Artifacts = e.enricher.Enrich(ctx, doc, issues)
	}

	report.DurationMs = time.Since(start).Milliseconds()

	e.log.WithFields(logrus.Fields{
		"runId":   report.RunID,
		"score":   report.OverallScore,
		"grade":   report.Verdict.Grade,
		"status":  report.Verdict.Status,
		"elapsed": time.Since(start).String(),
	}).Debug("validation run finished")

	return report
}
