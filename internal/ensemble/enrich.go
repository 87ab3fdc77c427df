package ensemble

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// VisualArtifact is a corrected-reference visualization for one page,
// produced by an external image-synthesis collaborator.
type VisualArtifact struct {
	// Page is the 1-based page number the artifact corrects.
	Page int `json:"page"`

	// Path is where the synthesized image was written, when file-backed.
	Path string `json:"path,omitempty"`

	// Data is the raw synthesized image, when returned inline.
	Data []byte `json:"data,omitempty"`

	// Issues lists the issue types the synthesis addressed.
	Issues []string `json:"issues,omitempty"`
}

// Synthesizer produces a corrected-reference visual for one page. Calls are
// best-effort and may fail per page.
type Synthesizer interface {
	Synthesize(ctx context.Context, page PageImage, issues []DeduplicatedIssue) (VisualArtifact, error)
}

// Enricher generates corrected-reference visuals for pages with unresolved
// issues. It runs strictly after the verdict is computed and can only append
// artifacts, never change the verdict.
type Enricher struct {
	synth Synthesizer
	log   *logrus.Logger
}

// NewEnricher creates an Enricher. A nil logger falls back to logrus.New().
func NewEnricher(synth Synthesizer, log *logrus.Logger) *Enricher {
	if log == nil {
		log = logrus.New()
	}
	return &Enricher{synth: synth, log: log}
}

// Enrich synthesizes one artifact per affected page, in parallel. Pages with
// no issue attribution (page 0) are skipped. Best-effort throughout: one
// page's failure does not stop the others, and the worst case is an empty
// artifact list, never an error.
func (e *Enricher) Enrich(ctx context.Context, doc Document, issues []DeduplicatedIssue) []VisualArtifact {
	if e.synth == nil || len(issues) == 0 {
		return nil
	}

	byPage := make(map[int][]DeduplicatedIssue)
	for _, issue := range issues {
		if issue.Page > 0 {
			byPage[issue.Page] = append(byPage[issue.Page], issue)
		}
	}
	if len(byPage) == 0 {
		return nil
	}

	pages := make(map[int]PageImage, len(doc.Pages))
	for _, p := range doc.Pages {
		pages[p.Number] = p
	}

	var (
		g         errgroup.Group
		artifacts = make(chan VisualArtifact, len(byPage))
	)

	for pageNum, pageIssues := range byPage {
		page, ok := pages[pageNum]
		if !ok {
			e.log.WithField("page", pageNum).Warn("issue refers to a page not in the document; skipping enrichment")
			continue
		}

		g.Go(func() error {
			artifact, err := e.synthesizePage(ctx, page, pageIssues)
			if err != nil {
				e.log.WithFields(logrus.Fields{
					"page":  pageNum,
					"error": err.Error(),
				}).Warn("corrected-visual synthesis failed")
				return nil
			}
			artifacts <- artifact
			return nil
		})
	}

	_ = g.Wait()
	close(artifacts)

	out := make([]VisualArtifact, 0, len(byPage))
	for artifact := range artifacts {
		out = append(out, artifact)
	}
	return out
}

// synthesizePage wraps one Synthesize call, converting a panic into an error
// so a misbehaving collaborator stays contained to its page.
func (e *Enricher) synthesizePage(ctx context.Context, page PageImage, issues []DeduplicatedIssue) (artifact VisualArtifact, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("synthesizer panicked on page %d: %v", page.Number, r)
		}
	}()
	return e.synth.Synthesize(ctx, page, issues)
}
