package ensemble

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSynth implements Synthesizer with a configurable func.
type stubSynth struct {
	synthesize func(ctx context.Context, page PageImage, issues []DeduplicatedIssue) (VisualArtifact, error)
}

func (s *stubSynth) Synthesize(ctx context.Context, page PageImage, issues []DeduplicatedIssue) (VisualArtifact, error) {
	return s.synthesize(ctx, page, issues)
}

func pageIssue(typ string, sev Severity, page int) DeduplicatedIssue {
	return DeduplicatedIssue{Type: typ, Severity: sev, Page: page, Occurrences: 1}
}

func TestEnrich_OneArtifactPerAffectedPage(t *testing.T) {
	synth := &stubSynth{
		synthesize: func(ctx context.Context, page PageImage, issues []DeduplicatedIssue) (VisualArtifact, error) {
			types := make([]string, 0, len(issues))
			for _, is := range issues {
				types = append(types, is.Type)
			}
			return VisualArtifact{Page: page.Number, Issues: types}, nil
		},
	}
	e := NewEnricher(synth, quietLogger())

	issues := []DeduplicatedIssue{
		pageIssue("text-overflow", SeverityHigh, 1),
		pageIssue("off-brand-color", SeverityMedium, 1),
		pageIssue("blurry-image", SeverityLow, 3),
	}

	artifacts := e.Enrich(context.Background(), testDoc(3), issues)
	require.Len(t, artifacts, 2, "pages 1 and 3 are affected")

	sort.Slice(artifacts, func(i, j int) bool { return artifacts[i].Page < artifacts[j].Page })
	assert.Equal(t, 1, artifacts[0].Page)
	assert.Len(t, artifacts[0].Issues, 2)
	assert.Equal(t, 3, artifacts[1].Page)
}

func TestEnrich_PerPageFailureIsBestEffort(t *testing.T) {
	synth := &stubSynth{
		synthesize: func(ctx context.Context, page PageImage, issues []DeduplicatedIssue) (VisualArtifact, error) {
			if page.Number == 2 {
				return VisualArtifact{}, errors.New("synthesis quota exceeded")
			}
			return VisualArtifact{Page: page.Number}, nil
		},
	}
	e := NewEnricher(synth, quietLogger())

	issues := []DeduplicatedIssue{
		pageIssue("a", SeverityHigh, 1),
		pageIssue("b", SeverityHigh, 2),
	}

	artifacts := e.Enrich(context.Background(), testDoc(2), issues)
	require.Len(t, artifacts, 1)
	assert.Equal(t, 1, artifacts[0].Page)
}

func TestEnrich_TotalFailureDegradesToEmpty(t *testing.T) {
	synth := &stubSynth{
		synthesize: func(ctx context.Context, page PageImage, issues []DeduplicatedIssue) (VisualArtifact, error) {
			return VisualArtifact{}, errors.New("service down")
		},
	}
	e := NewEnricher(synth, quietLogger())

	artifacts := e.Enrich(context.Background(), testDoc(2), []DeduplicatedIssue{
		pageIssue("a", SeverityHigh, 1),
		pageIssue("b", SeverityHigh, 2),
	})
	assert.Empty(t, artifacts)
}

func TestEnrich_PanicContainedToItsPage(t *testing.T) {
	synth := &stubSynth{
		synthesize: func(ctx context.Context, page PageImage, issues []DeduplicatedIssue) (VisualArtifact, error) {
			if page.Number == 1 {
				panic("corrupt image buffer")
			}
			return VisualArtifact{Page: page.Number}, nil
		},
	}
	e := NewEnricher(synth, quietLogger())

	artifacts := e.Enrich(context.Background(), testDoc(2), []DeduplicatedIssue{
		pageIssue("a", SeverityHigh, 1),
		pageIssue("b", SeverityHigh, 2),
	})
	require.Len(t, artifacts, 1)
	assert.Equal(t, 2, artifacts[0].Page)
}

func TestEnrich_DocumentWideIssuesSkipped(t *testing.T) {
	called := false
	synth := &stubSynth{
		synthesize: func(ctx context.Context, page PageImage, issues []DeduplicatedIssue) (VisualArtifact, error) {
			called = true
			return VisualArtifact{Page: page.Number}, nil
		},
	}
	e := NewEnricher(synth, quietLogger())

	// Page 0 means document-wide; there is no page image to correct.
	artifacts := e.Enrich(context.Background(), testDoc(2), []DeduplicatedIssue{
		pageIssue("meta-mismatch", SeverityMedium, 0),
	})
	assert.Empty(t, artifacts)
	assert.False(t, called)
}

func TestEnrich_NoIssuesOrNoSynthesizer(t *testing.T) {
	synth := &stubSynth{
		synthesize: func(ctx context.Context, page PageImage, issues []DeduplicatedIssue) (VisualArtifact, error) {
			t.Fatal("should not be called")
			return VisualArtifact{}, nil
		},
	}

	assert.Empty(t, NewEnricher(synth, quietLogger()).Enrich(context.Background(), testDoc(1), nil))
	assert.Empty(t, NewEnricher(nil, quietLogger()).Enrich(context.Background(), testDoc(1), []DeduplicatedIssue{
		pageIssue("a", SeverityHigh, 1),
	}))
}

func TestEnrich_IssueOnUnknownPageSkipped(t *testing.T) {
	synth := &stubSynth{
		synthesize: func(ctx context.Context, page PageImage, issues []DeduplicatedIssue) (VisualArtifact, error) {
			return VisualArtifact{Page: page.Number}, nil
		},
	}
	e := NewEnricher(synth, quietLogger())

	artifacts := e.Enrich(context.Background(), testDoc(2), []DeduplicatedIssue{
		pageIssue("a", SeverityHigh, 9),
	})
	assert.Empty(t, artifacts)
}
