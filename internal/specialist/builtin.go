package specialist

import (
	"context"
	"strconv"

	"github.com/veridoc-io/veridoc/internal/ensemble"
)

// Compile-time interface checks.
var (
	_ ensemble.Specialist = visionSpecialist{}
	_ ensemble.Specialist = layoutSpecialist{}
	_ ensemble.Specialist = semanticSpecialist{}
	_ ensemble.Specialist = textExtractSpecialist{}
	_ ensemble.Specialist = brandSpecialist{}
	_ ensemble.Specialist = accessibilitySpecialist{}
)

// Built-in evaluators run cheap structural heuristics over the document.
// They stand in where no remote evaluator is configured, so a default
// installation still produces meaningful (if shallow) scores.

// minRenderBytes is the smallest plausible size for a real page render.
// Anything below it is treated as a degraded or placeholder image.
const minRenderBytes = 1024

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

func emptyDocument(kind ensemble.SpecialistKind) ensemble.Evaluation {
	return ensemble.Evaluation{
		Score: 0,
		Issues: []ensemble.Issue{{
			Type:     "empty-document",
			Severity: ensemble.SeverityCritical,
			Message:  "document has no rendered pages",
			Source:   kind,
		}},
	}
}

// --- vision ---

// visionSpecialist checks that every page actually carries render output.
type visionSpecialist struct{}

func (visionSpecialist) Kind() ensemble.SpecialistKind { return ensemble.KindVision }

func (visionSpecialist) Evaluate(ctx context.Context, doc ensemble.Document) (ensemble.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return ensemble.Evaluation{}, err
	}
	if len(doc.Pages) == 0 {
		return emptyDocument(ensemble.KindVision), nil
	}

	score := 1.0
	var issues []ensemble.Issue
	for _, p := range doc.Pages {
		switch {
		case len(p.Data) == 0 && p.Path == "":
			score -= 0.25
			issues = append(issues, ensemble.Issue{
				Type:     "blank-page",
				Severity: ensemble.SeverityCritical,
				Page:     p.Number,
				Message:  "page has neither image data nor a render path",
				Source:   ensemble.KindVision,
			})
		case len(p.Data) > 0 && len(p.Data) < minRenderBytes:
			score -= 0.05
			issues = append(issues, ensemble.Issue{
				Type:     "low-resolution",
				Severity: ensemble.SeverityMedium,
				Page:     p.Number,
				Message:  "render is implausibly small for a full page",
				Source:   ensemble.KindVision,
			})
		}
	}
	return ensemble.Evaluation{Score: clampScore(score), Issues: issues}, nil
}

// --- layout ---

// layoutSpecialist verifies page numbering is contiguous and duplicate-free.
type layoutSpecialist struct{}

func (layoutSpecialist) Kind() ensemble.SpecialistKind { return ensemble.KindLayout }

func (layoutSpecialist) Evaluate(ctx context.Context, doc ensemble.Document) (ensemble.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return ensemble.Evaluation{}, err
	}
	if len(doc.Pages) == 0 {
		return emptyDocument(ensemble.KindLayout), nil
	}

	score := 1.0
	var issues []ensemble.Issue

	seen := make(map[int]bool, len(doc.Pages))
	max := 0
	for _, p := range doc.Pages {
		if seen[p.Number] {
			score -= 0.15
			issues = append(issues, ensemble.Issue{
				Type:     "duplicate-page",
				Severity: ensemble.SeverityHigh,
				Page:     p.Number,
				Message:  "page number appears more than once",
				Source:   ensemble.KindLayout,
			})
			continue
		}
		seen[p.Number] = true
		if p.Number > max {
			max = p.Number
		}
	}

	for n := 1; n <= max; n++ {
		if !seen[n] {
			score -= 0.3
			issues = append(issues, ensemble.Issue{
				Type:     "missing-page",
				Severity: ensemble.SeverityCritical,
				Page:     n,
				Message:  "gap in page numbering",
				Source:   ensemble.KindLayout,
			})
		}
	}
	return ensemble.Evaluation{Score: clampScore(score), Issues: issues}, nil
}

// --- semantic ---

// semanticSpecialist checks document-level metadata a reader would expect.
type semanticSpecialist struct{}

func (semanticSpecialist) Kind() ensemble.SpecialistKind { return ensemble.KindSemantic }

func (semanticSpecialist) Evaluate(ctx context.Context, doc ensemble.Document) (ensemble.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return ensemble.Evaluation{}, err
	}
	if len(doc.Pages) == 0 {
		return emptyDocument(ensemble.KindSemantic), nil
	}

	score := 1.0
	var issues []ensemble.Issue
	if doc.Metadata["title"] == "" {
		score -= 0.2
		issues = append(issues, ensemble.Issue{
			Type:     "missing-title",
			Severity: ensemble.SeverityHigh,
			Message:  "document metadata carries no title",
			Source:   ensemble.KindSemantic,
		})
	}
	if doc.Metadata["language"] == "" {
		score -= 0.05
		issues = append(issues, ensemble.Issue{
			Type:     "unknown-language",
			Severity: ensemble.SeverityLow,
			Message:  "document metadata carries no language tag",
			Source:   ensemble.KindSemantic,
		})
	}
	return ensemble.Evaluation{Score: clampScore(score), Issues: issues}, nil
}

// --- text extraction ---

// textExtractSpecialist checks each page has extracted text attached
// under the "text.<page>" metadata key.
type textExtractSpecialist struct{}

func (textExtractSpecialist) Kind() ensemble.SpecialistKind { return ensemble.KindTextExtract }

func (textExtractSpecialist) Evaluate(ctx context.Context, doc ensemble.Document) (ensemble.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return ensemble.Evaluation{}, err
	}
	if len(doc.Pages) == 0 {
		return emptyDocument(ensemble.KindTextExtract), nil
	}

	score := 1.0
	var issues []ensemble.Issue
	for _, p := range doc.Pages {
		if doc.Metadata["text."+strconv.Itoa(p.Number)] == "" {
			score -= 0.1
			issues = append(issues, ensemble.Issue{
				Type:     "no-extractable-text",
				Severity: ensemble.SeverityMedium,
				Page:     p.Number,
				Message:  "no text was extracted for this page",
				Source:   ensemble.KindTextExtract,
			})
		}
	}
	return ensemble.Evaluation{Score: clampScore(score), Issues: issues}, nil
}

// --- brand ---

// brandSpecialist checks the brand profile needed for compliance scoring.
type brandSpecialist struct{}

func (brandSpecialist) Kind() ensemble.SpecialistKind { return ensemble.KindBrand }

func (brandSpecialist) Evaluate(ctx context.Context, doc ensemble.Document) (ensemble.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return ensemble.Evaluation{}, err
	}
	if len(doc.Pages) == 0 {
		return emptyDocument(ensemble.KindBrand), nil
	}

	score := 1.0
	var issues []ensemble.Issue
	if doc.Metadata["brand.name"] == "" {
		score -= 0.25
		issues = append(issues, ensemble.Issue{
			Type:     "missing-brand-profile",
			Severity: ensemble.SeverityHigh,
			Message:  "no brand profile attached to the document",
			Source:   ensemble.KindBrand,
		})
	}
	if doc.Metadata["brand.palette"] == "" {
		score -= 0.1
		issues = append(issues, ensemble.Issue{
			Type:     "missing-brand-palette",
			Severity: ensemble.SeverityMedium,
			Message:  "no color palette declared for brand checks",
			Source:   ensemble.KindBrand,
		})
	}
	return ensemble.Evaluation{Score: clampScore(score), Issues: issues}, nil
}

// --- accessibility ---

// accessibilitySpecialist checks each page declares alt text under the
// "alt.<page>" metadata key.
type accessibilitySpecialist struct{}

func (accessibilitySpecialist) Kind() ensemble.SpecialistKind { return ensemble.KindAccessibility }

func (accessibilitySpecialist) Evaluate(ctx context.Context, doc ensemble.Document) (ensemble.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return ensemble.Evaluation{}, err
	}
	if len(doc.Pages) == 0 {
		return emptyDocument(ensemble.KindAccessibility), nil
	}

	score := 1.0
	var issues []ensemble.Issue
	for _, p := range doc.Pages {
		if doc.Metadata["alt."+strconv.Itoa(p.Number)] == "" {
			score -= 0.08
			issues = append(issues, ensemble.Issue{
				Type:     "missing-alt-text",
				Severity: ensemble.SeverityMedium,
				Page:     p.Number,
				Message:  "page image has no alt text",
				Source:   ensemble.KindAccessibility,
			})
		}
	}
	return ensemble.Evaluation{Score: clampScore(score), Issues: issues}, nil
}
