package ensemble

import "context"

// PageImage is one rendered page of the document under validation.
type PageImage struct {
	// Number is the 1-based page number.
	Number int `json:"number"`

	// Path is an optional filesystem location of the rendered image.
	Path string `json:"path,omitempty"`

	// Data is the raw image bytes. May be empty when Path is set and the
	// specialist can read the file itself.
	Data []byte `json:"data,omitempty"`
}

// Document is the full input handed to every enabled specialist: the ordered
// page images plus contextual metadata the renderer attached to the job.
type Document struct {
	Pages []PageImage `json:"pages"`

	// Metadata is opaque job context (title, brand profile, source format).
	// The engine never interprets it; it is passed through verbatim.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// PageCount returns the number of rendered pages.
func (d Document) PageCount() int {
	return len(d.Pages)
}

// Evaluation is the successful output of one specialist.
type Evaluation struct {
	// Score is the specialist's quality score in [0,1].
	Score float64 `json:"score"`

	// Issues are the problems the specialist found, possibly empty.
	Issues []Issue `json:"issues,omitempty"`
}

// Specialist evaluates a document against one quality dimension. The engine
// is the sole caller; implementations live outside the core (built-in
// heuristics, remote evaluator services).
type Specialist interface {
	// Kind identifies the quality dimension this specialist covers.
	Kind() SpecialistKind

	// Evaluate scores the document. A returned error marks the whole
	// invocation as failed; partial results are not supported.
	Evaluate(ctx context.Context, doc Document) (Evaluation, error)
}

// Outcome is the terminal state of one specialist invocation: either an
// Evaluation or an error, never both. Exactly one Outcome exists per enabled
// specialist per run.
type Outcome struct {
	Kind SpecialistKind

	// Eval is set when the invocation succeeded.
	Eval *Evaluation

	// Err is set when the invocation failed (returned an error, panicked, or
	// exceeded the configured deadline).
	Err error
}

// Failed reports whether the invocation ended in failure.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Score returns the evaluation score, or 0 for a failed invocation. A failed
// specialist still occupies its slot so its zero score dilutes the composite
// instead of being renormalized away.
func (o Outcome) Score() float64 {
	if o.Failed() || o.Eval == nil {
		return 0
	}
	return o.Eval.Score
}

// Issues returns the reported issues, or nil for a failed invocation.
func (o Outcome) Issues() []Issue {
	if o.Failed() || o.Eval == nil {
		return nil
	}
	return o.Eval.Issues
}
