package specialist

import (
	"context"
	"fmt"

	"github.com/veridoc-io/veridoc/internal/ensemble"
	"github.com/veridoc-io/veridoc/internal/remote"
)

// Compile-time interface check.
var _ ensemble.Specialist = (*RemoteSpecialist)(nil)

// RemoteSpecialist delegates evaluation to an out-of-process evaluator
// speaking the remote HTTP protocol.
type RemoteSpecialist struct {
	kind    ensemble.SpecialistKind
	baseURL string
	client  remote.Client
}

// NewRemoteSpecialist creates an adapter for the evaluator at baseURL.
// A nil client gets a default HTTP client.
func NewRemoteSpecialist(kind ensemble.SpecialistKind, baseURL string, client remote.Client) *RemoteSpecialist {
	if client == nil {
		client = remote.NewHTTPClient()
	}
	return &RemoteSpecialist{kind: kind, baseURL: baseURL, client: client}
}

// Kind returns the specialist kind this adapter evaluates as.
func (s *RemoteSpecialist) Kind() ensemble.SpecialistKind { return s.kind }

// Evaluate ships the document to the remote evaluator and converts its
// verdict. Transport and protocol errors surface to the caller; the fan-out
// executor turns them into failed outcome slots.
func (s *RemoteSpecialist) Evaluate(ctx context.Context, doc ensemble.Document) (ensemble.Evaluation, error) {
	resp, err := s.client.Evaluate(ctx, s.baseURL, remote.EvaluateRequest{
		Specialist: s.kind.String(),
		Document:   remote.EncodeDocument(doc),
	})
	if err != nil {
		return ensemble.Evaluation{}, fmt.Errorf("%s evaluator: %w", s.kind, err)
	}
	return resp.ToEvaluation(s.kind)
}

// Verify discovers the remote card and confirms it supports this kind.
func (s *RemoteSpecialist) Verify(ctx context.Context) error {
	card, err := s.client.Discover(ctx, s.baseURL)
	if err != nil {
		return err
	}
	if !card.Supports(s.kind) {
		return fmt.Errorf("evaluator %q does not support specialist %q", card.Name, s.kind)
	}
	return nil
}
