package specialist

import (
	"fmt"
	"sync"

	"github.com/veridoc-io/veridoc/internal/ensemble"
)

// Factory is a constructor that creates a Specialist.
type Factory func() ensemble.Specialist

// Registry maps specialist kinds to their factory constructors.
type Registry struct {
	mu        sync.Mutex
	factories map[ensemble.SpecialistKind]Factory
}

// NewRegistry creates a Registry pre-registered with all built-in evaluators.
func NewRegistry() *Registry {
	r := &Registry{
		factories: make(map[ensemble.SpecialistKind]Factory),
	}
	r.factories[ensemble.KindVision] = func() ensemble.Specialist { return visionSpecialist{} }
	r.factories[ensemble.KindLayout] = func() ensemble.Specialist { return layoutSpecialist{} }
	r.factories[ensemble.KindSemantic] = func() ensemble.Specialist { return semanticSpecialist{} }
	r.factories[ensemble.KindTextExtract] = func() ensemble.Specialist { return textExtractSpecialist{} }
	r.factories[ensemble.KindBrand] = func() ensemble.Specialist { return brandSpecialist{} }
	r.factories[ensemble.KindAccessibility] = func() ensemble.Specialist { return accessibilitySpecialist{} }
	return r
}

// Register installs or replaces the factory for a kind. Remote-backed
// adapters are wired in this way, shadowing the built-in evaluator.
func (r *Registry) Register(kind ensemble.SpecialistKind, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = factory
}

// Build creates a single specialist by kind using the registered factory.
func (r *Registry) Build(kind ensemble.SpecialistKind) (ensemble.Specialist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	factory, ok := r.factories[kind]
	if !ok {
		return nil, fmt.Errorf("no factory registered for specialist %q", kind)
	}
	return factory(), nil
}

// BuildSet creates one specialist per requested kind, keyed for the engine.
func (r *Registry) BuildSet(kinds []ensemble.SpecialistKind) (map[ensemble.SpecialistKind]ensemble.Specialist, error) {
	out := make(map[ensemble.SpecialistKind]ensemble.Specialist, len(kinds))
	for _, kind := range kinds {
		sp, err := r.Build(kind)
		if err != nil {
			return nil, err
		}
		out[kind] = sp
	}
	return out, nil
}

// BuildAll creates every registered specialist.
func (r *Registry) BuildAll() map[ensemble.SpecialistKind]ensemble.Specialist {
	r.mu.Lock()
	kinds := make([]ensemble.SpecialistKind, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	r.mu.Unlock()

	out := make(map[ensemble.SpecialistKind]ensemble.Specialist, len(kinds))
	for _, kind := range kinds {
		sp, _ := r.Build(kind)
		out[kind] = sp
	}
	return out
}
