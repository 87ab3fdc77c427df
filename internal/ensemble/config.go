package ensemble

import "time"

// Config is the immutable engine configuration. It is built once at engine
// creation and threaded through every run; there is no mutable package-level
// state behind it.
type Config struct {
	// Weights maps each specialist kind to its consensus weight (>= 0).
	// Weights need not sum to 1: the aggregator normalizes over the kinds
	// actually enabled for the run. Nil falls back to DefaultWeights.
	Weights map[SpecialistKind]float64

	// SpecialistTimeout bounds each specialist invocation. Zero means no
	// deadline, matching the historical behavior where a hung evaluator
	// blocks the run.
	SpecialistTimeout time.Duration

	// Enrichment requests corrected-reference visuals for pages with
	// unresolved issues after the verdict is computed.
	Enrichment bool

	// ExtraSpecialists are appended to every resolved tier set. Lets a
	// deployment opt into evaluators outside the standard tiers (e.g.
	// accessibility) without redefining the tier table.
	ExtraSpecialists []SpecialistKind
}

// DefaultWeights returns the standard consensus weight profile.
func DefaultWeights() map[SpecialistKind]float64 {
	return map[SpecialistKind]float64{
		KindVision:        0.30,
		KindLayout:        0.15,
		KindSemantic:      0.10,
		KindTextExtract:   0.15,
		KindBrand:         0.10,
		KindAccessibility: 0.10,
	}
}

// DefaultConfig returns a Config with the standard weight profile, no
// specialist deadline, and enrichment disabled.
func DefaultConfig() Config {
	return Config{
		Weights: DefaultWeights(),
	}
}

// weightFor returns the configured weight for a kind, falling back to the
// default profile when the config carries no weight table.
func (c Config) weightFor(k SpecialistKind) float64 {
	weights := c.Weights
	if weights == nil {
		weights = DefaultWeights()
	}
	return weights[k]
}

// enabledFor resolves the specialist set for a tier name: the static tier
// table (unknown names fall back to balanced), plus ExtraSpecialists
// (deduplicated, order preserved).
func (c Config) enabledFor(tierName string) (Tier, []SpecialistKind) {
	tier, _ := ParseTier(tierName)

	kinds := ResolveTier(tier)
	seen := make(map[SpecialistKind]bool, len(kinds))
	for _, k := range kinds {
		seen[k] = true
	}
	for _, k := range c.ExtraSpecialists {
		if !seen[k] {
			kinds = append(kinds, k)
			seen[k] = true
		}
	}
	return tier, kinds
}
