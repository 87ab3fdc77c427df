package ensemble

import "sort"

// BreakdownEntry is the per-specialist contribution to the composite score,
// used for diagnostics and reporting.
type BreakdownEntry struct {
	Specialist   SpecialistKind `json:"specialist"`
	Score        float64        `json:"score"`
	Weight       float64        `json:"weight"`
	Contribution float64        `json:"contribution"`
	Grade        string         `json:"grade"`

	// Error carries the failure message for a failed specialist slot.
	Error string `json:"error,omitempty"`
}

// Aggregate combines per-specialist outcomes into one weighted composite.
//
// The composite is sum(score*weight)/sum(weight) over every outcome present,
// success or failure alike: a failed specialist contributes score 0 but its
// weight stays in the denominator, so failures depress the composite instead
// of being silently renormalized away. A zero total weight yields a
// composite of 0.
func Aggregate(outcomes map[SpecialistKind]Outcome, cfg Config) (float64, map[SpecialistKind]float64, []BreakdownEntry) {
	scores := make(map[SpecialistKind]float64, len(outcomes))
	breakdown := make([]BreakdownEntry, 0, len(outcomes))

	var weightedSum, totalWeight float64

	for kind, outcome := range outcomes {
		weight := cfg.weightFor(kind)
		score := outcome.Score()

		scores[kind] = score
		weightedSum += score * weight
		totalWeight += weight

		entry := BreakdownEntry{
			Specialist:   kind,
			Score:        score,
			Weight:       weight,
			Contribution: score * weight,
			Grade:        gradeForScore(score),
		}
		if outcome.Failed() {
			entry.Error = outcome.Err.Error()
		}
		breakdown = append(breakdown, entry)
	}

	overall := 0.0
	if totalWeight > 0 {
		overall = weightedSum / totalWeight
	}

	// Highest contribution first; kind order breaks ties deterministically.
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Contribution != breakdown[j].Contribution {
			return breakdown[i].Contribution > breakdown[j].Contribution
		}
		return breakdown[i].Specialist < breakdown[j].Specialist
	})

	return overall, scores, breakdown
}
