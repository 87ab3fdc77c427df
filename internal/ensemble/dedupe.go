package ensemble

import "sort"

// Deduplicate collapses issues reported by multiple specialists into one
// prioritized list.
//
// Issues group by (type, severity); page is deliberately not part of the key,
// so the same defect reported on several pages merges into a single entry
// whose descriptive fields come from the first-seen report. Groups are
// ordered by how many distinct specialists corroborate them, most first;
// equal counts keep first-seen order.
func Deduplicate(issues []Issue) []DeduplicatedIssue {
	if len(issues) == 0 {
		return nil
	}

	type group struct {
		first    Issue
		sources  []SpecialistKind
		seenFrom map[SpecialistKind]bool
		order    int
	}

	groups := make(map[issueKey]*group, len(issues))
	var keys []issueKey

	for _, issue := range issues {
		key := issueKey{Type: issue.Type, Severity: issue.Severity}

		g, ok := groups[key]
		if !ok {
			g = &group{
				first:    issue,
				seenFrom: make(map[SpecialistKind]bool),
				order:    len(keys),
			}
			groups[key] = g
			keys = append(keys, key)
		}
		if !g.seenFrom[issue.Source] {
			g.seenFrom[issue.Source] = true
			g.sources = append(g.sources, issue.Source)
		}
	}

	out := make([]DeduplicatedIssue, 0, len(keys))
	for _, key := range keys {
		g := groups[key]
		out = append(out, DeduplicatedIssue{
			Type:        g.first.Type,
			Severity:    g.first.Severity,
			Page:        g.first.Page,
			Message:     g.first.Message,
			Sources:     g.sources,
			Occurrences: len(g.sources),
		})
	}

	// Stable: equal occurrence counts preserve first-seen order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Occurrences > out[j].Occurrences
	})

	return out
}

// collectIssues flattens specialist outcomes into a single issue list in
// enabled-set order, so deduplication sees a deterministic first-seen order.
func collectIssues(outcomes map[SpecialistKind]Outcome, enabled []SpecialistKind) []Issue {
	var issues []Issue
	for _, kind := range enabled {
		issues = append(issues, outcomes[kind].Issues()...)
	}
	return issues
}
