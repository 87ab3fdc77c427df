package ensemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func criticalIssue() DeduplicatedIssue {
	return DeduplicatedIssue{Type: "missing-page", Severity: SeverityCritical, Occurrences: 1}
}

func highIssue(typ string) DeduplicatedIssue {
	return DeduplicatedIssue{Type: typ, Severity: SeverityHigh, Occurrences: 1}
}

func TestClassify_TopGradeNeedsCleanProfile(t *testing.T) {
	v := Classify(0.97, nil)
	assert.Equal(t, "A+", v.Grade)
	assert.Equal(t, StatusPass, v.Status)

	// One high issue knocks the same score down to A.
	v = Classify(0.97, []DeduplicatedIssue{highIssue("text-overflow")})
	assert.Equal(t, "A", v.Grade)
	assert.Equal(t, StatusPass, v.Status)

	// A critical issue drops it to the first cap-free row.
	v = Classify(0.97, []DeduplicatedIssue{criticalIssue()})
	assert.Equal(t, "C", v.Grade)
	assert.Equal(t, StatusWarning, v.Status)
}

func TestClassify_Bands(t *testing.T) {
	cases := []struct {
		name   string
		score  float64
		issues []DeduplicatedIssue
		grade  string
		status Status
	}{
		{"near perfect", 0.96, nil, "A+", StatusPass},
		{"excellent", 0.92, nil, "A", StatusPass},
		{"good with highs", 0.88, []DeduplicatedIssue{highIssue("a"), highIssue("b")}, "B+", StatusPass},
		{"acceptable", 0.82, nil, "B", StatusWarning},
		{"mediocre", 0.75, nil, "C", StatusWarning},
		{"poor", 0.65, nil, "D", StatusFail},
		{"failing", 0.2, nil, "F", StatusFail},
		{"zero", 0, nil, "F", StatusFail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Classify(tc.score, tc.issues)
			assert.Equal(t, tc.grade, v.Grade)
			assert.Equal(t, tc.status, v.Status)
			assert.NotEmpty(t, v.Description)
		})
	}
}

func TestClassify_MonotonicInScore(t *testing.T) {
	gradeRank := map[string]int{"F": 0, "D": 1, "C": 2, "B": 3, "B+": 4, "A": 5, "A+": 6}

	profiles := [][]DeduplicatedIssue{
		nil,
		{highIssue("x")},
		{highIssue("x"), highIssue("y")},
		{criticalIssue()},
		{criticalIssue(), highIssue("x")},
	}

	for _, issues := range profiles {
		prev := -1
		for score := 0.0; score <= 1.0; score += 0.01 {
			v := Classify(score, issues)
			rank, ok := gradeRank[v.Grade]
			assert.True(t, ok, "unknown grade %q", v.Grade)
			assert.GreaterOrEqual(t, rank, prev,
				"grade regressed at score %.2f with %d issues", score, len(issues))
			prev = rank
		}
	}
}

func TestClassify_ScenarioFastTier(t *testing.T) {
	// A single-specialist run scoring 0.92 with no issues lands in the top
	// band with a passing status.
	v := Classify(0.92, nil)
	assert.Equal(t, "A", v.Grade)
	assert.Equal(t, StatusPass, v.Status)
}

func TestGradeForScore(t *testing.T) {
	assert.Equal(t, "A+", gradeForScore(1.0))
	assert.Equal(t, "A", gradeForScore(0.9))
	assert.Equal(t, "B+", gradeForScore(0.85))
	assert.Equal(t, "B", gradeForScore(0.8))
	assert.Equal(t, "C", gradeForScore(0.7))
	assert.Equal(t, "D", gradeForScore(0.6))
	assert.Equal(t, "F", gradeForScore(0.59))
	assert.Equal(t, "F", gradeForScore(0))
}
