package ensemble

// Status is the coarse outcome of a validation run.
type Status string

const (
	StatusPass    Status = "PASS"
	StatusWarning Status = "WARNING"
	StatusFail    Status = "FAIL"
)

// Verdict is the discrete classification of a run: a letter grade, a
// pass/warn/fail status, and a short description.
type Verdict struct {
	Grade       string `json:"grade"`
	Status      Status `json:"status"`
	Description string `json:"description"`
}

// verdictRule is one row of the classification table. A rule matches when
// the composite score is at least MinScore and the critical/high issue
// counts do not exceed the caps (-1 = unlimited).
type verdictRule struct {
	minScore    float64
	maxCritical int
	maxHigh     int
	verdict     Verdict
}

// verdictTable is evaluated top-down; the first matching rule wins. Rows are
// ordered best to worst and the final row is a catch-all, so classification
// is exhaustive and monotonic in the score for a fixed issue profile.
var verdictTable = []verdictRule{
	{0.95, 0, 0, Verdict{"A+", StatusPass, "Exceptional quality, production ready"}},
	{0.90, 0, 1, Verdict{"A", StatusPass, "Excellent quality, minor polish possible"}},
	{0.85, 0, -1, Verdict{"B+", StatusPass, "Good quality, review flagged issues"}},
	{0.80, 0, -1, Verdict{"B", StatusWarning, "Acceptable quality, improvements recommended"}},
	{0.70, -1, -1, Verdict{"C", StatusWarning, "Mediocre quality, rework recommended"}},
	{0.60, -1, -1, Verdict{"D", StatusFail, "Poor quality, rework required"}},
	{0, -1, -1, Verdict{"F", StatusFail, "Failing quality, do not publish"}},
}

// Classify maps a composite score and the deduplicated issue profile to a
// verdict. Pure function; no state.
func Classify(overallScore float64, issues []DeduplicatedIssue) Verdict {
	var critical, high int
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityCritical:
			critical++
		case SeverityHigh:
			high++
		}
	}

	for _, rule := range verdictTable {
		if overallScore < rule.minScore {
			continue
		}
		if rule.maxCritical >= 0 && critical > rule.maxCritical {
			continue
		}
		if rule.maxHigh >= 0 && high > rule.maxHigh {
			continue
		}
		return rule.verdict
	}

	// Unreachable: the last row matches everything.
	return verdictTable[len(verdictTable)-1].verdict
}

// gradeForScore grades a single specialist's score on the letter ladder,
// ignoring issue caps. Used in the aggregation breakdown.
func gradeForScore(score float64) string {
	for _, rule := range verdictTable {
		if score >= rule.minScore {
			return rule.verdict.Grade
		}
	}
	return "F"
}
