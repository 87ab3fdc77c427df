package ensemble

// Severity ranks how damaging an issue is to the document.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	names := [...]string{"low", "medium", "high", "critical"}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// ParseSeverity maps a severity name to a Severity. Unrecognized names map
// to SeverityLow; the second return reports whether the name was known.
func ParseSeverity(name string) (Severity, bool) {
	for s := SeverityLow; s <= SeverityCritical; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return SeverityLow, false
}

// MarshalText implements encoding.TextMarshaler so severities serialize as
// their names in JSON and YAML.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, _ := ParseSeverity(string(text))
	*s = parsed
	return nil
}

// Issue is a single problem reported by one specialist. Issues are immutable
// after creation; deduplication derives new values instead of mutating.
type Issue struct {
	// Type names the problem category (e.g. "text-overflow",
	// "off-brand-color").
	Type string `json:"type"`

	Severity Severity `json:"severity"`

	// Page is the 1-based page number the issue refers to, or 0 when the
	// issue is document-wide.
	Page int `json:"page,omitempty"`

	Message string `json:"message"`

	// Source is the specialist that reported the issue.
	Source SpecialistKind `json:"source"`
}

// issueKey is the deduplication key. Page is intentionally not part of the
// key: the same defect reported on several pages collapses into one entry.
type issueKey struct {
	Type     string
	Severity Severity
}

// DeduplicatedIssue merges all reports of one issueKey. The descriptive
// fields come from the first-seen report.
type DeduplicatedIssue struct {
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
	Page     int      `json:"page,omitempty"`
	Message  string   `json:"message"`

	// Sources lists the distinct specialists that reported this issue.
	Sources []SpecialistKind `json:"sources"`

	// Occurrences equals len(Sources) and is at least 1.
	Occurrences int `json:"occurrences"`
}
