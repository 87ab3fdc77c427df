package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/veridoc-io/veridoc/internal/ensemble"
)

// WriteMarkdown renders a human-readable validation report.
func WriteMarkdown(w io.Writer, report *ensemble.Report) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Validation Report\n\n")
	fmt.Fprintf(&sb, "- **Run:** `%s`\n", report.RunID)
	fmt.Fprintf(&sb, "- **Tier:** %s\n", report.Tier)
	fmt.Fprintf(&sb, "- **Score:** %.3f\n", report.OverallScore)
	fmt.Fprintf(&sb, "- **Verdict:** %s (%s): %s\n", report.Verdict.Grade, report.Verdict.Status, report.Verdict.Description)
	fmt.Fprintf(&sb, "- **Estimated cost:** %.4f %s\n\n", report.Cost.Total, report.Cost.Currency)

	sb.WriteString("## Specialist Breakdown\n\n")
	sb.WriteString("| Specialist | Score | Weight | Contribution | Grade | Error |\n")
	sb.WriteString("|---|---|---|---|---|---|\n")
	for _, entry := range report.Breakdown {
		errText := entry.Error
		if errText == "" {
			errText = "none"
		}
		fmt.Fprintf(&sb, "| %s | %.3f | %.2f | %.4f | %s | %s |\n",
			entry.Specialist, entry.Score, entry.Weight, entry.Contribution, entry.Grade, errText)
	}
	sb.WriteString("\n")

	if len(report.Issues) > 0 {
		sb.WriteString("## Issues\n\n")
		for _, is := range report.Issues {
			page := "document-wide"
			if is.Page > 0 {
				page = fmt.Sprintf("page %d", is.Page)
			}
			sources := make([]string, 0, len(is.Sources))
			for _, src := range is.Sources {
				sources = append(sources, src.String())
			}
			fmt.Fprintf(&sb, "- **%s** (%s, %s, seen %dx): %s _(reported by %s)_\n",
				is.Type, is.Severity, page, is.Occurrences, is.Message, strings.Join(sources, ", "))
		}
		sb.WriteString("\n")
	}

	if len(report.Artifacts) > 0 {
		sb.WriteString("## Correction Previews\n\n")
		for _, a := range report.Artifacts {
			fmt.Fprintf(&sb, "- page %d: `%s`\n", a.Page, a.Path)
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
