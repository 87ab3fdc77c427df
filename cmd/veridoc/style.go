package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/veridoc-io/veridoc/internal/ensemble"
)

var (
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	labelStyle = lipgloss.NewStyle().Bold(true)
)

func statusStyle(s ensemble.Status) lipgloss.Style {
	switch s {
	case ensemble.StatusPass:
		return passStyle
	case ensemble.StatusWarning:
		return warnStyle
	default:
		return failStyle
	}
}

func severityLabel(s ensemble.Severity) string {
	switch s {
	case ensemble.SeverityCritical, ensemble.SeverityHigh:
		return failStyle.Render(s.String())
	case ensemble.SeverityMedium:
		return warnStyle.Render(s.String())
	default:
		return dimStyle.Render(s.String())
	}
}

func formatProgress(event ensemble.ProgressEvent) string {
	switch event.Status {
	case ensemble.ProgressWorking:
		return fmt.Sprintf("  %s %s...", dimStyle.Render("●"), event.Specialist)
	case ensemble.ProgressComplete:
		return fmt.Sprintf("  %s %s complete", passStyle.Render("✓"), event.Specialist)
	case ensemble.ProgressFailed:
		return fmt.Sprintf("  %s %s failed: %s", failStyle.Render("✗"), event.Specialist, event.Message)
	default:
		return fmt.Sprintf("  %s %s (%s)", dimStyle.Render("○"), event.Specialist, event.Status)
	}
}

func printSummary(report *ensemble.Report) {
	style := statusStyle(report.Verdict.Status)

	fmt.Printf("%s  %s  %s\n",
		style.Render(report.Verdict.Grade),
		style.Render(string(report.Verdict.Status)),
		dimStyle.Render(fmt.Sprintf("(score %.3f, tier %s)", report.OverallScore, report.Tier)))
	fmt.Println(report.Verdict.Description)
	fmt.Println()

	fmt.Println(labelStyle.Render("Specialists"))
	for _, entry := range report.Breakdown {
		line := fmt.Sprintf("  %-14s %.3f  (weight %.2f)", entry.Specialist, entry.Score, entry.Weight)
		if entry.Error != "" {
			line += "  " + failStyle.Render("failed: "+entry.Error)
		}
		fmt.Println(line)
	}

	if len(report.Issues) > 0 {
		fmt.Println()
		fmt.Println(labelStyle.Render("Issues"))
		for _, is := range report.Issues {
			where := "document-wide"
			if is.Page > 0 {
				where = fmt.Sprintf("page %d", is.Page)
			}
			fmt.Printf("  [%s] %s (%s, seen %dx): %s\n",
				severityLabel(is.Severity), is.Type, where, is.Occurrences, is.Message)
		}
	}

	if len(report.Artifacts) > 0 {
		fmt.Println()
		fmt.Println(labelStyle.Render("Correction previews"))
		for _, a := range report.Artifacts {
			fmt.Printf("  page %d: %s\n", a.Page, a.Path)
		}
	}

	fmt.Println()
	fmt.Println(dimStyle.Render(fmt.Sprintf("cost ~%.4f %s, %d ms, run %s",
		report.Cost.Total, report.Cost.Currency, report.DurationMs, report.RunID)))
}
