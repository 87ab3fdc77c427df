package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veridoc-io/veridoc/internal/export"
)

var (
	validateTier    string
	validateFormat  string
	validateMeta    []string
	validateVerbose bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <dir>",
	Short: "Validate a directory of rendered page images",
	Long: `Reads the page images in <dir> (in natural filename order, so page-2
precedes page-10), runs the specialist
ensemble enabled by the tier, and prints the verdict. Project settings are
read from veridoc.yml in the same directory when present.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateTier, "tier", "t", "", "validation tier: fast, balanced, premium")
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "pretty", "output format: pretty, json, markdown")
	validateCmd.Flags().StringArrayVarP(&validateMeta, "meta", "m", nil, "document metadata as key=value (repeatable)")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "show per-specialist progress")
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := newLogger(validateVerbose)

	engine, _, tier, err := buildEngine(args[0], validateTier, log)
	if err != nil {
		return err
	}
	defer engine.Close()

	doc, err := loadDocument(args[0], validateMeta)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range engine.Progress() {
			if validateVerbose {
				fmt.Fprintln(os.Stderr, formatProgress(event))
			}
		}
	}()

	report := engine.Validate(cmd.Context(), doc, tier)
	engine.Close()
	<-done

	switch validateFormat {
	case "json":
		return export.WriteJSON(os.Stdout, report)
	case "markdown":
		return export.WriteMarkdown(os.Stdout, report)
	case "pretty":
		printSummary(report)
		return nil
	default:
		return fmt.Errorf("unknown format %q", validateFormat)
	}
}
