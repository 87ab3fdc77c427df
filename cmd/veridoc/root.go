package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "veridoc",
	Short: "Ensemble validation for rendered documents",
	Long: "Veridoc scores rendered documents with a weighted ensemble of\n" +
		"specialist evaluators and classifies the result into a letter-grade verdict.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(costCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(serveMCPCmd)
	rootCmd.Version = version
}
