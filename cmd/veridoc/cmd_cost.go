package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veridoc-io/veridoc/internal/ensemble"
)

var (
	costTier   string
	costPages  int
	costEnrich bool
)

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Estimate the cost of a validation run without executing it",
	RunE:  runCost,
}

func init() {
	costCmd.Flags().StringVarP(&costTier, "tier", "t", "balanced", "validation tier: fast, balanced, premium")
	costCmd.Flags().IntVarP(&costPages, "pages", "p", 1, "number of pages in the document")
	costCmd.Flags().BoolVar(&costEnrich, "enrichment", false, "include the visual enrichment addon")
}

func runCost(cmd *cobra.Command, args []string) error {
	if costPages < 0 {
		return fmt.Errorf("pages must not be negative")
	}

	tier, known := ensemble.ParseTier(costTier)
	if !known {
		fmt.Println(dimStyle.Render(fmt.Sprintf("unknown tier %q, using %s", costTier, tier)))
	}

	kinds := ensemble.ResolveTier(tier)
	est := ensemble.EstimateCost(kinds, costPages, costEnrich)

	fmt.Printf("%s, %d page(s):\n", tier, costPages)
	for _, kind := range kinds {
		fmt.Printf("  %-14s %.4f %s\n", kind, est.PerSpecialist[kind], est.Currency)
	}
	fmt.Printf("total: %.4f %s (%.4f per page)\n", est.Total, est.Currency, est.PerPage)
	return nil
}
