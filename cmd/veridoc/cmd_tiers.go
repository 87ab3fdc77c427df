package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veridoc-io/veridoc/internal/ensemble"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List the available validation tiers",
	RunE:  runTiers,
}

func runTiers(cmd *cobra.Command, args []string) error {
	for _, tier := range ensemble.AllTiers {
		kinds := ensemble.ResolveTier(tier)
		names := make([]string, 0, len(kinds))
		for _, k := range kinds {
			names = append(names, k.String())
		}
		perPage := ensemble.EstimateCost(kinds, 1, false)

		fmt.Printf("%s\n", labelStyle.Render(tier.String()))
		fmt.Printf("  specialists: %s\n", strings.Join(names, ", "))
		fmt.Printf("  cost: %.4f %s per page\n", perPage.Total, perPage.Currency)
	}
	return nil
}
