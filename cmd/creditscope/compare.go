package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/creditscope/creditscope/pkg/scoring"
)

func newCompareCmd() *cobra.Command {
	var (
		prof      profileOpts
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Score a profile with every strategy",
		Long:  `Runs all scoring strategies over one profile and prints the results side by side.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := prof.resolve(cmd)
			if err != nil {
				return err
			}

			results := scoring.CompareStrategies(&p)

			if outputFmt == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			fmt.Printf("%-14s %6s  %-12s %-12s %9s\n", "STRATEGY", "SCORE", "RISK", "RATING", "APPROVAL")
			for _, name := range []string{"conservative", "standard", "aggressive", "ai"} {
				r, ok := results[name]
				if !ok {
					continue
				}
				if !r.Success {
					fmt.Printf("%-14s %6d  invalid profile\n", name, r.Score)
					continue
				}
				fmt.Printf("%-14s %6d  %-12s %-12s %8d%%\n", name, r.Score, r.RiskLevel, r.Rating, r.ApprovalProbability)
			}
			return nil
		},
	}

	prof.register(cmd)
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}
