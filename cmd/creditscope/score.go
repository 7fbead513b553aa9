package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/creditscope/creditscope/pkg/config"
	"github.com/creditscope/creditscope/pkg/scoring"
)

func newScoreCmd() *cobra.Command {
	var (
		prof      profileOpts
		strategy  string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a financial profile",
		Long:  `Computes a credit score for one profile and prints the factor breakdown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := prof.resolve(cmd)
			if err != nil {
				return err
			}

			cfg := loadCLIConfig()
			name := firstNonEmpty(strategy, cfg.Scoring.DefaultStrategy)
			var strat scoring.Strategy
			if name == "auto" {
				strat = scoring.ForLoanAmount(p.RequestedLoanAmount)
			} else {
				strat = config.StrategyFromWeights(name, cfg.ScoringWeights())
			}

			result := scoring.NewCalculator(strat).Score(&p)

			if outputFmt == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			printScoreResult(result)
			return nil
		},
	}

	prof.register(cmd)
	cmd.Flags().StringVar(&strategy, "strategy", "", "Scoring strategy: conservative, standard, aggressive, ai, or auto to pick by loan amount (default: from config)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

func printScoreResult(result scoring.ScoreResult) {
	if !result.Success {
		fmt.Printf("Score: %d (invalid profile)\n", result.Score)
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
		return
	}

	fmt.Printf("Score:    %d  (%s)\n", result.Score, result.Strategy)
	fmt.Printf("Risk:     %s\n", result.RiskLevel)
	fmt.Printf("Rating:   %s\n", result.Rating)
	fmt.Printf("Approval: %d%%\n", result.ApprovalProbability)

	if len(result.Breakdown) > 0 {
		fmt.Println("\nFactors:")
		for _, f := range result.Breakdown {
			fmt.Printf("  %-22s %10.2f  %s\n", f.Name, f.Value, f.Assessment)
		}
	}
}
