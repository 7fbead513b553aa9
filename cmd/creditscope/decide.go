package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/creditscope/creditscope/pkg/config"
	"github.com/creditscope/creditscope/pkg/decision"
	"github.com/creditscope/creditscope/pkg/surface"
)

func newDecideCmd() *cobra.Command {
	var (
		prof      profileOpts
		strategy  string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Full loan decision for a profile",
		Long: `Scores the profile, applies the approval threshold, and prints the
decision with reasons, loan products, and improvement recommendations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := prof.resolve(cmd)
			if err != nil {
				return err
			}

			cfg := loadCLIConfig()
			name := firstNonEmpty(strategy, cfg.Scoring.DefaultStrategy)
			svc := decision.NewServiceWithStrategy(config.StrategyFromWeights(name, cfg.ScoringWeights()))

			d := svc.Decide(&p)

			renderer := surface.ByName(outputFmt)
			if err := renderer.Render(os.Stdout, &d); err != nil {
				return fmt.Errorf("rendering: %w", err)
			}
			return nil
		},
	}

	prof.register(cmd)
	cmd.Flags().StringVar(&strategy, "strategy", "", "Scoring strategy: conservative, standard, aggressive, ai (default: from config)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text, json, or markdown")

	return cmd
}
