// Package main provides the creditscope CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/creditscope/creditscope/pkg/config"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "creditscope",
		Short: "Rule-based credit scoring and loan decisions",
		Long: `Creditscope scores consumer financial profiles with deterministic
strategies and turns the score into an explained loan decision.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newScoreCmd(),
		newCompareCmd(),
		newDecideCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadCLIConfig loads config from the working directory, falling back to
// defaults on any failure.
func loadCLIConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return config.DefaultConfig()
	}
	cfgFile := config.FindConfigFile(cwd)
	if cfgFile == "" {
		return config.DefaultConfig()
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
