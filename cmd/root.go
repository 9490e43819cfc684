package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/linerhc/linerhc/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "linerhc",
	Short: "Hydraulic conductivity predictor for landfill liners",
	Long: "linerhc predicts the hydraulic conductivity of FA–SCBA–EC landfill liner mixes\n" +
		"and classifies it against the USEPA & MOEF criterion (HC ≤ 1 × 10⁻⁷ cm/s).",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("model", "", "Path to the estimator artifact (overrides "+config.EnvModel+")")
	rootCmd.PersistentFlags().String("log-file", "", "Append structured logs to this file (overrides "+config.EnvLogFile+")")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides "+config.EnvLogLevel+")")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(modelCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig applies flags (highest priority) over environment variables
// and defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.FromEnv()
	if p, _ := cmd.Flags().GetString("model"); p != "" {
		cfg.ModelPath = p
	}
	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		cfg.LogFile = p
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.LogLevel = strings.ToLower(l)
	}
	return cfg, cfg.Validate()
}
