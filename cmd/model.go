package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linerhc/linerhc/internal/model"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Inspect the estimator artifact",
}

var modelInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Load the artifact and describe it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		a, err := model.Load(cfg.ModelPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		name := a.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(out, "Path:      %s\n", cfg.ModelPath)
		fmt.Fprintf(out, "Name:      %s\n", name)
		fmt.Fprintf(out, "Kind:      %s\n", a.Kind)
		fmt.Fprintf(out, "Format:    %s\n", a.FormatVersion)
		fmt.Fprintf(out, "Features:  %s\n", strings.Join(a.Features, ", "))
		switch a.Kind {
		case model.KindForest:
			nodes := 0
			for _, t := range a.Forest.Trees {
				nodes += len(t.Nodes)
			}
			fmt.Fprintf(out, "Trees:     %d (%d nodes)\n", len(a.Forest.Trees), nodes)
		case model.KindLinear:
			fmt.Fprintf(out, "Intercept: %g\n", a.Linear.Intercept)
		}
		return nil
	},
}

func init() {
	modelCmd.AddCommand(modelInfoCmd)
}
