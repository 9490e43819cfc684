package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/linerhc/linerhc/internal/advisory"
	"github.com/linerhc/linerhc/internal/compliance"
	"github.com/linerhc/linerhc/internal/mix"
	"github.com/linerhc/linerhc/internal/model"
	"github.com/linerhc/linerhc/internal/report"
)

var predictCmd = newPredictCmd()

func newPredictCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "predict",
		Short: "Evaluate one mix without the interactive form",
		Long: "Evaluate one liner mix. Parameters come from --input (YAML or JSON), then\n" +
			"individual flags; anything unset keeps its default. Out-of-range values are rejected.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			sink, err := report.New(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			req, err := requestFromFlags(cmd)
			if err != nil {
				return err
			}
			if err := req.Validate(); err != nil {
				return err
			}

			logger, closer, err := openLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closer.Close()

			predictor, _, err := model.Open(cfg.ModelPath, logger)
			if err != nil {
				return err
			}

			warnings := advisory.Validate(req)
			logHC, err := predictor.Predict(req)
			if err != nil {
				if rerr := sink.Render(warnings, nil); rerr != nil {
					return rerr
				}
				return err
			}

			res := compliance.NewResult(logHC)
			res.ID = uuid.NewString()
			logger.Info("prediction", "id", res.ID, "log_hc", res.LogHC, "zone", res.Zone, "warnings", len(warnings))
			return sink.Render(warnings, &res)
		},
	}

	for _, p := range mix.Params() {
		usage := fmt.Sprintf("%s (%s), range %s", p.Label, p.Unit, p.RangeLabel())
		c.Flags().Float64(flagName(p.Key), p.Default, usage)
	}
	c.Flags().StringP("input", "i", "", "Read parameters from a YAML or JSON file (- for stdin)")
	c.Flags().StringP("format", "f", "text", "Output format: text or json")
	return c
}

func flagName(key string) string {
	return strings.ToLower(key)
}

// requestFromFlags starts from defaults, applies --input, then any
// explicitly set parameter flag.
func requestFromFlags(cmd *cobra.Command) (mix.Request, error) {
	req := mix.Defaults()

	if path, _ := cmd.Flags().GetString("input"); path != "" {
		in := cmd.InOrStdin()
		if path != "-" {
			f, err := os.Open(path)
			if err != nil {
				return req, fmt.Errorf("open input: %w", err)
			}
			defer f.Close()
			in = f
		}
		var err error
		if req, err = mix.DecodeRequest(in); err != nil {
			return req, err
		}
	}

	for _, p := range mix.Params() {
		name := flagName(p.Key)
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, err := cmd.Flags().GetFloat64(name)
		if err != nil {
			return req, err
		}
		if req, err = req.With(p.Key, v); err != nil {
			return req, err
		}
	}
	return req, nil
}
