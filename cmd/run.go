package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/linerhc/linerhc/internal/app"
	"github.com/linerhc/linerhc/internal/config"
	"github.com/linerhc/linerhc/internal/logging"
	"github.com/linerhc/linerhc/internal/model"
)

// runApp loads the model and launches the TUI. A model that fails to load
// ends the process before any screen is shown.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI; logs go to a file or nowhere.
	logger, closer, err := openLogger(cfg, nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	predictor, _, err := model.Open(cfg.ModelPath, logger)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Predictor: predictor,
		Logger:    logger,
	})
}

// openLogger returns a logger for cfg.LogFile, or for fallback when no file
// is configured. A nil fallback discards logs.
func openLogger(cfg config.Config, fallback io.Writer) (*slog.Logger, io.Closer, error) {
	if cfg.LogFile != "" {
		logger, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		return logger, closer, nil
	}
	if fallback == nil {
		return logging.Discard(), io.NopCloser(nil), nil
	}
	return logging.New(fallback, cfg.LogLevel), io.NopCloser(nil), nil
}
