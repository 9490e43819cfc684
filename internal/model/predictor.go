// Package model loads the pre-trained hydraulic conductivity estimator and
// adapts it to mix requests.
package model

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/linerhc/linerhc/internal/mix"
)

// Predictor wraps an Estimator. It is built once at startup and only read afterwards.
type Predictor struct {
	est    Estimator
	logger *slog.Logger
}

// New wraps est. A nil logger discards log output.
func New(est Estimator, logger *slog.Logger) *Predictor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Predictor{est: est, logger: logger}
}

// Open loads the artifact at path and wraps its estimator.
func Open(path string, logger *slog.Logger) (*Predictor, *Artifact, error) {
	a, err := Load(path)
	if err != nil {
		return nil, nil, err
	}
	p := New(a.Estimator(), logger)
	p.logger.Info("model loaded",
		"path", path,
		"kind", a.Kind,
		"format_version", a.FormatVersion,
		"features", len(a.Features),
	)
	return p, a, nil
}

// Predict returns the predicted log10(HC) for req.
// Any failure is a *PredictionError.
func (p *Predictor) Predict(req mix.Request) (float64, error) {
	x := req.Vector()
	if len(x) != p.est.NumFeatures() {
		return 0, &PredictionError{Err: fmt.Errorf("%w: got %d features, want %d", ErrShapeMismatch, len(x), p.est.NumFeatures())}
	}
	y, err := p.est.Predict(x)
	if err != nil {
		p.logger.Warn("prediction failed", "err", err)
		return 0, &PredictionError{Err: err}
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		p.logger.Warn("prediction failed", "err", ErrNonFinite, "value", y)
		return 0, &PredictionError{Err: ErrNonFinite}
	}
	return y, nil
}
