package model

import (
	"errors"
	"fmt"
)

var (
	ErrFeatureMismatch    = errors.New("feature schema mismatch")
	ErrUnsupportedVersion = errors.New("unsupported artifact format version")
	ErrMalformedTree      = errors.New("malformed tree")
	ErrShapeMismatch      = errors.New("input vector shape mismatch")
	ErrNonFinite          = errors.New("estimator returned a non-finite value")
)

// ModelLoadError indicates the artifact is missing or malformed.
// The process cannot serve predictions without it.
type ModelLoadError struct {
	Path string
	Err  error
}

func (e *ModelLoadError) Error() string {
	return fmt.Sprintf("load model %s: %v", e.Path, e.Err)
}

func (e *ModelLoadError) Unwrap() error { return e.Err }

// PredictionError indicates a single prediction failed. The session survives it.
type PredictionError struct {
	Err error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("prediction failed: %v", e.Err)
}

func (e *PredictionError) Unwrap() error { return e.Err }
