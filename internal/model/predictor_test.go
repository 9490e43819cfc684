package model

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linerhc/linerhc/internal/compliance"
	"github.com/linerhc/linerhc/internal/mix"
)

// stubEstimator returns a fixed value and records the vector it saw.
type stubEstimator struct {
	n    int
	out  float64
	err  error
	seen []float64
}

func (s *stubEstimator) NumFeatures() int { return s.n }

func (s *stubEstimator) Predict(x []float64) (float64, error) {
	s.seen = x
	return s.out, s.err
}

func openFixture(t *testing.T, name string) *Predictor {
	t.Helper()
	p, _, err := Open(filepath.Join("testdata", name), nil)
	require.NoError(t, err)
	return p
}

func TestPredictor_Forest(t *testing.T) {
	p := openFixture(t, "forest.json")

	tests := []struct {
		name string
		edit func(*mix.Request)
		want float64
		zone compliance.Zone
	}{
		{"defaults", func(*mix.Request) {}, -7.3, compliance.ZoneGreen},
		{"weak", func(r *mix.Request) { r.UCS = 150 }, -6.7, compliance.ZoneAmber},
		{"weak and ash-heavy", func(r *mix.Request) { r.UCS = 150; r.FA = 20 }, -6.3, compliance.ZoneRed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mix.Defaults()
			tt.edit(&req)
			got, err := p.Predict(req)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Equal(t, tt.zone, compliance.Classify(got))
		})
	}
}

func TestPredictor_LinearExactBoundary(t *testing.T) {
	p := openFixture(t, "linear.json")
	got, err := p.Predict(mix.Defaults())
	require.NoError(t, err)
	assert.Equal(t, -7.0, got)

	res := compliance.NewResult(got)
	assert.Equal(t, compliance.ZoneGreen, res.Zone)
	assert.Equal(t, "1.00e-07", compliance.FormatHC(res.HC))
}

func TestPredictor_PassesVectorInFeatureOrder(t *testing.T) {
	est := &stubEstimator{n: 9, out: -7.5}
	p := New(est, nil)
	req := mix.Request{FA: 1, SCBA: 2, EC: 3, LL: 4, PI: 5, FSI: 6, MDUW: 7, OMC: 8, UCS: 9}

	_, err := p.Predict(req)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, est.seen)
}

func TestPredictor_ShapeMismatch(t *testing.T) {
	p := New(&stubEstimator{n: 8}, nil)
	_, err := p.Predict(mix.Defaults())
	require.Error(t, err)

	var predErr *PredictionError
	require.True(t, errors.As(err, &predErr))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestPredictor_EstimatorError(t *testing.T) {
	boom := errors.New("boom")
	p := New(&stubEstimator{n: 9, err: boom}, nil)
	_, err := p.Predict(mix.Defaults())

	var predErr *PredictionError
	require.True(t, errors.As(err, &predErr))
	assert.ErrorIs(t, err, boom)
}

func TestPredictor_NonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		p := New(&stubEstimator{n: 9, out: v}, nil)
		_, err := p.Predict(mix.Defaults())
		assert.ErrorIs(t, err, ErrNonFinite, "value %v", v)
	}
}

func TestForest_DirectShapeCheck(t *testing.T) {
	f := &Forest{Trees: []Tree{{Nodes: []Node{{Left: -1, Right: -1, Value: -7}}}}, features: 9}
	_, err := f.Predict([]float64{1, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
