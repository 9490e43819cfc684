package model

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/linerhc/linerhc/internal/mix"
)

// DefaultPath is where the artifact is looked up when nothing overrides it.
const DefaultPath = "rf_gwo_model.json"

// SupportedMajor is the artifact format major version this build reads.
const SupportedMajor = "v1"

// Artifact kinds.
const (
	KindForest = "forest"
	KindLinear = "linear"
)

//go:embed artifact.schema.json
var artifactSchemaJSON []byte

// Artifact is a decoded estimator file.
type Artifact struct {
	FormatVersion string   `json:"format_version"`
	Kind          string   `json:"kind"`
	Name          string   `json:"name,omitempty"`
	Target        string   `json:"target,omitempty"`
	Features      []string `json:"features"`
	Forest        *Forest  `json:"forest,omitempty"`
	Linear        *Linear  `json:"linear,omitempty"`
}

// Estimator returns the estimator the artifact describes.
func (a *Artifact) Estimator() Estimator {
	if a.Kind == KindLinear {
		return a.Linear
	}
	return a.Forest
}

// Load reads and checks the artifact at path. Every failure is a *ModelLoadError.
func Load(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ModelLoadError{Path: path, Err: err}
	}
	a, err := Parse(data)
	if err != nil {
		return nil, &ModelLoadError{Path: path, Err: err}
	}
	return a, nil
}

// Parse decodes an artifact, validating it against the artifact schema,
// the supported format version and the feature order of mix.Request.
func Parse(data []byte) (*Artifact, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	sch, err := artifactSchema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}

	if !semver.IsValid(a.FormatVersion) || semver.Major(a.FormatVersion) != SupportedMajor {
		return nil, fmt.Errorf("%w: %s (want %s.x.y)", ErrUnsupportedVersion, a.FormatVersion, SupportedMajor)
	}

	// Catch ordering drift here rather than mispredicting later.
	if want := mix.FeatureOrder(); !slices.Equal(a.Features, want) {
		return nil, fmt.Errorf("%w: artifact has %v, request emits %v", ErrFeatureMismatch, a.Features, want)
	}

	n := len(a.Features)
	switch a.Kind {
	case KindForest:
		for i, t := range a.Forest.Trees {
			if err := t.check(n); err != nil {
				return nil, fmt.Errorf("tree %d: %w", i, err)
			}
		}
		a.Forest.features = n
	case KindLinear:
		if len(a.Linear.Coefficients) != n {
			return nil, fmt.Errorf("%w: %d coefficients for %d features", ErrFeatureMismatch, len(a.Linear.Coefficients), n)
		}
	}
	return &a, nil
}

var artifactSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(artifactSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse artifact schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	const url = "schema://artifact.json"
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile artifact schema: %w", err)
	}
	return compiled, nil
})
