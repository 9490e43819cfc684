// Package advisory checks a liner mix for cross-field inconsistencies.
// Every finding is a warning; none of them prevent a prediction.
package advisory

import (
	"math"

	"github.com/linerhc/linerhc/internal/mix"
)

const (
	// CompositionTotal is the expected FA + SCBA + EC sum, in percent.
	CompositionTotal = 100.0
	// CompositionTolerance is the allowed deviation from CompositionTotal.
	CompositionTolerance = 1.0
	// MinLinerUCS is the minimum 28-day UCS for a liner, in kPa.
	MinLinerUCS = 200.0
)

// Warning is an advisory finding shown above the prediction.
type Warning struct {
	Rule    string
	Message string
}

func (w Warning) String() string { return w.Message }

// Rule is a single advisory check.
// Check returns a warning and true when the rule fires.
type Rule interface {
	Name() string
	Check(req mix.Request) (Warning, bool)
}

// DefaultRules returns the advisory rules in display order.
func DefaultRules() []Rule {
	return []Rule{
		&CompositionRule{},
		&StrengthRule{},
		&AtterbergRule{},
	}
}

// Run evaluates every rule independently and collects all that fire, in order.
func Run(rules []Rule, req mix.Request) []Warning {
	var out []Warning
	for _, r := range rules {
		if w, ok := r.Check(req); ok {
			out = append(out, w)
		}
	}
	return out
}

// Validate runs DefaultRules against req. An empty result means no warnings.
func Validate(req mix.Request) []Warning {
	return Run(DefaultRules(), req)
}

// CompositionRule fires when FA + SCBA + EC is more than the tolerance away from 100.
type CompositionRule struct{}

func (r *CompositionRule) Name() string { return "composition" }

func (r *CompositionRule) Check(req mix.Request) (Warning, bool) {
	if math.Abs(req.Composition()-CompositionTotal) > CompositionTolerance {
		return Warning{Rule: r.Name(), Message: "FA + SCBA + EC should sum to 100%"}, true
	}
	return Warning{}, false
}

// StrengthRule fires when UCS is below the liner strength requirement.
type StrengthRule struct{}

func (r *StrengthRule) Name() string { return "strength" }

func (r *StrengthRule) Check(req mix.Request) (Warning, bool) {
	if req.UCS < MinLinerUCS {
		return Warning{Rule: r.Name(), Message: "UCS < 200 kPa (may not satisfy liner strength requirement)"}, true
	}
	return Warning{}, false
}

// AtterbergRule fires when the Liquid Limit is below the Plasticity Index.
type AtterbergRule struct{}

func (r *AtterbergRule) Name() string { return "atterberg" }

func (r *AtterbergRule) Check(req mix.Request) (Warning, bool) {
	if req.LL < req.PI {
		return Warning{Rule: r.Name(), Message: "Liquid Limit should be greater than Plasticity Index"}, true
	}
	return Warning{}, false
}
