package mix

import "fmt"

// Param describes one bounded numeric input of the liner mix form.
type Param struct {
	Key     string
	Label   string
	Unit    string
	Min     float64
	Max     float64
	Default float64
}

// Clamp forces v into [Min, Max].
func (p Param) Clamp(v float64) float64 {
	if v < p.Min {
		return p.Min
	}
	if v > p.Max {
		return p.Max
	}
	return v
}

// Contains reports whether v lies within [Min, Max].
func (p Param) Contains(v float64) bool {
	return v >= p.Min && v <= p.Max
}

// RangeLabel renders the accepted range, e.g. "0–100".
func (p Param) RangeLabel() string {
	return fmt.Sprintf("%g–%g", p.Min, p.Max)
}

// Parameter keys, in feature order.
const (
	KeyFA   = "FA"
	KeySCBA = "SCBA"
	KeyEC   = "EC"
	KeyLL   = "LL"
	KeyPI   = "PI"
	KeyFSI  = "FSI"
	KeyMDUW = "MDUW"
	KeyOMC  = "OMC"
	KeyUCS  = "UCS"
)

// catalogue is ordered exactly as the estimator expects its features.
var catalogue = []Param{
	{Key: KeyFA, Label: "Fly Ash", Unit: "%", Min: 0, Max: 100, Default: 10},
	{Key: KeySCBA, Label: "SCBA", Unit: "%", Min: 0, Max: 100, Default: 10},
	{Key: KeyEC, Label: "Expansive Clay", Unit: "%", Min: 0, Max: 100, Default: 80},
	{Key: KeyLL, Label: "Liquid Limit", Unit: "%", Min: 20, Max: 120, Default: 70},
	{Key: KeyPI, Label: "Plasticity Index", Unit: "%", Min: 5, Max: 80, Default: 31},
	{Key: KeyFSI, Label: "Free Swell Index", Unit: "%", Min: 0, Max: 200, Default: 38},
	{Key: KeyMDUW, Label: "Maximum Dry Unit Weight", Unit: "kN/m³", Min: 10, Max: 25, Default: 14},
	{Key: KeyOMC, Label: "Optimum Moisture Content", Unit: "%", Min: 5, Max: 40, Default: 32},
	{Key: KeyUCS, Label: "UCS (28 days)", Unit: "kPa", Min: 50, Max: 1000, Default: 321},
}

// Params returns the parameter catalogue in feature order.
func Params() []Param {
	out := make([]Param, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup returns the parameter with the given key.
func Lookup(key string) (Param, bool) {
	for _, p := range catalogue {
		if p.Key == key {
			return p, true
		}
	}
	return Param{}, false
}

// FeatureOrder returns the parameter keys in the order Vector emits them.
func FeatureOrder() []string {
	keys := make([]string, len(catalogue))
	for i, p := range catalogue {
		keys[i] = p.Key
	}
	return keys
}
