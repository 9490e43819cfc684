// Package compliance classifies a predicted hydraulic conductivity against
// the USEPA & MOEF landfill liner criterion.
package compliance

import (
	"fmt"
	"math"
)

// Zone is the traffic-light acceptance tier of a prediction.
type Zone string

const (
	ZoneGreen Zone = "GREEN"
	ZoneAmber Zone = "AMBER"
	ZoneRed   Zone = "RED"
)

// Zone upper bounds on log10(HC). Each bound belongs to the stricter zone.
const (
	GreenMaxLogHC = -7.0
	AmberMaxLogHC = -6.5
)

// Criterion is the regulatory limit the zones are measured against.
const Criterion = "HC ≤ 1 × 10⁻⁷ cm/s"

// Disclaimer accompanies every displayed prediction.
const Disclaimer = "Predictions are based on a machine learning model trained on experimental " +
	"FA–SCBA–EC liner data. Laboratory validation is recommended."

// Classify maps a predicted log10(HC) to exactly one zone.
func Classify(logHC float64) Zone {
	switch {
	case logHC <= GreenMaxLogHC:
		return ZoneGreen
	case logHC <= AmberMaxLogHC:
		return ZoneAmber
	default:
		return ZoneRed
	}
}

func (z Zone) String() string { return string(z) }

// Compliant reports whether the zone is acceptable, with or without caution.
func (z Zone) Compliant() bool {
	return z == ZoneGreen || z == ZoneAmber
}

// Headline is the one-line verdict for the zone.
func (z Zone) Headline() string {
	switch z {
	case ZoneGreen:
		return "ACCEPTABLE (Green Zone): Fully complies with USEPA & MOEF criteria"
	case ZoneAmber:
		return "ACCEPTABLE WITH CAUTION (Amber Zone)"
	case ZoneRed:
		return "NOT ACCEPTABLE (Red Zone)"
	}
	return fmt.Sprintf("unknown zone %q", string(z))
}

// Detail elaborates on the headline. Green has none.
func (z Zone) Detail() string {
	switch z {
	case ZoneAmber:
		return "Prediction is within experimental uncertainty limits.\n" +
			"Complies with landfill liner criteria considering laboratory variability."
	case ZoneRed:
		return "Does NOT comply with USEPA & MOEF landfill liner hydraulic conductivity requirement."
	}
	return ""
}

// Summary is the short compliance phrase for the zone.
func (z Zone) Summary() string {
	switch z {
	case ZoneGreen:
		return "fully compliant"
	case ZoneAmber:
		return "compliant within uncertainty margin"
	case ZoneRed:
		return "non-compliant"
	}
	return ""
}

// Result is a classified prediction. It lives only as long as its display.
type Result struct {
	ID    string  `json:"id,omitempty"`
	LogHC float64 `json:"predicted_log_hc"`
	HC    float64 `json:"predicted_hc"`
	Zone  Zone    `json:"zone"`
}

// NewResult derives HC and the zone from a predicted log10(HC).
func NewResult(logHC float64) Result {
	return Result{
		LogHC: logHC,
		HC:    math.Pow(10, logHC),
		Zone:  Classify(logHC),
	}
}

// FormatLogHC renders log10(HC) with four decimals.
func FormatLogHC(logHC float64) string {
	return fmt.Sprintf("%.4f", logHC)
}

// FormatHC renders HC in scientific notation with two decimals, e.g. "1.00e-07".
func FormatHC(hc float64) string {
	return fmt.Sprintf("%.2e", hc)
}
