package form

import (
	"github.com/linerhc/linerhc/internal/advisory"
	"github.com/linerhc/linerhc/internal/compliance"
)

// predictionReadyMsg carries a classified prediction back to the form.
type predictionReadyMsg struct {
	Result   compliance.Result
	Warnings []advisory.Warning
}

// predictionFailedMsg reports a failed prediction; the form stays usable.
type predictionFailedMsg struct {
	Err error
}
