// Package report renders advisory warnings and a classified prediction.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/linerhc/linerhc/internal/advisory"
	"github.com/linerhc/linerhc/internal/compliance"
	"github.com/linerhc/linerhc/internal/ui/theme"
)

// Sink receives the outcome of one evaluation. result is nil when no
// prediction was triggered or it failed.
type Sink interface {
	Render(warnings []advisory.Warning, result *compliance.Result) error
}

// Text writes styled banners. Colors are dropped when w is not a terminal.
type Text struct {
	w io.Writer
}

// NewText returns a Text sink writing to w.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

func (t *Text) Render(warnings []advisory.Warning, result *compliance.Result) error {
	_, err := lipgloss.Fprint(t.w, Body(warnings, result))
	return err
}

// Body composes the warning banners and, when present, the result block.
func Body(warnings []advisory.Warning, result *compliance.Result) string {
	var sections []string
	for _, w := range warnings {
		sections = append(sections, theme.WarningBanner.Render("⚠ "+w.Message))
	}
	if result != nil {
		if len(sections) > 0 {
			sections = append(sections, "")
		}
		sections = append(sections, ResultBlock(*result))
	}
	if len(sections) == 0 {
		return ""
	}
	return strings.Join(sections, "\n") + "\n"
}

// ResultBlock renders the prediction figures, the zone verdict and the disclaimer.
func ResultBlock(r compliance.Result) string {
	lines := []string{
		theme.Title.Render("Prediction Results"),
		"",
		fmt.Sprintf("Predicted log₁₀(HC): %s", theme.Body.Bold(true).Render(compliance.FormatLogHC(r.LogHC))),
		fmt.Sprintf("Predicted HC:        %s cm/s", theme.Body.Bold(true).Render(compliance.FormatHC(r.HC))),
		"",
		theme.ZoneMarker(r.Zone) + " " + theme.ZoneBanner(r.Zone).Render(r.Zone.Headline()),
	}
	if d := r.Zone.Detail(); d != "" {
		lines = append(lines, "", theme.Body.Render(d))
	}
	lines = append(lines, "", theme.Hint.Render("Note: "+compliance.Disclaimer))
	return strings.Join(lines, "\n")
}

// JSON writes one JSON document per evaluation.
type JSON struct {
	w io.Writer
}

// NewJSON returns a JSON sink writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

type jsonReport struct {
	Warnings  []string           `json:"warnings"`
	Result    *compliance.Result `json:"result"`
	Compliant *bool              `json:"compliant,omitempty"`
	Summary   string             `json:"summary,omitempty"`
}

func (j *JSON) Render(warnings []advisory.Warning, result *compliance.Result) error {
	out := jsonReport{Warnings: make([]string, 0, len(warnings)), Result: result}
	for _, w := range warnings {
		out.Warnings = append(out.Warnings, w.Message)
	}
	if result != nil {
		compliant := result.Zone.Compliant()
		out.Compliant = &compliant
		out.Summary = result.Zone.Summary()
	}
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// New returns the sink for a named output format.
func New(format string, w io.Writer) (Sink, error) {
	switch format {
	case "", "text":
		return NewText(w), nil
	case "json":
		return NewJSON(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q (want text or json)", format)
}
