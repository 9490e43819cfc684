package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/linerhc/linerhc/internal/compliance"
)

// Color palette: muted field-report tones with traffic-light accents
var (
	Primary   = lipgloss.Color("#38BDF8") // Sky
	Secondary = lipgloss.Color("#A3A3A3") // Neutral
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(Text).
		Width(34)
)

// Banners
var (
	WarningBanner = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	ErrorBanner = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgCard).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// ZoneColor returns the traffic-light color of a compliance zone.
func ZoneColor(z compliance.Zone) color.Color {
	switch z {
	case compliance.ZoneGreen:
		return Success
	case compliance.ZoneAmber:
		return Warning
	}
	return Error
}

// ZoneBanner styles a zone verdict.
func ZoneBanner(z compliance.Zone) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ZoneColor(z)).Bold(true)
}

// ZoneMarker is the glyph shown before a verdict.
func ZoneMarker(z compliance.Zone) string {
	return lipgloss.NewStyle().Foreground(ZoneColor(z)).Render("●")
}
