package result

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/linerhc/linerhc/internal/advisory"
	"github.com/linerhc/linerhc/internal/compliance"
	"github.com/linerhc/linerhc/internal/report"
	"github.com/linerhc/linerhc/internal/router"
	"github.com/linerhc/linerhc/internal/screen"
	"github.com/linerhc/linerhc/internal/ui/layout"
	"github.com/linerhc/linerhc/internal/ui/theme"
)

// ResultScreen shows one classified prediction with the warnings that were
// active when it was requested. It is discarded when the user goes back.
type ResultScreen struct {
	warnings []advisory.Warning
	result   compliance.Result
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen.
func New(warnings []advisory.Warning, result compliance.Result) *ResultScreen {
	return &ResultScreen{warnings: warnings, result: result}
}

func (s *ResultScreen) Init() tea.Cmd { return nil }

func (s *ResultScreen) Title() string { return "Prediction" }

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/Esc", Description: "Back to inputs"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Result returns the displayed prediction.
func (s *ResultScreen) Result() compliance.Result { return s.result }

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "backspace", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	body := report.Body(s.warnings, &s.result)
	card := theme.Card.Width(min(width-4, 84)).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
