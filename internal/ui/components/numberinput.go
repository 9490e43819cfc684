package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/linerhc/linerhc/internal/mix"
	"github.com/linerhc/linerhc/internal/ui/theme"
)

// NumberInput is a bounded numeric field backed by bubbles/textinput.
// It owns range enforcement: Value never leaves [Param.Min, Param.Max].
type NumberInput struct {
	Param mix.Param
	Model textinput.Model
	Step  float64
	last  float64
}

// NewNumberInput creates an unfocused input holding p's default.
func NewNumberInput(p mix.Param) NumberInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 10
	ti.SetWidth(10)
	// Clipboard reads arrive as a private message that cannot be filtered.
	ti.KeyMap.Paste.SetEnabled(false)
	ti.SetValue(formatValue(p.Default))

	return NumberInput{
		Param: p,
		Model: ti,
		Step:  1,
		last:  p.Default,
	}
}

// Update handles messages. Typed and pasted text is dropped unless it is
// digits with at most one decimal point overall; "+" and "-" step the value
// by Step.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "+", "=":
			n.SetValue(n.Value() + n.Step)
			return n, nil
		case "-":
			n.SetValue(n.Value() - n.Step)
			return n, nil
		}
		if msg.Text != "" && !n.accepts(msg.Text) {
			return n, nil
		}
	case tea.PasteMsg:
		if !n.accepts(msg.Content) {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// accepts reports whether inserting text keeps the field numeric.
func (n NumberInput) accepts(text string) bool {
	for _, r := range text {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return strings.Count(n.Model.Value(), ".")+strings.Count(text, ".") <= 1
}

// View renders the input, followed by the value that will be used whenever
// it differs from the typed text.
func (n NumberInput) View() string {
	view := n.Model.View()
	if n.OutOfRange() {
		view += " " + lipgloss.NewStyle().Foreground(theme.Warning).Render("→ "+formatValue(n.Value()))
	}
	return view
}

// Value returns the clamped numeric value. Text that does not parse, such
// as an empty field, yields the last committed value.
func (n NumberInput) Value() float64 {
	if v, ok := n.parse(); ok {
		return n.Param.Clamp(v)
	}
	return n.last
}

// SetValue clamps v, commits it and replaces the text.
func (n *NumberInput) SetValue(v float64) {
	v = n.Param.Clamp(v)
	n.last = v
	n.Model.SetValue(formatValue(v))
}

// OutOfRange reports whether the typed text is not what Value returns:
// it is empty, does not parse, or lies outside the range.
func (n NumberInput) OutOfRange() bool {
	v, ok := n.parse()
	return !ok || !n.Param.Contains(v)
}

// Focus focuses the underlying text input.
func (n *NumberInput) Focus() tea.Cmd {
	return n.Model.Focus()
}

// Blur unfocuses the input and rewrites its text to the clamped value.
func (n *NumberInput) Blur() {
	n.Model.Blur()
	n.SetValue(n.Value())
}

// Focused reports whether the input has focus.
func (n NumberInput) Focused() bool {
	return n.Model.Focused()
}

func (n NumberInput) parse() (float64, bool) {
	s := strings.TrimSpace(n.Model.Value())
	if s == "" || s == "." {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
