package form

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/linerhc/linerhc/internal/advisory"
	"github.com/linerhc/linerhc/internal/compliance"
	"github.com/linerhc/linerhc/internal/mix"
	"github.com/linerhc/linerhc/internal/router"
	"github.com/linerhc/linerhc/internal/screen"
	"github.com/linerhc/linerhc/internal/screens/result"
	"github.com/linerhc/linerhc/internal/ui/components"
	"github.com/linerhc/linerhc/internal/ui/layout"
)

// Predictor returns the predicted log10(HC) for a request.
type Predictor interface {
	Predict(req mix.Request) (float64, error)
}

// FormScreen collects the nine liner parameters, shows advisory warnings as
// they are typed, and runs a prediction on demand.
type FormScreen struct {
	predictor Predictor
	logger    *slog.Logger
	inputs    []components.NumberInput
	button    components.Button
	focus     int // len(inputs) means the predict button
	pending   bool
	errMsg    string
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates a FormScreen holding the default parameters, with the first
// field focused.
func New(predictor Predictor, logger *slog.Logger) *FormScreen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &FormScreen{
		predictor: predictor,
		logger:    logger,
	}
	for _, p := range mix.Params() {
		s.inputs = append(s.inputs, components.NewNumberInput(p))
	}
	s.button = components.NewButton("Predict Hydraulic Conductivity", false, func() tea.Cmd {
		return s.predict()
	})
	s.inputs[0].Focus()
	return s
}

func (s *FormScreen) Init() tea.Cmd {
	return s.inputs[s.focus].Focus()
}

func (s *FormScreen) Title() string {
	return "Input Parameters"
}

func (s *FormScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Move"},
	}
	if s.onButton() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Predict"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "+/-", Description: "Step"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+R", Description: "Predict"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

// Request returns the current parameters. Values are always within range.
func (s *FormScreen) Request() mix.Request {
	var req mix.Request
	for _, in := range s.inputs {
		req, _ = req.With(in.Param.Key, in.Value())
	}
	return req
}

// Warnings returns the advisory warnings for the current parameters.
func (s *FormScreen) Warnings() []advisory.Warning {
	return advisory.Validate(s.Request())
}

func (s *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case predictionReadyMsg:
		return s.handlePredictionReady(msg)

	case predictionFailedMsg:
		s.pending = false
		s.errMsg = msg.Err.Error()
		s.logger.Warn("prediction failed", "err", msg.Err)
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	// Cursor blinks and the like go to the focused field.
	if !s.onButton() {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *FormScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return s, s.moveFocus(1)
	case "shift+tab", "up":
		return s, s.moveFocus(-1)
	case "ctrl+r":
		return s, s.predict()
	case "enter":
		if s.onButton() {
			var cmd tea.Cmd
			s.button, cmd = s.button.Update(msg)
			return s, cmd
		}
		return s, s.moveFocus(1)
	}

	if s.onButton() {
		return s, nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *FormScreen) onButton() bool {
	return s.focus == len(s.inputs)
}

// moveFocus cycles focus through the fields and the button. Leaving a field
// rewrites it to its clamped value.
func (s *FormScreen) moveFocus(delta int) tea.Cmd {
	if !s.onButton() {
		s.inputs[s.focus].Blur()
	}
	n := len(s.inputs) + 1
	s.focus = ((s.focus+delta)%n + n) % n
	s.button.Active = s.onButton()
	if s.onButton() {
		return nil
	}
	return s.inputs[s.focus].Focus()
}

// predict runs the estimator off the update loop. Only one prediction is
// in flight at a time.
func (s *FormScreen) predict() tea.Cmd {
	if s.pending {
		return nil
	}
	s.pending = true
	s.errMsg = ""

	req := s.Request()
	warnings := advisory.Validate(req)
	p := s.predictor
	return func() tea.Msg {
		logHC, err := p.Predict(req)
		if err != nil {
			return predictionFailedMsg{Err: err}
		}
		res := compliance.NewResult(logHC)
		res.ID = uuid.NewString()
		return predictionReadyMsg{Result: res, Warnings: warnings}
	}
}

func (s *FormScreen) handlePredictionReady(msg predictionReadyMsg) (screen.Screen, tea.Cmd) {
	s.pending = false
	s.logger.Info("prediction",
		"id", msg.Result.ID,
		"log_hc", msg.Result.LogHC,
		"zone", msg.Result.Zone,
		"warnings", len(msg.Warnings),
	)
	next := result.New(msg.Warnings, msg.Result)
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}
