package result

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/linerhc/linerhc/internal/advisory"
	"github.com/linerhc/linerhc/internal/compliance"
	"github.com/linerhc/linerhc/internal/router"
)

func TestResultScreen_ViewShowsFigures(t *testing.T) {
	s := New(nil, compliance.NewResult(-7.0))
	view := s.View(100, 40)

	for _, want := range []string{"-7.0000", "1.00e-07", "Green Zone"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResultScreen_ViewShowsWarnings(t *testing.T) {
	ws := []advisory.Warning{{Rule: "strength", Message: "UCS < 200 kPa (may not satisfy liner strength requirement)"}}
	s := New(ws, compliance.NewResult(-6.0))
	view := s.View(100, 40)

	if !strings.Contains(view, "UCS < 200 kPa") {
		t.Error("view missing strength warning")
	}
	if !strings.Contains(view, "Red Zone") {
		t.Error("view missing red verdict")
	}
}

func TestResultScreen_EnterPops(t *testing.T) {
	s := New(nil, compliance.NewResult(-6.7))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command on enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestResultScreen_OtherKeysIgnored(t *testing.T) {
	s := New(nil, compliance.NewResult(-6.7))
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("expected no command for unrelated key")
	}
}
