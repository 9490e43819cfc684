package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/linerhc/linerhc/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPushScreenMsg(t *testing.T) {
	form := &stubScreen{title: "form"}
	r := New(form)

	result := &stubScreen{title: "result"}
	r.Update(PushScreenMsg{Screen: result})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "result" {
		t.Errorf("expected active 'result', got %q", r.Active().Title())
	}
	if !result.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
	if len(form.got) != 0 {
		t.Error("navigation messages should not reach screens")
	}
}

func TestPopScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "form"})
	r.Push(&stubScreen{title: "result"})
	r.Update(PopScreenMsg{})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if got := r.View(80, 24); got != "form" {
		t.Errorf("expected form view, got %q", got)
	}
}

func TestPopNoopAtRoot(t *testing.T) {
	r := New(&stubScreen{title: "form"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at root, got %d", r.Depth())
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	form := &stubScreen{title: "form"}
	result := &stubScreen{title: "result"}
	r := New(form)
	r.Push(result)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	if len(result.got) != 1 {
		t.Errorf("active screen got %d messages, want 1", len(result.got))
	}
	if len(form.got) != 0 {
		t.Errorf("inactive screen got %d messages, want 0", len(form.got))
	}
}
