package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morrisclay/picker-cli/internal/pool"
)

func pressEnter(t *testing.T, m SessionModel) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm, cmd
}

func TestSessionDrainsPool(t *testing.T) {
	p, err := pool.New([]string{"a", "b", "c"}, pool.WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}

	m := NewSession(p)
	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		m, cmd = pressEnter(t, m)
	}

	if len(m.Picked()) != 3 {
		t.Errorf("Picked() len = %d, want 3", len(m.Picked()))
	}
	if !m.Done() {
		t.Error("Done() = false after draining the pool")
	}
	if cmd == nil {
		t.Error("expected quit command after the final pick")
	}

	seen := map[string]int{}
	for _, pick := range m.Picked() {
		seen[pick]++
	}
	for _, opt := range []string{"a", "b", "c"} {
		if seen[opt] != 1 {
			t.Errorf("option %q picked %d times, want 1", opt, seen[opt])
		}
	}
}

func TestSessionQuitEarly(t *testing.T) {
	p, err := pool.New([]string{"a", "b", "c"}, pool.WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}

	m := NewSession(p)
	m, _ = pressEnter(t, m)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(SessionModel)

	if cmd == nil {
		t.Error("expected quit command on q")
	}
	if m.Done() {
		t.Error("Done() = true after early quit")
	}
	if len(m.Picked()) != 1 {
		t.Errorf("Picked() len = %d, want 1", len(m.Picked()))
	}
	if p.Remaining() != 2 {
		t.Errorf("Remaining() = %d, want 2", p.Remaining())
	}
}

func TestSessionViewShowsProgress(t *testing.T) {
	p, err := pool.New([]string{"alice", "bob"}, pool.WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}

	m := NewSession(p)
	view := m.View()
	if view == "" {
		t.Fatal("View() returned empty string")
	}

	m, _ = pressEnter(t, m)
	view = m.View()
	if view == "" {
		t.Fatal("View() returned empty string after a pick")
	}
}
