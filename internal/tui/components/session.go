// Package components provides reusable TUI components.
package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/morrisclay/picker-cli/internal/pool"
	"github.com/morrisclay/picker-cli/internal/tui"
)

// SessionModel runs the Enter-per-pick loop over a pool.
type SessionModel struct {
	pool   *pool.Pool
	keys   tui.KeyMap
	picked []string
	done   bool // pool exhausted
	quit   bool // user stopped early
}

// NewSession creates a pick session over the given pool.
func NewSession(p *pool.Pool) SessionModel {
	return SessionModel{
		pool: p,
		keys: tui.DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Next):
			pick, ok := m.pool.Draw()
			if !ok {
				return m, tea.Quit
			}
			m.picked = append(m.picked, pick)
			if m.pool.Remaining() == 0 {
				m.done = true
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m SessionModel) View() string {
	s := tui.TitleStyle.Render("Picker") + "\n"
	s += tui.MutedStyle.Render(fmt.Sprintf("%d of %d picked", len(m.picked), m.pool.Size())) + "\n\n"

	for i, pick := range m.picked {
		if i == len(m.picked)-1 {
			s += "  " + tui.PickStyle.Render(pick) + "\n"
		} else {
			s += "  " + tui.PickedStyle.Render(pick) + "\n"
		}
	}

	switch {
	case m.done:
		s += "\n" + tui.SuccessStyle.Render("All options picked") + "\n"
	case m.quit:
		s += "\n" + tui.MutedStyle.Render(fmt.Sprintf("Stopped, %d remaining", m.pool.Remaining())) + "\n"
	default:
		s += tui.HelpStyle.Render("enter next pick  q quit")
	}

	return tui.BoxStyle.Render(s)
}

// Picked returns the options revealed so far, in pick order.
func (m SessionModel) Picked() []string {
	return m.picked
}

// Done reports whether the pool was fully drained.
func (m SessionModel) Done() bool {
	return m.done
}

// RunSession runs an interactive pick session and returns the picks
// made before the pool was drained or the user quit.
func RunSession(p *pool.Pool) ([]string, error) {
	prog := tea.NewProgram(NewSession(p))
	finalModel, err := prog.Run()
	if err != nil {
		return nil, err
	}

	if sm, ok := finalModel.(SessionModel); ok {
		return sm.Picked(), nil
	}

	return nil, fmt.Errorf("unexpected model type")
}
