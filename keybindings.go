package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/webabiq/webabiq/flow"
)

type keyMap struct {
	addTransaction key.Binding
	fullHelp       key.Binding
	quit           key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.addTransaction,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.addTransaction,
			km.quit,
			km.fullHelp,
		},
	}
}

func initializeKeyMap() keyMap {
	return keyMap{
		addTransaction: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add transaction"),
		),
		fullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func handleKeyPress(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	k := msg.String()
	log.Debug("key pressed", "key", k)

	// ctrl+c quits from anywhere, even inside a form.
	if k == "ctrl+c" {
		return m, tea.Quit
	}

	if isInputBlocked(m) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.addTransaction):
		if m.flow.Current() == flow.Account {
			return openInput(m)
		}

	case key.Matches(msg, m.keys.fullHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// isInputBlocked reports whether plain keys should be routed to an active
// form instead of the global keymap.
func isInputBlocked(m *model) bool {
	switch m.flow.Current() {
	case flow.Login:
		return m.loginForm != nil && m.loginForm.State == huh.StateNormal
	case flow.Input:
		return m.inputForm != nil && m.inputForm.State == huh.StateNormal
	case flow.Splash:
		return true
	}

	return false
}
