package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/webabiq/webabiq/flow"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// always check for key presses first
	if msg, ok := msg.(tea.KeyMsg); ok {
		if model, cmd := handleKeyPress(msg, &m); cmd != nil {
			log.Debug("key press handled, cmd returned")
			return model, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case splashFrameMsg:
		return m.handleSplashFrame()

	case splashDoneMsg:
		return m.handleSplashDone()
	}

	var cmd tea.Cmd
	switch m.flow.Current() {
	case flow.Splash:
		return m, nil

	case flow.Login:
		return updateLogin(msg, &m)

	case flow.Account:
		m.accountView, cmd = m.accountView.Update(msg)
		return m, cmd

	case flow.Input:
		return updateInput(msg, &m)
	}

	return m, nil
}
