package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/webabiq/webabiq/flow"
)

// Message types for splash playback.
type (
	// splashFrameMsg asks the model to pull the latest decoded frame.
	splashFrameMsg struct{}

	// splashDoneMsg fires once when the splash timer elapses.
	splashDoneMsg struct{}
)

func splashFrameTick() tea.Cmd {
	return tea.Tick(splashFrameInterval, func(time.Time) tea.Msg {
		return splashFrameMsg{}
	})
}

func splashTimeout(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return splashDoneMsg{}
	})
}

func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h, v := m.styles.docStyle.GetFrameSize()

	takenHeight := 5
	m.width = msg.Width
	m.height = msg.Height

	m.accountView.SetSize(msg.Width-h, msg.Height-v-takenHeight)
	m.help.Width = msg.Width

	if m.loginForm != nil {
		m.loginForm = m.loginForm.WithHeight(msg.Height - takenHeight).WithWidth(msg.Width - h)
	}
	if m.inputForm != nil {
		m.inputForm = m.inputForm.WithHeight(msg.Height - takenHeight).WithWidth(msg.Width - h)
	}

	return m, nil
}

func (m model) handleSplashFrame() (tea.Model, tea.Cmd) {
	if m.flow.Current() != flow.Splash {
		return m, nil
	}

	if frame, ok := m.splashPlayer.Latest(); ok {
		m.splashFrame = frame
	}

	return m, splashFrameTick()
}

// handleSplashDone stops and joins the decode goroutine before login becomes
// visible, then advances the flow.
func (m model) handleSplashDone() (tea.Model, tea.Cmd) {
	if m.flow.Current() != flow.Splash {
		return m, nil
	}

	m.splashPlayer.Stop()

	if err := m.flow.Step(flow.SplashDone); err != nil {
		log.Error("screen flow", "error", err)
		return m, nil
	}

	m.loginForm = newLoginForm()
	return m, tea.Batch(m.loginForm.Init(), tea.WindowSize())
}
