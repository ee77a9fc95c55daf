package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/webabiq/webabiq/flow"
	"github.com/webabiq/webabiq/validate"
)

func newLoginForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("USERNAME").
				Key("username").
				Placeholder("Enter username..."),

			huh.NewInput().
				Title("PASSWORD").
				Key("password").
				EchoMode(huh.EchoModePassword),
		),
	)
}

func updateLogin(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.loginForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.loginForm = f
	}

	if m.loginForm.State == huh.StateCompleted {
		username := strings.TrimSpace(m.loginForm.GetString("username"))
		password := strings.TrimSpace(m.loginForm.GetString("password"))

		if err := validate.CheckCredentials(m.creds, username, password); err != nil {
			// Recovered at the form: show the message and re-arm the login.
			m.loginErr = err.Error()
			m.loginForm = newLoginForm()
			return m, m.loginForm.Init()
		}

		m.loginErr = ""
		if err := m.flow.Step(flow.LoginSucceeded); err != nil {
			log.Error("screen flow", "error", err)
			return m, nil
		}

		m.accountView.Refresh()
		m.accountView.SetFocus(true)
		return m, nil
	}

	if m.loginForm.State == huh.StateAborted {
		// There is nowhere earlier than login to go; re-arm the form.
		m.loginForm = newLoginForm()
		return m, m.loginForm.Init()
	}

	return m, cmd
}

func loginView(m model) string {
	var b strings.Builder

	b.WriteString(m.styles.splashStyle.Render(appName))
	b.WriteString("\n\n")
	b.WriteString(m.loginForm.View())

	if m.loginErr != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.errorStyle.Render(m.loginErr))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.logoStyle.Render(m.splashLogo))

	return lipgloss.JoinVertical(lipgloss.Left, b.String())
}
