package main

import (
	"strings"

	"github.com/webabiq/webabiq/flow"
)

func (m model) View() string {
	var b strings.Builder

	switch m.flow.Current() {
	case flow.Splash:
		return m.styles.docStyle.Render(splashView(m))

	case flow.Login:
		b.WriteString(loginView(m))
		return m.styles.docStyle.Render(b.String())

	case flow.Account:
		b.WriteString(m.renderTitle())
		b.WriteString("\n\n")
		b.WriteString(m.accountView.View())
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))

	case flow.Input:
		b.WriteString(inputView(m))
	}

	return m.styles.docStyle.Render(b.String())
}

func (m model) renderTitle() string {
	return m.styles.titleStyle.Render(appName + " | " + m.flow.Current().String())
}

func splashView(m model) string {
	var b strings.Builder

	b.WriteString(m.styles.splashStyle.Render(m.splashFrame))
	b.WriteString("\n\n")
	b.WriteString(m.styles.logoStyle.Render(m.splashLogo))

	return b.String()
}
