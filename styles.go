package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/webabiq/webabiq/account"
)

const standardMargin = 2

type styles struct {
	docStyle    lipgloss.Style
	titleStyle  lipgloss.Style
	errorStyle  lipgloss.Style
	splashStyle lipgloss.Style
	logoStyle   lipgloss.Style
}

func createStyles(theme Theme) styles {
	return styles{
		docStyle: lipgloss.NewStyle().Margin(1, standardMargin),
		titleStyle: lipgloss.NewStyle().Foreground(
			lipgloss.AdaptiveColor{Light: "#000000", Dark: string(theme.Primary)},
		).Bold(true),
		errorStyle:  lipgloss.NewStyle().Foreground(theme.Error).Bold(true),
		splashStyle: lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		logoStyle:   lipgloss.NewStyle().Foreground(theme.SecondaryText),
	}
}

func createHelpModel(theme Theme) help.Model {
	helpModel := help.New()
	helpModel.ShortSeparator = " + "
	helpModel.Styles = help.Styles{
		Ellipsis:       lipgloss.NewStyle().Foreground(theme.SecondaryText),
		ShortKey:       lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		ShortDesc:      lipgloss.NewStyle().Foreground(theme.Text),
		ShortSeparator: lipgloss.NewStyle().Foreground(theme.SecondaryText),
		FullKey:        lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		FullDesc:       lipgloss.NewStyle().Foreground(theme.Text),
		FullSeparator:  lipgloss.NewStyle().Foreground(theme.SecondaryText),
	}
	return helpModel
}

func createAccountStyles(theme Theme) account.Styles {
	return account.Styles{
		TitleStyle:   lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		DateStyle:    lipgloss.NewStyle().Foreground(theme.SecondaryText),
		HeadingStyle: lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		IncomeStyle:  lipgloss.NewStyle().Foreground(theme.Income),
		PaidStyle:    lipgloss.NewStyle().Foreground(theme.Expense),
		CardStyle:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(theme.Border).Padding(0, 2),
		StripStyle:   lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false).BorderForeground(theme.Border).Padding(0, 1),
	}
}
