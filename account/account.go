// Package account renders the account book screen: monthly aggregates over
// the ledger plus the scrollable list of this month's transactions.
package account

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/webabiq/webabiq/ledger"
)

// Styles holds the lipgloss styles for the account screen.
type Styles struct {
	TitleStyle   lipgloss.Style
	DateStyle    lipgloss.Style
	HeadingStyle lipgloss.Style
	IncomeStyle  lipgloss.Style
	PaidStyle    lipgloss.Style
	CardStyle    lipgloss.Style
	StripStyle   lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		TitleStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#E75480")).Bold(true),
		DateStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		HeadingStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#E75480")).Bold(true),
		IncomeStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")),
		PaidStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		CardStyle:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2),
		StripStyle:   lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false).Padding(0, 1),
	}
}

// Model is the account screen. It reads derived aggregates from the ledger
// on every Refresh; it never caches them between visits.
type Model struct {
	Styles   Styles
	Viewport viewport.Model

	book         *ledger.Ledger
	transactions table.Model
}

// Option configures a Model.
type Option func(*Model)

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.Styles = s
	}
}

// New creates the account screen over the given ledger.
func New(book *ledger.Ledger, opts ...Option) Model {
	transactions := table.New(
		table.WithColumns([]table.Column{
			{Title: "DATE", Width: 12},
			{Title: "AMOUNT", Width: 12},
			{Title: "DESCRIPTION", Width: 40},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color("#E75480"))
	transactions.SetStyles(tableStyle)

	m := Model{
		Styles:       defaultStyles(),
		Viewport:     viewport.New(0, 20),
		book:         book,
		transactions: transactions,
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.Refresh()

	return m
}

// Refresh recomputes every displayed aggregate and the monthly transaction
// rows from the ledger. Call it whenever the screen becomes visible again.
func (m *Model) Refresh() {
	monthly := m.book.MonthlyTransactions()

	// Most recent entry first.
	rows := make([]table.Row, 0, len(monthly))
	for i := len(monthly) - 1; i >= 0; i-- {
		t := monthly[i]
		rows = append(rows, table.Row{
			t.Date.Format("2006-01-02"),
			ledger.SignedDisplay(t),
			t.Description,
		})
	}
	m.transactions.SetRows(rows)

	m.Viewport.SetContent(m.content())
}

// SetFocus sets the focus state of the transactions table.
func (m *Model) SetFocus(focus bool) {
	if focus {
		m.transactions.Focus()
	} else {
		m.transactions.Blur()
	}
}

// SetSize sets the size of the account screen.
func (m *Model) SetSize(width, height int) {
	m.Viewport.Width = width
	m.Viewport.Height = height
	m.transactions.SetWidth(width)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.transactions, cmd = m.transactions.Update(msg)
	cmds = append(cmds, cmd)

	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	m.Viewport.SetContent(m.content())

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	return m.Viewport.View()
}

func (m *Model) content() string {
	header := lipgloss.JoinVertical(lipgloss.Center,
		m.Styles.TitleStyle.Render("Account Book"),
		m.Styles.DateStyle.Render(m.book.TodayDate()),
	)

	saving := m.Styles.CardStyle.Render(fmt.Sprintf("%s  %s",
		m.Styles.HeadingStyle.Render("THIS MONTH"),
		ledger.Display(m.book.TotalSaving()),
	))

	chips := lipgloss.JoinHorizontal(lipgloss.Top,
		m.Styles.CardStyle.Render(fmt.Sprintf("INCOME %s",
			m.Styles.IncomeStyle.Render(ledger.Display(m.book.Income())))),
		m.Styles.CardStyle.Render(fmt.Sprintf("PAID %s",
			m.Styles.PaidStyle.Render(ledger.Display(m.book.Paid())))),
	)

	strip := m.Styles.StripStyle.Render(fmt.Sprintf("%d  %s  %s",
		m.book.Year(),
		m.book.MonthlyRange(),
		ledger.Display(m.book.MonthlyTotal()),
	))

	return lipgloss.JoinVertical(lipgloss.Top,
		header,
		saving,
		chips,
		strip,
		m.transactions.View(),
	)
}
