package main

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/webabiq/webabiq/flow"
	"github.com/webabiq/webabiq/ledger"
	"github.com/webabiq/webabiq/validate"
)

func newInputForm(now time.Time) *huh.Form {
	today := now.Format(validate.DateFormat)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[ledger.Category]().
				Title("TYPE").
				Key("category").
				Options(
					huh.NewOption("INCOME", ledger.CategoryIncome),
					huh.NewOption("PAID", ledger.CategoryPaid),
				),

			huh.NewInput().
				Title("DATE").
				Description("Transaction date (YYYY-MM-DD)").
				Key("date").
				Value(&today).
				Placeholder("YYYY-MM-DD").
				Validate(func(s string) error {
					_, err := validate.Date(strings.TrimSpace(s))
					return err
				}),

			huh.NewInput().
				Title("AMOUNT").
				Key("amount").
				Placeholder("Enter amount (e.g., 12.50)...").
				Validate(func(s string) error {
					_, err := validate.Amount(strings.TrimSpace(s))
					return err
				}),

			huh.NewText().
				Title("DESCRIPTION").
				Key("description").
				Placeholder("Enter description...").
				Validate(func(s string) error {
					return validate.Description(strings.TrimSpace(s))
				}),
		),
	)
}

// openInput hides the account screen behind the entry form. The account
// model instance stays alive so the return path resumes it, not a fresh one.
func openInput(m *model) (tea.Model, tea.Cmd) {
	if err := m.flow.Step(flow.OpenInput); err != nil {
		log.Error("screen flow", "error", err)
		return m, nil
	}

	m.accountView.SetFocus(false)
	m.inputForm = newInputForm(time.Now())
	return m, tea.Batch(m.inputForm.Init(), tea.WindowSize())
}

func updateInput(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.inputForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.inputForm = f
	}

	if m.inputForm.State == huh.StateCompleted {
		return saveTransaction(m)
	}

	if m.inputForm.State == huh.StateAborted {
		return cancelInput(m)
	}

	return m, cmd
}

// saveTransaction mutates the ledger from the completed form, then resumes
// the account screen with refreshed aggregates.
func saveTransaction(m *model) (tea.Model, tea.Cmd) {
	category, ok := m.inputForm.Get("category").(ledger.Category)
	if !ok {
		category = ledger.CategoryIncome
	}

	amount, err := validate.Amount(strings.TrimSpace(m.inputForm.GetString("amount")))
	if err != nil {
		// The form validated this already; a failure here is a bug.
		log.Error("amount re-parse failed", "error", err)
		return cancelInput(m)
	}

	date, err := validate.Date(strings.TrimSpace(m.inputForm.GetString("date")))
	if err != nil {
		log.Error("date re-parse failed", "error", err)
		return cancelInput(m)
	}

	description := strings.TrimSpace(m.inputForm.GetString("description"))

	m.book.Add(amount, category, description, date)
	log.Debug("transaction added",
		"amount", amount,
		"category", category,
		"date", date.Format(validate.DateFormat),
	)

	if err := m.flow.Step(flow.SaveDone); err != nil {
		log.Error("screen flow", "error", err)
		return m, nil
	}

	m.inputForm = nil
	m.accountView.Refresh()
	m.accountView.SetFocus(true)
	return m, nil
}

// cancelInput abandons the form without touching the ledger.
func cancelInput(m *model) (tea.Model, tea.Cmd) {
	if err := m.flow.Step(flow.Cancel); err != nil {
		log.Error("screen flow", "error", err)
		return m, nil
	}

	m.inputForm = nil
	m.accountView.Refresh()
	m.accountView.SetFocus(true)
	return m, nil
}

func inputView(m model) string {
	var b strings.Builder

	b.WriteString(m.styles.titleStyle.Render("Input"))
	b.WriteString("\n\n")
	b.WriteString(m.inputForm.View())

	return b.String()
}
