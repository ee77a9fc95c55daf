package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/webabiq/webabiq/account"
	"github.com/webabiq/webabiq/flow"
	"github.com/webabiq/webabiq/ledger"
	"github.com/webabiq/webabiq/splash"
	"github.com/webabiq/webabiq/validate"
)

type model struct {
	keys   keyMap
	help   help.Model
	styles styles
	theme  Theme

	// flow owns which screen is visible; everything below is per-screen
	// state kept alive across transitions.
	flow *flow.Machine

	book  *ledger.Ledger
	creds validate.Credentials

	splashPlayer   *splash.Player
	splashFrame    string
	splashLogo     string
	splashDuration time.Duration

	loginForm *huh.Form
	// loginErr is the last credential failure, shown inline under the form.
	loginErr string

	accountView account.Model

	inputForm *huh.Form

	width  int
	height int
}

func newModel(config Config) (model, error) {
	creds, err := loadCredentials(config.CredentialsFile)
	if err != nil {
		return model{}, err
	}

	theme := newTheme(config.Colors)

	book := ledger.New()
	if config.Demo {
		seedDemoData(book)
	}

	assetsDir := config.AssetsDir
	if assetsDir == "" {
		assetsDir = defaultAssetsDir
	}
	assets := splash.LoadAssets(assetsDir)

	splashDuration := defaultSplashDuration
	if config.SplashDurationMS > 0 {
		splashDuration = time.Duration(config.SplashDurationMS) * time.Millisecond
	}

	player := splash.NewPlayer(assets.Frames)

	m := model{
		keys:           initializeKeyMap(),
		help:           createHelpModel(theme),
		styles:         createStyles(theme),
		theme:          theme,
		flow:           &flow.Machine{},
		book:           book,
		creds:          creds,
		splashPlayer:   player,
		splashFrame:    player.FirstFrame(),
		splashLogo:     assets.Logo,
		splashDuration: splashDuration,
		accountView:    account.New(book, account.WithStyles(createAccountStyles(theme))),
	}

	if config.SkipSplash {
		if err := m.flow.Step(flow.SplashDone); err != nil {
			return model{}, err
		}
		m.loginForm = newLoginForm()
	}

	return m, nil
}

func (m model) Init() tea.Cmd {
	if m.flow.Current() == flow.Splash {
		m.splashPlayer.Start()
		return tea.Batch(
			splashFrameTick(),
			splashTimeout(m.splashDuration),
		)
	}

	return m.loginForm.Init()
}

// rootAction runs the TUI.
func rootAction(config Config) error {
	m, err := newModel(config)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("%s ran into an error: %w", appName, err)
	}

	return nil
}

// seedDemoData fills the ledger with sample transactions so a fresh run has
// something to scroll through.
func seedDemoData(book *ledger.Ledger) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	book.Add(2400, ledger.CategoryIncome, "salary", monthStart)
	book.Add(120.35, ledger.CategoryPaid, "groceries", monthStart.AddDate(0, 0, 2))
	book.Add(54.20, ledger.CategoryPaid, "dinner out", monthStart.AddDate(0, 0, 4))
	book.Add(80, ledger.CategoryIncome, "sold old bike", monthStart.AddDate(0, 0, 6))
	book.Add(900, ledger.CategoryPaid, "rent", monthStart.AddDate(0, -1, 0))

	log.Debug("seeded demo transactions", "count", book.Len())
}

func main() {
	Execute()
}
