package flow

import (
	"errors"
	"testing"

	"github.com/carlmjohnson/be"
)

func TestHappyPath(t *testing.T) {
	var m Machine

	be.Equal(t, Splash, m.Current())

	be.NilErr(t, m.Step(SplashDone))
	be.Equal(t, Login, m.Current())

	be.NilErr(t, m.Step(LoginSucceeded))
	be.Equal(t, Account, m.Current())

	be.NilErr(t, m.Step(OpenInput))
	be.Equal(t, Input, m.Current())

	be.NilErr(t, m.Step(SaveDone))
	be.Equal(t, Account, m.Current())

	// A second excursion that cancels instead of saving.
	be.NilErr(t, m.Step(OpenInput))
	be.NilErr(t, m.Step(Cancel))
	be.Equal(t, Account, m.Current())
}

func TestIllegalTransitions(t *testing.T) {
	tests := []struct {
		name  string
		from  Screen
		event Event
	}{
		{name: "splash ignores login", from: Splash, event: LoginSucceeded},
		{name: "splash ignores open input", from: Splash, event: OpenInput},
		{name: "login ignores splash done", from: Login, event: SplashDone},
		{name: "login ignores save", from: Login, event: SaveDone},
		{name: "account ignores splash done", from: Account, event: SplashDone},
		{name: "account ignores login", from: Account, event: LoginSucceeded},
		{name: "account ignores cancel", from: Account, event: Cancel},
		{name: "input ignores open input", from: Input, event: OpenInput},
		{name: "input ignores login", from: Input, event: LoginSucceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Machine{current: tt.from}

			err := m.Step(tt.event)
			be.True(t, errors.Is(err, ErrBadTransition))
			be.Equal(t, tt.from, m.Current())
		})
	}
}

func TestNoRouteBackToSplashOrLogin(t *testing.T) {
	// Exhaustively check that no event moves Account or Input to an earlier
	// screen.
	events := []Event{SplashDone, LoginSucceeded, OpenInput, SaveDone, Cancel}

	for _, from := range []Screen{Account, Input} {
		for _, e := range events {
			m := Machine{current: from}
			_ = m.Step(e)

			if m.Current() == Splash || m.Current() == Login {
				t.Errorf("event %s moved %s back to %s", e, from, m.Current())
			}
		}
	}
}

func TestScreenStrings(t *testing.T) {
	be.Equal(t, "splash", Splash.String())
	be.Equal(t, "login", Login.String())
	be.Equal(t, "account", Account.String())
	be.Equal(t, "input", Input.String())
	be.Equal(t, "unknown", Screen(99).String())
}
