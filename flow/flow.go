// Package flow sequences the application's screens. The machine owns
// "current screen" as data; the bubbletea layer renders whatever screen the
// machine says is visible and reports completion events back to it.
package flow

import (
	"errors"
	"fmt"
)

// Screen identifies one of the four visible screens.
type Screen int

const (
	Splash Screen = iota
	Login
	Account
	Input
)

func (s Screen) String() string {
	switch s {
	case Splash:
		return "splash"
	case Login:
		return "login"
	case Account:
		return "account"
	case Input:
		return "input"
	}

	return "unknown"
}

// Event is a screen completion signal.
type Event int

const (
	// SplashDone fires when the splash timer elapses.
	SplashDone Event = iota
	// LoginSucceeded fires when the credential check passes.
	LoginSucceeded
	// OpenInput fires on the user's request to add a transaction.
	OpenInput
	// SaveDone fires when the input form saved a transaction.
	SaveDone
	// Cancel fires when the input form is abandoned without saving.
	Cancel
)

func (e Event) String() string {
	switch e {
	case SplashDone:
		return "splash done"
	case LoginSucceeded:
		return "login succeeded"
	case OpenInput:
		return "open input"
	case SaveDone:
		return "save done"
	case Cancel:
		return "cancel"
	}

	return "unknown"
}

// ErrBadTransition is returned when an event is illegal in the current
// screen. It signals a programming error, not a user mistake.
var ErrBadTransition = errors.New("illegal screen transition")

// Machine is the screen-flow state machine. The zero value starts on the
// splash screen. There is no route back to Splash or Login once the account
// book is visible, and no terminal state besides process exit.
type Machine struct {
	current Screen
}

// Current reports the visible screen.
func (m *Machine) Current() Screen {
	return m.current
}

// Step applies an event to the machine, advancing the visible screen or
// returning ErrBadTransition when the event is illegal where it fired.
func (m *Machine) Step(e Event) error {
	next, ok := transition(m.current, e)
	if !ok {
		return fmt.Errorf("%w: %s on %s", ErrBadTransition, e, m.current)
	}

	m.current = next
	return nil
}

func transition(s Screen, e Event) (Screen, bool) {
	switch s {
	case Splash:
		if e == SplashDone {
			return Login, true
		}
	case Login:
		if e == LoginSucceeded {
			return Account, true
		}
	case Account:
		if e == OpenInput {
			return Input, true
		}
	case Input:
		if e == SaveDone || e == Cancel {
			return Account, true
		}
	}

	return s, false
}
