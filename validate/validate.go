// Package validate holds the pure input checks shared by the login and
// transaction entry forms. Every failure maps to one of the sentinel errors
// so callers can branch with errors.Is.
package validate

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

var (
	ErrMissingField       = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotANumber         = errors.New("amount must be a valid number")
	ErrEmptyDescription   = errors.New("description is required")
	ErrInvalidDateFormat  = errors.New("invalid date format (YYYY-MM-DD)")
)

// DateFormat is the exact layout accepted for user-entered dates.
const DateFormat = "2006-01-02"

// Credentials is a fixed username to password table, loaded once at startup
// and read-only afterwards.
type Credentials map[string]string

// DefaultCredentials returns the built-in credential table used when no
// credentials file is configured.
func DefaultCredentials() Credentials {
	return Credentials{
		"1":    "1",
		"user": "1",
	}
}

// CheckCredentials validates a submitted username/password pair against the
// table. The comparison is a plain case-sensitive match, a toy gate rather
// than a security boundary. Each attempt leaves an audit log line.
func CheckCredentials(creds Credentials, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingField
	}

	stored, ok := creds[username]
	if !ok {
		log.Info("login attempt: username not found", "username", username)
		return ErrInvalidCredentials
	}

	if stored != password {
		log.Info("login attempt: invalid password", "username", username)
		return ErrInvalidCredentials
	}

	log.Info("login successful", "username", username)
	return nil
}

// Amount parses user-entered text as a floating-point amount. Zero and
// negative values pass; the caller is expected to trim whitespace.
func Amount(text string) (float64, error) {
	amount, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, text)
	}

	return amount, nil
}

// Date parses user-entered text in the exact YYYY-MM-DD layout. Dates are
// naive local time, no timezone handling.
func Date(text string) (time.Time, error) {
	date, err := time.Parse(DateFormat, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, text)
	}

	return date, nil
}

// Description rejects empty transaction descriptions. The entry form calls
// this before handing anything to the ledger.
func Description(text string) error {
	if text == "" {
		return ErrEmptyDescription
	}

	return nil
}
