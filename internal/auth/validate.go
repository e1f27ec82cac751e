// Package auth holds the local credential checks used by the login and
// registration screens. Nothing here talks to a server or stores anything.
package auth

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

// Fixed messages shown to the user when a check fails.
const (
	MsgInvalidCredentials = "Please enter a valid email and password."
	MsgEmptyTitle         = "Please enter a title."
)

// Kind identifies which check failed, so callers can localise the message.
type Kind int

const (
	KindCredentials Kind = iota
	KindTitle
)

var emailRegexp = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

// ValidationError is returned when user input fails a format check.
// It is meant to be rendered on the same screen, never propagated.
type ValidationError struct {
	Kind Kind
	Msg  string
}

func (e *ValidationError) Error() string { return e.Msg }

// KindOf returns the failed check for a validation error.
func KindOf(err error) (Kind, bool) {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return 0, false
	}
	return ve.Kind, true
}

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

// ValidateCredentials accepts a well formed email and a password that is not
// blank after trimming.
func ValidateCredentials(email, password string) error {
	if !ValidEmail(email) || strings.TrimFunc(password, isBlank) == "" {
		return &ValidationError{Kind: KindCredentials, Msg: MsgInvalidCredentials}
	}
	return nil
}

// isBlank is Unicode White_Space minus NEL, plus the byte order mark.
func isBlank(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

// ValidateTitle rejects an empty entry title. Whitespace counts as content.
func ValidateTitle(title string) error {
	if title == "" {
		return &ValidationError{Kind: KindTitle, Msg: MsgEmptyTitle}
	}
	return nil
}
