package core

import (
	"fmt"

	errgo "gopkg.in/errgo.v1"
)

// ErrorKind classifies every failure the parser and the automaton
// constructors can report. Each kind is itself an error so it can be used
// as an errgo cause.
type ErrorKind int

const (
	_ ErrorKind = iota
	// ErrMalformedDocument reports unbalanced braces, assignments or quotes.
	ErrMalformedDocument
	// ErrMissingIdentifier reports a required key that is absent.
	ErrMissingIdentifier
	// ErrEmptyValue reports a required key that has a blank value.
	ErrEmptyValue
	// ErrInvalidRange reports a malformed or inverted low..high range.
	ErrInvalidRange
	// ErrInvalidColor reports a color channel outside 0-255 or a malformed color.
	ErrInvalidColor
	// ErrInvalidRule reports a Life or Elementary rule that cannot be parsed.
	ErrInvalidRule
	// ErrInvalidInitialValue reports a malformed coordinate list.
	ErrInvalidInitialValue
	// ErrUnknownAutomaton reports a document without a known family tag.
	ErrUnknownAutomaton
)

var kindNames = map[ErrorKind]string{
	ErrMalformedDocument:   "malformed document",
	ErrMissingIdentifier:   "missing identifier",
	ErrEmptyValue:          "empty value",
	ErrInvalidRange:        "invalid range",
	ErrInvalidColor:        "invalid color",
	ErrInvalidRule:         "invalid rule",
	ErrInvalidInitialValue: "invalid initial value",
	ErrUnknownAutomaton:    "unknown automaton",
}

// String returns the human readable name of the kind.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("error kind %d", int(k))
}

func (k ErrorKind) Error() string { return k.String() }

// Errorf returns an error with the given kind as its cause.
func Errorf(kind ErrorKind, format string, args ...interface{}) error {
	err := errgo.WithCausef(nil, kind, format, args...)
	err.(*errgo.Err).SetLocation(1)
	return err
}

// KindOf returns the kind recorded as the cause of err, or zero when err
// was not produced by Errorf (or lost its cause on the way up).
func KindOf(err error) ErrorKind {
	if err == nil {
		return 0
	}
	k, _ := errgo.Cause(err).(ErrorKind)
	return k
}

// IsKind returns a function suitable for errgo.Mask that passes through
// only causes of the given kinds.
func IsKind(kinds ...ErrorKind) func(error) bool {
	return func(err error) bool {
		k, ok := err.(ErrorKind)
		if !ok {
			return false
		}
		for _, want := range kinds {
			if k == want {
				return true
			}
		}
		return false
	}
}
