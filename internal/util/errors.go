package util

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when nothing was entered.
	ErrEmpty = errors.New("no value entered")

	// ErrInvalid is returned when a value was entered but does not match the expected grammar.
	ErrInvalid = errors.New("invalid format")
)

// ParseError records the raw input a parser rejected.
type ParseError struct {
	Input string
	Err   error
}

// Error returns the error message
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

// Unwrap returns ErrEmpty or ErrInvalid
func (e *ParseError) Unwrap() error {
	return e.Err
}

func emptyInput(input string) error {
	return &ParseError{Input: input, Err: ErrEmpty}
}

func invalidInput(input string) error {
	return &ParseError{Input: input, Err: ErrInvalid}
}

// IsEmpty reports whether err means the field was left blank.
func IsEmpty(err error) bool {
	return errors.Is(err, ErrEmpty)
}

// IsInvalid reports whether err means the field holds an unparseable value.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}
