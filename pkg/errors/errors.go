// Package errors defines the coded errors clockface reports to its users.
//
// Most bad settings never reach this package. An unusable color, an unknown
// digit style or a short background list is replaced by its default during
// face resolution and reported as a notice, and the face still renders.
// Errors are reserved for problems that leave nothing sensible to render:
//
//   - INVALID_INPUT: a --tz offset that is not an integer, a --lang value that
//     is not a BCP 47 tag
//   - INVALID_CONFIG: a settings file that does not parse, has unknown keys or
//     an unsupported extension
//   - INVALID_FORMAT: an output format other than svg or html
//   - INVALID_ENDPOINT: a time server address the page cannot connect to
//   - FILE_NOT_FOUND: a missing --config file
//   - INTERNAL_ERROR: template, write or listen failures
//
// INVALID_COLOR and INVALID_ID come from the validators in this package.
// Resolution turns them into notices rather than returning them.
//
// The command line prints [UserMessage] followed by [Hint]:
//
//	err := errors.Wrap(errors.ErrCodeFileNotFound, cause, "config file not found: %s", path)
//	fmt.Println(errors.UserMessage(err)) // config file not found: clock.toml
//	fmt.Println(errors.Hint(err))        // check the --config path
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidColor    Code = "INVALID_COLOR"
	ErrCodeInvalidID       Code = "INVALID_ID"
	ErrCodeInvalidEndpoint Code = "INVALID_ENDPOINT"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"
	ErrCodeInternal        Code = "INTERNAL_ERROR"
)

// hints suggest the next step for errors caused by the user.
var hints = map[Code]string{
	ErrCodeInvalidInput:    "run clockface --help for the expected flag formats",
	ErrCodeInvalidConfig:   "settings files are .toml, .yaml or .yml with optional [face] and [page] sections",
	ErrCodeInvalidFormat:   "choose --svg or --html",
	ErrCodeInvalidEndpoint: "use host/path or a ws, wss, http or https URL for --server",
	ErrCodeFileNotFound:    "check the --config path",
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err, or any error it wraps, is an *Error with code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns err's message without the code prefix. A wrapped
// cause is appended after a colon so that parse positions stay visible.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Hint returns a suggested fix for err, or "" when there is none.
func Hint(err error) string {
	return hints[GetCode(err)]
}
