package model

import "errors"

var (
	// ErrTerminalNotFound is returned when a terminal is not found
	ErrTerminalNotFound = errors.New("terminal not found")

	// ErrTerminalCodeRequired is returned when terminal code is empty
	ErrTerminalCodeRequired = errors.New("terminal code is required")

	// ErrTerminalNameRequired is returned when terminal name is empty
	ErrTerminalNameRequired = errors.New("terminal name is required")

	// ErrTerminalCodeTaken is returned when the terminal code is already in use
	ErrTerminalCodeTaken = errors.New("terminal code already in use")
)

// ErrorCode represents a machine-readable error code
type ErrorCode string

const (
	CodeTerminalNotFound     ErrorCode = "TERMINAL_NOT_FOUND"
	CodeTerminalCodeRequired ErrorCode = "TERMINAL_CODE_REQUIRED"
	CodeTerminalNameRequired ErrorCode = "TERMINAL_NAME_REQUIRED"
	CodeTerminalCodeTaken    ErrorCode = "TERMINAL_CODE_TAKEN"
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
)

// GetErrorCode maps errors to error codes
func GetErrorCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrTerminalNotFound):
		return CodeTerminalNotFound
	case errors.Is(err, ErrTerminalCodeRequired):
		return CodeTerminalCodeRequired
	case errors.Is(err, ErrTerminalNameRequired):
		return CodeTerminalNameRequired
	case errors.Is(err, ErrTerminalCodeTaken):
		return CodeTerminalCodeTaken
	default:
		return CodeInternalError
	}
}

// GetErrorMessage returns a user-friendly error message
func GetErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrTerminalNotFound):
		return "Terminal not found"
	case errors.Is(err, ErrTerminalCodeRequired):
		return "Terminal code is required"
	case errors.Is(err, ErrTerminalNameRequired):
		return "Terminal name is required"
	case errors.Is(err, ErrTerminalCodeTaken):
		return "Terminal code is already in use"
	default:
		return "Internal server error"
	}
}
