package model

import "errors"

var (
	// ErrPeriodNotNotifiable is returned when a notify action is
	// requested from a period status the state machine doesn't permit
	// it from: notify is legal in UPCOMING/OPEN, notifyAssign only in
	// COMPLETED.
	ErrPeriodNotNotifiable = errors.New("period status does not permit this notification")
)

// ErrorCode is a machine-readable error code.
type ErrorCode string

const (
	CodePeriodNotNotifiable ErrorCode = "PERIOD_NOT_NOTIFIABLE"
	CodeInternalError       ErrorCode = "INTERNAL_ERROR"
)

// GetErrorCode maps errors to error codes.
func GetErrorCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrPeriodNotNotifiable):
		return CodePeriodNotNotifiable
	default:
		return CodeInternalError
	}
}

// GetErrorMessage returns a user-friendly error message.
func GetErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrPeriodNotNotifiable):
		return "Period status does not permit this notification"
	default:
		return "Internal server error"
	}
}
