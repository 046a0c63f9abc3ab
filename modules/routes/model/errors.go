package model

import "errors"

var (
	// ErrRouteNotFound is returned when a route is not found
	ErrRouteNotFound = errors.New("route not found")

	// ErrRouteRunNumberRequired is returned when run number is empty
	ErrRouteRunNumberRequired = errors.New("route run number is required")

	// ErrRouteTerminalRequired is returned when terminal ID is empty
	ErrRouteTerminalRequired = errors.New("route terminal is required")

	// ErrInvalidRouteType is returned for an unrecognized route type
	ErrInvalidRouteType = errors.New("invalid route type")

	// ErrInvalidRateType is returned for an unrecognized rate type
	ErrInvalidRateType = errors.New("invalid rate type")

	// ErrDoublesRequiresEndorsement is returned when a DOUBLES route
	// does not require the doubles endorsement
	ErrDoublesRequiresEndorsement = errors.New("a DOUBLES route must require the doubles endorsement")

	// ErrRunNumberTaken is returned when (terminal, run number) already exists
	ErrRunNumberTaken = errors.New("run number already in use at this terminal")
)

// ErrorCode represents a machine-readable error code
type ErrorCode string

const (
	CodeRouteNotFound             ErrorCode = "ROUTE_NOT_FOUND"
	CodeRouteRunNumberRequired    ErrorCode = "ROUTE_RUN_NUMBER_REQUIRED"
	CodeRouteTerminalRequired     ErrorCode = "ROUTE_TERMINAL_REQUIRED"
	CodeInvalidRouteType          ErrorCode = "INVALID_ROUTE_TYPE"
	CodeInvalidRateType           ErrorCode = "INVALID_RATE_TYPE"
	CodeDoublesRequiresEndorsement ErrorCode = "DOUBLES_REQUIRES_ENDORSEMENT"
	CodeRunNumberTaken            ErrorCode = "RUN_NUMBER_TAKEN"
	CodeInternalError             ErrorCode = "INTERNAL_ERROR"
)

// GetErrorCode maps errors to error codes
func GetErrorCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrRouteNotFound):
		return CodeRouteNotFound
	case errors.Is(err, ErrRouteRunNumberRequired):
		return CodeRouteRunNumberRequired
	case errors.Is(err, ErrRouteTerminalRequired):
		return CodeRouteTerminalRequired
	case errors.Is(err, ErrInvalidRouteType):
		return CodeInvalidRouteType
	case errors.Is(err, ErrInvalidRateType):
		return CodeInvalidRateType
	case errors.Is(err, ErrDoublesRequiresEndorsement):
		return CodeDoublesRequiresEndorsement
	case errors.Is(err, ErrRunNumberTaken):
		return CodeRunNumberTaken
	default:
		return CodeInternalError
	}
}

// GetErrorMessage returns a user-friendly error message
func GetErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrRouteNotFound):
		return "Route not found"
	case errors.Is(err, ErrRouteRunNumberRequired):
		return "Route run number is required"
	case errors.Is(err, ErrRouteTerminalRequired):
		return "Route terminal is required"
	case errors.Is(err, ErrInvalidRouteType):
		return "Invalid route type"
	case errors.Is(err, ErrInvalidRateType):
		return "Invalid rate type"
	case errors.Is(err, ErrDoublesRequiresEndorsement):
		return "A DOUBLES route must require the doubles endorsement"
	case errors.Is(err, ErrRunNumberTaken):
		return "Run number already in use at this terminal"
	default:
		return "Internal server error"
	}
}
