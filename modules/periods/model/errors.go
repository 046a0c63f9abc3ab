package model

import "errors"

var (
	// ErrPeriodNotFound is returned when a period is not found.
	ErrPeriodNotFound = errors.New("selection period not found")

	// ErrPeriodNameRequired is returned when name is empty.
	ErrPeriodNameRequired = errors.New("period name is required")

	// ErrInvalidDateRange is returned when endDate < startDate.
	ErrInvalidDateRange = errors.New("end date must not precede start date")

	// ErrEmptyRouteCatalog is returned when a period has no routes.
	ErrEmptyRouteCatalog = errors.New("period route catalog must not be empty")

	// ErrInvalidRequiredSelections is returned for a count outside {1,2,3}.
	ErrInvalidRequiredSelections = errors.New("required selections must be 1, 2, or 3")

	// ErrInvalidTransition is returned when a requested action is not
	// legal from the period's current status.
	ErrInvalidTransition = errors.New("transition not permitted from current period status")

	// ErrForbidden is returned when the initiator lacks the role the
	// transition requires (e.g. delete requires an admin).
	ErrForbidden = errors.New("initiator is not authorized for this transition")

	// ErrHasAssignments is returned when deletion is attempted on a
	// period that already carries Assignments.
	ErrHasAssignments = errors.New("period has assignments and cannot be deleted")
)

// ErrorCode is a machine-readable error code.
type ErrorCode string

const (
	CodePeriodNotFound             ErrorCode = "PERIOD_NOT_FOUND"
	CodePeriodNameRequired         ErrorCode = "PERIOD_NAME_REQUIRED"
	CodeInvalidDateRange           ErrorCode = "INVALID_DATE_RANGE"
	CodeEmptyRouteCatalog          ErrorCode = "EMPTY_ROUTE_CATALOG"
	CodeInvalidRequiredSelections  ErrorCode = "INVALID_REQUIRED_SELECTIONS"
	CodeInvalidTransition          ErrorCode = "INVALID_TRANSITION"
	CodeForbidden                  ErrorCode = "FORBIDDEN"
	CodeHasAssignments             ErrorCode = "HAS_ASSIGNMENTS"
	CodeInternalError              ErrorCode = "INTERNAL_ERROR"
)

// GetErrorCode maps errors to error codes.
func GetErrorCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrPeriodNotFound):
		return CodePeriodNotFound
	case errors.Is(err, ErrPeriodNameRequired):
		return CodePeriodNameRequired
	case errors.Is(err, ErrInvalidDateRange):
		return CodeInvalidDateRange
	case errors.Is(err, ErrEmptyRouteCatalog):
		return CodeEmptyRouteCatalog
	case errors.Is(err, ErrInvalidRequiredSelections):
		return CodeInvalidRequiredSelections
	case errors.Is(err, ErrInvalidTransition):
		return CodeInvalidTransition
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrHasAssignments):
		return CodeHasAssignments
	default:
		return CodeInternalError
	}
}

// GetErrorMessage returns a user-friendly error message.
func GetErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrPeriodNotFound):
		return "Selection period not found"
	case errors.Is(err, ErrPeriodNameRequired):
		return "Period name is required"
	case errors.Is(err, ErrInvalidDateRange):
		return "End date must not precede start date"
	case errors.Is(err, ErrEmptyRouteCatalog):
		return "Period route catalog must not be empty"
	case errors.Is(err, ErrInvalidRequiredSelections):
		return "Required selections must be 1, 2, or 3"
	case errors.Is(err, ErrInvalidTransition):
		return "Transition not permitted from current period status"
	case errors.Is(err, ErrForbidden):
		return "Initiator is not authorized for this transition"
	case errors.Is(err, ErrHasAssignments):
		return "Period has assignments and cannot be deleted"
	default:
		return "Internal server error"
	}
}
