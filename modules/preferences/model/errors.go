package model

import "errors"

var (
	// ErrPreferenceNotFound is returned when no preference exists for
	// the (employee, period) pair.
	ErrPreferenceNotFound = errors.New("preference not found")

	// ErrPeriodNotOpen is returned when a write is attempted outside
	// the OPEN window.
	ErrPeriodNotOpen = errors.New("period is not open for submissions")

	// ErrRouteNotInCatalog is returned when a choice is not part of
	// the period's route catalog.
	ErrRouteNotInCatalog = errors.New("choice is not in the period's route catalog")

	// ErrDuplicateChoice is returned when choices are not pairwise
	// distinct.
	ErrDuplicateChoice = errors.New("choices must be pairwise distinct")

	// ErrUnmetRequiredCount is returned when fewer non-null choices
	// were submitted than the period requires.
	ErrUnmetRequiredCount = errors.New("fewer choices submitted than the period requires")

	// ErrTooManyChoices is returned when more than MaxChoices were submitted.
	ErrTooManyChoices = errors.New("too many choices submitted")
)

// ErrorCode is a machine-readable error code.
type ErrorCode string

const (
	CodePreferenceNotFound  ErrorCode = "PREFERENCE_NOT_FOUND"
	CodePeriodNotOpen       ErrorCode = "PERIOD_NOT_OPEN"
	CodeRouteNotInCatalog   ErrorCode = "ROUTE_NOT_IN_CATALOG"
	CodeDuplicateChoice     ErrorCode = "DUPLICATE_CHOICE"
	CodeUnmetRequiredCount  ErrorCode = "UNMET_REQUIRED_COUNT"
	CodeTooManyChoices      ErrorCode = "TOO_MANY_CHOICES"
	CodeInternalError       ErrorCode = "INTERNAL_ERROR"
)

// GetErrorCode maps errors to error codes.
func GetErrorCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrPreferenceNotFound):
		return CodePreferenceNotFound
	case errors.Is(err, ErrPeriodNotOpen):
		return CodePeriodNotOpen
	case errors.Is(err, ErrRouteNotInCatalog):
		return CodeRouteNotInCatalog
	case errors.Is(err, ErrDuplicateChoice):
		return CodeDuplicateChoice
	case errors.Is(err, ErrUnmetRequiredCount):
		return CodeUnmetRequiredCount
	case errors.Is(err, ErrTooManyChoices):
		return CodeTooManyChoices
	default:
		return CodeInternalError
	}
}

// GetErrorMessage returns a user-friendly error message.
func GetErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrPreferenceNotFound):
		return "Preference not found"
	case errors.Is(err, ErrPeriodNotOpen):
		return "Period is not open for submissions"
	case errors.Is(err, ErrRouteNotInCatalog):
		return "Choice is not in the period's route catalog"
	case errors.Is(err, ErrDuplicateChoice):
		return "Choices must be pairwise distinct"
	case errors.Is(err, ErrUnmetRequiredCount):
		return "Fewer choices submitted than the period requires"
	case errors.Is(err, ErrTooManyChoices):
		return "Too many choices submitted"
	default:
		return "Internal server error"
	}
}
