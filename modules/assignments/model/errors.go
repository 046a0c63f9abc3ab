package model

import "errors"

// Sentinel errors for the Assignment Engine.
var (
	ErrPeriodNotClosed       = errors.New("assignments: period must be CLOSED to process")
	ErrPeriodNotEditable     = errors.New("assignments: manual assignment only permitted while CLOSED or OPEN")
	ErrQualificationViolation = errors.New("assignments: employee does not meet route qualifications")
	ErrRouteAlreadyAssigned  = errors.New("assignments: route is already held by another employee")
	ErrEmployeeNotEligible   = errors.New("assignments: employee is not eligible for this period")
	ErrRouteNotInCatalog     = errors.New("assignments: route is not in the period's catalog")
	ErrValidationFailed      = errors.New("assignments: commit validation failed, period reverted to CLOSED")
	ErrAssignmentNotFound    = errors.New("assignments: assignment not found")
)

// ErrorCode tags each sentinel with a stable, client-facing code.
type ErrorCode string

const (
	CodePeriodNotClosed        ErrorCode = "PERIOD_NOT_CLOSED"
	CodePeriodNotEditable      ErrorCode = "PERIOD_NOT_EDITABLE"
	CodeQualificationViolation ErrorCode = "QUALIFICATION_VIOLATION"
	CodeRouteAlreadyAssigned   ErrorCode = "ROUTE_ALREADY_ASSIGNED"
	CodeEmployeeNotEligible    ErrorCode = "EMPLOYEE_NOT_ELIGIBLE"
	CodeRouteNotInCatalog      ErrorCode = "ROUTE_NOT_IN_CATALOG"
	CodeValidationFailed       ErrorCode = "VALIDATION_FAILED"
	CodeAssignmentNotFound     ErrorCode = "ASSIGNMENT_NOT_FOUND"
	CodeInternal               ErrorCode = "INTERNAL_ERROR"
)

// GetErrorCode maps a sentinel error to its client-facing code.
func GetErrorCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrPeriodNotClosed):
		return CodePeriodNotClosed
	case errors.Is(err, ErrPeriodNotEditable):
		return CodePeriodNotEditable
	case errors.Is(err, ErrQualificationViolation):
		return CodeQualificationViolation
	case errors.Is(err, ErrRouteAlreadyAssigned):
		return CodeRouteAlreadyAssigned
	case errors.Is(err, ErrEmployeeNotEligible):
		return CodeEmployeeNotEligible
	case errors.Is(err, ErrRouteNotInCatalog):
		return CodeRouteNotInCatalog
	case errors.Is(err, ErrValidationFailed):
		return CodeValidationFailed
	case errors.Is(err, ErrAssignmentNotFound):
		return CodeAssignmentNotFound
	default:
		return CodeInternal
	}
}

// GetErrorMessage returns a human-readable message for err.
func GetErrorMessage(err error) string {
	switch GetErrorCode(err) {
	case CodePeriodNotClosed:
		return "Period must be CLOSED to process assignments"
	case CodePeriodNotEditable:
		return "Manual assignment is only permitted while the period is CLOSED or OPEN"
	case CodeQualificationViolation:
		return "Employee does not meet the route's qualification requirements"
	case CodeRouteAlreadyAssigned:
		return "Route is already held by another employee in this period"
	case CodeEmployeeNotEligible:
		return "Employee is not eligible for this period"
	case CodeRouteNotInCatalog:
		return "Route is not part of the period's catalog"
	case CodeValidationFailed:
		return "Commit validation failed; the period was reverted to CLOSED"
	case CodeAssignmentNotFound:
		return "Assignment not found"
	default:
		return "An internal error occurred"
	}
}
