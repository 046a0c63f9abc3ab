package model

import "errors"

var (
	// ErrAccountNotFound is returned when an account is not found
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists is returned when an account with the same email already exists
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrInvalidCredentials is returned when credentials are invalid
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidEmail is returned when email format is invalid
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPassword is returned when password is invalid
	ErrInvalidPassword = errors.New("invalid password")

	// ErrEmployeeNotFound is returned when an employee roster record is not found
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrEmployeeIDRequired is returned when the business employee ID is empty
	ErrEmployeeIDRequired = errors.New("employee id is required")

	// ErrEmployeeIDTaken is returned when the business employee ID already exists
	ErrEmployeeIDTaken = errors.New("employee id already in use")
)

// ErrorCode represents a machine-readable error code
type ErrorCode string

const (
	CodeAccountNotFound      ErrorCode = "ACCOUNT_NOT_FOUND"
	CodeAccountAlreadyExists ErrorCode = "ACCOUNT_ALREADY_EXISTS"
	CodeInvalidCredentials   ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidEmail         ErrorCode = "INVALID_EMAIL"
	CodeInvalidPassword      ErrorCode = "INVALID_PASSWORD"
	CodeEmployeeNotFound     ErrorCode = "EMPLOYEE_NOT_FOUND"
	CodeEmployeeIDRequired   ErrorCode = "EMPLOYEE_ID_REQUIRED"
	CodeEmployeeIDTaken      ErrorCode = "EMPLOYEE_ID_TAKEN"
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
)

// GetErrorCode maps errors to error codes
func GetErrorCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrAccountAlreadyExists):
		return CodeAccountAlreadyExists
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidEmail):
		return CodeInvalidEmail
	case errors.Is(err, ErrInvalidPassword):
		return CodeInvalidPassword
	case errors.Is(err, ErrEmployeeNotFound):
		return CodeEmployeeNotFound
	case errors.Is(err, ErrEmployeeIDRequired):
		return CodeEmployeeIDRequired
	case errors.Is(err, ErrEmployeeIDTaken):
		return CodeEmployeeIDTaken
	default:
		return CodeInternalError
	}
}

// GetErrorMessage returns a user-friendly error message
func GetErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		return "Account not found"
	case errors.Is(err, ErrAccountAlreadyExists):
		return "Account with this email already exists"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, ErrInvalidEmail):
		return "Invalid email format"
	case errors.Is(err, ErrInvalidPassword):
		return "Password must be at least 8 characters"
	case errors.Is(err, ErrEmployeeNotFound):
		return "Employee not found"
	case errors.Is(err, ErrEmployeeIDRequired):
		return "Employee id is required"
	case errors.Is(err, ErrEmployeeIDTaken):
		return "Employee id already in use"
	default:
		return "Internal server error"
	}
}
