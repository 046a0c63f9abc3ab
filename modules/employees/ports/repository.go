package ports

import (
	"context"

	"github.com/pavlenko-transit/pickboard/modules/employees/model"
)

// AccountRepository defines the interface for authentication-identity data access
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	GetByID(ctx context.Context, accountID string) (*model.Account, error)
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
	Update(ctx context.Context, account *model.Account) error
	Delete(ctx context.Context, accountID string) error
}

// EmployeeListOptions defines options for listing employees
type EmployeeListOptions struct {
	TerminalID  string
	EligibleOnly bool
	Limit       int
	Offset      int
}

// EmployeeRepository defines the interface for seniority-roster data access
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error)
	// GetByAccountID resolves the roster record linked to an
	// authentication Account, used to resolve a driver principal's
	// own employeeId for self-service reads.
	GetByAccountID(ctx context.Context, accountID string) (*model.Employee, error)
	List(ctx context.Context, opts *EmployeeListOptions) ([]*model.Employee, int, error)
	// ListEligible returns every eligible employee for a terminal
	// (or system-wide if terminalID is empty), pre-sorted by
	// seniority (hireDate, lastName, employeeId) ascending — the
	// traversal order the Assignment Engine requires.
	ListEligible(ctx context.Context, terminalID string) ([]*model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) error
	Delete(ctx context.Context, id string) error
}
