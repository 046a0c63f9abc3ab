package service

import (
	"context"
	"testing"

	"github.com/pavlenko-transit/pickboard/modules/employees/model"
	"github.com/pavlenko-transit/pickboard/modules/employees/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockEmployeeRepository implements ports.EmployeeRepository
type MockEmployeeRepository struct {
	CreateFunc          func(ctx context.Context, employee *model.Employee) error
	GetByIDFunc         func(ctx context.Context, id string) (*model.Employee, error)
	GetByEmployeeIDFunc func(ctx context.Context, employeeID string) (*model.Employee, error)
	GetByAccountIDFunc  func(ctx context.Context, accountID string) (*model.Employee, error)
	ListFunc            func(ctx context.Context, opts *ports.EmployeeListOptions) ([]*model.Employee, int, error)
	ListEligibleFunc    func(ctx context.Context, terminalID string) ([]*model.Employee, error)
	UpdateFunc          func(ctx context.Context, employee *model.Employee) error
	DeleteFunc          func(ctx context.Context, id string) error
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, employee)
	}
	return nil
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockEmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error) {
	if m.GetByEmployeeIDFunc != nil {
		return m.GetByEmployeeIDFunc(ctx, employeeID)
	}
	return nil, nil
}

func (m *MockEmployeeRepository) GetByAccountID(ctx context.Context, accountID string) (*model.Employee, error) {
	if m.GetByAccountIDFunc != nil {
		return m.GetByAccountIDFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *MockEmployeeRepository) List(ctx context.Context, opts *ports.EmployeeListOptions) ([]*model.Employee, int, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, opts)
	}
	return nil, 0, nil
}

func (m *MockEmployeeRepository) ListEligible(ctx context.Context, terminalID string) ([]*model.Employee, error) {
	if m.ListEligibleFunc != nil {
		return m.ListEligibleFunc(ctx, terminalID)
	}
	return nil, nil
}

func (m *MockEmployeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, employee)
	}
	return nil
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func TestEmployeeService_Create(t *testing.T) {
	t.Run("rejects empty employee id", func(t *testing.T) {
		svc := NewEmployeeService(&MockEmployeeRepository{})
		result, err := svc.Create(context.Background(), &model.CreateEmployeeRequest{EmployeeID: "  "})

		assert.Nil(t, result)
		assert.Equal(t, model.ErrEmployeeIDRequired, err)
	})

	t.Run("creates employee successfully", func(t *testing.T) {
		mockRepo := &MockEmployeeRepository{
			CreateFunc: func(ctx context.Context, employee *model.Employee) error {
				employee.ID = "employee-1"
				employee.Eligible = true
				return nil
			},
		}
		svc := NewEmployeeService(mockRepo)
		result, err := svc.Create(context.Background(), &model.CreateEmployeeRequest{
			EmployeeID: "E042",
			FirstName:  "Jo",
			LastName:   "Smith",
		})

		require.NoError(t, err)
		assert.Equal(t, "E042", result.EmployeeID)
	})
}

func TestEmployeeService_GetByAccountID(t *testing.T) {
	t.Run("returns not found when no link exists", func(t *testing.T) {
		mockRepo := &MockEmployeeRepository{
			GetByAccountIDFunc: func(ctx context.Context, accountID string) (*model.Employee, error) {
				return nil, model.ErrEmployeeNotFound
			},
		}
		svc := NewEmployeeService(mockRepo)
		result, err := svc.GetByAccountID(context.Background(), "account-1")

		assert.Nil(t, result)
		assert.Equal(t, model.ErrEmployeeNotFound, err)
	})
}
