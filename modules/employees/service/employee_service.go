package service

import (
	"context"
	"strings"

	"github.com/pavlenko-transit/pickboard/modules/employees/model"
	"github.com/pavlenko-transit/pickboard/modules/employees/ports"
)

// EmployeeService handles seniority-roster business logic
type EmployeeService struct {
	repo ports.EmployeeRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo ports.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// Create creates a new employee roster record
func (s *EmployeeService) Create(ctx context.Context, req *model.CreateEmployeeRequest) (*model.EmployeeDTO, error) {
	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		return nil, model.ErrEmployeeIDRequired
	}

	employee := &model.Employee{
		EmployeeID:         employeeID,
		FirstName:          strings.TrimSpace(req.FirstName),
		LastName:           strings.TrimSpace(req.LastName),
		HireDate:           req.HireDate,
		DoublesEndorsement: req.DoublesEndorsement,
		ChainExperience:    req.ChainExperience,
		TerminalID:         req.TerminalID,
		AccountID:          req.AccountID,
	}

	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, err
	}

	return employee.ToDTO(), nil
}

// GetByID retrieves an employee by surrogate ID
func (s *EmployeeService) GetByID(ctx context.Context, id string) (*model.EmployeeDTO, error) {
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return employee.ToDTO(), nil
}

// GetByAccountID resolves a driver principal's own roster record
func (s *EmployeeService) GetByAccountID(ctx context.Context, accountID string) (*model.EmployeeDTO, error) {
	employee, err := s.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return employee.ToDTO(), nil
}

// List retrieves employees matching the given options
func (s *EmployeeService) List(ctx context.Context, opts *ports.EmployeeListOptions) ([]*model.EmployeeDTO, int, error) {
	employees, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]*model.EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = e.ToDTO()
	}

	return dtos, total, nil
}

// Update updates an employee roster record
func (s *EmployeeService) Update(ctx context.Context, id string, req *model.UpdateEmployeeRequest) (*model.EmployeeDTO, error) {
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		employee.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		employee.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.DoublesEndorsement != nil {
		employee.DoublesEndorsement = *req.DoublesEndorsement
	}
	if req.ChainExperience != nil {
		employee.ChainExperience = *req.ChainExperience
	}
	if req.Eligible != nil {
		employee.Eligible = *req.Eligible
	}
	if req.TerminalID != nil {
		employee.TerminalID = req.TerminalID
	}

	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, err
	}

	return employee.ToDTO(), nil
}

// Delete deletes an employee roster record
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
