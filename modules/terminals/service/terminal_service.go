package service

import (
	"context"
	"strings"

	"github.com/pavlenko-transit/pickboard/modules/terminals/model"
	"github.com/pavlenko-transit/pickboard/modules/terminals/ports"
)

// TerminalService handles terminal business logic
type TerminalService struct {
	repo ports.TerminalRepository
}

// NewTerminalService creates a new terminal service
func NewTerminalService(repo ports.TerminalRepository) *TerminalService {
	return &TerminalService{repo: repo}
}

// Create creates a new terminal
func (s *TerminalService) Create(ctx context.Context, req *model.CreateTerminalRequest) (*model.TerminalDTO, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return nil, model.ErrTerminalCodeRequired
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, model.ErrTerminalNameRequired
	}

	terminal := &model.Terminal{
		Code:   code,
		Name:   name,
		Active: true,
	}

	if err := s.repo.Create(ctx, terminal); err != nil {
		return nil, err
	}

	return terminal.ToDTO(), nil
}

// GetByID retrieves a terminal by ID
func (s *TerminalService) GetByID(ctx context.Context, terminalID string) (*model.TerminalDTO, error) {
	terminal, err := s.repo.GetByID(ctx, terminalID)
	if err != nil {
		return nil, err
	}
	return terminal.ToDTO(), nil
}

// List retrieves terminals with pagination
func (s *TerminalService) List(ctx context.Context, opts *ports.ListOptions) ([]*model.TerminalDTO, int, error) {
	terminals, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]*model.TerminalDTO, len(terminals))
	for i, t := range terminals {
		dtos[i] = t.ToDTO()
	}

	return dtos, total, nil
}

// Update updates a terminal
func (s *TerminalService) Update(ctx context.Context, terminalID string, req *model.UpdateTerminalRequest) (*model.TerminalDTO, error) {
	terminal, err := s.repo.GetByID(ctx, terminalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, model.ErrTerminalNameRequired
		}
		terminal.Name = name
	}
	if req.Active != nil {
		terminal.Active = *req.Active
	}

	if err := s.repo.Update(ctx, terminal); err != nil {
		return nil, err
	}

	return terminal.ToDTO(), nil
}

// Delete deletes a terminal
func (s *TerminalService) Delete(ctx context.Context, terminalID string) error {
	if _, err := s.repo.GetByID(ctx, terminalID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, terminalID)
}
