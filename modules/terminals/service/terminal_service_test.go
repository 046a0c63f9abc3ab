package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pavlenko-transit/pickboard/modules/terminals/model"
	"github.com/pavlenko-transit/pickboard/modules/terminals/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockTerminalRepository implements ports.TerminalRepository
type MockTerminalRepository struct {
	CreateFunc  func(ctx context.Context, terminal *model.Terminal) error
	GetByIDFunc func(ctx context.Context, terminalID string) (*model.Terminal, error)
	GetByCodeFunc func(ctx context.Context, code string) (*model.Terminal, error)
	ListFunc    func(ctx context.Context, opts *ports.ListOptions) ([]*model.Terminal, int, error)
	UpdateFunc  func(ctx context.Context, terminal *model.Terminal) error
	DeleteFunc  func(ctx context.Context, terminalID string) error
}

func (m *MockTerminalRepository) Create(ctx context.Context, terminal *model.Terminal) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, terminal)
	}
	return nil
}

func (m *MockTerminalRepository) GetByID(ctx context.Context, terminalID string) (*model.Terminal, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, terminalID)
	}
	return nil, nil
}

func (m *MockTerminalRepository) GetByCode(ctx context.Context, code string) (*model.Terminal, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *MockTerminalRepository) List(ctx context.Context, opts *ports.ListOptions) ([]*model.Terminal, int, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, opts)
	}
	return nil, 0, nil
}

func (m *MockTerminalRepository) Update(ctx context.Context, terminal *model.Terminal) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, terminal)
	}
	return nil
}

func (m *MockTerminalRepository) Delete(ctx context.Context, terminalID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, terminalID)
	}
	return nil
}

func TestTerminalService_Create(t *testing.T) {
	t.Run("creates terminal successfully", func(t *testing.T) {
		mockRepo := &MockTerminalRepository{
			CreateFunc: func(ctx context.Context, terminal *model.Terminal) error {
				terminal.ID = "terminal-1"
				return nil
			},
		}

		svc := NewTerminalService(mockRepo)
		req := &model.CreateTerminalRequest{Code: "sea", Name: "Seattle"}

		result, err := svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "SEA", result.Code)
		assert.True(t, result.Active)
	})

	t.Run("returns error for empty code", func(t *testing.T) {
		svc := NewTerminalService(&MockTerminalRepository{})
		req := &model.CreateTerminalRequest{Code: "  ", Name: "Seattle"}

		result, err := svc.Create(context.Background(), req)

		assert.Nil(t, result)
		assert.Equal(t, model.ErrTerminalCodeRequired, err)
	})

	t.Run("returns error from repository", func(t *testing.T) {
		expectedErr := errors.New("database error")
		mockRepo := &MockTerminalRepository{
			CreateFunc: func(ctx context.Context, terminal *model.Terminal) error {
				return expectedErr
			},
		}

		svc := NewTerminalService(mockRepo)
		req := &model.CreateTerminalRequest{Code: "SEA", Name: "Seattle"}

		result, err := svc.Create(context.Background(), req)

		assert.Nil(t, result)
		assert.Equal(t, expectedErr, err)
	})
}

func TestTerminalService_Update(t *testing.T) {
	t.Run("updates fields selectively", func(t *testing.T) {
		existing := &model.Terminal{ID: "terminal-1", Code: "SEA", Name: "Seattle", Active: true}
		mockRepo := &MockTerminalRepository{
			GetByIDFunc: func(ctx context.Context, terminalID string) (*model.Terminal, error) {
				return existing, nil
			},
			UpdateFunc: func(ctx context.Context, terminal *model.Terminal) error {
				return nil
			},
		}

		svc := NewTerminalService(mockRepo)
		newName := "Seattle Terminal"
		inactive := false
		result, err := svc.Update(context.Background(), "terminal-1", &model.UpdateTerminalRequest{Name: &newName, Active: &inactive})

		require.NoError(t, err)
		assert.Equal(t, "Seattle Terminal", result.Name)
		assert.False(t, result.Active)
	})

	t.Run("returns not found", func(t *testing.T) {
		mockRepo := &MockTerminalRepository{
			GetByIDFunc: func(ctx context.Context, terminalID string) (*model.Terminal, error) {
				return nil, model.ErrTerminalNotFound
			},
		}
		svc := NewTerminalService(mockRepo)
		result, err := svc.Update(context.Background(), "nonexistent", &model.UpdateTerminalRequest{})

		assert.Nil(t, result)
		assert.Equal(t, model.ErrTerminalNotFound, err)
	})
}

func TestTerminalService_Delete(t *testing.T) {
	t.Run("deletes after existence check", func(t *testing.T) {
		called := false
		mockRepo := &MockTerminalRepository{
			GetByIDFunc: func(ctx context.Context, terminalID string) (*model.Terminal, error) {
				return &model.Terminal{ID: terminalID}, nil
			},
			DeleteFunc: func(ctx context.Context, terminalID string) error {
				called = true
				return nil
			},
		}
		svc := NewTerminalService(mockRepo)
		err := svc.Delete(context.Background(), "terminal-1")

		require.NoError(t, err)
		assert.True(t, called)
	})
}
