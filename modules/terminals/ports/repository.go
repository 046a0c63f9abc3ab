package ports

import (
	"context"

	"github.com/pavlenko-transit/pickboard/modules/terminals/model"
)

// ListOptions defines options for listing terminals
type ListOptions struct {
	Limit        int
	Offset       int
	ActiveOnly   bool
}

// TerminalRepository defines the interface for terminal data access
type TerminalRepository interface {
	Create(ctx context.Context, terminal *model.Terminal) error
	GetByID(ctx context.Context, terminalID string) (*model.Terminal, error)
	GetByCode(ctx context.Context, code string) (*model.Terminal, error)
	List(ctx context.Context, opts *ListOptions) ([]*model.Terminal, int, error)
	Update(ctx context.Context, terminal *model.Terminal) error
	Delete(ctx context.Context, terminalID string) error
}
