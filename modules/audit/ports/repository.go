package ports

import (
	"context"

	"github.com/pavlenko-transit/pickboard/modules/audit/model"
)

// ListOptions filters the time-reverse audit scan.
type ListOptions struct {
	UserID string
	Limit  int
	Offset int
}

// AuditRepository defines append-only audit access. Implementations
// are built against postgres.Executor so every other module's
// transactional write can insert its audit event inside the same
// pgx.Tx the triggering write runs in.
type AuditRepository interface {
	// Insert appends one event. Never update or delete an event.
	Insert(ctx context.Context, event *model.Event) error
	// List returns events newest-first, optionally filtered by user.
	List(ctx context.Context, opts *ListOptions) ([]*model.Event, int, error)
}
