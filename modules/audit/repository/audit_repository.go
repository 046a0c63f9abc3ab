package repository

import (
	"time"

	"context"

	"github.com/pavlenko-transit/pickboard/internal/platform/postgres"
	"github.com/pavlenko-transit/pickboard/modules/audit/model"
	"github.com/pavlenko-transit/pickboard/modules/audit/ports"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AuditRepository implements ports.AuditRepository against a
// postgres.Executor (pool or a caller-supplied pgx.Tx).
type AuditRepository struct {
	db postgres.Executor
}

// NewAuditRepository creates a repository bound to db.
func NewAuditRepository(db postgres.Executor) *AuditRepository {
	return &AuditRepository{db: db}
}

// Insert appends an audit event.
func (r *AuditRepository) Insert(ctx context.Context, e *model.Event) error {
	e.ID = uuid.New().String()
	e.Timestamp = time.Now().UTC()

	_, err := r.db.Exec(ctx, `
		INSERT INTO audit_events (id, timestamp, user_id, action, resource, resource_id, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, e.ID, e.Timestamp, e.UserID, e.Action, e.Resource, e.ResourceID, e.Details)
	return err
}

// List returns events newest-first, optionally filtered by user.
func (r *AuditRepository) List(ctx context.Context, opts *ports.ListOptions) ([]*model.Event, int, error) {
	where := `WHERE ($1 = '' OR user_id = $1)`

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM audit_events `+where, opts.UserID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, timestamp, user_id, action, resource, resource_id, details
		FROM audit_events ` + where + ` ORDER BY timestamp DESC, id DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, opts.UserID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var events []*model.Event
	for rows.Next() {
		e := &model.Event{}
		if err := scanEvent(rows, e); err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}

func scanEvent(row pgx.Row, e *model.Event) error {
	return row.Scan(&e.ID, &e.Timestamp, &e.UserID, &e.Action, &e.Resource, &e.ResourceID, &e.Details)
}
