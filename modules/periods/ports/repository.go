package ports

import (
	"context"

	"github.com/pavlenko-transit/pickboard/modules/periods/model"
)

// ListOptions defines options for listing selection periods.
type ListOptions struct {
	TerminalID string
	Status     model.Status
	Limit      int
	Offset     int
}

// PeriodRepository defines the interface for selection-period data
// access. Implementations are built against postgres.Executor so the
// same repository type can run against the pool directly (plain
// reads) or against a caller-supplied pgx.Tx (the Preference Store's
// upsert and the Assignment Engine's commit, both of which must
// observe/mutate the period's status inside their own transaction).
type PeriodRepository interface {
	Create(ctx context.Context, period *model.SelectionPeriod) error
	GetByID(ctx context.Context, id string) (*model.SelectionPeriod, error)
	List(ctx context.Context, opts *ListOptions) ([]*model.SelectionPeriod, int, error)
	Update(ctx context.Context, period *model.SelectionPeriod) error
	Delete(ctx context.Context, id string) error

	// GetForUpdate re-reads the period row with a row lock suitable
	// for validating status inside an enclosing transaction, so the
	// status check and the write it gates observe the same snapshot.
	// The repository must have been constructed over that
	// transaction's Executor.
	GetForUpdate(ctx context.Context, id string) (*model.SelectionPeriod, error)

	// SetStatus updates only the status column, used by the state
	// machine's transition methods and by the Assignment Engine's
	// process/complete/abort sequence.
	SetStatus(ctx context.Context, id string, status model.Status) error

	// HasAssignments reports whether any Assignment rows exist for
	// the period, used to gate deletion.
	HasAssignments(ctx context.Context, id string) (bool, error)
}
