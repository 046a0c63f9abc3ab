package ports

import (
	"context"

	"github.com/pavlenko-transit/pickboard/modules/preferences/model"
)

// PreferenceRepository defines preference data access. Implementations
// are built against postgres.Executor so Upsert can run inside the
// same transaction that re-reads the period's status.
type PreferenceRepository interface {
	// Upsert inserts or replaces the (employeeID, periodID) row,
	// persisting the confirmation number the caller set on pref (the
	// repository just persists what it's given).
	Upsert(ctx context.Context, pref *model.Preference) error
	GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (*model.Preference, error)
	ListByPeriod(ctx context.Context, periodID string) ([]*model.Preference, error)
}

// ConfirmationIssuer generates the opaque, unique, monotonic
// confirmation number shown to a driver on successful submission.
// Backed by Redis INCR in production.
type ConfirmationIssuer interface {
	Next(ctx context.Context, periodID string) (string, error)
}
