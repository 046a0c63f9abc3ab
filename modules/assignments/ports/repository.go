package ports

import (
	"context"

	"github.com/pavlenko-transit/pickboard/modules/assignments/model"
)

// AssignmentRepository defines the interface for assignment data
// access. ReplaceForPeriod implements the manual-assignment
// replacement policy: an engine commit deletes all existing rows for
// the period before inserting its own computed set.
type AssignmentRepository interface {
	GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (*model.Assignment, error)
	ListByPeriod(ctx context.Context, periodID string) ([]*model.Assignment, error)
	// ReplaceForPeriod atomically deletes every assignment row for
	// periodID and inserts assignments in its place.
	ReplaceForPeriod(ctx context.Context, periodID string, assignments []*model.Assignment) error
	// Upsert inserts or replaces a single employee's assignment for
	// a period, used by the manual-assignment path.
	Upsert(ctx context.Context, a *model.Assignment) error
	// IsRouteTaken reports whether routeID is already held by an
	// employee other than excludingEmployeeID within periodID.
	IsRouteTaken(ctx context.Context, periodID, routeID, excludingEmployeeID string) (bool, error)
}
