package ports

import (
	"context"

	"github.com/pavlenko-transit/pickboard/modules/routes/model"
)

// ListOptions defines options for listing routes
type ListOptions struct {
	TerminalID string
	ActiveOnly bool
	Limit      int
	Offset     int
}

// RouteRepository defines the interface for route data access
type RouteRepository interface {
	Create(ctx context.Context, route *model.Route) error
	GetByID(ctx context.Context, routeID string) (*model.Route, error)
	List(ctx context.Context, opts *ListOptions) ([]*model.Route, int, error)
	// ListByIDs returns every route whose ID is in ids, in no
	// particular order; used by the Assignment Engine to materialize
	// a period's route catalog in one round trip.
	ListByIDs(ctx context.Context, ids []string) ([]*model.Route, error)
	Update(ctx context.Context, route *model.Route) error
	Delete(ctx context.Context, routeID string) error
}
