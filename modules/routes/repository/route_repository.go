package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pavlenko-transit/pickboard/modules/routes/model"
	"github.com/pavlenko-transit/pickboard/modules/routes/ports"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RouteRepository implements ports.RouteRepository
type RouteRepository struct {
	pool *pgxpool.Pool
}

// NewRouteRepository creates a new route repository
func NewRouteRepository(pool *pgxpool.Pool) *RouteRepository {
	return &RouteRepository{pool: pool}
}

const routeColumns = `id, run_number, terminal_id, origin, destination, type, days,
		start_time, end_time, distance, work_time, rate_type,
		requires_doubles_endorsement, requires_chain_experience, active,
		created_at, updated_at`

func scanRoute(row pgx.Row) (*model.Route, error) {
	route := &model.Route{}
	err := row.Scan(
		&route.ID,
		&route.RunNumber,
		&route.TerminalID,
		&route.Origin,
		&route.Destination,
		&route.Type,
		&route.Days,
		&route.StartTime,
		&route.EndTime,
		&route.Distance,
		&route.WorkTime,
		&route.RateType,
		&route.RequiresDoublesEndorsement,
		&route.RequiresChainExperience,
		&route.Active,
		&route.CreatedAt,
		&route.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRouteNotFound
		}
		return nil, err
	}
	return route, nil
}

// Create creates a new route
func (r *RouteRepository) Create(ctx context.Context, route *model.Route) error {
	query := `
		INSERT INTO routes (` + routeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	route.ID = uuid.New().String()
	now := time.Now().UTC()
	route.CreatedAt = now
	route.UpdatedAt = now

	_, err := r.pool.Exec(ctx, query,
		route.ID,
		route.RunNumber,
		route.TerminalID,
		route.Origin,
		route.Destination,
		route.Type,
		route.Days,
		route.StartTime,
		route.EndTime,
		route.Distance,
		route.WorkTime,
		route.RateType,
		route.RequiresDoublesEndorsement,
		route.RequiresChainExperience,
		route.Active,
		route.CreatedAt,
		route.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrRunNumberTaken
		}
		return err
	}

	return nil
}

// GetByID retrieves a route by ID
func (r *RouteRepository) GetByID(ctx context.Context, routeID string) (*model.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE id = $1`
	return scanRoute(r.pool.QueryRow(ctx, query, routeID))
}

// List retrieves routes with optional terminal/active filters
func (r *RouteRepository) List(ctx context.Context, opts *ports.ListOptions) ([]*model.Route, int, error) {
	where := "WHERE ($1 = '' OR terminal_id = $1) AND (NOT $2 OR active = true)"

	countQuery := "SELECT COUNT(*) FROM routes " + where
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, opts.TerminalID, opts.ActiveOnly).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + routeColumns + ` FROM routes ` + where + ` ORDER BY run_number ASC LIMIT $3 OFFSET $4`

	rows, err := r.pool.Query(ctx, query, opts.TerminalID, opts.ActiveOnly, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var routes []*model.Route
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, 0, err
		}
		routes = append(routes, route)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return routes, total, nil
}

// ListByIDs returns every route matching the given IDs
func (r *RouteRepository) ListByIDs(ctx context.Context, ids []string) ([]*model.Route, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + routeColumns + ` FROM routes WHERE id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []*model.Route
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}

	return routes, rows.Err()
}

// Update updates a route
func (r *RouteRepository) Update(ctx context.Context, route *model.Route) error {
	query := `
		UPDATE routes
		SET origin = $2, destination = $3, days = $4, start_time = $5,
		    end_time = $6, distance = $7, work_time = $8,
		    requires_doubles_endorsement = $9, requires_chain_experience = $10,
		    active = $11, updated_at = $12
		WHERE id = $1
	`

	route.UpdatedAt = time.Now().UTC()

	result, err := r.pool.Exec(ctx, query,
		route.ID,
		route.Origin,
		route.Destination,
		route.Days,
		route.StartTime,
		route.EndTime,
		route.Distance,
		route.WorkTime,
		route.RequiresDoublesEndorsement,
		route.RequiresChainExperience,
		route.Active,
		route.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return model.ErrRouteNotFound
	}

	return nil
}

// Delete deletes a route
func (r *RouteRepository) Delete(ctx context.Context, routeID string) error {
	query := `DELETE FROM routes WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, routeID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return model.ErrRouteNotFound
	}

	return nil
}
