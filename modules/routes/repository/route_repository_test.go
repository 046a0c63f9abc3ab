package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pavlenko-transit/pickboard/modules/routes/model"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteRepository_GetByID(t *testing.T) {
	t.Run("returns route successfully", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		now := time.Now()
		rows := pgxmock.NewRows([]string{
			"id", "run_number", "terminal_id", "origin", "destination", "type", "days",
			"start_time", "end_time", "distance", "work_time", "rate_type",
			"requires_doubles_endorsement", "requires_chain_experience", "active",
			"created_at", "updated_at",
		}).AddRow(
			"route-1", "101", "terminal-1", "Seattle", "Tacoma", model.RouteTypeSingles, "MTWTF",
			"08:00", "16:00", 42.5, 8.0, model.RateTypeHourly,
			false, false, true, now, now,
		)

		mock.ExpectQuery("SELECT id, run_number, terminal_id").
			WithArgs("route-1").
			WillReturnRows(rows)

		repo := &testRouteRepo{mock: mock}
		route, err := repo.GetByID(context.Background(), "route-1")

		require.NoError(t, err)
		assert.Equal(t, "101", route.RunNumber)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error when not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, run_number, terminal_id").
			WithArgs("nonexistent").
			WillReturnError(pgx.ErrNoRows)

		repo := &testRouteRepo{mock: mock}
		route, err := repo.GetByID(context.Background(), "nonexistent")

		assert.Nil(t, route)
		assert.Equal(t, model.ErrRouteNotFound, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRouteRepository_ListByIDs(t *testing.T) {
	t.Run("returns empty for no ids", func(t *testing.T) {
		repo := &testRouteRepo{}
		routes, err := repo.ListByIDs(context.Background(), nil)
		require.NoError(t, err)
		assert.Nil(t, routes)
	})
}

// testRouteRepo mirrors RouteRepository's queries against a pgxmock pool.
type testRouteRepo struct {
	mock pgxmock.PgxPoolIface
}

func (r *testRouteRepo) GetByID(ctx context.Context, routeID string) (*model.Route, error) {
	query := `SELECT id, run_number, terminal_id, origin, destination, type, days,
		start_time, end_time, distance, work_time, rate_type,
		requires_doubles_endorsement, requires_chain_experience, active,
		created_at, updated_at FROM routes WHERE id = $1`

	route := &model.Route{}
	err := r.mock.QueryRow(ctx, query, routeID).Scan(
		&route.ID, &route.RunNumber, &route.TerminalID, &route.Origin, &route.Destination,
		&route.Type, &route.Days, &route.StartTime, &route.EndTime, &route.Distance,
		&route.WorkTime, &route.RateType, &route.RequiresDoublesEndorsement,
		&route.RequiresChainExperience, &route.Active, &route.CreatedAt, &route.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, model.ErrRouteNotFound
		}
		return nil, err
	}
	return route, nil
}

func (r *testRouteRepo) ListByIDs(ctx context.Context, ids []string) ([]*model.Route, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return nil, nil
}
