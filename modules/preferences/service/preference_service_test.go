package service

import (
	"context"
	"testing"
	"time"

	"github.com/pavlenko-transit/pickboard/internal/platform/logger"
	"github.com/pavlenko-transit/pickboard/internal/platform/postgres"
	periodModel "github.com/pavlenko-transit/pickboard/modules/periods/model"
	"github.com/pavlenko-transit/pickboard/modules/preferences/model"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pgxmockTxRunner adapts a pgxmock pool to postgres.TxRunner so the
// service's re-read-status-in-transaction logic runs against mocked
// SQL instead of a live database.
type pgxmockTxRunner struct {
	pool pgxmock.PgxPoolIface
}

func (r *pgxmockTxRunner) WithSerializableTx(ctx context.Context, fn func(ctx context.Context, tx postgres.Executor) error) error {
	return fn(ctx, r.pool)
}

type fakeIssuer struct{ n int }

func (f *fakeIssuer) Next(ctx context.Context, periodID string) (string, error) {
	f.n++
	return "CONF-000001", nil
}

type fakePreferenceRepo struct {
	getErr error
	pref   *model.Preference
}

func (f *fakePreferenceRepo) Upsert(ctx context.Context, p *model.Preference) error { return nil }
func (f *fakePreferenceRepo) GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (*model.Preference, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.pref, nil
}
func (f *fakePreferenceRepo) ListByPeriod(ctx context.Context, periodID string) ([]*model.Preference, error) {
	return nil, nil
}

func periodRow(status periodModel.Status, required int) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{
		"id", "name", "description", "terminal_id", "start_date", "end_date",
		"status", "required_selections", "created_at", "updated_at",
	}).AddRow("period-1", "Fall 2026", "", (*string)(nil), now, now, status, required, now, now)
}

func TestPreferenceService_Upsert(t *testing.T) {
	log, err := logger.New("error", "console")
	require.NoError(t, err)

	t.Run("rejects when period is not open at commit instant", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, name, description").
			WithArgs("period-1").
			WillReturnRows(periodRow(periodModel.StatusClosed, 2))
		mock.ExpectQuery("SELECT route_id FROM period_routes").
			WithArgs("period-1").
			WillReturnRows(pgxmock.NewRows([]string{"route_id"}).AddRow("route-1"))

		svc := NewPreferenceService(&pgxmockTxRunner{pool: mock}, &fakePreferenceRepo{}, &fakeIssuer{}, log)
		_, err = svc.Upsert(context.Background(), "admin-1", "emp-1", "period-1", []string{"route-1", "route-2"})

		assert.Equal(t, model.ErrPeriodNotOpen, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects choice not in period catalog", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, name, description").
			WithArgs("period-1").
			WillReturnRows(periodRow(periodModel.StatusOpen, 1))
		mock.ExpectQuery("SELECT route_id FROM period_routes").
			WithArgs("period-1").
			WillReturnRows(pgxmock.NewRows([]string{"route_id"}).AddRow("route-1"))

		svc := NewPreferenceService(&pgxmockTxRunner{pool: mock}, &fakePreferenceRepo{}, &fakeIssuer{}, log)
		_, err = svc.Upsert(context.Background(), "admin-1", "emp-1", "period-1", []string{"route-99"})

		assert.Equal(t, model.ErrRouteNotInCatalog, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects fewer choices than required", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, name, description").
			WithArgs("period-1").
			WillReturnRows(periodRow(periodModel.StatusOpen, 2))
		mock.ExpectQuery("SELECT route_id FROM period_routes").
			WithArgs("period-1").
			WillReturnRows(pgxmock.NewRows([]string{"route_id"}).AddRow("route-1"))

		svc := NewPreferenceService(&pgxmockTxRunner{pool: mock}, &fakePreferenceRepo{}, &fakeIssuer{}, log)
		_, err = svc.Upsert(context.Background(), "admin-1", "emp-1", "period-1", []string{"route-1"})

		assert.Equal(t, model.ErrUnmetRequiredCount, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects duplicate choices before opening a transaction", func(t *testing.T) {
		svc := NewPreferenceService(&pgxmockTxRunner{}, &fakePreferenceRepo{}, &fakeIssuer{}, log)
		_, err := svc.Upsert(context.Background(), "admin-1", "emp-1", "period-1", []string{"route-1", "route-1"})
		assert.Equal(t, model.ErrDuplicateChoice, err)
	})

	t.Run("accepts a valid submission and persists it", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, name, description").
			WithArgs("period-1").
			WillReturnRows(periodRow(periodModel.StatusOpen, 1))
		mock.ExpectQuery("SELECT route_id FROM period_routes").
			WithArgs("period-1").
			WillReturnRows(pgxmock.NewRows([]string{"route_id"}).AddRow("route-1").AddRow("route-2"))
		mock.ExpectExec("INSERT INTO preferences").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO audit_events").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		svc := NewPreferenceService(&pgxmockTxRunner{pool: mock}, &fakePreferenceRepo{}, &fakeIssuer{}, log)
		confirmation, err := svc.Upsert(context.Background(), "admin-1", "emp-1", "period-1", []string{"route-1", "route-2"})

		require.NoError(t, err)
		assert.Equal(t, "CONF-000001", confirmation)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPreferenceService_Get(t *testing.T) {
	log, err := logger.New("error", "console")
	require.NoError(t, err)

	t.Run("round-trip matches what was stored (property 5)", func(t *testing.T) {
		stored := &model.Preference{
			ID: "pref-1", EmployeeID: "emp-1", PeriodID: "period-1",
			Choices: []string{"route-1", "route-2"}, ConfirmationNumber: "CONF-000001",
		}
		svc := NewPreferenceService(&pgxmockTxRunner{}, &fakePreferenceRepo{pref: stored}, &fakeIssuer{}, log)

		dto, err := svc.Get(context.Background(), "emp-1", "period-1")

		require.NoError(t, err)
		assert.Equal(t, []string{"route-1", "route-2"}, dto.Choices)
	})

	t.Run("surfaces a canonical not-found", func(t *testing.T) {
		svc := NewPreferenceService(&pgxmockTxRunner{}, &fakePreferenceRepo{getErr: model.ErrPreferenceNotFound}, &fakeIssuer{}, log)
		_, err := svc.Get(context.Background(), "emp-1", "period-1")
		assert.Equal(t, model.ErrPreferenceNotFound, err)
	})
}
