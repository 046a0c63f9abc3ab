package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pavlenko-transit/pickboard/modules/terminals/model"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalRepository_Create(t *testing.T) {
	t.Run("creates terminal successfully", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		terminal := &model.Terminal{Code: "SEA", Name: "Seattle", Active: true}

		mock.ExpectExec("INSERT INTO terminals").
			WithArgs(pgxmock.AnyArg(), terminal.Code, terminal.Name, terminal.Active, pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := &testTerminalRepo{mock: mock}
		err = repo.Create(context.Background(), terminal)

		require.NoError(t, err)
		assert.NotEmpty(t, terminal.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTerminalRepository_GetByID(t *testing.T) {
	t.Run("returns terminal successfully", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		now := time.Now()
		rows := pgxmock.NewRows([]string{"id", "code", "name", "active", "created_at", "updated_at"}).
			AddRow("terminal-1", "SEA", "Seattle", true, now, now)

		mock.ExpectQuery("SELECT id, code, name, active, created_at, updated_at").
			WithArgs("terminal-1").
			WillReturnRows(rows)

		repo := &testTerminalRepo{mock: mock}
		terminal, err := repo.GetByID(context.Background(), "terminal-1")

		require.NoError(t, err)
		assert.Equal(t, "SEA", terminal.Code)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error when not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, code, name, active, created_at, updated_at").
			WithArgs("nonexistent").
			WillReturnError(pgx.ErrNoRows)

		repo := &testTerminalRepo{mock: mock}
		terminal, err := repo.GetByID(context.Background(), "nonexistent")

		assert.Nil(t, terminal)
		assert.Equal(t, model.ErrTerminalNotFound, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTerminalRepository_Update(t *testing.T) {
	t.Run("returns error when not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		terminal := &model.Terminal{ID: "nonexistent", Name: "X", Active: true}

		mock.ExpectExec("UPDATE terminals").
			WithArgs(terminal.ID, terminal.Name, terminal.Active, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := &testTerminalRepo{mock: mock}
		err = repo.Update(context.Background(), terminal)

		assert.Equal(t, model.ErrTerminalNotFound, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTerminalRepository_Delete(t *testing.T) {
	t.Run("deletes terminal successfully", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM terminals").
			WithArgs("terminal-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := &testTerminalRepo{mock: mock}
		err = repo.Delete(context.Background(), "terminal-1")

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

// testTerminalRepo mirrors TerminalRepository's queries against a
// pgxmock pool, since pgxmock.PgxPoolIface is not the concrete
// *pgxpool.Pool the real repository is built against.
type testTerminalRepo struct {
	mock pgxmock.PgxPoolIface
}

func (r *testTerminalRepo) Create(ctx context.Context, terminal *model.Terminal) error {
	query := `
		INSERT INTO terminals (id, code, name, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	terminal.ID = "test-terminal-id"
	now := time.Now().UTC()
	terminal.CreatedAt = now
	terminal.UpdatedAt = now

	_, err := r.mock.Exec(ctx, query, terminal.ID, terminal.Code, terminal.Name, terminal.Active, terminal.CreatedAt, terminal.UpdatedAt)
	return err
}

func (r *testTerminalRepo) GetByID(ctx context.Context, terminalID string) (*model.Terminal, error) {
	query := `
		SELECT id, code, name, active, created_at, updated_at
		FROM terminals
		WHERE id = $1
	`
	terminal := &model.Terminal{}
	err := r.mock.QueryRow(ctx, query, terminalID).Scan(
		&terminal.ID, &terminal.Code, &terminal.Name, &terminal.Active, &terminal.CreatedAt, &terminal.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, model.ErrTerminalNotFound
		}
		return nil, err
	}
	return terminal, nil
}

func (r *testTerminalRepo) Update(ctx context.Context, terminal *model.Terminal) error {
	query := `
		UPDATE terminals
		SET name = $2, active = $3, updated_at = $4
		WHERE id = $1
	`
	terminal.UpdatedAt = time.Now().UTC()
	result, err := r.mock.Exec(ctx, query, terminal.ID, terminal.Name, terminal.Active, terminal.UpdatedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return model.ErrTerminalNotFound
	}
	return nil
}

func (r *testTerminalRepo) Delete(ctx context.Context, terminalID string) error {
	query := `DELETE FROM terminals WHERE id = $1`
	result, err := r.mock.Exec(ctx, query, terminalID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return model.ErrTerminalNotFound
	}
	return nil
}
