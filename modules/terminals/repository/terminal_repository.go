package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pavlenko-transit/pickboard/modules/terminals/model"
	"github.com/pavlenko-transit/pickboard/modules/terminals/ports"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TerminalRepository implements ports.TerminalRepository
type TerminalRepository struct {
	pool *pgxpool.Pool
}

// NewTerminalRepository creates a new terminal repository
func NewTerminalRepository(pool *pgxpool.Pool) *TerminalRepository {
	return &TerminalRepository{pool: pool}
}

// Create creates a new terminal
func (r *TerminalRepository) Create(ctx context.Context, terminal *model.Terminal) error {
	query := `
		INSERT INTO terminals (id, code, name, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	terminal.ID = uuid.New().String()
	now := time.Now().UTC()
	terminal.CreatedAt = now
	terminal.UpdatedAt = now

	_, err := r.pool.Exec(ctx, query,
		terminal.ID,
		terminal.Code,
		terminal.Name,
		terminal.Active,
		terminal.CreatedAt,
		terminal.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrTerminalCodeTaken
		}
		return err
	}

	return nil
}

// GetByID retrieves a terminal by ID
func (r *TerminalRepository) GetByID(ctx context.Context, terminalID string) (*model.Terminal, error) {
	query := `
		SELECT id, code, name, active, created_at, updated_at
		FROM terminals
		WHERE id = $1
	`

	terminal := &model.Terminal{}
	err := r.pool.QueryRow(ctx, query, terminalID).Scan(
		&terminal.ID,
		&terminal.Code,
		&terminal.Name,
		&terminal.Active,
		&terminal.CreatedAt,
		&terminal.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTerminalNotFound
		}
		return nil, err
	}

	return terminal, nil
}

// GetByCode retrieves a terminal by its unique code
func (r *TerminalRepository) GetByCode(ctx context.Context, code string) (*model.Terminal, error) {
	query := `
		SELECT id, code, name, active, created_at, updated_at
		FROM terminals
		WHERE code = $1
	`

	terminal := &model.Terminal{}
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&terminal.ID,
		&terminal.Code,
		&terminal.Name,
		&terminal.Active,
		&terminal.CreatedAt,
		&terminal.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTerminalNotFound
		}
		return nil, err
	}

	return terminal, nil
}

// List retrieves terminals with pagination
func (r *TerminalRepository) List(ctx context.Context, opts *ports.ListOptions) ([]*model.Terminal, int, error) {
	where := ""
	if opts.ActiveOnly {
		where = "WHERE active = true"
	}

	countQuery := "SELECT COUNT(*) FROM terminals " + where
	var total int
	if err := r.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, code, name, active, created_at, updated_at
		FROM terminals
		` + where + `
		ORDER BY code ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var terminals []*model.Terminal
	for rows.Next() {
		t := &model.Terminal{}
		if err := rows.Scan(&t.ID, &t.Code, &t.Name, &t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, err
		}
		terminals = append(terminals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return terminals, total, nil
}

// Update updates a terminal
func (r *TerminalRepository) Update(ctx context.Context, terminal *model.Terminal) error {
	query := `
		UPDATE terminals
		SET name = $2, active = $3, updated_at = $4
		WHERE id = $1
	`

	terminal.UpdatedAt = time.Now().UTC()

	result, err := r.pool.Exec(ctx, query, terminal.ID, terminal.Name, terminal.Active, terminal.UpdatedAt)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return model.ErrTerminalNotFound
	}

	return nil
}

// Delete deletes a terminal
func (r *TerminalRepository) Delete(ctx context.Context, terminalID string) error {
	query := `DELETE FROM terminals WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, terminalID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return model.ErrTerminalNotFound
	}

	return nil
}
