package repository

import (
	"context"
	"errors"

	"github.com/pavlenko-transit/pickboard/modules/employees/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AccountRepository implements ports.AccountRepository
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, account *model.Account) error {
	query := `
		INSERT INTO accounts (id, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	account.ID = uuid.New().String()

	_, err := r.pool.Exec(ctx, query,
		account.ID,
		account.Email,
		account.PasswordHash,
		account.Role,
		account.CreatedAt,
		account.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrAccountAlreadyExists
		}
		return err
	}

	return nil
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, accountID string) (*model.Account, error) {
	query := `
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	account := &model.Account{}
	err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.Role, &account.CreatedAt, &account.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	return account, nil
}

// GetByEmail retrieves an account by email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	query := `
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`

	account := &model.Account{}
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.Role, &account.CreatedAt, &account.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	return account, nil
}

// Update updates an account
func (r *AccountRepository) Update(ctx context.Context, account *model.Account) error {
	query := `
		UPDATE accounts
		SET role = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, account.ID, account.Role, account.UpdatedAt)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}

	return nil
}

// Delete deletes an account
func (r *AccountRepository) Delete(ctx context.Context, accountID string) error {
	query := `DELETE FROM accounts WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, accountID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}

	return nil
}
