package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pavlenko-transit/pickboard/modules/employees/model"
	"github.com/pavlenko-transit/pickboard/modules/employees/ports"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EmployeeRepository implements ports.EmployeeRepository
type EmployeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

const employeeColumns = `id, employee_id, first_name, last_name, hire_date,
		doubles_endorsement, chain_experience, eligible, terminal_id, account_id,
		created_at, updated_at`

func scanEmployee(row pgx.Row) (*model.Employee, error) {
	e := &model.Employee{}
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.FirstName, &e.LastName, &e.HireDate,
		&e.DoublesEndorsement, &e.ChainExperience, &e.Eligible, &e.TerminalID, &e.AccountID,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEmployeeNotFound
		}
		return nil, err
	}
	return e, nil
}

// Create creates a new employee roster record
func (r *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	employee.ID = uuid.New().String()
	now := time.Now().UTC()
	employee.CreatedAt = now
	employee.UpdatedAt = now
	employee.Eligible = true

	_, err := r.pool.Exec(ctx, query,
		employee.ID, employee.EmployeeID, employee.FirstName, employee.LastName, employee.HireDate,
		employee.DoublesEndorsement, employee.ChainExperience, employee.Eligible,
		employee.TerminalID, employee.AccountID, employee.CreatedAt, employee.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrEmployeeIDTaken
		}
		return err
	}

	return nil
}

// GetByID retrieves an employee by surrogate ID
func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return scanEmployee(r.pool.QueryRow(ctx, query, id))
}

// GetByEmployeeID retrieves an employee by business employee ID
func (r *EmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1`
	return scanEmployee(r.pool.QueryRow(ctx, query, employeeID))
}

// GetByAccountID resolves the roster record linked to an Account
func (r *EmployeeRepository) GetByAccountID(ctx context.Context, accountID string) (*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE account_id = $1`
	return scanEmployee(r.pool.QueryRow(ctx, query, accountID))
}

// List retrieves employees with pagination
func (r *EmployeeRepository) List(ctx context.Context, opts *ports.EmployeeListOptions) ([]*model.Employee, int, error) {
	where := "WHERE ($1 = '' OR terminal_id = $1) AND (NOT $2 OR eligible = true)"

	countQuery := "SELECT COUNT(*) FROM employees " + where
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, opts.TerminalID, opts.EligibleOnly).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + employeeColumns + ` FROM employees ` + where + `
		ORDER BY hire_date ASC, last_name ASC, employee_id ASC
		LIMIT $3 OFFSET $4`

	rows, err := r.pool.Query(ctx, query, opts.TerminalID, opts.EligibleOnly, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []*model.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}

	return employees, total, rows.Err()
}

// ListEligible returns every eligible employee pre-sorted by
// seniority, per the Assignment Engine's ordering requirement.
func (r *EmployeeRepository) ListEligible(ctx context.Context, terminalID string) ([]*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees
		WHERE eligible = true AND ($1 = '' OR terminal_id = $1)
		ORDER BY hire_date ASC, last_name ASC, employee_id ASC`

	rows, err := r.pool.Query(ctx, query, terminalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*model.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// Update updates an employee roster record
func (r *EmployeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, doubles_endorsement = $4,
		    chain_experience = $5, eligible = $6, terminal_id = $7, updated_at = $8
		WHERE id = $1
	`

	employee.UpdatedAt = time.Now().UTC()

	result, err := r.pool.Exec(ctx, query,
		employee.ID, employee.FirstName, employee.LastName, employee.DoublesEndorsement,
		employee.ChainExperience, employee.Eligible, employee.TerminalID, employee.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return model.ErrEmployeeNotFound
	}

	return nil
}

// Delete deletes an employee roster record
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM employees WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return model.ErrEmployeeNotFound
	}

	return nil
}
