package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pavlenko-transit/pickboard/internal/platform/postgres"
	"github.com/pavlenko-transit/pickboard/modules/assignments/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AssignmentRepository implements ports.AssignmentRepository against a
// postgres.Executor, so the engine's Commit can compose it into the
// same transaction as the periods/preferences/audit repositories.
type AssignmentRepository struct {
	db postgres.Executor
}

// NewAssignmentRepository creates a repository bound to db.
func NewAssignmentRepository(db postgres.Executor) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

const assignmentColumns = `id, employee_id, period_id, route_id, choice_received,
		effective_date, created_at, updated_at`

func scanAssignment(row pgx.Row) (*model.Assignment, error) {
	a := &model.Assignment{}
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.PeriodID, &a.RouteID, &a.ChoiceReceived,
		&a.EffectiveDate, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAssignmentNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AssignmentRepository) insert(ctx context.Context, a *model.Assignment) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	if a.EffectiveDate.IsZero() {
		a.EffectiveDate = now
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO assignments (`+assignmentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, a.ID, a.EmployeeID, a.PeriodID, a.RouteID, a.ChoiceReceived, a.EffectiveDate, a.CreatedAt, a.UpdatedAt)
	return err
}

// GetByEmployeeAndPeriod is the exact (employeeID, periodID) lookup,
// used by the "my assignment" self-service read.
func (r *AssignmentRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (*model.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE employee_id = $1 AND period_id = $2`
	return scanAssignment(r.db.QueryRow(ctx, query, employeeID, periodID))
}

// ListByPeriod returns every assignment for a period.
func (r *AssignmentRepository) ListByPeriod(ctx context.Context, periodID string) ([]*model.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE period_id = $1`
	rows, err := r.db.Query(ctx, query, periodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*model.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// ReplaceForPeriod deletes every assignment for periodID and inserts
// assignments in their place, implementing the manual-assignment
// replacement policy.
func (r *AssignmentRepository) ReplaceForPeriod(ctx context.Context, periodID string, assignments []*model.Assignment) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM assignments WHERE period_id = $1`, periodID); err != nil {
		return err
	}
	for _, a := range assignments {
		a.PeriodID = periodID
		if err := r.insert(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

// Upsert inserts or replaces a single employee's assignment for a
// period, used by the manual-assignment path.
func (r *AssignmentRepository) Upsert(ctx context.Context, a *model.Assignment) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	a.UpdatedAt = now
	if a.EffectiveDate.IsZero() {
		a.EffectiveDate = now
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO assignments (`+assignmentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_id, period_id) DO UPDATE SET
			route_id = EXCLUDED.route_id,
			choice_received = EXCLUDED.choice_received,
			effective_date = EXCLUDED.effective_date,
			updated_at = EXCLUDED.updated_at
	`, a.ID, a.EmployeeID, a.PeriodID, a.RouteID, a.ChoiceReceived, a.EffectiveDate, now, now)
	return err
}

// IsRouteTaken reports whether routeID is already held within
// periodID by an employee other than excludingEmployeeID, enforcing
// the one-employee-per-route invariant at the service layer before
// the insert hits the database.
func (r *AssignmentRepository) IsRouteTaken(ctx context.Context, periodID, routeID, excludingEmployeeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM assignments
			WHERE period_id = $1 AND route_id = $2 AND employee_id != $3
		)
	`, periodID, routeID, excludingEmployeeID).Scan(&exists)
	return exists, err
}
