package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pavlenko-transit/pickboard/internal/platform/postgres"
	"github.com/pavlenko-transit/pickboard/modules/preferences/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PreferenceRepository implements ports.PreferenceRepository against
// a postgres.Executor (pool or a caller-supplied pgx.Tx).
type PreferenceRepository struct {
	db postgres.Executor
}

// NewPreferenceRepository creates a repository bound to db.
func NewPreferenceRepository(db postgres.Executor) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Upsert inserts or replaces the (employeeID, periodID) preference
// row. The unique (employee_id, period_id) index makes this an
// at-most-one-per-pair guarantee at the data level.
func (r *PreferenceRepository) Upsert(ctx context.Context, p *model.Preference) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.SubmittedAt = time.Now().UTC()

	first, second, third := columnsFromChoices(p.Choices)

	_, err := r.db.Exec(ctx, `
		INSERT INTO preferences (id, employee_id, period_id, first_choice_id, second_choice_id,
			third_choice_id, confirmation_number, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_id, period_id) DO UPDATE SET
			first_choice_id = EXCLUDED.first_choice_id,
			second_choice_id = EXCLUDED.second_choice_id,
			third_choice_id = EXCLUDED.third_choice_id,
			confirmation_number = EXCLUDED.confirmation_number,
			submitted_at = EXCLUDED.submitted_at
	`, p.ID, p.EmployeeID, p.PeriodID, first, second, third, p.ConfirmationNumber, p.SubmittedAt)
	return err
}

// GetByEmployeeAndPeriod is the exact (employeeID, periodID) lookup.
func (r *PreferenceRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (*model.Preference, error) {
	query := `SELECT id, employee_id, period_id, first_choice_id, second_choice_id,
		third_choice_id, confirmation_number, submitted_at
		FROM preferences WHERE employee_id = $1 AND period_id = $2`

	return scanPreference(r.db.QueryRow(ctx, query, employeeID, periodID))
}

// ListByPeriod returns every preference for a period, for the engine.
func (r *PreferenceRepository) ListByPeriod(ctx context.Context, periodID string) ([]*model.Preference, error) {
	query := `SELECT id, employee_id, period_id, first_choice_id, second_choice_id,
		third_choice_id, confirmation_number, submitted_at
		FROM preferences WHERE period_id = $1`

	rows, err := r.db.Query(ctx, query, periodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prefs []*model.Preference
	for rows.Next() {
		p, err := scanPreference(rows)
		if err != nil {
			return nil, err
		}
		prefs = append(prefs, p)
	}
	return prefs, rows.Err()
}

func scanPreference(row pgx.Row) (*model.Preference, error) {
	var p model.Preference
	var first, second, third *string
	err := row.Scan(&p.ID, &p.EmployeeID, &p.PeriodID, &first, &second, &third,
		&p.ConfirmationNumber, &p.SubmittedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPreferenceNotFound
		}
		return nil, err
	}
	p.Choices = choicesFromColumns(first, second, third)
	return &p, nil
}

func columnsFromChoices(choices []string) (first, second, third *string) {
	get := func(i int) *string {
		if i < len(choices) && choices[i] != "" {
			v := choices[i]
			return &v
		}
		return nil
	}
	return get(0), get(1), get(2)
}

func choicesFromColumns(first, second, third *string) []string {
	var choices []string
	for _, c := range []*string{first, second, third} {
		if c == nil {
			break
		}
		choices = append(choices, *c)
	}
	return choices
}
