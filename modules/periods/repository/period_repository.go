package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pavlenko-transit/pickboard/internal/platform/postgres"
	"github.com/pavlenko-transit/pickboard/modules/periods/model"
	"github.com/pavlenko-transit/pickboard/modules/periods/ports"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PeriodRepository implements ports.PeriodRepository against a
// postgres.Executor, so the same type serves plain pool reads and
// transactional composition (see postgres.Executor's doc comment).
type PeriodRepository struct {
	db postgres.Executor
}

// NewPeriodRepository creates a repository bound to db, which may be
// *pgxpool.Pool or a pgx.Tx handed down by an orchestrating service.
func NewPeriodRepository(db postgres.Executor) *PeriodRepository {
	return &PeriodRepository{db: db}
}

const periodColumns = `id, name, description, terminal_id, start_date, end_date,
		status, required_selections, created_at, updated_at`

func scanPeriod(row pgx.Row) (*model.SelectionPeriod, error) {
	p := &model.SelectionPeriod{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.TerminalID, &p.StartDate, &p.EndDate,
		&p.Status, &p.RequiredSelections, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPeriodNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PeriodRepository) loadCatalog(ctx context.Context, periodID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT route_id FROM period_routes WHERE period_id = $1`, periodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var catalog []string
	for rows.Next() {
		var routeID string
		if err := rows.Scan(&routeID); err != nil {
			return nil, err
		}
		catalog = append(catalog, routeID)
	}
	return catalog, rows.Err()
}

// Create inserts a new period and its route catalog.
func (r *PeriodRepository) Create(ctx context.Context, p *model.SelectionPeriod) error {
	p.ID = uuid.New().String()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = model.StatusUpcoming
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO selection_periods (`+periodColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		p.ID, p.Name, p.Description, p.TerminalID, p.StartDate, p.EndDate,
		p.Status, p.RequiredSelections, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return err
	}

	for _, routeID := range p.RouteCatalog {
		if _, err := r.db.Exec(ctx,
			`INSERT INTO period_routes (period_id, route_id) VALUES ($1, $2)`,
			p.ID, routeID,
		); err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves a period with its route catalog.
func (r *PeriodRepository) GetByID(ctx context.Context, id string) (*model.SelectionPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM selection_periods WHERE id = $1`
	p, err := scanPeriod(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	catalog, err := r.loadCatalog(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.RouteCatalog = catalog
	return p, nil
}

// GetForUpdate re-reads the period row with a row-level lock. Callers
// that must observe and mutate the status atomically have to
// construct this repository over the enclosing pgx.Tx.
func (r *PeriodRepository) GetForUpdate(ctx context.Context, id string) (*model.SelectionPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM selection_periods WHERE id = $1 FOR SHARE`
	p, err := scanPeriod(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	catalog, err := r.loadCatalog(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.RouteCatalog = catalog
	return p, nil
}

// List retrieves periods matching the given filters.
func (r *PeriodRepository) List(ctx context.Context, opts *ports.ListOptions) ([]*model.SelectionPeriod, int, error) {
	where := `WHERE ($1 = '' OR terminal_id = $1) AND ($2 = '' OR status = $2)`

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM selection_periods `+where,
		opts.TerminalID, string(opts.Status)).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + periodColumns + ` FROM selection_periods ` + where +
		` ORDER BY start_date DESC LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, opts.TerminalID, string(opts.Status), opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var periods []*model.SelectionPeriod
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, 0, err
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for _, p := range periods {
		catalog, err := r.loadCatalog(ctx, p.ID)
		if err != nil {
			return nil, 0, err
		}
		p.RouteCatalog = catalog
	}

	return periods, total, nil
}

// Update persists edited name/description/catalog fields for the
// "edit" action.
func (r *PeriodRepository) Update(ctx context.Context, p *model.SelectionPeriod) error {
	p.UpdatedAt = time.Now().UTC()

	result, err := r.db.Exec(ctx, `
		UPDATE selection_periods SET name = $2, description = $3, updated_at = $4
		WHERE id = $1
	`, p.ID, p.Name, p.Description, p.UpdatedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return model.ErrPeriodNotFound
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM period_routes WHERE period_id = $1`, p.ID); err != nil {
		return err
	}
	for _, routeID := range p.RouteCatalog {
		if _, err := r.db.Exec(ctx,
			`INSERT INTO period_routes (period_id, route_id) VALUES ($1, $2)`,
			p.ID, routeID,
		); err != nil {
			return err
		}
	}

	return nil
}

// SetStatus updates only the status column.
func (r *PeriodRepository) SetStatus(ctx context.Context, id string, status model.Status) error {
	result, err := r.db.Exec(ctx,
		`UPDATE selection_periods SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return model.ErrPeriodNotFound
	}
	return nil
}

// HasAssignments reports whether the period has any Assignment rows.
func (r *PeriodRepository) HasAssignments(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM assignments WHERE period_id = $1)`, id,
	).Scan(&exists)
	return exists, err
}

// Delete removes a period and its catalog rows.
func (r *PeriodRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM period_routes WHERE period_id = $1`, id); err != nil {
		return err
	}
	result, err := r.db.Exec(ctx, `DELETE FROM selection_periods WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return model.ErrPeriodNotFound
	}
	return nil
}
