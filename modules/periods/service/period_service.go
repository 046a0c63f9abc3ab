package service

import (
	"context"

	"github.com/pavlenko-transit/pickboard/internal/platform/logger"
	"github.com/pavlenko-transit/pickboard/internal/platform/postgres"
	auditModel "github.com/pavlenko-transit/pickboard/modules/audit/model"
	auditRepo "github.com/pavlenko-transit/pickboard/modules/audit/repository"
	"github.com/pavlenko-transit/pickboard/modules/periods/model"
	"github.com/pavlenko-transit/pickboard/modules/periods/ports"
	periodRepo "github.com/pavlenko-transit/pickboard/modules/periods/repository"
	"go.uber.org/zap"
)

// PeriodService implements the Period State Machine. Transitions that
// mutate state run inside a serializable transaction together with
// their audit event, so an observer never sees a mutation without its
// audit record.
type PeriodService struct {
	pg   postgres.TxRunner
	repo ports.PeriodRepository
	log  *logger.Logger
}

// NewPeriodService creates a new period service.
func NewPeriodService(pg postgres.TxRunner, repo ports.PeriodRepository, log *logger.Logger) *PeriodService {
	return &PeriodService{pg: pg, repo: repo, log: log}
}

// Create creates a new period in UPCOMING status.
func (s *PeriodService) Create(ctx context.Context, userID string, req *model.CreatePeriodRequest) (*model.PeriodDTO, error) {
	period := &model.SelectionPeriod{
		Name:               req.Name,
		Description:        req.Description,
		TerminalID:         req.TerminalID,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Status:             model.StatusUpcoming,
		RequiredSelections: req.RequiredSelections,
		RouteCatalog:       req.RouteCatalog,
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	return s.createTx(ctx, userID, period)
}

func (s *PeriodService) createTx(ctx context.Context, userID string, period *model.SelectionPeriod) (*model.PeriodDTO, error) {
	var dto *model.PeriodDTO
	err := s.pg.WithSerializableTx(ctx, func(ctx context.Context, tx postgres.Executor) error {
		repo := periodRepo.NewPeriodRepository(tx)
		if err := repo.Create(ctx, period); err != nil {
			return err
		}
		audit := auditRepo.NewAuditRepository(tx)
		if err := audit.Insert(ctx, &auditModel.Event{
			UserID:     userID,
			Action:     auditModel.ActionPeriodCreated,
			Resource:   auditModel.ResourcePeriod,
			ResourceID: period.ID,
			Details:    "created period " + period.Name,
		}); err != nil {
			return err
		}
		dto = period.ToDTO()
		return nil
	})
	if err != nil {
		s.log.Error("failed to create period", zap.Error(err))
		return nil, err
	}
	s.log.Info("period created", zap.String("period_id", period.ID), zap.String("user_id", userID))
	return dto, nil
}

// GetByID retrieves a period by ID.
func (s *PeriodService) GetByID(ctx context.Context, id string) (*model.PeriodDTO, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.ToDTO(), nil
}

// List retrieves periods matching the given filters.
func (s *PeriodService) List(ctx context.Context, opts *ports.ListOptions) ([]*model.PeriodDTO, int, error) {
	periods, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	dtos := make([]*model.PeriodDTO, len(periods))
	for i, p := range periods {
		dtos[i] = p.ToDTO()
	}
	return dtos, total, nil
}

// Open transitions a period from UPCOMING to OPEN. ADMIN or MANAGER
// (enforced by the handler's RequireRole).
func (s *PeriodService) Open(ctx context.Context, userID, periodID string) (*model.PeriodDTO, error) {
	return s.transition(ctx, userID, periodID, ActionOpen, auditModel.ActionPeriodOpened)
}

// Close transitions a period from OPEN to CLOSED. ADMIN or MANAGER.
func (s *PeriodService) Close(ctx context.Context, userID, periodID string) (*model.PeriodDTO, error) {
	return s.transition(ctx, userID, periodID, ActionClose, auditModel.ActionPeriodClosed)
}

func (s *PeriodService) transition(ctx context.Context, userID, periodID string, action Action, auditAction auditModel.Action) (*model.PeriodDTO, error) {
	var dto *model.PeriodDTO
	err := s.pg.WithSerializableTx(ctx, func(ctx context.Context, tx postgres.Executor) error {
		repo := periodRepo.NewPeriodRepository(tx)
		period, err := repo.GetForUpdate(ctx, periodID)
		if err != nil {
			return err
		}
		to, err := CheckTransition(period.Status, action)
		if err != nil {
			return err
		}
		if err := repo.SetStatus(ctx, periodID, to); err != nil {
			return err
		}
		period.Status = to

		audit := auditRepo.NewAuditRepository(tx)
		if err := audit.Insert(ctx, &auditModel.Event{
			UserID:     userID,
			Action:     auditAction,
			Resource:   auditModel.ResourcePeriod,
			ResourceID: periodID,
			Details:    string(action),
		}); err != nil {
			return err
		}
		dto = period.ToDTO()
		return nil
	})
	if err != nil {
		s.log.Warn("period transition rejected",
			zap.String("period_id", periodID), zap.String("action", string(action)), zap.Error(err))
		return nil, err
	}
	s.log.Info("period transitioned",
		zap.String("period_id", periodID), zap.String("action", string(action)), zap.String("user_id", userID))
	return dto, nil
}

// Edit updates name/description/route-catalog. Permitted in UPCOMING,
// OPEN and CLOSED; rejected in PROCESSING and COMPLETED.
func (s *PeriodService) Edit(ctx context.Context, userID, periodID string, req *model.UpdatePeriodRequest) (*model.PeriodDTO, error) {
	var dto *model.PeriodDTO
	err := s.pg.WithSerializableTx(ctx, func(ctx context.Context, tx postgres.Executor) error {
		repo := periodRepo.NewPeriodRepository(tx)
		period, err := repo.GetForUpdate(ctx, periodID)
		if err != nil {
			return err
		}
		if _, err := CheckTransition(period.Status, ActionEdit); err != nil {
			return err
		}

		if req.Name != nil {
			period.Name = *req.Name
		}
		if req.Description != nil {
			period.Description = *req.Description
		}
		if req.RouteCatalog != nil {
			period.RouteCatalog = req.RouteCatalog
		}
		if len(period.RouteCatalog) == 0 {
			return model.ErrEmptyRouteCatalog
		}

		if err := repo.Update(ctx, period); err != nil {
			return err
		}

		audit := auditRepo.NewAuditRepository(tx)
		if err := audit.Insert(ctx, &auditModel.Event{
			UserID:     userID,
			Action:     auditModel.ActionPeriodEdited,
			Resource:   auditModel.ResourcePeriod,
			ResourceID: periodID,
		}); err != nil {
			return err
		}
		dto = period.ToDTO()
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("period edited", zap.String("period_id", periodID), zap.String("user_id", userID))
	return dto, nil
}

// Delete removes a period. Only legal in UPCOMING or
// CLOSED-without-assignments.
func (s *PeriodService) Delete(ctx context.Context, userID, periodID string) error {
	return s.pg.WithSerializableTx(ctx, func(ctx context.Context, tx postgres.Executor) error {
		repo := periodRepo.NewPeriodRepository(tx)
		period, err := repo.GetForUpdate(ctx, periodID)
		if err != nil {
			return err
		}
		if period.Status != model.StatusUpcoming && period.Status != model.StatusClosed {
			return model.ErrInvalidTransition
		}
		hasAssignments, err := repo.HasAssignments(ctx, periodID)
		if err != nil {
			return err
		}
		if hasAssignments {
			return model.ErrHasAssignments
		}
		if err := repo.Delete(ctx, periodID); err != nil {
			return err
		}
		audit := auditRepo.NewAuditRepository(tx)
		if err := audit.Insert(ctx, &auditModel.Event{
			UserID:     userID,
			Action:     auditModel.ActionPeriodDeleted,
			Resource:   auditModel.ResourcePeriod,
			ResourceID: periodID,
		}); err != nil {
			return err
		}
		s.log.Info("period deleted", zap.String("period_id", periodID), zap.String("user_id", userID))
		return nil
	})
}
