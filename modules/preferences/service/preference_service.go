package service

import (
	"context"

	"github.com/pavlenko-transit/pickboard/internal/platform/logger"
	"github.com/pavlenko-transit/pickboard/internal/platform/postgres"
	auditModel "github.com/pavlenko-transit/pickboard/modules/audit/model"
	auditRepo "github.com/pavlenko-transit/pickboard/modules/audit/repository"
	periodModel "github.com/pavlenko-transit/pickboard/modules/periods/model"
	periodRepo "github.com/pavlenko-transit/pickboard/modules/periods/repository"
	"github.com/pavlenko-transit/pickboard/modules/preferences/model"
	"github.com/pavlenko-transit/pickboard/modules/preferences/ports"
	prefRepo "github.com/pavlenko-transit/pickboard/modules/preferences/repository"
	"go.uber.org/zap"
)

// PreferenceService implements the Preference Store. Its Upsert
// re-reads the period's status inside the same transaction as the
// write, so a submission that commits implies the period was OPEN at
// that instant — no separate read can observe a status that later
// flips underneath it.
type PreferenceService struct {
	pg     postgres.TxRunner
	repo   ports.PreferenceRepository
	issuer ports.ConfirmationIssuer
	log    *logger.Logger
}

// NewPreferenceService creates a new preference service.
func NewPreferenceService(pg postgres.TxRunner, repo ports.PreferenceRepository, issuer ports.ConfirmationIssuer, log *logger.Logger) *PreferenceService {
	return &PreferenceService{pg: pg, repo: repo, issuer: issuer, log: log}
}

// Upsert validates and persists a driver's ranked choices, returning
// the confirmation number. Fails with ErrPeriodNotOpen if the period
// is not OPEN at the commit instant.
func (s *PreferenceService) Upsert(ctx context.Context, userID, employeeID, periodID string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", model.ErrUnmetRequiredCount
	}
	if len(choices) > model.MaxChoices {
		return "", model.ErrTooManyChoices
	}
	if hasDuplicates(choices) {
		return "", model.ErrDuplicateChoice
	}

	confirmation, err := s.issuer.Next(ctx, periodID)
	if err != nil {
		s.log.Error("failed to issue confirmation number", zap.Error(err))
		return "", err
	}

	pref := &model.Preference{
		EmployeeID:         employeeID,
		PeriodID:           periodID,
		Choices:            choices,
		ConfirmationNumber: confirmation,
	}

	err = s.pg.WithSerializableTx(ctx, func(ctx context.Context, tx postgres.Executor) error {
		periods := periodRepo.NewPeriodRepository(tx)
		period, err := periods.GetForUpdate(ctx, periodID)
		if err != nil {
			return err
		}
		if period.Status != periodModel.StatusOpen {
			return model.ErrPeriodNotOpen
		}
		if len(choices) < period.RequiredSelections {
			return model.ErrUnmetRequiredCount
		}
		for _, c := range choices {
			if !period.HasRoute(c) {
				return model.ErrRouteNotInCatalog
			}
		}

		prefs := prefRepo.NewPreferenceRepository(tx)
		if err := prefs.Upsert(ctx, pref); err != nil {
			return err
		}

		audit := auditRepo.NewAuditRepository(tx)
		return audit.Insert(ctx, &auditModel.Event{
			UserID:     userID,
			Action:     auditModel.ActionPreferenceUpsert,
			Resource:   auditModel.ResourcePreference,
			ResourceID: pref.ID,
			Details:    "confirmation " + confirmation,
		})
	})
	if err != nil {
		s.log.Warn("preference upsert rejected",
			zap.String("employee_id", employeeID), zap.String("period_id", periodID), zap.Error(err))
		return "", err
	}

	s.log.Info("preference upserted",
		zap.String("employee_id", employeeID), zap.String("period_id", periodID),
		zap.String("confirmation_number", confirmation))
	return confirmation, nil
}

// Get is the exact (employeeID, periodID) lookup.
func (s *PreferenceService) Get(ctx context.Context, employeeID, periodID string) (*model.PreferenceDTO, error) {
	pref, err := s.repo.GetByEmployeeAndPeriod(ctx, employeeID, periodID)
	if err != nil {
		return nil, err
	}
	return pref.ToDTO(), nil
}

// List returns every preference for a period, for the Assignment Engine.
func (s *PreferenceService) List(ctx context.Context, periodID string) ([]*model.PreferenceDTO, error) {
	prefs, err := s.repo.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	dtos := make([]*model.PreferenceDTO, len(prefs))
	for i, p := range prefs {
		dtos[i] = p.ToDTO()
	}
	return dtos, nil
}

func hasDuplicates(choices []string) bool {
	seen := make(map[string]struct{}, len(choices))
	for _, c := range choices {
		if _, ok := seen[c]; ok {
			return true
		}
		seen[c] = struct{}{}
	}
	return false
}
