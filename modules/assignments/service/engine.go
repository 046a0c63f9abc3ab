package service

import (
	"context"
	"sort"

	"github.com/pavlenko-transit/pickboard/internal/platform/logger"
	"github.com/pavlenko-transit/pickboard/internal/platform/postgres"
	assignmentRepo "github.com/pavlenko-transit/pickboard/modules/assignments/repository"
	auditModel "github.com/pavlenko-transit/pickboard/modules/audit/model"
	auditRepo "github.com/pavlenko-transit/pickboard/modules/audit/repository"
	employeeModel "github.com/pavlenko-transit/pickboard/modules/employees/model"
	employeePorts "github.com/pavlenko-transit/pickboard/modules/employees/ports"
	periodModel "github.com/pavlenko-transit/pickboard/modules/periods/model"
	periodRepo "github.com/pavlenko-transit/pickboard/modules/periods/repository"
	preferenceModel "github.com/pavlenko-transit/pickboard/modules/preferences/model"
	preferencePorts "github.com/pavlenko-transit/pickboard/modules/preferences/ports"
	"github.com/pavlenko-transit/pickboard/modules/qualification"
	routeModel "github.com/pavlenko-transit/pickboard/modules/routes/model"
	routePorts "github.com/pavlenko-transit/pickboard/modules/routes/ports"

	"github.com/pavlenko-transit/pickboard/modules/assignments/model"
	"github.com/pavlenko-transit/pickboard/modules/assignments/ports"
	periodServicePkg "github.com/pavlenko-transit/pickboard/modules/periods/service"
	"go.uber.org/zap"
)

// Engine implements the Assignment Engine: Preview computes the same
// deterministic seniority-greedy result as Commit but never persists
// or transitions state.
type Engine struct {
	pg         postgres.TxRunner
	assignments ports.AssignmentRepository
	periods    periodPort
	employees  employeePorts.EmployeeRepository
	routes     routePorts.RouteRepository
	preferences preferencePorts.PreferenceRepository
	log        *logger.Logger
}

// periodPort is the slice of ports.PeriodRepository the engine reads
// outside its own transaction (Preview, and Commit's pre-tx checks).
type periodPort interface {
	GetByID(ctx context.Context, id string) (*periodModel.SelectionPeriod, error)
}

// NewEngine creates a new Assignment Engine.
func NewEngine(
	pg postgres.TxRunner,
	assignments ports.AssignmentRepository,
	periods periodPort,
	employees employeePorts.EmployeeRepository,
	routes routePorts.RouteRepository,
	preferences preferencePorts.PreferenceRepository,
	log *logger.Logger,
) *Engine {
	return &Engine{
		pg: pg, assignments: assignments, periods: periods,
		employees: employees, routes: routes, preferences: preferences, log: log,
	}
}

// Preview computes the assignment set and summary for a CLOSED period
// without persisting anything.
func (e *Engine) Preview(ctx context.Context, periodID string) (*model.Result, error) {
	period, err := e.periods.GetByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period.Status != periodModel.StatusClosed {
		return nil, model.ErrPeriodNotClosed
	}
	return e.compute(ctx, period)
}

// compute traverses eligible employees in seniority order, greedily
// awarding each their most preferred still-available,
// still-qualifying route, else assigning the float pool. Pure with
// respect to persistence — callers decide whether the result is shown
// (Preview) or written (Commit).
func (e *Engine) compute(ctx context.Context, period *periodModel.SelectionPeriod) (*model.Result, error) {
	employees, err := e.employees.ListEligible(ctx, derefString(period.TerminalID))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(employees, func(i, j int) bool {
		return employees[i].SeniorityLess(employees[j])
	})

	routes, err := e.routes.ListByIDs(ctx, period.RouteCatalog)
	if err != nil {
		return nil, err
	}
	routesByID := make(map[string]*routeModel.Route, len(routes))
	for _, r := range routes {
		routesByID[r.ID] = r
	}

	prefs, err := e.preferences.ListByPeriod(ctx, period.ID)
	if err != nil {
		return nil, err
	}
	prefsByEmployee := make(map[string]*preferenceModel.Preference, len(prefs))
	for _, p := range prefs {
		prefsByEmployee[p.EmployeeID] = p
	}

	remaining := make(map[string]struct{}, len(period.RouteCatalog))
	for _, id := range period.RouteCatalog {
		remaining[id] = struct{}{}
	}

	result := &model.Result{}
	for _, emp := range employees {
		assignment := &model.Assignment{EmployeeID: emp.EmployeeID, PeriodID: period.ID}

		pref, hasPref := prefsByEmployee[emp.EmployeeID]
		awarded := false
		if hasPref {
			for k := 0; k < len(pref.Choices); k++ {
				choice := pref.Choices[k]
				if choice == "" {
					continue
				}
				if _, available := remaining[choice]; !available {
					continue
				}
				route, ok := routesByID[choice]
				if !ok || !qualification.Qualifies(emp, route) {
					continue
				}
				assignment.RouteID = &choice
				assignment.ChoiceReceived = model.IntPtr(k + 1)
				delete(remaining, choice)
				awarded = true
				break
			}
		}

		if !awarded {
			tallyFloat(&result.Summary)
		} else {
			tallyChoice(&result.Summary, *assignment.ChoiceReceived)
		}
		result.Assignments = append(result.Assignments, assignment)
	}

	return result, nil
}

func tallyChoice(s *model.Summary, choice int) {
	switch choice {
	case 1:
		s.FirstChoice++
	case 2:
		s.SecondChoice++
	case 3:
		s.ThirdChoice++
	}
}

func tallyFloat(s *model.Summary) {
	s.Float++
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// validateResult re-checks the engine's own output before commit: route IDs
// pairwise distinct, every non-null assignment qualifies, every
// employee appears exactly once.
func validateResult(result *model.Result, employees []*employeeModel.Employee, routesByID map[string]*routeModel.Route) error {
	seenEmployee := make(map[string]struct{}, len(result.Assignments))
	seenRoute := make(map[string]struct{}, len(result.Assignments))
	employeeSet := make(map[string]struct{}, len(employees))
	for _, e := range employees {
		employeeSet[e.EmployeeID] = struct{}{}
	}

	for _, a := range result.Assignments {
		if _, ok := seenEmployee[a.EmployeeID]; ok {
			return model.ErrValidationFailed
		}
		seenEmployee[a.EmployeeID] = struct{}{}

		if a.RouteID == nil {
			continue
		}
		if _, ok := seenRoute[*a.RouteID]; ok {
			return model.ErrValidationFailed
		}
		seenRoute[*a.RouteID] = struct{}{}

		route, ok := routesByID[*a.RouteID]
		if !ok {
			return model.ErrValidationFailed
		}
		var emp *employeeModel.Employee
		for _, candidate := range employees {
			if candidate.EmployeeID == a.EmployeeID {
				emp = candidate
				break
			}
		}
		if emp == nil || !qualification.Qualifies(emp, route) {
			return model.ErrValidationFailed
		}
	}

	for employeeID := range employeeSet {
		if _, ok := seenEmployee[employeeID]; !ok {
			return model.ErrValidationFailed
		}
	}

	return nil
}

// Commit runs the process → (validate) → complete|abort sequence
// inside a single transaction: it recomputes the assignment set,
// transitions the period to PROCESSING, validates the result, then
// either persists it and transitions to COMPLETED, or reverts to
// CLOSED and returns the validation error. Commits are all-or-nothing.
func (e *Engine) Commit(ctx context.Context, userID, periodID string) (*model.Result, error) {
	period, err := e.periods.GetByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period.Status != periodModel.StatusClosed {
		return nil, model.ErrPeriodNotClosed
	}

	result, err := e.compute(ctx, period)
	if err != nil {
		return nil, err
	}

	employees, err := e.employees.ListEligible(ctx, derefString(period.TerminalID))
	if err != nil {
		return nil, err
	}
	routes, err := e.routes.ListByIDs(ctx, period.RouteCatalog)
	if err != nil {
		return nil, err
	}
	routesByID := make(map[string]*routeModel.Route, len(routes))
	for _, r := range routes {
		routesByID[r.ID] = r
	}

	txErr := e.pg.WithSerializableTx(ctx, func(ctx context.Context, tx postgres.Executor) error {
		periods := periodRepo.NewPeriodRepository(tx)
		audit := auditRepo.NewAuditRepository(tx)

		if _, err := periodServicePkg.CheckTransition(periodModel.StatusClosed, periodServicePkg.ActionProcess); err != nil {
			return err
		}
		if err := periods.SetStatus(ctx, periodID, periodModel.StatusProcessing); err != nil {
			return err
		}
		if err := audit.Insert(ctx, &auditModel.Event{
			UserID: userID, Action: auditModel.ActionEngineProcessing,
			Resource: auditModel.ResourcePeriod, ResourceID: periodID,
		}); err != nil {
			return err
		}

		if err := validateResult(result, employees, routesByID); err != nil {
			if abortErr := periods.SetStatus(ctx, periodID, periodModel.StatusClosed); abortErr != nil {
				return abortErr
			}
			_ = audit.Insert(ctx, &auditModel.Event{
				UserID: userID, Action: auditModel.ActionEngineAborted,
				Resource: auditModel.ResourcePeriod, ResourceID: periodID, Details: err.Error(),
			})
			return err
		}

		assignments := assignmentRepo.NewAssignmentRepository(tx)
		if err := assignments.ReplaceForPeriod(ctx, periodID, result.Assignments); err != nil {
			return err
		}

		if err := periods.SetStatus(ctx, periodID, periodModel.StatusCompleted); err != nil {
			return err
		}
		return audit.Insert(ctx, &auditModel.Event{
			UserID: userID, Action: auditModel.ActionEngineCompleted,
			Resource: auditModel.ResourcePeriod, ResourceID: periodID,
		})
	})
	if txErr != nil {
		e.log.Warn("assignment commit failed", zap.String("period_id", periodID), zap.Error(txErr))
		return nil, txErr
	}

	e.log.Info("assignment commit completed",
		zap.String("period_id", periodID), zap.Int("assigned", len(result.Assignments)))
	return result, nil
}

// ManualAssign implements the supplemental manual-assignment path:
// usable only while the period is CLOSED or OPEN, never after
// processing has begun. Any manual assignments present at commit time
// are replaced wholesale by the engine's own computed set.
func (e *Engine) ManualAssign(ctx context.Context, userID, periodID, employeeID, routeID string) (*model.AssignmentDTO, error) {
	period, err := e.periods.GetByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period.Status != periodModel.StatusClosed && period.Status != periodModel.StatusOpen {
		return nil, model.ErrPeriodNotEditable
	}
	if !period.HasRoute(routeID) {
		return nil, model.ErrRouteNotInCatalog
	}

	employee, err := e.employees.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !employee.Eligible {
		return nil, model.ErrEmployeeNotEligible
	}

	route, err := e.routes.GetByID(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if !qualification.Qualifies(employee, route) {
		return nil, model.ErrQualificationViolation
	}

	taken, err := e.assignments.IsRouteTaken(ctx, periodID, routeID, employeeID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, model.ErrRouteAlreadyAssigned
	}

	assignment := &model.Assignment{
		EmployeeID: employeeID,
		PeriodID:   periodID,
		RouteID:    &routeID,
	}
	var txErr error
	txErr = e.pg.WithSerializableTx(ctx, func(ctx context.Context, tx postgres.Executor) error {
		assignments := assignmentRepo.NewAssignmentRepository(tx)
		if err := assignments.Upsert(ctx, assignment); err != nil {
			return err
		}
		audit := auditRepo.NewAuditRepository(tx)
		return audit.Insert(ctx, &auditModel.Event{
			UserID: userID, Action: auditModel.ActionManualAssignment,
			Resource: auditModel.ResourceAssignment, ResourceID: assignment.ID,
			Details: "employee=" + employeeID + " route=" + routeID,
		})
	})
	if txErr != nil {
		return nil, txErr
	}
	return assignment.ToDTO(), nil
}

// GetMine is the "my assignment" self-service read.
func (e *Engine) GetMine(ctx context.Context, employeeID, periodID string) (*model.AssignmentDTO, error) {
	a, err := e.assignments.GetByEmployeeAndPeriod(ctx, employeeID, periodID)
	if err != nil {
		return nil, err
	}
	return a.ToDTO(), nil
}

// List returns every assignment for a period.
func (e *Engine) List(ctx context.Context, periodID string) ([]*model.AssignmentDTO, error) {
	assignments, err := e.assignments.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	dtos := make([]*model.AssignmentDTO, len(assignments))
	for i, a := range assignments {
		dtos[i] = a.ToDTO()
	}
	return dtos, nil
}
