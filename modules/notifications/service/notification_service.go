package service

import (
	"context"
	"fmt"

	"github.com/pavlenko-transit/pickboard/internal/platform/logger"
	assignmentPorts "github.com/pavlenko-transit/pickboard/modules/assignments/ports"
	employeeModel "github.com/pavlenko-transit/pickboard/modules/employees/model"
	employeePorts "github.com/pavlenko-transit/pickboard/modules/employees/ports"
	"github.com/pavlenko-transit/pickboard/modules/notifications/model"
	periodModel "github.com/pavlenko-transit/pickboard/modules/periods/model"
	periodPorts "github.com/pavlenko-transit/pickboard/modules/periods/ports"
	periodService "github.com/pavlenko-transit/pickboard/modules/periods/service"
	routeModel "github.com/pavlenko-transit/pickboard/modules/routes/model"
	routePorts "github.com/pavlenko-transit/pickboard/modules/routes/ports"
	"go.uber.org/zap"
)

// NotificationService implements the two notification flows:
// period-opened (submission instructions) and assignments-completed
// (per-employee result). It resolves recipients
// by joining the roster against authentication Accounts (the only
// source of an email address), then delegates the actual send to
// Dispatcher.
type NotificationService struct {
	dispatcher *Dispatcher
	periods    periodPorts.PeriodRepository
	employees  employeePorts.EmployeeRepository
	accounts   employeePorts.AccountRepository
	routes     routePorts.RouteRepository
	assignments assignmentPorts.AssignmentRepository
	log        *logger.Logger
}

// NewNotificationService creates a new notification service.
func NewNotificationService(
	dispatcher *Dispatcher,
	periods periodPorts.PeriodRepository,
	employees employeePorts.EmployeeRepository,
	accounts employeePorts.AccountRepository,
	routes routePorts.RouteRepository,
	assignments assignmentPorts.AssignmentRepository,
	log *logger.Logger,
) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher, periods: periods, employees: employees,
		accounts: accounts, routes: routes, assignments: assignments, log: log,
	}
}

// NotifyPeriodOpened sends one submission-instructions email per
// eligible employee in the period's terminal. Legal from UPCOMING or
// OPEN only; a period in any other status rejects the call before
// anything is sent.
func (s *NotificationService) NotifyPeriodOpened(ctx context.Context, userID, periodID string) (*model.Result, error) {
	period, err := s.periods.GetByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if _, err := periodService.CheckTransition(period.Status, periodService.ActionNotify); err != nil {
		return nil, model.ErrPeriodNotNotifiable
	}

	terminalID := ""
	if period.TerminalID != nil {
		terminalID = *period.TerminalID
	}
	employees, err := s.employees.ListEligible(ctx, terminalID)
	if err != nil {
		return nil, err
	}

	recipients := make([]model.Recipient, 0, len(employees))
	for _, emp := range employees {
		email, ok := s.resolveEmail(ctx, emp)
		if !ok {
			continue
		}
		recipients = append(recipients, model.Recipient{
			EmployeeID: emp.EmployeeID,
			Email:      email,
			Subject:    fmt.Sprintf("Route selection open: %s", period.Name),
			Body:       periodOpenedBody(emp, period),
		})
	}

	result := s.dispatcher.Dispatch(ctx, userID, recipients)
	s.log.Info("period-opened notifications dispatched",
		zap.String("period_id", periodID), zap.Int("sent", result.Sent), zap.Int("failed", result.Failed))
	return result, nil
}

// NotifyAssignmentsCompleted sends one result email per assignment in
// the period. Legal only once the period is COMPLETED.
func (s *NotificationService) NotifyAssignmentsCompleted(ctx context.Context, userID, periodID string) (*model.Result, error) {
	period, err := s.periods.GetByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if _, err := periodService.CheckTransition(period.Status, periodService.ActionNotifyAssign); err != nil {
		return nil, model.ErrPeriodNotNotifiable
	}

	assignments, err := s.assignments.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	routesByID := make(map[string]*routeModel.Route)
	recipients := make([]model.Recipient, 0, len(assignments))
	for _, a := range assignments {
		emp, err := s.employees.GetByEmployeeID(ctx, a.EmployeeID)
		if err != nil {
			s.log.Warn("skipping notification, employee not found",
				zap.String("employee_id", a.EmployeeID), zap.Error(err))
			continue
		}
		email, ok := s.resolveEmail(ctx, emp)
		if !ok {
			continue
		}

		var route *routeModel.Route
		if a.RouteID != nil {
			if cached, found := routesByID[*a.RouteID]; found {
				route = cached
			} else if fetched, err := s.routes.GetByID(ctx, *a.RouteID); err == nil {
				route = fetched
				routesByID[*a.RouteID] = fetched
			}
		}

		recipients = append(recipients, model.Recipient{
			EmployeeID: emp.EmployeeID,
			Email:      email,
			Subject:    fmt.Sprintf("Your route selection result: %s", period.Name),
			Body:       assignmentResultBody(emp, period, route, a.ChoiceReceived),
		})
	}

	result := s.dispatcher.Dispatch(ctx, userID, recipients)
	s.log.Info("assignment-completed notifications dispatched",
		zap.String("period_id", periodID), zap.Int("sent", result.Sent), zap.Int("failed", result.Failed))
	return result, nil
}

// resolveEmail returns the email address linked to emp's Account, if
// any. An employee with no AccountID, or whose Account lookup fails,
// is silently skipped — there is no mailbox to reach.
func (s *NotificationService) resolveEmail(ctx context.Context, emp *employeeModel.Employee) (string, bool) {
	if emp.AccountID == nil {
		return "", false
	}
	account, err := s.accounts.GetByID(ctx, *emp.AccountID)
	if err != nil {
		s.log.Warn("skipping notification, account not found",
			zap.String("employee_id", emp.EmployeeID), zap.Error(err))
		return "", false
	}
	return account.Email, true
}

func periodOpenedBody(emp *employeeModel.Employee, period *periodModel.SelectionPeriod) string {
	return fmt.Sprintf(
		"<p>Hello %s,</p><p>Route selection for <strong>%s</strong> is now open. "+
			"Submit your ranked preferences (at least %d choices) before %s.</p>",
		emp.FirstName, period.Name, period.RequiredSelections, period.EndDate.Format("Jan 2, 2006"),
	)
}

func assignmentResultBody(emp *employeeModel.Employee, period *periodModel.SelectionPeriod, route *routeModel.Route, choiceReceived *int) string {
	if route == nil {
		return fmt.Sprintf(
			"<p>Hello %s,</p><p>For <strong>%s</strong> you have been placed in the float pool. "+
				"You will be dispatched day-to-day.</p>",
			emp.FirstName, period.Name,
		)
	}
	choiceText := "a manually assigned"
	if choiceReceived != nil {
		choiceText = ordinal(*choiceReceived)
	}
	return fmt.Sprintf(
		"<p>Hello %s,</p><p>For <strong>%s</strong> you have been awarded run %s (%s &rarr; %s) "+
			"as your %s choice.</p>",
		emp.FirstName, period.Name, route.RunNumber, route.Origin, route.Destination, choiceText,
	)
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "first"
	case 2:
		return "second"
	case 3:
		return "third"
	default:
		return fmt.Sprintf("%d", n)
	}
}
