package service

import (
	"context"
	"sync"

	"github.com/pavlenko-transit/pickboard/internal/platform/email"
	"github.com/pavlenko-transit/pickboard/internal/platform/logger"
	auditModel "github.com/pavlenko-transit/pickboard/modules/audit/model"
	auditPorts "github.com/pavlenko-transit/pickboard/modules/audit/ports"
	"github.com/pavlenko-transit/pickboard/modules/notifications/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Dispatcher fans a batch of recipients out to the email transport
// with bounded, cancellable concurrency. It is the only
// internally-concurrent code path in the core.
type Dispatcher struct {
	sender email.Sender
	audit  auditPorts.AuditRepository
	fanOut int
	log    *logger.Logger
}

// NewDispatcher creates a Dispatcher. fanOut bounds how many sends run
// concurrently per batch (config.DispatchConfig.FanOut, default 10).
func NewDispatcher(sender email.Sender, audit auditPorts.AuditRepository, fanOut int, log *logger.Logger) *Dispatcher {
	if fanOut < 1 {
		fanOut = 1
	}
	return &Dispatcher{sender: sender, audit: audit, fanOut: fanOut, log: log}
}

// Dispatch attempts every recipient's send, bounded by fanOut
// concurrent goroutines. One recipient's failure never cancels
// another's — the errgroup's own cancel-on-first-error behavior is
// never triggered because worker goroutines always return nil,
// regardless of send outcome. Cancelling ctx stops new sends from
// being scheduled but lets
// in-flight ones finish, since each send runs against a copy of ctx
// with cancellation stripped.
func (d *Dispatcher) Dispatch(ctx context.Context, userID string, recipients []model.Recipient) *model.Result {
	g := new(errgroup.Group)
	g.SetLimit(d.fanOut)

	var mu sync.Mutex
	result := &model.Result{}
	sendCtx := context.WithoutCancel(ctx)

	for i, r := range recipients {
		if ctx.Err() != nil {
			d.log.Warn("dispatch cancelled, skipping remaining recipients",
				zap.Int("scheduled", i), zap.Int("remaining", len(recipients)-i))
			break
		}
		r := r
		g.Go(func() error {
			ok, err := d.sender.Send(sendCtx, r.Email, r.Subject, r.Body)
			success := err == nil && ok

			mu.Lock()
			if success {
				result.Sent++
			} else {
				result.Failed++
			}
			mu.Unlock()

			d.recordAttempt(sendCtx, userID, r, success, err)
			return nil
		})
	}
	_ = g.Wait()
	return result
}

// recordAttempt writes exactly one AuditEvent per send attempt,
// success or failure. The insert runs outside any enclosing business
// transaction since the Dispatcher is invoked after its triggering
// write already committed (period opened, assignments completed).
func (d *Dispatcher) recordAttempt(ctx context.Context, userID string, r model.Recipient, success bool, sendErr error) {
	action := auditModel.ActionNotificationSent
	details := "recipient=" + r.EmployeeID
	if !success {
		action = auditModel.ActionNotificationFailed
		if sendErr != nil {
			details += " error=" + sendErr.Error()
		}
		d.log.Warn("notification send failed", zap.String("employee_id", r.EmployeeID), zap.Error(sendErr))
	} else {
		d.log.Info("notification sent", zap.String("employee_id", r.EmployeeID))
	}

	if err := d.audit.Insert(ctx, &auditModel.Event{
		UserID:     userID,
		Action:     action,
		Resource:   auditModel.ResourceNotification,
		ResourceID: r.EmployeeID,
		Details:    details,
	}); err != nil {
		d.log.Error("failed to record notification audit event", zap.Error(err))
	}
}
