package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pavlenko-transit/pickboard/internal/platform/logger"
	auditModel "github.com/pavlenko-transit/pickboard/modules/audit/model"
	"github.com/pavlenko-transit/pickboard/modules/audit/ports"
	"github.com/pavlenko-transit/pickboard/modules/notifications/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender records which recipients it was asked to send to and
// fails the address "fail@example.com", letting tests assert partial
// failure is reported rather than surfaced as an error.
type fakeSender struct {
	mu          sync.Mutex
	sent        []string
	inFlight    int32
	maxInFlight int32
	block       chan struct{} // if non-nil, Send waits on this before returning
}

func (f *fakeSender) Send(ctx context.Context, recipient, subject, body string) (bool, error) {
	cur := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		old := atomic.LoadInt32(&f.maxInFlight)
		if cur <= old || atomic.CompareAndSwapInt32(&f.maxInFlight, old, cur) {
			break
		}
	}

	if f.block != nil {
		<-f.block
	}

	f.mu.Lock()
	f.sent = append(f.sent, recipient)
	f.mu.Unlock()

	if recipient == "fail@example.com" {
		return false, errors.New("transport rejected message")
	}
	return true, nil
}

// fakeAuditRepo records inserted events without a database.
type fakeAuditRepo struct {
	mu     sync.Mutex
	events []*auditModel.Event
}

func (f *fakeAuditRepo) Insert(ctx context.Context, e *auditModel.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
	return nil
}

func (f *fakeAuditRepo) List(ctx context.Context, opts *ports.ListOptions) ([]*auditModel.Event, int, error) {
	return f.events, len(f.events), nil
}

func (f *fakeAuditRepo) count(action auditModel.Action) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.events {
		if e.Action == action {
			n++
		}
	}
	return n
}

func newTestDispatcher(t *testing.T, sender *fakeSender, audit *fakeAuditRepo, fanOut int) *Dispatcher {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return NewDispatcher(sender, audit, fanOut, log)
}

func TestDispatcher_PartialFailureIsolatesRecipients(t *testing.T) {
	sender := &fakeSender{}
	audit := &fakeAuditRepo{}
	d := newTestDispatcher(t, sender, audit, 10)

	recipients := []model.Recipient{
		{EmployeeID: "E1", Email: "ok1@example.com"},
		{EmployeeID: "E2", Email: "fail@example.com"},
		{EmployeeID: "E3", Email: "ok2@example.com"},
	}

	result := d.Dispatch(context.Background(), "admin-1", recipients)

	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 2, audit.count(auditModel.ActionNotificationSent))
	assert.Equal(t, 1, audit.count(auditModel.ActionNotificationFailed))
}

func TestDispatcher_BoundsConcurrency(t *testing.T) {
	block := make(chan struct{})
	sender := &fakeSender{block: block}
	audit := &fakeAuditRepo{}
	d := newTestDispatcher(t, sender, audit, 3)

	recipients := make([]model.Recipient, 10)
	for i := range recipients {
		recipients[i] = model.Recipient{EmployeeID: "E", Email: "ok@example.com"}
	}

	done := make(chan *model.Result, 1)
	go func() {
		done <- d.Dispatch(context.Background(), "admin-1", recipients)
	}()

	// Let the fan-out saturate its limit before releasing sends.
	time.Sleep(50 * time.Millisecond)
	close(block)

	result := <-done
	assert.Equal(t, 10, result.Sent)
	assert.LessOrEqual(t, int(sender.maxInFlight), 3)
}

func TestDispatcher_CancellationStopsNewSendsButFinishesInFlight(t *testing.T) {
	release := make(chan struct{})
	sender := &fakeSender{block: release}
	audit := &fakeAuditRepo{}
	d := newTestDispatcher(t, sender, audit, 2)

	recipients := make([]model.Recipient, 20)
	for i := range recipients {
		recipients[i] = model.Recipient{EmployeeID: "E", Email: "ok@example.com"}
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan *model.Result, 1)
	go func() {
		done <- d.Dispatch(ctx, "admin-1", recipients)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()
	time.Sleep(30 * time.Millisecond)
	close(release)

	result := <-done
	// In-flight sends (bounded by fan-out) complete despite cancellation;
	// far fewer than the full batch is scheduled once ctx is cancelled.
	assert.Less(t, result.Sent+result.Failed, len(recipients))
	assert.Greater(t, result.Sent+result.Failed, 0)
}
