/*
Package gcal is the external calendar collaborator, mocked.

PURPOSE:
  Stands in for a real calendar provider. The leave store calls CreateEvent
  on a user-initiated sync action and marks the request synced only when the
  call succeeds. Real provider integration is out of scope: this mock keeps
  the contract honest (auth gate, latency, failure path) without any network.

CONTRACT (leave.CalendarClient):
  IsAuthenticated() bool
  CreateEvent(ctx, request) error   - fails when not authenticated
*/
package gcal

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/warp/leave-engine/leave"
)

// ErrNotAuthenticated is returned by CreateEvent when no user is signed in.
var ErrNotAuthenticated = errors.New("not signed in to the calendar provider")

// ErrEventRejected is the simulated provider-side failure.
var ErrEventRejected = errors.New("calendar provider rejected the event")

// Mock simulates the provider. Safe for concurrent use.
type Mock struct {
	mu       sync.Mutex
	signedIn bool
	failNext bool

	// Latency delays each CreateEvent call, simulating the round trip.
	Latency time.Duration

	log *zap.Logger
}

var _ leave.CalendarClient = (*Mock)(nil)

func NewMock(logger *zap.Logger) *Mock {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mock{log: logger}
}

// SignIn simulates a completed auth flow.
func (m *Mock) SignIn() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signedIn = true
}

// SignOut drops the simulated session.
func (m *Mock) SignOut() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signedIn = false
}

func (m *Mock) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.signedIn
}

// FailNext forces the next CreateEvent call to fail, for exercising the
// error notification path.
func (m *Mock) FailNext() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = true
}

// CreateEvent simulates pushing one leave request to the provider. It never
// touches core state; the store decides what a success means.
func (m *Mock) CreateEvent(ctx context.Context, req leave.LeaveRequest) error {
	m.mu.Lock()
	signedIn, fail := m.signedIn, m.failNext
	m.failNext = false
	m.mu.Unlock()

	if !signedIn {
		return ErrNotAuthenticated
	}

	if m.Latency > 0 {
		select {
		case <-time.After(m.Latency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if fail {
		return ErrEventRejected
	}

	m.log.Info("mock calendar event created",
		zap.Int("request_id", int(req.ID)),
		zap.String("user", req.UserName),
		zap.String("type", string(req.Type)),
		zap.String("from", req.StartDate.String()),
		zap.String("to", req.EndDate.String()))
	return nil
}
