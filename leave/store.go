/*
store.go - The Leave Store: single owner of employees and requests

PURPOSE:
  Holds the employee registry and the request ledger for the whole process
  lifetime and exposes the only mutation path into them. UI collaborators
  call the command surface here; everything they display is derived from
  the state this file guards.

MUTATION OPERATIONS:
  SubmitRequest:  Append a pending request at the head of the ledger
  Decide:         Approve (debiting a balance) or reject a pending request
  MarkSynced:     Flip the calendar-sync flag, idempotently
  SyncToCalendar: Push an approved request to the external calendar
  SetActiveViewer: Switch whose dashboard is displayed

CONCURRENCY:
  There is exactly one owner of the mutable state. Decide's
  read-then-debit-then-write is not atomic on its own, so every mutation
  entry point serializes on one mutex; reads take the shared side.

NOTIFICATIONS:
  Each user-facing mutation emits exactly one terminal notification
  (success or error) through the configured sink. The submission path also
  emits a leading "processing" record, which is UX sugar, not contract.

SEE ALSO:
  - derive.go:   Query surface (pure derivations)
  - calendar.go: Month grid builder
  - seed.go:     Demo data and the seeded constructor
*/
package leave

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/warp/leave-engine/notify"
)

// =============================================================================
// EXTERNAL CALENDAR CONTRACT
// =============================================================================

// CalendarClient is the external calendar collaborator. The store calls it
// only on a user-initiated sync action and never depends on it for
// correctness; see the gcal package for the mock implementation.
type CalendarClient interface {
	// IsAuthenticated reports whether event creation can succeed.
	IsAuthenticated() bool

	// CreateEvent pushes one request to the external calendar.
	CreateEvent(ctx context.Context, req LeaveRequest) error
}

// =============================================================================
// STORE
// =============================================================================

type Store struct {
	mu       sync.RWMutex
	registry []*Employee
	ledger   []*LeaveRequest
	viewer   EmployeeID
	nextID   RequestID

	sink        notify.Sink
	cal         CalendarClient
	submitDelay time.Duration
	log         *zap.Logger
	now         func() time.Time
}

// Config wires the store's collaborators. Zero values are usable: nil Sink
// discards notifications, nil Logger is a nop, zero SubmitDelay skips the
// artificial submission latency.
type Config struct {
	Employees   []Employee
	Requests    []LeaveRequest
	Sink        notify.Sink
	Calendar    CalendarClient
	SubmitDelay time.Duration
	Logger      *zap.Logger

	// Now overrides the clock, for deterministic "today" in tests.
	Now func() time.Time
}

// New creates a store seeded with the given registry and ledger. The active
// viewer defaults to the first employee. Request ids continue monotonically
// from the largest seeded id.
func New(cfg Config) *Store {
	s := &Store{
		sink:        cfg.Sink,
		cal:         cfg.Calendar,
		submitDelay: cfg.SubmitDelay,
		log:         cfg.Logger,
		now:         cfg.Now,
	}
	if s.sink == nil {
		s.sink = notify.Discard{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}

	for i := range cfg.Employees {
		e := cfg.Employees[i]
		s.registry = append(s.registry, &e)
	}
	for i := range cfg.Requests {
		r := cfg.Requests[i]
		s.ledger = append(s.ledger, &r)
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}
	if s.nextID == 0 {
		s.nextID = 1
	}
	if len(s.registry) > 0 {
		s.viewer = s.registry[0].ID
	}
	return s
}

// =============================================================================
// EMPLOYEE REGISTRY
// =============================================================================

// Employee returns a copy of the employee record for id.
func (s *Store) Employee(id EmployeeID) (Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e := s.findEmployee(id)
	if e == nil {
		return Employee{}, fmt.Errorf("employee %d: %w", id, ErrEmployeeNotFound)
	}
	return copyEmployee(e), nil
}

// Employees returns a copy of the whole registry.
func (s *Store) Employees() []Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Employee, len(s.registry))
	for i, e := range s.registry {
		out[i] = copyEmployee(e)
	}
	return out
}

// SetActiveViewer switches whose dashboard is displayed. The viewer is a
// reference, not ownership: switching never mutates registry or ledger.
// On an unknown id the current viewer is kept.
func (s *Store) SetActiveViewer(id EmployeeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findEmployee(id) == nil {
		return fmt.Errorf("employee %d: %w", id, ErrEmployeeNotFound)
	}
	s.viewer = id
	return nil
}

// ActiveViewer returns a copy of the employee whose dashboard is active.
func (s *Store) ActiveViewer() Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e := s.findEmployee(s.viewer)
	if e == nil {
		return Employee{}
	}
	return copyEmployee(e)
}

// findEmployee must be called with the lock held.
func (s *Store) findEmployee(id EmployeeID) *Employee {
	for _, e := range s.registry {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func copyEmployee(e *Employee) Employee {
	out := *e
	out.Balances = make([]LeaveBalance, len(e.Balances))
	copy(out.Balances, e.Balances)
	return out
}

// =============================================================================
// REQUEST LEDGER - SUBMISSION
// =============================================================================

// SubmitRequest records a new pending request on behalf of the active viewer
// and returns the stored entry. Submission is modeled as an asynchronous
// operation with a single artificial latency; the delay always resolves and
// there are no cancellation semantics. The new entry goes to the head of the
// ledger: most-recent-first ordering is part of the observed contract.
func (s *Store) SubmitRequest(ctx context.Context, nr NewLeaveRequest) (LeaveRequest, error) {
	_ = ctx // reserved for future transport-level deadlines

	s.sink.Publish(fmt.Sprintf("Processing %s request...", nr.Type), notify.SeverityInfo)

	if s.submitDelay > 0 {
		time.Sleep(s.submitDelay)
	}

	s.mu.Lock()
	user := s.findEmployee(s.viewer)
	if user == nil {
		s.mu.Unlock()
		s.sink.Publish("Failed to submit leave request. Please try again.", notify.SeverityError)
		return LeaveRequest{}, fmt.Errorf("active viewer %d: %w", s.viewer, ErrEmployeeNotFound)
	}

	req := &LeaveRequest{
		ID:               s.nextID,
		UserID:           user.ID,
		UserName:         user.Name,
		UserAvatar:       user.Avatar,
		Type:             nr.Type,
		StartDate:        nr.StartDate,
		EndDate:          nr.EndDate,
		Reason:           nr.Reason,
		Status:           StatusPending,
		SyncedToCalendar: false,
	}
	s.nextID++
	s.ledger = append([]*LeaveRequest{req}, s.ledger...)
	stored := *req
	s.mu.Unlock()

	s.log.Info("leave request submitted",
		zap.Int("request_id", int(stored.ID)),
		zap.Int("user_id", int(stored.UserID)),
		zap.String("type", string(stored.Type)))
	s.sink.Publish("Leave request submitted successfully.", notify.SeveritySuccess)
	return stored, nil
}

// =============================================================================
// REQUEST LEDGER - DECISION
// =============================================================================

// Decide finalizes a pending request. Approval debits the requester's balance
// for the inclusive day span before the status flips; every leave type is
// trackable, so the debit is unconditional. Deciding an unknown or already
// finalized request leaves all state unchanged and issues no debit.
func (s *Store) Decide(id RequestID, outcome Status) error {
	if outcome != StatusApproved && outcome != StatusRejected {
		return fmt.Errorf("decide request %d with %q: %w", id, outcome, ErrInvalidDecision)
	}

	s.mu.Lock()
	req := s.findRequest(id)
	if req == nil {
		s.mu.Unlock()
		return fmt.Errorf("request %d: %w", id, ErrRequestNotFound)
	}
	if req.Status != StatusPending {
		s.mu.Unlock()
		return fmt.Errorf("request %d is %s: %w", id, req.Status, ErrRequestNotPending)
	}

	if outcome == StatusApproved {
		days := InclusiveDayCount(req.StartDate, req.EndDate)
		s.applyBalanceDebit(req.UserID, req.Type, days)
	}
	req.Status = outcome
	name := req.UserName
	s.mu.Unlock()

	severity := notify.SeverityInfo
	if outcome == StatusApproved {
		severity = notify.SeveritySuccess
	}
	s.sink.Publish(fmt.Sprintf("Request from %s has been %s.", name, outcome), severity)
	return nil
}

// applyBalanceDebit finds the balance entry matching the leave type and books
// the approved days against it. A missing employee or balance entry skips the
// debit: the request still gets approved, which is a documented failure mode,
// not a crash. The debit is not clamped, so Remaining can go negative when a
// request is over-allocated.
//
// Must be called with the write lock held.
func (s *Store) applyBalanceDebit(userID EmployeeID, t LeaveType, days int) {
	emp := s.findEmployee(userID)
	if emp == nil {
		s.log.Warn("balance debit skipped: employee not found",
			zap.Int("user_id", int(userID)), zap.String("type", string(t)))
		return
	}
	for i := range emp.Balances {
		if emp.Balances[i].Type != t {
			continue
		}
		d := decimal.NewFromInt(int64(days))
		emp.Balances[i].Used = emp.Balances[i].Used.Add(d)
		emp.Balances[i].Remaining = emp.Balances[i].Remaining.Sub(d)
		return
	}
	s.log.Warn("balance debit skipped: no balance entry for type",
		zap.Int("user_id", int(userID)), zap.String("type", string(t)))
}

// =============================================================================
// CALENDAR SYNC
// =============================================================================

// MarkSynced flips the request's sync flag. Idempotent: re-marking a synced
// request is a no-op, as is an unknown id (reported via ErrRequestNotFound,
// with no state change either way).
func (s *Store) MarkSynced(id RequestID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := s.findRequest(id)
	if req == nil {
		return fmt.Errorf("request %d: %w", id, ErrRequestNotFound)
	}
	req.SyncedToCalendar = true
	return nil
}

// SyncToCalendar pushes one request to the external calendar in response to a
// user action. A rejected sync must not mark the request synced and emits an
// error notification; a successful one marks it synced and emits success.
func (s *Store) SyncToCalendar(ctx context.Context, id RequestID) error {
	s.mu.RLock()
	req := s.findRequest(id)
	if req == nil {
		s.mu.RUnlock()
		return fmt.Errorf("request %d: %w", id, ErrRequestNotFound)
	}
	snapshot := *req
	s.mu.RUnlock()

	if s.cal == nil {
		s.sink.Publish("Error syncing with the calendar.", notify.SeverityError)
		return fmt.Errorf("sync request %d: no calendar client configured", id)
	}

	if err := s.cal.CreateEvent(ctx, snapshot); err != nil {
		s.log.Warn("calendar sync failed",
			zap.Int("request_id", int(id)), zap.Error(err))
		s.sink.Publish("Error syncing with the calendar.", notify.SeverityError)
		return fmt.Errorf("sync request %d: %w", id, err)
	}

	if err := s.MarkSynced(id); err != nil {
		return err
	}
	s.sink.Publish("Absence added to the calendar.", notify.SeveritySuccess)
	return nil
}

// findRequest must be called with the lock held.
func (s *Store) findRequest(id RequestID) *LeaveRequest {
	for _, r := range s.ledger {
		if r.ID == id {
			return r
		}
	}
	return nil
}
