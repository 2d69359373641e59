/*
Package notify is the outbound notification surface of the leave core.

PURPOSE:
  Every user-facing mutation (submit, decide, sync) emits exactly one terminal
  notification through a Sink. The flow is one-directional: the core writes,
  presentation layers read, nothing feeds back into core state.

IMPLEMENTATIONS:
  - Log:     In-memory newest-first log for the dashboard activity panel
  - Discard: No-op sink for tests and headless use
*/
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// NOTIFICATION RECORD
// =============================================================================

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type Notification struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}

// =============================================================================
// SINK - Consumers implement this; the core only ever calls Publish
// =============================================================================

type Sink interface {
	Publish(message string, severity Severity)
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Publish(string, Severity) {}

// =============================================================================
// LOG - In-memory newest-first notification log
// =============================================================================

// Log stores notifications newest-first. Safe for concurrent use.
type Log struct {
	mu      sync.RWMutex
	entries []Notification
	now     func() time.Time
}

func NewLog() *Log {
	return &Log{now: time.Now}
}

// Publish prepends a new record stamped with the current time.
func (l *Log) Publish(message string, severity Severity) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := Notification{
		ID:        uuid.New(),
		Message:   message,
		Severity:  severity,
		Timestamp: l.now(),
	}
	l.entries = append([]Notification{n}, l.entries...)
}

// Notifications returns a copy of the log, newest first.
func (l *Log) Notifications() []Notification {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Notification, len(l.entries))
	copy(out, l.entries)
	return out
}

// Remove deletes one record by id; unknown ids are ignored.
func (l *Log) Remove(id uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, n := range l.entries {
		if n.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// Len reports the number of records currently held.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
