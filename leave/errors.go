/*
errors.go - Centralized error types for the leave core

PURPOSE:
  All sentinel errors in one place. The original dashboard swallowed these
  cases as silent no-ops; the store surfaces them as explicit sentinels
  instead, while still guaranteeing that state is left untouched. Call sites
  that want the legacy silent behavior simply discard the error.

USAGE:
  if errors.Is(err, leave.ErrRequestNotPending) {
      // request was already finalized; nothing changed
  }

SEE ALSO:
  - store.go: Returns these errors
  - api/handlers.go: Maps them to HTTP status codes
*/
package leave

import "errors"

var (
	// ErrEmployeeNotFound is returned when a referenced employee id is unknown.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrRequestNotFound is returned when a referenced request id is unknown.
	ErrRequestNotFound = errors.New("leave request not found")

	// ErrRequestNotPending is returned when deciding a request that is already
	// approved or rejected. The finalized state is never overwritten.
	ErrRequestNotPending = errors.New("leave request already finalized")

	// ErrInvalidDecision is returned when a decision outcome is neither
	// approved nor rejected.
	ErrInvalidDecision = errors.New("decision must be approved or rejected")
)

// IsNotFound reports whether err is one of the unknown-id sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound) || errors.Is(err, ErrRequestNotFound)
}
