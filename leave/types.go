/*
Package leave implements the leave-management core: the Leave Store.

PURPOSE:
  This package owns the employee registry and the leave-request ledger,
  and derives everything a dashboard needs from them: role-scoped request
  visibility, per-employee balances, a per-day team-leave index, and a
  42-cell month grid for the team calendar.

KEY CONCEPTS IN THIS FILE (types.go):
  - Employee:     Identity, role, and per-type leave balances
  - LeaveBalance: One entry per leave type; Remaining = Total - Used
  - LeaveRequest: A dated request with a one-shot status transition
  - TeamMemberLeave: One calendar day of approved absence for one person

DESIGN PRINCIPLES:
  1. Single Owner: Only the Store mutates employees and requests
  2. Precision: decimal.Decimal for balance amounts, never float
  3. Type Safety: Integer ids are typed to keep employee and request ids apart
  4. Purity: Derivations recompute from current state, no caching

SEE ALSO:
  - store.go:    Mutation operations (submit, decide, mark synced)
  - derive.go:   Visible requests, balances, team-leave index
  - calendar.go: Month grid builder
  - dates.go:    Day-granularity date type and arithmetic
*/
package leave

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type EmployeeID int

type RequestID int

// =============================================================================
// ROLES AND LEAVE TYPES
// =============================================================================

type Role string

const (
	RoleEmployee   Role = "employee"
	RoleSupervisor Role = "supervisor"
)

// LeaveType is a closed set. Every type is trackable: approving a request of
// any type debits the matching balance entry.
type LeaveType string

const (
	TypeVacation LeaveType = "Vacation"
	TypeSick     LeaveType = "Sick Leave"
	TypePersonal LeaveType = "Personal Matters"
)

// LeaveTypes lists all known types in display order.
func LeaveTypes() []LeaveType {
	return []LeaveType{TypeVacation, TypeSick, TypePersonal}
}

// ValidLeaveType reports whether t is one of the closed set.
func ValidLeaveType(t LeaveType) bool {
	switch t {
	case TypeVacation, TypeSick, TypePersonal:
		return true
	}
	return false
}

// =============================================================================
// REQUEST STATUS - transitions exactly once, Pending -> Approved|Rejected
// =============================================================================

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Terminal reports whether s is a final status.
func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

// =============================================================================
// BALANCES
// =============================================================================

// LeaveBalance tracks one leave type for one employee.
// Invariant: Remaining = Total - Used after every mutation. Remaining may go
// negative when an over-allocated request is approved; see store.go.
type LeaveBalance struct {
	Type      LeaveType       `json:"type"`
	Total     decimal.Decimal `json:"total"`
	Used      decimal.Decimal `json:"used"`
	Remaining decimal.Decimal `json:"remaining"`
}

// NewLeaveBalance builds a consistent balance entry from whole-day counts.
func NewLeaveBalance(t LeaveType, total, used int) LeaveBalance {
	tot := decimal.NewFromInt(int64(total))
	u := decimal.NewFromInt(int64(used))
	return LeaveBalance{Type: t, Total: tot, Used: u, Remaining: tot.Sub(u)}
}

// =============================================================================
// EMPLOYEES
// =============================================================================

type Employee struct {
	ID       EmployeeID     `json:"id"`
	Name     string         `json:"name"`
	Position string         `json:"position"`
	Email    string         `json:"email"`
	Avatar   string         `json:"avatar"`
	Role     Role           `json:"role"`
	Balances []LeaveBalance `json:"leave_balances"`
}

// =============================================================================
// REQUESTS
// =============================================================================

// LeaveRequest is one entry in the ledger. Ids are assigned monotonically by
// the store. Submitter identity fields are copied at creation time so the
// ledger stays self-describing.
type LeaveRequest struct {
	ID               RequestID  `json:"id"`
	UserID           EmployeeID `json:"user_id"`
	UserName         string     `json:"user_name"`
	UserAvatar       string     `json:"user_avatar"`
	Type             LeaveType  `json:"type"`
	StartDate        Date       `json:"start_date"`
	EndDate          Date       `json:"end_date"`
	Reason           string     `json:"reason,omitempty"`
	Status           Status     `json:"status"`
	SyncedToCalendar bool       `json:"synced_to_calendar"`
}

// Days returns the inclusive calendar-day span of the request.
func (r LeaveRequest) Days() int { return InclusiveDayCount(r.StartDate, r.EndDate) }

// NewLeaveRequest is the submission input. The store fills in id, submitter
// identity, status, and the sync flag.
type NewLeaveRequest struct {
	Type      LeaveType `json:"type"`
	StartDate Date      `json:"start_date"`
	EndDate   Date      `json:"end_date"`
	Reason    string    `json:"reason,omitempty"`
}

// =============================================================================
// TEAM-LEAVE INDEX ENTRY
// =============================================================================

// TeamMemberLeave is one flattened day of approved absence.
type TeamMemberLeave struct {
	Name      string `json:"name"`
	LeaveDate Date   `json:"leave_date"`
}
