/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for API communication, decoupling the internal domain
  model from the external contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Request types carry validator struct tags; handlers run them through a
  shared validator instance before touching the store.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/warp/leave-engine/leave"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// SubmitRequestRequest is the body of POST /api/requests. Dates are ISO
// calendar dates (YYYY-MM-DD).
type SubmitRequestRequest struct {
	Type      string `json:"type" validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason,omitempty" validate:"max=500"`
}

// SetViewerRequest is the body of PUT /api/viewer.
type SetViewerRequest struct {
	EmployeeID int `json:"employee_id" validate:"required,min=1"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// EmployeeDTO represents an employee in API responses. Balances ride along
// so the dashboard renders profile and balance panels from one fetch.
type EmployeeDTO struct {
	ID       int          `json:"id"`
	Name     string       `json:"name"`
	Position string       `json:"position"`
	Email    string       `json:"email"`
	Avatar   string       `json:"avatar"`
	Role     string       `json:"role"`
	Balances []BalanceDTO `json:"leave_balances"`
}

// BalanceDTO represents one leave-type balance. Amounts are serialized as
// JSON numbers (whole or fractional days).
type BalanceDTO struct {
	Type      string  `json:"type"`
	Total     float64 `json:"total"`
	Used      float64 `json:"used"`
	Remaining float64 `json:"remaining"`
}

// RequestDTO represents a ledger entry.
type RequestDTO struct {
	ID               int    `json:"id"`
	UserID           int    `json:"user_id"`
	UserName         string `json:"user_name"`
	UserAvatar       string `json:"user_avatar"`
	Type             string `json:"type"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Reason           string `json:"reason,omitempty"`
	Status           string `json:"status"`
	SyncedToCalendar bool   `json:"synced_to_calendar"`
	Days             int    `json:"days"`
}

// TeamLeaveDTO is one flattened day of the team-leave index.
type TeamLeaveDTO struct {
	Name      string `json:"name"`
	LeaveDate string `json:"leave_date"`
}

// CalendarDayDTO is one cell of the 42-cell month grid.
type CalendarDayDTO struct {
	Date           string   `json:"date"`
	IsCurrentMonth bool     `json:"is_current_month"`
	IsToday        bool     `json:"is_today"`
	Leaves         []string `json:"leaves"`
}

// =============================================================================
// MAPPERS
// =============================================================================

func toEmployeeDTO(e leave.Employee) EmployeeDTO {
	dto := EmployeeDTO{
		ID:       int(e.ID),
		Name:     e.Name,
		Position: e.Position,
		Email:    e.Email,
		Avatar:   e.Avatar,
		Role:     string(e.Role),
		Balances: make([]BalanceDTO, len(e.Balances)),
	}
	for i, b := range e.Balances {
		dto.Balances[i] = toBalanceDTO(b)
	}
	return dto
}

func toBalanceDTO(b leave.LeaveBalance) BalanceDTO {
	total, _ := b.Total.Float64()
	used, _ := b.Used.Float64()
	remaining, _ := b.Remaining.Float64()
	return BalanceDTO{Type: string(b.Type), Total: total, Used: used, Remaining: remaining}
}

func toRequestDTO(r leave.LeaveRequest) RequestDTO {
	return RequestDTO{
		ID:               int(r.ID),
		UserID:           int(r.UserID),
		UserName:         r.UserName,
		UserAvatar:       r.UserAvatar,
		Type:             string(r.Type),
		StartDate:        r.StartDate.String(),
		EndDate:          r.EndDate.String(),
		Reason:           r.Reason,
		Status:           string(r.Status),
		SyncedToCalendar: r.SyncedToCalendar,
		Days:             r.Days(),
	}
}
