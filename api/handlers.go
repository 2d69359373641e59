/*
handlers.go - HTTP API handlers for the leave dashboard core

PURPOSE:
  Exposes the Leave Store via REST. Handles HTTP request/response, JSON
  serialization, input validation, and delegates to the store.

ENDPOINTS:
  Employees:
    GET    /api/employees              List the registry
    GET    /api/employees/{id}         Single employee

  Viewer:
    GET    /api/viewer                 Active viewer
    PUT    /api/viewer                 Switch active viewer

  Requests:
    GET    /api/requests               Requests visible to the active viewer
    POST   /api/requests               Submit a leave request
    POST   /api/requests/{id}/approve  Approve a pending request
    POST   /api/requests/{id}/reject   Reject a pending request
    POST   /api/requests/{id}/sync     Push to the external calendar

  Derivations:
    GET    /api/balances               Active viewer's balances
    GET    /api/team-leave             Flattened team-leave index
    GET    /api/calendar               42-cell month grid (?year=&month=)

  Notifications:
    GET    /api/notifications          Activity log, newest first

  Calendar auth (mock):
    GET    /api/gcal                   Auth status
    POST   /api/gcal/signin            Simulated sign-in
    POST   /api/gcal/signout           Simulated sign-out

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Unknown employee or request
  - 409: Deciding an already finalized request
  - 502: External calendar sync failure
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/warp/leave-engine/gcal"
	"github.com/warp/leave-engine/leave"
	"github.com/warp/leave-engine/notify"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store    *leave.Store
	Calendar *gcal.Mock
	Activity *notify.Log

	validate *validator.Validate
	log      *zap.Logger
}

// NewHandler creates a handler around the store and its collaborators.
func NewHandler(store *leave.Store, cal *gcal.Mock, activity *notify.Log, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Store:    store,
		Calendar: cal,
		Activity: activity,
		validate: validator.New(),
		log:      logger,
	}
}

// =============================================================================
// EMPLOYEE ENDPOINTS
// =============================================================================

// ListEmployees returns the whole registry.
// GET /api/employees
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees := h.Store.Employees()
	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetEmployee returns a single employee.
// GET /api/employees/{id}
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid employee id", err)
		return
	}

	emp, err := h.Store.Employee(leave.EmployeeID(id))
	if err != nil {
		writeError(w, http.StatusNotFound, "Employee not found", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(emp))
}

// =============================================================================
// VIEWER ENDPOINTS
// =============================================================================

// GetViewer returns the active viewer.
// GET /api/viewer
func (h *Handler) GetViewer(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toEmployeeDTO(h.Store.ActiveViewer()))
}

// SetViewer switches the active viewer.
// PUT /api/viewer
func (h *Handler) SetViewer(w http.ResponseWriter, r *http.Request) {
	var req SetViewerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid viewer request", err)
		return
	}

	if err := h.Store.SetActiveViewer(leave.EmployeeID(req.EmployeeID)); err != nil {
		writeError(w, http.StatusNotFound, "Employee not found", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(h.Store.ActiveViewer()))
}

// =============================================================================
// REQUEST ENDPOINTS
// =============================================================================

// ListRequests returns the ledger entries visible to the active viewer,
// newest first.
// GET /api/requests
func (h *Handler) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests := h.Store.VisibleRequests(h.Store.ActiveViewer())
	dtos := make([]RequestDTO, len(requests))
	for i, req := range requests {
		dtos[i] = toRequestDTO(req)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SubmitRequest files a new leave request on behalf of the active viewer.
// POST /api/requests
func (h *Handler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid leave request", err)
		return
	}
	if !leave.ValidLeaveType(leave.LeaveType(req.Type)) {
		writeError(w, http.StatusBadRequest, "Unknown leave type", nil)
		return
	}

	start, err := leave.ParseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start_date (use YYYY-MM-DD)", err)
		return
	}
	end, err := leave.ParseDate(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end_date (use YYYY-MM-DD)", err)
		return
	}
	if end.Before(start) {
		writeError(w, http.StatusBadRequest, "end_date must not be before start_date", nil)
		return
	}

	stored, err := h.Store.SubmitRequest(r.Context(), leave.NewLeaveRequest{
		Type:      leave.LeaveType(req.Type),
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to submit leave request", err)
		return
	}
	writeJSON(w, http.StatusCreated, toRequestDTO(stored))
}

// ApproveRequest finalizes a pending request as approved, debiting the
// requester's balance.
// POST /api/requests/{id}/approve
func (h *Handler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, leave.StatusApproved)
}

// RejectRequest finalizes a pending request as rejected.
// POST /api/requests/{id}/reject
func (h *Handler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, leave.StatusRejected)
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, outcome leave.Status) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request id", err)
		return
	}

	if err := h.Store.Decide(leave.RequestID(id), outcome); err != nil {
		switch {
		case errors.Is(err, leave.ErrRequestNotFound):
			writeError(w, http.StatusNotFound, "Request not found", err)
		case errors.Is(err, leave.ErrRequestNotPending):
			writeError(w, http.StatusConflict, "Request already finalized", err)
		default:
			h.log.Error("decide failed", zap.Int("request_id", id), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to decide request", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "status": string(outcome)})
}

// SyncRequest pushes an approved request to the external calendar and marks
// it synced on success.
// POST /api/requests/{id}/sync
func (h *Handler) SyncRequest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request id", err)
		return
	}

	if err := h.Store.SyncToCalendar(r.Context(), leave.RequestID(id)); err != nil {
		switch {
		case errors.Is(err, leave.ErrRequestNotFound):
			writeError(w, http.StatusNotFound, "Request not found", err)
		case errors.Is(err, gcal.ErrNotAuthenticated):
			writeError(w, http.StatusBadGateway, "Not signed in to the calendar provider", err)
		default:
			writeError(w, http.StatusBadGateway, "Calendar sync failed", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "synced_to_calendar": true})
}

// =============================================================================
// DERIVATION ENDPOINTS
// =============================================================================

// GetBalances returns the active viewer's balances, re-read from the
// registry on every call.
// GET /api/balances
func (h *Handler) GetBalances(w http.ResponseWriter, r *http.Request) {
	balances := h.Store.CurrentBalances(h.Store.ActiveViewer().ID)
	dtos := make([]BalanceDTO, len(balances))
	for i, b := range balances {
		dtos[i] = toBalanceDTO(b)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetTeamLeave returns the flattened team-leave index.
// GET /api/team-leave
func (h *Handler) GetTeamLeave(w http.ResponseWriter, r *http.Request) {
	index := h.Store.TeamLeaveIndex()
	dtos := make([]TeamLeaveDTO, len(index))
	for i, entry := range index {
		dtos[i] = TeamLeaveDTO{Name: entry.Name, LeaveDate: entry.LeaveDate.String()}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetCalendar returns the 42-cell grid for the requested month, defaulting
// to the current one.
// GET /api/calendar?year=2024&month=7
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid year", err)
			return
		}
		year = y
	}
	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			writeError(w, http.StatusBadRequest, "Invalid month (1-12)", err)
			return
		}
		month = time.Month(m)
	}

	grid := h.Store.CalendarGrid(year, month)
	dtos := make([]CalendarDayDTO, len(grid))
	for i, day := range grid {
		leaves := day.Leaves
		if leaves == nil {
			leaves = []string{}
		}
		dtos[i] = CalendarDayDTO{
			Date:           day.Date.String(),
			IsCurrentMonth: day.IsCurrentMonth,
			IsToday:        day.IsToday,
			Leaves:         leaves,
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// NOTIFICATION ENDPOINTS
// =============================================================================

// ListNotifications returns the activity log, newest first.
// GET /api/notifications
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	if h.Activity == nil {
		writeJSON(w, http.StatusOK, []notify.Notification{})
		return
	}
	writeJSON(w, http.StatusOK, h.Activity.Notifications())
}

// =============================================================================
// CALENDAR AUTH ENDPOINTS (mock provider)
// =============================================================================

// GetCalendarAuth reports whether the mock provider session is active.
// GET /api/gcal
func (h *Handler) GetCalendarAuth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": h.Calendar.IsAuthenticated()})
}

// CalendarSignIn simulates a completed auth flow.
// POST /api/gcal/signin
func (h *Handler) CalendarSignIn(w http.ResponseWriter, r *http.Request) {
	h.Calendar.SignIn()
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
}

// CalendarSignOut drops the simulated session.
// POST /api/gcal/signout
func (h *Handler) CalendarSignOut(w http.ResponseWriter, r *http.Request) {
	h.Calendar.SignOut()
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": false})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
