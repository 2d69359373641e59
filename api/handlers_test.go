/*
handlers_test.go - HTTP-level tests for the dashboard API

Tests run through the real chi router so routing, status mapping, and JSON
shapes are covered together.
*/
package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-engine/api"
	"github.com/warp/leave-engine/gcal"
	"github.com/warp/leave-engine/leave"
	"github.com/warp/leave-engine/notify"
)

// =============================================================================
// TEST SETUP
// =============================================================================

type testEnv struct {
	server   *httptest.Server
	store    *leave.Store
	calendar *gcal.Mock
	activity *notify.Log
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	activity := notify.NewLog()
	calendar := gcal.NewMock(nil)
	store := leave.NewSeededStore(leave.Config{
		Sink:     activity,
		Calendar: calendar,
		Now:      func() time.Time { return time.Date(2024, 7, 22, 12, 0, 0, 0, time.UTC) },
	})

	handler := api.NewHandler(store, calendar, activity, nil)
	server := httptest.NewServer(api.NewRouter(handler))
	t.Cleanup(server.Close)

	return &testEnv{server: server, store: store, calendar: calendar, activity: activity}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, e.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// =============================================================================
// EMPLOYEES AND VIEWER
// =============================================================================

func TestListEmployees(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/employees", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var employees []map[string]any
	decodeInto(t, resp, &employees)
	require.Len(t, employees, 2)
	assert.Equal(t, "Elena Rodríguez", employees[0]["name"])
	assert.Equal(t, "supervisor", employees[1]["role"])
}

func TestGetEmployee_NotFound(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/employees/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSetViewer_SwitchesVisibility(t *testing.T) {
	env := newTestEnv(t)

	// Default viewer is the employee: sees only her own four requests.
	resp := env.do(t, http.MethodGet, "/api/requests", nil)
	var own []map[string]any
	decodeInto(t, resp, &own)
	require.Len(t, own, 4)

	// Switch to the supervisor.
	resp = env.do(t, http.MethodPut, "/api/viewer", map[string]int{"employee_id": 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/requests", nil)
	var all []map[string]any
	decodeInto(t, resp, &all)
	assert.Len(t, all, 4) // supervisor sees the whole ledger

	// Unknown viewer id: 404 and viewer unchanged.
	resp = env.do(t, http.MethodPut, "/api/viewer", map[string]int{"employee_id": 42})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/viewer", nil)
	var viewer map[string]any
	decodeInto(t, resp, &viewer)
	assert.Equal(t, float64(2), viewer["id"])
}

// =============================================================================
// REQUEST LIFECYCLE OVER HTTP
// =============================================================================

func TestSubmitRequest_HTTPFlow(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/requests", map[string]string{
		"type":       "Vacation",
		"start_date": "2024-11-04",
		"end_date":   "2024-11-08",
		"reason":     "autumn break",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	decodeInto(t, resp, &created)
	assert.Equal(t, float64(5), created["id"])
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, float64(5), created["days"])
	assert.Equal(t, "Elena Rodríguez", created["user_name"])
}

func TestSubmitRequest_Validation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing type", map[string]string{"start_date": "2024-11-04", "end_date": "2024-11-08"}},
		{"unknown type", map[string]string{"type": "Sabbatical", "start_date": "2024-11-04", "end_date": "2024-11-08"}},
		{"bad date format", map[string]string{"type": "Vacation", "start_date": "11/04/2024", "end_date": "2024-11-08"}},
		{"end before start", map[string]string{"type": "Vacation", "start_date": "2024-11-08", "end_date": "2024-11-04"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.do(t, http.MethodPost, "/api/requests", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestApproveRequest_HTTPFlow(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/requests/4/approve", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Balance reflects the 10-day holiday span.
	resp = env.do(t, http.MethodGet, "/api/balances", nil)
	var balances []map[string]any
	decodeInto(t, resp, &balances)
	require.NotEmpty(t, balances)
	assert.Equal(t, "Vacation", balances[0]["type"])
	assert.Equal(t, float64(15), balances[0]["used"])
	assert.Equal(t, float64(5), balances[0]["remaining"])

	// Re-deciding a finalized request conflicts.
	resp = env.do(t, http.MethodPost, "/api/requests/4/reject", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Unknown id is a 404.
	resp = env.do(t, http.MethodPost, "/api/requests/999/approve", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// =============================================================================
// CALENDAR SYNC
// =============================================================================

func TestSyncRequest_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/requests/1/sync", nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	// Sign in through the mock auth endpoint, then retry.
	resp = env.do(t, http.MethodPost, "/api/gcal/signin", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/requests/1/sync", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]any
	decodeInto(t, resp, &result)
	assert.Equal(t, true, result["synced_to_calendar"])
}

// =============================================================================
// DERIVATION ENDPOINTS
// =============================================================================

func TestGetTeamLeave(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/team-leave", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var index []map[string]any
	decodeInto(t, resp, &index)
	assert.Len(t, index, 7) // 6-day vacation + 1 sick day, both approved in seed
}

func TestGetCalendar(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/calendar?year=2024&month=7", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var grid []map[string]any
	decodeInto(t, resp, &grid)
	require.Len(t, grid, 42)
	assert.Equal(t, "2024-07-01", grid[0]["date"])

	resp = env.do(t, http.MethodGet, "/api/calendar?year=2024&month=13", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListNotifications(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/requests/3/approve", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []map[string]any
	decodeInto(t, resp, &entries)
	require.NotEmpty(t, entries)
	assert.Equal(t, "success", entries[0]["severity"])
}
