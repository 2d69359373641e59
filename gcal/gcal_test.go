package gcal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-engine/gcal"
	"github.com/warp/leave-engine/leave"
)

func demoRequest() leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:        1,
		UserID:    1,
		UserName:  "Elena Rodríguez",
		Type:      leave.TypeVacation,
		StartDate: leave.MustDate("2024-07-20"),
		EndDate:   leave.MustDate("2024-07-25"),
		Status:    leave.StatusApproved,
	}
}

func TestMock_RequiresAuthentication(t *testing.T) {
	m := gcal.NewMock(nil)
	assert.False(t, m.IsAuthenticated())

	err := m.CreateEvent(context.Background(), demoRequest())
	assert.ErrorIs(t, err, gcal.ErrNotAuthenticated)
}

func TestMock_SignInSignOut(t *testing.T) {
	m := gcal.NewMock(nil)

	m.SignIn()
	assert.True(t, m.IsAuthenticated())
	require.NoError(t, m.CreateEvent(context.Background(), demoRequest()))

	m.SignOut()
	assert.False(t, m.IsAuthenticated())
	assert.ErrorIs(t, m.CreateEvent(context.Background(), demoRequest()), gcal.ErrNotAuthenticated)
}

func TestMock_FailNextAffectsOneCall(t *testing.T) {
	m := gcal.NewMock(nil)
	m.SignIn()
	m.FailNext()

	err := m.CreateEvent(context.Background(), demoRequest())
	assert.ErrorIs(t, err, gcal.ErrEventRejected)

	// The forced failure is consumed; the next call succeeds.
	assert.NoError(t, m.CreateEvent(context.Background(), demoRequest()))
}
