package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-engine/notify"
)

func TestLog_NewestFirst(t *testing.T) {
	log := notify.NewLog()

	log.Publish("first", notify.SeverityInfo)
	log.Publish("second", notify.SeveritySuccess)
	log.Publish("third", notify.SeverityError)

	entries := log.Notifications()
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Message)
	assert.Equal(t, "second", entries[1].Message)
	assert.Equal(t, "first", entries[2].Message)

	// Each record is stamped and uniquely identified.
	assert.False(t, entries[0].Timestamp.IsZero())
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestLog_Remove(t *testing.T) {
	log := notify.NewLog()
	log.Publish("keep", notify.SeverityInfo)
	log.Publish("drop", notify.SeverityWarning)

	entries := log.Notifications()
	log.Remove(entries[0].ID)

	remaining := log.Notifications()
	require.Len(t, remaining, 1)
	assert.Equal(t, "keep", remaining[0].Message)

	// Unknown ids are ignored.
	log.Remove(entries[0].ID)
	assert.Equal(t, 1, log.Len())
}

func TestLog_NotificationsReturnsCopy(t *testing.T) {
	log := notify.NewLog()
	log.Publish("original", notify.SeverityInfo)

	entries := log.Notifications()
	entries[0].Message = "mutated"

	assert.Equal(t, "original", log.Notifications()[0].Message)
}

func TestDiscard(t *testing.T) {
	// The no-op sink must accept anything without effect.
	var sink notify.Sink = notify.Discard{}
	sink.Publish("dropped", notify.SeverityError)
}
