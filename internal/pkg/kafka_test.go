package pkg

import (
	"testing"

	"campusconnect/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationMessage(t *testing.T) {
	ob := &model.NotificationOutbox{
		ID:        7,
		EventType: "event_approved",
		UserID:    42,
		Payload:   `{"event_id":1,"user_id":42,"status":"APPROVED"}`,
	}
	msg := notificationMessage(ob)

	// Keyed by recipient so one user's notifications share a partition.
	assert.Equal(t, "42", string(msg.Key))
	assert.Equal(t, ob.Payload, string(msg.Value))

	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, "event_approved", string(msg.Headers[0].Value))
}
