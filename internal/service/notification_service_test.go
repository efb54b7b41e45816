package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"campusconnect/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkReadOwnership(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewNotificationService(gdb)

	// Another user's notification: the user_id filter matches nothing.
	mock.ExpectExec("UPDATE `notifications`").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, svc.MarkRead(1, 9), ErrNotFound)

	mock.ExpectExec("UPDATE `notifications`").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, svc.MarkRead(1, 5))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func outboxRows(ids ...uint64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "event_type", "user_id", "payload", "status", "retry"})
	for _, id := range ids {
		rows.AddRow(id, "event_approved", 5, "{}", 0, 0)
	}
	return rows
}

// A failed send marks the row for retry; a successful one marks it sent.
func TestOutboxRelayerDrain(t *testing.T) {
	gdb, mock := newMockDB(t)

	var mu sync.Mutex
	var sent []uint64
	sender := func(ctx context.Context, ob *model.NotificationOutbox) error {
		mu.Lock()
		defer mu.Unlock()
		if ob.ID == 2 {
			return errors.New("broker down")
		}
		sent = append(sent, ob.ID)
		return nil
	}
	relayer := NewOutboxRelayer(gdb, sender)

	mock.ExpectQuery("SELECT .* FROM `notification_outbox`").
		WillReturnRows(outboxRows(1, 2, 3))
	mock.ExpectExec("UPDATE `notification_outbox`").WillReturnResult(sqlmock.NewResult(0, 1)) // 1 sent
	mock.ExpectExec("UPDATE `notification_outbox`").WillReturnResult(sqlmock.NewResult(0, 1)) // 2 failed
	mock.ExpectExec("UPDATE `notification_outbox`").WillReturnResult(sqlmock.NewResult(0, 1)) // 3 sent

	relayer.drainOnce(context.Background())

	assert.Equal(t, []uint64{1, 3}, sent)
	assert.NoError(t, mock.ExpectationsWereMet())
}
