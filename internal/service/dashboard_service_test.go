package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectDashboardQueries(mock sqlmock.Sqlmock) {
	count := func(n int64) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"count(*)"}).AddRow(n)
	}
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").WillReturnRows(count(10))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `events`").WillReturnRows(count(4))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `clubs`").WillReturnRows(count(2))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `events`").WillReturnRows(count(1))
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at"}).
			AddRow(1, "A", "a@x.com", time.Now()))
	mock.ExpectQuery("SELECT .* FROM `events`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "status", "user_id", "date"}).
			AddRow(1, "Fair", "APPROVED", 1, time.Now()))
}

// Within the TTL the dashboard serves from memory; the store is queried
// exactly once.
func TestDashboardCacheServesStale(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewDashboardService(gdb)

	expectDashboardQueries(mock)

	first, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, int64(10), first.Stats.UserCount)
	assert.Equal(t, int64(1), first.Stats.PendingEvents)

	second, err := svc.Get()
	require.NoError(t, err)
	assert.Same(t, first, second)

	assert.NoError(t, mock.ExpectationsWereMet())
}
