package service

import (
	"testing"

	"campusconnect/internal/model"
	"campusconnect/internal/pkg"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func userRow(id uint64, email, hash, role string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "password", "role"}).
		AddRow(id, "A", email, hash, role)
}

// Signup, then login with the same credentials, then a second signup with
// the same email. The subject id survives the round trip; the duplicate
// fails with a conflict.
func TestSignupLoginScenario(t *testing.T) {
	pkg.InitJWT("test-secret")
	gdb, mock := newMockDB(t)
	svc := NewAuthService(gdb)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw123456"), bcrypt.DefaultCost)
	require.NoError(t, err)

	// Signup: no existing row, insert succeeds.
	mock.ExpectQuery("SELECT .* FROM `users`").WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectExec("INSERT INTO `users`").WillReturnResult(sqlmock.NewResult(1, 1))

	user, token, err := svc.Signup("a@x.com", "pw123456", "A")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, model.RoleUser, user.Role)

	claims, err := pkg.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)

	// Login with the same credentials yields a token for the same subject.
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRow(user.ID, "a@x.com", string(hash), model.RoleUser))

	_, loginToken, err := svc.Login("a@x.com", "pw123456")
	require.NoError(t, err)
	loginClaims, err := pkg.Parse(loginToken)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, loginClaims.UserID)

	// A second signup with the same email conflicts.
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRow(user.ID, "a@x.com", string(hash), model.RoleUser))

	_, _, err = svc.Signup("a@x.com", "pw123456", "A")
	assert.ErrorIs(t, err, ErrEmailTaken)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	pkg.InitJWT("test-secret")
	gdb, mock := newMockDB(t)
	svc := NewAuthService(gdb)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw123456"), bcrypt.DefaultCost)
	require.NoError(t, err)
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRow(1, "a@x.com", string(hash), model.RoleUser))

	_, _, err = svc.Login("a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	pkg.InitJWT("test-secret")
	gdb, mock := newMockDB(t)
	svc := NewAuthService(gdb)

	mock.ExpectQuery("SELECT .* FROM `users`").WillReturnError(gorm.ErrRecordNotFound)

	_, _, err := svc.Login("nobody@x.com", "pw123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// The email uniqueness race: the existence check misses but the unique
// index rejects the insert. The loser sees a conflict, not a 500.
func TestSignupRaceFailsClosed(t *testing.T) {
	pkg.InitJWT("test-secret")
	gdb, mock := newMockDB(t)
	svc := NewAuthService(gdb)

	mock.ExpectQuery("SELECT .* FROM `users`").WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectExec("INSERT INTO `users`").WillReturnError(gorm.ErrDuplicatedKey)

	_, _, err := svc.Signup("a@x.com", "pw123456", "A")
	assert.ErrorIs(t, err, ErrEmailTaken)
}
