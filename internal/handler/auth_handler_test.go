package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campusconnect/internal/pkg"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func authRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(db)
	r.POST("/api/auth/signup", h.Signup)
	r.POST("/api/auth/login", h.Login)
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupStatusCodes(t *testing.T) {
	pkg.InitJWT("test-secret")
	gdb, mock := newMockDB(t)
	r := authRouter(gdb)

	// Missing fields never reach the store.
	w := post(r, "/api/auth/signup", `{"email":"a@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Fresh email: 201 with token and user.
	mock.ExpectQuery("SELECT .* FROM `users`").WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectExec("INSERT INTO `users`").WillReturnResult(sqlmock.NewResult(1, 1))
	w = post(r, "/api/auth/signup", `{"email":"a@x.com","password":"pw123456","name":"A"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)

	// Taken email: 400.
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(1, "a@x.com"))
	w = post(r, "/api/auth/signup", `{"email":"a@x.com","password":"pw123456","name":"A"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginStatusCodes(t *testing.T) {
	pkg.InitJWT("test-secret")
	gdb, mock := newMockDB(t)
	r := authRouter(gdb)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw123456"), bcrypt.DefaultCost)
	require.NoError(t, err)
	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "name", "email", "password", "role"}).
			AddRow(1, "A", "a@x.com", string(hash), "USER")
	}

	mock.ExpectQuery("SELECT .* FROM `users`").WillReturnRows(rows())
	w := post(r, "/api/auth/login", `{"email":"a@x.com","password":"pw123456"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)

	mock.ExpectQuery("SELECT .* FROM `users`").WillReturnRows(rows())
	w = post(r, "/api/auth/login", `{"email":"a@x.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	mock.ExpectQuery("SELECT .* FROM `users`").WillReturnError(gorm.ErrRecordNotFound)
	w = post(r, "/api/auth/login", `{"email":"ghost@x.com","password":"pw123456"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}
