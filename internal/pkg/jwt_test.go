package pkg

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParseRoundTrip(t *testing.T) {
	InitJWT("test-secret")

	cases := []struct {
		userID uint64
		email  string
		role   string
	}{
		{1, "a@x.com", "USER"},
		{42, "mod@campus.edu", "MODERATOR"},
		{7, "admin@campus.edu", "ADMIN"},
	}
	for _, tc := range cases {
		token, err := Generate(tc.userID, tc.email, tc.role)
		require.NoError(t, err)

		claims, err := Parse(token)
		require.NoError(t, err)
		assert.Equal(t, tc.userID, claims.UserID)
		assert.Equal(t, tc.email, claims.Email)
		assert.Equal(t, tc.role, claims.Role)
		assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, 5*time.Second)
	}
}

func TestParseMalformed(t *testing.T) {
	InitJWT("test-secret")

	for _, tok := range []string{"not-a-token", "a.b", "only.two"} {
		_, err := Parse(tok)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", tok)
	}
}

func TestParseWrongSecret(t *testing.T) {
	InitJWT("test-secret")
	token, err := Generate(1, "a@x.com", "USER")
	require.NoError(t, err)

	InitJWT("other-secret")
	_, err = Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseExpired(t *testing.T) {
	InitJWT("test-secret")

	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: 1,
		Email:  "a@x.com",
		Role:   "USER",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = Parse(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseRejectsUnsignedAlg(t *testing.T) {
	InitJWT("test-secret")

	tok := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1, Role: "ADMIN"})
	signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Parse(signed)
	assert.Error(t, err)
}
