package pkg

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenMalformed = errors.New("invalid token format")
)

// TokenTTL is the fixed lifetime of an issued bearer token. Tokens are
// never revoked server-side before natural expiry.
const TokenTTL = 24 * time.Hour

// secret is injected once at startup; signing without it is a fatal
// misconfiguration handled in main, never a per-request fallback.
var secret []byte

func InitJWT(s string) {
	secret = []byte(s)
}

// Claims carried by every issued token. The embedded role reflects the
// user's role at issuance time only; authorization always re-reads the
// store.
type Claims struct {
	UserID uint64 `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Generate issues a signed bearer token for the given identity.
func Generate(userID uint64, email, role string) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	})
	return tok.SignedString(secret)
}

// Parse verifies the signature and expiry and returns the embedded claims.
// Malformed tokens are reported distinctly from invalid ones so the guard
// chain can answer "invalid token format" vs "invalid token".
func Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrTokenInvalid
		}
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return token.Claims.(*Claims), nil
}
