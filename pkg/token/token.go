package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"lppm-backend/internal/domain/master"
)

// Claims carries the caller identity the usecases need: user id and role.
type Claims struct {
	UserID string      `json:"userId"`
	Role   master.Role `json:"role"`
	jwt.RegisteredClaims
}

// Generate signs an HS256 access token for the user.
func Generate(secret []byte, userID string, role master.Role, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("token: empty secret")
	}
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Parse validates the token signature and expiry and returns its claims.
func Parse(secret []byte, raw string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, errors.New("token: invalid claims")
	}
	return claims, nil
}
