package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hirelane_backend/internal/models"
	"hirelane_backend/pkg/apperrors"
)

// Claims carried by the access token.
type Claims struct {
	EmployerID string              `json:"employer_id"`
	Role       models.EmployerRole `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed HS256 access token.
func GenerateToken(employerID string, role models.EmployerRole, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		EmployerID: employerID,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the token signature and expiry and returns the claims.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
