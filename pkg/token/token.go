// Package token issues and verifies the stateless HS256 session tokens.
// A token is self-contained: (userId, email, role) plus an expiry claim, so
// no server-side session store or revocation list exists. Logout is a
// client-side discard.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the decoded session payload.
type Claims struct {
	UserID int64
	Email  string
	Role   string
}

// Manager signs and verifies session tokens with a shared HMAC secret.
type Manager struct {
	secret []byte
	expiry time.Duration
}

func NewManager(secret string, expiry time.Duration) *Manager {
	if expiry == 0 {
		expiry = 7 * 24 * time.Hour
	}
	return &Manager{secret: []byte(secret), expiry: expiry}
}

// Generate issues a signed token for the user.
func (m *Manager) Generate(userID int64, email, role string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"role":   role,
		"exp":    time.Now().Add(m.expiry).Unix(),
		"iat":    time.Now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify parses and validates a token string, returning its claims.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	// JSON numbers decode as float64
	idF, ok := mapClaims["userId"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)

	return &Claims{UserID: int64(idF), Email: email, Role: role}, nil
}
