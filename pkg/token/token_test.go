package token_test

import (
	"testing"
	"time"

	"talenthub-backend/pkg/token"

	"github.com/stretchr/testify/assert"
)

func TestGenerateVerify(t *testing.T) {
	m := token.NewManager("secret", time.Hour)

	signed, err := m.Generate(42, "jane@example.com", "APPLICANT")
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := m.Verify(signed)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "APPLICANT", claims.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := token.NewManager("secret-a", time.Hour).Generate(1, "a@b.com", "ADMIN")
	assert.NoError(t, err)

	_, err = token.NewManager("secret-b", time.Hour).Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := token.NewManager("secret", -time.Minute)

	signed, err := m.Generate(1, "a@b.com", "ADMIN")
	assert.NoError(t, err)

	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := token.NewManager("secret", time.Hour)

	_, err := m.Verify("not-a-token")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
