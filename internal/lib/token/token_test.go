package token

import (
	"context"
	"testing"
	"time"

	"github.com/deppfellow/bluewave/internal/config"
	"github.com/deppfellow/bluewave/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager() *JWTManager {
	return NewJWTManager(config.AuthConfig{
		SecretKey: "test-secret-0123456789",
		Issuer:    "bluewave",
		TokenTTL:  time.Hour,
	})
}

func TestIssueAndVerify(t *testing.T) {
	m := newManager()

	raw, err := m.Issue(model.Account{ID: 7, Role: model.RoleMitra, WisataID: 3})
	require.NoError(t, err)

	res := m.Verify(context.Background(), raw)
	assert.True(t, res.Authenticated)
	assert.Equal(t, int64(7), res.UserID)
	assert.Equal(t, model.RoleMitra, res.Role)
	assert.Equal(t, int64(3), res.WisataID)
}

func TestVerifyExpired(t *testing.T) {
	m := newManager()
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	raw, err := m.Issue(model.Account{ID: 1, Role: model.RoleAdmin})
	require.NoError(t, err)

	m.now = time.Now
	res := m.Verify(context.Background(), raw)
	assert.False(t, res.Authenticated)
	assert.Equal(t, "Token sudah kedaluwarsa", res.Message)
}

func TestVerifyWrongSecret(t *testing.T) {
	raw, err := newManager().Issue(model.Account{ID: 1, Role: model.RoleUser})
	require.NoError(t, err)

	other := NewJWTManager(config.AuthConfig{SecretKey: "another-secret-987654", Issuer: "bluewave", TokenTTL: time.Hour})
	res := other.Verify(context.Background(), raw)
	assert.False(t, res.Authenticated)
	assert.Equal(t, "Token tidak valid", res.Message)
}

func TestVerifyGarbage(t *testing.T) {
	res := newManager().Verify(context.Background(), "not-a-token")
	assert.False(t, res.Authenticated)
	assert.NotEmpty(t, res.Message)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.True(t, CheckPassword("rahasia123", hash))
	assert.False(t, CheckPassword("salah", hash))
}
