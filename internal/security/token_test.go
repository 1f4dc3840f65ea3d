package security_test

import (
	"testing"
	"time"

	"betak-backend/internal/domain"
	"betak-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	tm := security.NewTokenManager(testSecret, time.Hour)

	user := &domain.User{
		ID:    42,
		Name:  "Tenant",
		Email: "tenant@test.com",
		Role:  domain.UserRoleTenant,
	}

	token, err := tm.GenerateAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(42), claims.UserID)
	assert.Equal(t, "tenant@test.com", claims.Email)
	assert.Equal(t, domain.UserRoleTenant, claims.Role)
	assert.False(t, claims.IsAdmin())
}

func TestTokenManager_AdminClaims(t *testing.T) {
	tm := security.NewTokenManager(testSecret, time.Hour)

	token, err := tm.GenerateAccessToken(&domain.User{ID: 1, Role: domain.UserRoleAdmin})
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tm := security.NewTokenManager(testSecret, -time.Minute)

	token, err := tm.GenerateAccessToken(&domain.User{ID: 1, Role: domain.UserRoleTenant})
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := security.NewTokenManager(testSecret, time.Hour)
	other := security.NewTokenManager("ffffffffffffffffffffffffffffffff", time.Hour)

	token, err := tm.GenerateAccessToken(&domain.User{ID: 1, Role: domain.UserRoleTenant})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := security.NewTokenManager(testSecret, time.Hour)

	_, err := tm.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}
