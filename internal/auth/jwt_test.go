package auth

import (
	"testing"
	"time"

	"jobboard_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_GenerateParse(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	roleID := models.RoleHirerID
	user := &models.User{UserRoleID: &roleID, IsStaff: true}
	user.ID = 42

	token, expiresAt, err := manager.Generate(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := manager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	require.NotNil(t, claims.RoleID)
	assert.Equal(t, models.RoleHirerID, *claims.RoleID)

	caller := claims.Caller()
	assert.True(t, IsHirer(caller))
	assert.True(t, IsAdmin(caller))
}

func TestTokenManager_Rejects(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	user := &models.User{}
	user.ID = 1

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := NewTokenManager("other-secret", time.Hour).Generate(user)
		require.NoError(t, err)
		_, err = manager.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidAccessToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, _, err := NewTokenManager("test-secret", -time.Minute).Generate(user)
		require.NoError(t, err)
		_, err = manager.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidAccessToken)
	})

	t.Run("unsigned", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
			UserID: 1,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = manager.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidAccessToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := manager.Parse("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidAccessToken)
	})
}

func TestConfirmationToken(t *testing.T) {
	token := GenerateConfirmationToken(15)

	assert.True(t, VerifyConfirmationToken(token, 15))
	assert.False(t, VerifyConfirmationToken(token, 16))
	assert.False(t, VerifyConfirmationToken("no-salt", 15))
	assert.False(t, VerifyConfirmationToken(token+"x", 15))
	// Соль случайная - токены одного пользователя различаются
	assert.NotEqual(t, token, GenerateConfirmationToken(15))
}

func TestPassword(t *testing.T) {
	assert.ErrorIs(t, ValidatePassword("short"), ErrWeakPassword)
	assert.NoError(t, ValidatePassword("long-enough"))

	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("password124", hash))
}
