package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"jobboard_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidAccessToken = errors.New("invalid access token")

// Claims - содержимое access-токена
type Claims struct {
	UserID  uint  `json:"uid"`
	RoleID  *uint `json:"role_id,omitempty"`
	IsStaff bool  `json:"is_staff,omitempty"`
	jwt.RegisteredClaims
}

// Caller - вызывающий пользователь, восстановленный из токена
func (c *Claims) Caller() *Caller {
	return &Caller{UserID: c.UserID, RoleID: c.RoleID, IsStaff: c.IsStaff}
}

// TokenManager выпускает и проверяет HS256 токены
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Generate возвращает подписанный токен и время его истечения
func (m *TokenManager) Generate(user *models.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)

	claims := &Claims{
		UserID:  user.ID,
		RoleID:  user.UserRoleID,
		IsStaff: user.IsStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse проверяет подпись, алгоритм и срок действия
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccessToken, err)
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidAccessToken
	}
	return claims, nil
}
