package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIPRateLimiter_Allow(t *testing.T) {
	limiter := NewIPRateLimiter(60, 2)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	// Корзины разных IP независимы
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestIPRateLimiter_Disabled(t *testing.T) {
	limiter := NewIPRateLimiter(0, 0)
	for i := 0; i < 100; i++ {
		require.True(t, limiter.Allow("10.0.0.1"))
	}
}

func TestIPRateLimiter_Middleware(t *testing.T) {
	r := gin.New()
	r.Use(NewIPRateLimiter(60, 1).Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, "").Code)
}

func TestAuthenticateMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	roleID := models.RoleHirerID
	user := &models.User{UserRoleID: &roleID}
	user.ID = 11
	valid, _, err := tokens.Generate(user)
	require.NoError(t, err)

	var seen *auth.Caller
	r := gin.New()
	r.Use(AuthenticateMiddleware(tokens))
	r.GET("/", func(c *gin.Context) {
		seen = GetCaller(c)
		c.Status(http.StatusOK)
	})

	t.Run("anonymous passes", func(t *testing.T) {
		seen = &auth.Caller{}
		assert.Equal(t, http.StatusOK, serve(r, "").Code)
		assert.Nil(t, seen)
	})

	t.Run("valid token sets caller", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(r, "Bearer "+valid).Code)
		require.NotNil(t, seen)
		assert.Equal(t, uint(11), seen.UserID)
		assert.True(t, auth.IsHirer(seen))
	})

	t.Run("wrong scheme", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, serve(r, "Token "+valid).Code)
	})

	t.Run("bad token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, serve(r, "Bearer garbage").Code)
	})
}

func TestAuthAndAdminMiddleware(t *testing.T) {
	withCaller := func(caller *auth.Caller) gin.HandlerFunc {
		return func(c *gin.Context) {
			if caller != nil {
				c.Set(string(contextkeys.CallerContextKey), caller)
			}
			c.Next()
		}
	}
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	seekerRole := models.RoleJobSeekerID
	seeker := &auth.Caller{UserID: 1, RoleID: &seekerRole}
	staff := &auth.Caller{UserID: 2, IsStaff: true}

	tests := []struct {
		name       string
		caller     *auth.Caller
		middleware gin.HandlerFunc
		want       int
	}{
		{"auth anonymous", nil, AuthMiddleware(), http.StatusUnauthorized},
		{"auth seeker", seeker, AuthMiddleware(), http.StatusOK},
		{"admin anonymous", nil, AdminMiddleware(), http.StatusUnauthorized},
		{"admin seeker", seeker, AdminMiddleware(), http.StatusForbidden},
		{"admin staff", staff, AdminMiddleware(), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", withCaller(tt.caller), tt.middleware, ok)
			assert.Equal(t, tt.want, serve(r, "").Code)
		})
	}
}
