package middleware

import (
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthenticateMiddleware разбирает Bearer-токен, если он есть, и кладет вызывающего в контекст.
// Запрос без заголовка проходит как анонимный, неверный токен - 401.
func AuthenticateMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenStr) == "" {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(tokenStr))
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "rejected access token", "error", err.Error(), "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		caller := claims.Caller()
		c.Set(string(contextkeys.CallerContextKey), caller)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), caller.UserID))
		c.Next()
	}
}

// AuthMiddleware - маршрут только для аутентифицированных
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.IsAuthenticated(GetCaller(c)) {
			apperrors.HandleError(c, apperrors.ErrAuthenticationRequired)
			return
		}
		c.Next()
	}
}

// AdminMiddleware - маршрут только для администраторов (is_staff или роль admin)
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := GetCaller(c)
		if !auth.IsAuthenticated(caller) {
			apperrors.HandleError(c, apperrors.ErrAuthenticationRequired)
			return
		}
		if !auth.IsAdmin(caller) {
			apperrors.HandleError(c, apperrors.ErrPermissionDenied)
			return
		}
		c.Next()
	}
}

// GetCaller извлекает вызывающего из контекста; nil для анонимного запроса
func GetCaller(c *gin.Context) *auth.Caller {
	val, exists := c.Get(string(contextkeys.CallerContextKey))
	if !exists {
		return nil
	}
	caller, _ := val.(*auth.Caller)
	return caller
}
