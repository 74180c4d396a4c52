package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ============================================================================
// 1. Базовая структура обработчика
// ============================================================================

type BaseHandler struct {
	validator *validator.Validator
	pageSize  int
	publicURL string
	limiter   *middleware.IPRateLimiter
}

// NewBaseHandler: publicURL пустой - origin ссылок на файлы берется из запроса
func NewBaseHandler(v *validator.Validator, pageSize int, publicURL string, limiter *middleware.IPRateLimiter) *BaseHandler {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &BaseHandler{
		validator: v,
		pageSize:  pageSize,
		publicURL: strings.TrimRight(publicURL, "/"),
		limiter:   limiter,
	}
}

// RateLimit - ограничение частоты для чувствительных маршрутов (логин, регистрация)
func (h *BaseHandler) RateLimit() gin.HandlerFunc {
	if h.limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return h.limiter.Middleware()
}

// ============================================================================
// 2. DB и данные запроса
// ============================================================================

// GetDB извлекает *gorm.DB (пул или транзакцию) из gin.Context и привязывает context запроса
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db.WithContext(c.Request.Context())
}

// Request собирает вызывающего и origin для сервисов
func (h *BaseHandler) Request(c *gin.Context) services.Request {
	return services.Request{
		Ctx:    c.Request.Context(),
		Caller: middleware.GetCaller(c),
		Origin: h.origin(c),
	}
}

func (h *BaseHandler) origin(c *gin.Context) string {
	if h.publicURL != "" {
		return h.publicURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}
	return scheme + "://" + c.Request.Host
}

// ============================================================================
// 3. Методы привязки и валидации (с контекстным логгированием)
// ============================================================================

// BindAndValidate_JSON привязывает тело по Content-Type (JSON или multipart) и валидирует
func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind request body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// ============================================================================
// 4. Обработчики ошибок (с контекстным логгированием)
// ============================================================================

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		if appErr.HTTPCode >= 500 {
			logger.CtxWithError(ctx, "Service failure", appErr, "path", c.Request.URL.Path)
		} else {
			logger.CtxWarn(ctx, "Service error",
				"error", appErr.Message,
				"details", appErr.Details,
				"path", c.Request.URL.Path,
			)
		}
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// ============================================================================
// 5. Функции парсинга
// ============================================================================

// ParseID читает положительный целый path-параметр; при ошибке ответ уже отправлен
func (h *BaseHandler) ParseID(c *gin.Context, key string) (uint, bool) {
	id, err := ParseParamUint(c, key)
	if err != nil {
		apperrors.HandleError(c, err)
		return 0, false
	}
	return id, true
}

// Page - номер страницы из ?page и размер страницы из конфига.
// Нет или <= 0 - первая страница, не число - 400.
func (h *BaseHandler) Page(c *gin.Context) (repositories.PageRequest, bool) {
	page := 1
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid page: must be an integer"))
			return repositories.PageRequest{}, false
		}
		if value > 0 {
			page = value
		}
	}
	return repositories.PageRequest{Page: page, Size: h.pageSize}, true
}

func ParseParamUint(c *gin.Context, key string) (uint, error) {
	valueStr := c.Param(key)
	if valueStr == "" {
		return 0, apperrors.NewBadRequestError("Missing required path parameter: " + key)
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil || value == 0 {
		return 0, apperrors.NewBadRequestError("Invalid path parameter: " + key + " is not a positive integer")
	}
	return uint(value), nil
}

// ParseQueryFlag: параметр задан и не является ложным значением (false, 0, no, off)
func ParseQueryFlag(c *gin.Context, key string) bool {
	raw, ok := c.GetQuery(key)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "false", "0", "no", "off":
		return false
	default:
		return true
	}
}
