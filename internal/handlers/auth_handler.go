package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Публичные маршруты с ограничением частоты
	limited := r.Group("")
	limited.Use(h.RateLimit())
	{
		limited.POST("/auth/login", h.Login)
		limited.POST("/users", h.Register)
		limited.POST("/confirm-user/:token", h.Confirm)
	}
}

// Register godoc
// @Summary Регистрация пользователя
// @Description Создает неподтвержденный аккаунт и отправляет письмо со ссылкой подтверждения
// @Tags auth
// @Accept json
// @Accept mpfd
// @Produce json
// @Param request body dto.RegisterRequest true "Данные регистрации"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} apperrors.ErrorResponse "Ошибка валидации"
// @Failure 409 {object} apperrors.ErrorResponse "Имя пользователя или email заняты"
// @Failure 429 {object} apperrors.ErrorResponse
// @Router /users [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(h.GetDB(c), h.Request(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Confirm godoc
// @Summary Подтверждение аккаунта
// @Tags auth
// @Produce json
// @Param token path string true "Токен подтверждения"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} apperrors.ErrorResponse "Токен или пользователь не найден"
// @Router /confirm-user/{token} [post]
func (h *AuthHandler) Confirm(c *gin.Context) {
	user, err := h.authService.Confirm(h.GetDB(c), h.Request(c), c.Param("token"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Login godoc
// @Summary Вход
// @Description Логин по имени пользователя или email, возвращает JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Учетные данные"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apperrors.ErrorResponse "Неверные учетные данные"
// @Failure 403 {object} apperrors.ErrorResponse "Аккаунт не подтвержден"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(h.GetDB(c), h.Request(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
