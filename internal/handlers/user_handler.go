package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService    services.UserService
	profileService services.ProfileService
	companyService services.CompanyService
}

func NewUserHandler(
	base *BaseHandler,
	userService services.UserService,
	profileService services.ProfileService,
	companyService services.CompanyService,
) *UserHandler {
	return &UserHandler{
		BaseHandler:    base,
		userService:    userService,
		profileService: profileService,
		companyService: companyService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		// Public routes
		users.GET("/:id", h.GetUser)
		users.GET("/:id/company-profile", h.GetUserCompany)

		// Protected routes
		protected := users.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("", h.ListUsers)
			protected.GET("/current-user", h.CurrentUser)
			protected.GET("/my-profile", h.MyProfile)
			protected.PUT("/:id", h.UpdateUser)
			protected.PATCH("/:id", h.UpdateUser)
		}
	}
}

// ListUsers godoc
// @Summary Список пользователей
// @Tags users
// @Produce json
// @Param page query int false "Номер страницы"
// @Success 200 {object} dto.Page[dto.UserResponse]
// @Failure 403 {object} apperrors.ErrorResponse "Только администратор"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, ok := h.Page(c)
	if !ok {
		return
	}

	users, err := h.userService.List(h.GetDB(c), h.Request(c), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Пользователь по ID
// @Tags users
// @Produce json
// @Param id path int true "ID пользователя"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(h.GetDB(c), h.Request(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) CurrentUser(c *gin.Context) {
	user, err := h.userService.Current(h.GetDB(c), h.Request(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// MyProfile - профиль вызывающего вместе с образованием и опытом
func (h *UserHandler) MyProfile(c *gin.Context) {
	profile, err := h.profileService.MyProfile(h.GetDB(c), h.Request(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetUserCompany godoc
// @Summary Компания пользователя
// @Tags users
// @Produce json
// @Param id path int true "ID пользователя"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /users/{id}/company-profile [get]
func (h *UserHandler) GetUserCompany(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	company, err := h.companyService.GetByUser(h.GetDB(c), h.Request(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// UpdateUser godoc
// @Summary Обновление пользователя
// @Description Частичное обновление, аватар передается multipart-полем avatar
// @Tags users
// @Accept json
// @Accept mpfd
// @Produce json
// @Param id path int true "ID пользователя"
// @Param request body dto.UpdateUserRequest true "Изменяемые поля"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse "Чужой аккаунт"
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "Имя пользователя или email заняты"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.Update(h.GetDB(c), h.Request(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
