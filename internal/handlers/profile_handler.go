package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	profile := r.Group("/user-profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("/:id", h.GetProfile)
		profile.POST("", h.UpsertProfile)
		profile.PUT("", h.UpsertProfile)
		profile.DELETE("", h.DeleteProfile)
	}

	education := r.Group("/education-profile")
	education.Use(middleware.AuthMiddleware())
	{
		education.GET("/:id", h.GetEducation)
		education.POST("", h.CreateEducation)
		education.PUT("/:id", h.UpdateEducation)
		education.PATCH("/:id", h.UpdateEducation)
		education.DELETE("/:id", h.DeleteEducation)
	}

	experience := r.Group("/experience-profile")
	experience.Use(middleware.AuthMiddleware())
	{
		experience.GET("/:id", h.GetExperience)
		experience.POST("", h.CreateExperience)
		experience.PUT("/:id", h.UpdateExperience)
		experience.PATCH("/:id", h.UpdateExperience)
		experience.DELETE("/:id", h.DeleteExperience)
	}
}

// --- Profile ---

// GetProfile godoc
// @Summary Профиль соискателя
// @Tags profiles
// @Produce json
// @Param id path int true "ID профиля"
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /user-profile/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	profile, err := h.profileService.Get(h.GetDB(c), h.Request(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpsertProfile godoc
// @Summary Создание или обновление своего профиля
// @Description Профиль создается при первом обращении, повторный вызов обновляет его
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body dto.ProfileRequest true "Поля профиля"
// @Success 200 {object} dto.ProfileResponse
// @Security BearerAuth
// @Router /user-profile [post]
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	var req dto.ProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.Upsert(h.GetDB(c), h.Request(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	if err := h.profileService.Delete(h.GetDB(c), h.Request(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Education ---

func (h *ProfileHandler) GetEducation(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	education, err := h.profileService.GetEducation(h.GetDB(c), h.Request(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, education)
}

// CreateEducation godoc
// @Summary Добавить запись об образовании
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body dto.EducationRequest true "Образование"
// @Success 201 {object} dto.EducationResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /education-profile [post]
func (h *ProfileHandler) CreateEducation(c *gin.Context) {
	var req dto.EducationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	education, err := h.profileService.CreateEducation(h.GetDB(c), h.Request(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, education)
}

func (h *ProfileHandler) UpdateEducation(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateEducationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	education, err := h.profileService.UpdateEducation(h.GetDB(c), h.Request(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, education)
}

func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.profileService.DeleteEducation(h.GetDB(c), h.Request(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Experience ---

func (h *ProfileHandler) GetExperience(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	experience, err := h.profileService.GetExperience(h.GetDB(c), h.Request(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, experience)
}

func (h *ProfileHandler) CreateExperience(c *gin.Context) {
	var req dto.ExperienceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	experience, err := h.profileService.CreateExperience(h.GetDB(c), h.Request(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, experience)
}

func (h *ProfileHandler) UpdateExperience(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateExperienceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	experience, err := h.profileService.UpdateExperience(h.GetDB(c), h.Request(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, experience)
}

func (h *ProfileHandler) DeleteExperience(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.profileService.DeleteExperience(h.GetDB(c), h.Request(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
