package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplyHandler struct {
	*BaseHandler
	applyService services.ApplyService
}

func NewApplyHandler(base *BaseHandler, applyService services.ApplyService) *ApplyHandler {
	return &ApplyHandler{
		BaseHandler:  base,
		applyService: applyService,
	}
}

func (h *ApplyHandler) RegisterRoutes(r *gin.RouterGroup) {
	applies := r.Group("/applies")
	applies.Use(middleware.AuthMiddleware())
	{
		applies.GET("", h.ListMyApplies)
		applies.GET("/my-applies", h.ListMyApplies)
		applies.POST("", h.CreateApply)
		applies.GET("/:id", h.GetApply)
		applies.PUT("/:id", h.UpdateApply)
		applies.PATCH("/:id", h.UpdateApply)
		applies.DELETE("/:id", h.DeleteApply)
	}
}

// CreateApply godoc
// @Summary Отклик на вакансию
// @Description Multipart с необязательным файлом cv. Один отклик на вакансию.
// @Tags applies
// @Accept mpfd
// @Accept json
// @Produce json
// @Param post formData int true "ID вакансии"
// @Param description formData string false "Сопроводительный текст"
// @Param cv formData file false "Резюме"
// @Success 201 {object} dto.ApplyResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse "Вакансия не найдена"
// @Failure 409 {object} apperrors.ErrorResponse "Отклик уже существует"
// @Security BearerAuth
// @Router /applies [post]
func (h *ApplyHandler) CreateApply(c *gin.Context) {
	var req dto.CreateApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	apply, err := h.applyService.Create(h.GetDB(c), h.Request(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, apply)
}

// ListMyApplies godoc
// @Summary Мои отклики
// @Tags applies
// @Produce json
// @Param page query int false "Номер страницы"
// @Success 200 {object} dto.Page[dto.ApplyResponse]
// @Security BearerAuth
// @Router /applies [get]
func (h *ApplyHandler) ListMyApplies(c *gin.Context) {
	page, ok := h.Page(c)
	if !ok {
		return
	}

	applies, err := h.applyService.ListMine(h.GetDB(c), h.Request(c), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applies)
}

func (h *ApplyHandler) GetApply(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	apply, err := h.applyService.Get(h.GetDB(c), h.Request(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apply)
}

func (h *ApplyHandler) UpdateApply(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	apply, err := h.applyService.Update(h.GetDB(c), h.Request(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apply)
}

func (h *ApplyHandler) DeleteApply(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.applyService.Delete(h.GetDB(c), h.Request(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
