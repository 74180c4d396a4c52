package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SavedPostHandler struct {
	*BaseHandler
	savedPostService services.SavedPostService
}

func NewSavedPostHandler(base *BaseHandler, savedPostService services.SavedPostService) *SavedPostHandler {
	return &SavedPostHandler{
		BaseHandler:      base,
		savedPostService: savedPostService,
	}
}

func (h *SavedPostHandler) RegisterRoutes(r *gin.RouterGroup) {
	saved := r.Group("/my-saved-posts")
	saved.Use(middleware.AuthMiddleware())
	{
		saved.GET("", h.ListSavedPosts)
		saved.POST("", h.SavePost)
		saved.DELETE("/:id", h.UnsavePost)
	}
}

func (h *SavedPostHandler) ListSavedPosts(c *gin.Context) {
	page, ok := h.Page(c)
	if !ok {
		return
	}

	saved, err := h.savedPostService.ListMine(h.GetDB(c), h.Request(c), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// SavePost godoc
// @Summary Сохранить вакансию в закладки
// @Tags saved-posts
// @Accept json
// @Produce json
// @Param request body dto.SavePostRequest true "ID вакансии"
// @Success 201 {object} dto.SavedPostResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "Уже сохранена"
// @Security BearerAuth
// @Router /my-saved-posts [post]
func (h *SavedPostHandler) SavePost(c *gin.Context) {
	var req dto.SavePostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	saved, err := h.savedPostService.Create(h.GetDB(c), h.Request(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}

func (h *SavedPostHandler) UnsavePost(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.savedPostService.Delete(h.GetDB(c), h.Request(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
