package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(base *BaseHandler, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/categories", h.ListCategories)
	r.GET("/majors", h.ListMajors)
}

// ListCategories godoc
// @Summary Категории специальностей
// @Tags catalog
// @Produce json
// @Param page query int false "Номер страницы"
// @Success 200 {object} dto.Page[dto.CategoryResponse]
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	page, ok := h.Page(c)
	if !ok {
		return
	}

	categories, err := h.catalogService.Categories(h.GetDB(c), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// ListMajors godoc
// @Summary Специальности
// @Tags catalog
// @Produce json
// @Param page query int false "Номер страницы"
// @Success 200 {object} dto.Page[dto.MajorResponse]
// @Router /majors [get]
func (h *CatalogHandler) ListMajors(c *gin.Context) {
	page, ok := h.Page(c)
	if !ok {
		return
	}

	majors, err := h.catalogService.Majors(h.GetDB(c), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, majors)
}
