package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	companyService services.CompanyService
}

func NewAdminHandler(base *BaseHandler, companyService services.CompanyService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/companies/pending-count", h.PendingCompanies)
		admin.PUT("/companies/:id/approve", h.ApproveCompany)
	}
}

// PendingCompanies godoc
// @Summary Количество компаний, ожидающих одобрения
// @Tags admin
// @Produce json
// @Success 200 {object} dto.PendingCompaniesResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /admin/companies/pending-count [get]
func (h *AdminHandler) PendingCompanies(c *gin.Context) {
	resp, err := h.companyService.PendingCount(h.GetDB(c), h.Request(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ApproveCompany godoc
// @Summary Одобрение или скрытие компании
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "ID компании"
// @Param request body dto.ApproveCompanyRequest true "Флаг активности"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /admin/companies/{id}/approve [put]
func (h *AdminHandler) ApproveCompany(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.ApproveCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.companyService.Approve(h.GetDB(c), h.Request(c), id, *req.Active)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}
