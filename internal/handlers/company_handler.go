package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

func (h *CompanyHandler) RegisterRoutes(r *gin.RouterGroup) {
	company := r.Group("/company")
	{
		// Public routes (необязательная аутентификация дает my_rating)
		company.GET("", h.SearchCompanies)
		company.GET("/:id", h.GetCompany)
		company.GET("/:id/comments", h.ListComments)
		company.GET("/:id/company-posts", h.ListCompanyPosts)

		// Protected routes
		protected := company.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("", h.UpsertCompany)
			protected.PUT("", h.UpsertCompany)
			protected.POST("/:id/rating", h.RateCompany)
			protected.POST("/:id/create-comment", h.CreateComment)
		}
	}
}

// SearchCompanies godoc
// @Summary Поиск компаний
// @Tags companies
// @Produce json
// @Param keyword query string false "Подстрока названия"
// @Param page query int false "Номер страницы"
// @Success 200 {object} dto.Page[dto.CompanyResponse]
// @Router /company [get]
func (h *CompanyHandler) SearchCompanies(c *gin.Context) {
	var query dto.SearchCompaniesQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	page, ok := h.Page(c)
	if !ok {
		return
	}

	companies, err := h.companyService.Search(h.GetDB(c), h.Request(c), query.Keyword, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, companies)
}

// GetCompany godoc
// @Summary Компания по ID
// @Tags companies
// @Produce json
// @Param id path int true "ID компании"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} apperrors.ErrorResponse "Компания не найдена или не одобрена"
// @Router /company/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	company, err := h.companyService.Get(h.GetDB(c), h.Request(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// UpsertCompany godoc
// @Summary Создание или обновление своей компании
// @Description Компания создается неактивной и становится видна после одобрения администратором
// @Tags companies
// @Accept json
// @Accept mpfd
// @Produce json
// @Param request body dto.CompanyRequest true "Данные компании"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 413 {object} apperrors.ErrorResponse "Файл слишком большой"
// @Security BearerAuth
// @Router /company [post]
func (h *CompanyHandler) UpsertCompany(c *gin.Context) {
	var req dto.CompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.companyService.Upsert(h.GetDB(c), h.Request(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// RateCompany godoc
// @Summary Оценка компании
// @Description Одна оценка на пользователя, повторный вызов заменяет ее
// @Tags companies
// @Accept json
// @Produce json
// @Param id path int true "ID компании"
// @Param request body dto.RatingRequest true "Оценка 1..5"
// @Success 200 {object} dto.CompanyResponse
// @Failure 403 {object} apperrors.ErrorResponse "Работодатели не оценивают компании"
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /company/{id}/rating [post]
func (h *CompanyHandler) RateCompany(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.RatingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.companyService.Rate(h.GetDB(c), h.Request(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) CreateComment(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	comment, err := h.companyService.Comment(h.GetDB(c), h.Request(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *CompanyHandler) ListComments(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	page, ok := h.Page(c)
	if !ok {
		return
	}

	comments, err := h.companyService.Comments(h.GetDB(c), h.Request(c), id, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (h *CompanyHandler) ListCompanyPosts(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	page, ok := h.Page(c)
	if !ok {
		return
	}

	posts, err := h.companyService.Posts(h.GetDB(c), h.Request(c), id, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}
