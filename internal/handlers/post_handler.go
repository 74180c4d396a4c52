package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	*BaseHandler
	postService services.PostService
}

func NewPostHandler(base *BaseHandler, postService services.PostService) *PostHandler {
	return &PostHandler{
		BaseHandler: base,
		postService: postService,
	}
}

func (h *PostHandler) RegisterRoutes(r *gin.RouterGroup) {
	posts := r.Group("/posts")
	{
		// Public routes
		posts.GET("", h.SearchPosts)
		posts.GET("/:id", h.GetPost)

		// Hirer routes (роль проверяется политикой в сервисе)
		protected := posts.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("", h.CreatePost)
			protected.GET("/my-posts", h.MyPosts)
			protected.PUT("/:id", h.UpdatePost)
			protected.PATCH("/:id", h.UpdatePost)
			protected.DELETE("/:id", h.DeletePost)
			protected.GET("/:id/applies", h.ListPostApplies)
		}
	}
}

// SearchPosts godoc
// @Summary Поиск вакансий
// @Description Все фильтры необязательны и объединяются через AND
// @Tags posts
// @Produce json
// @Param keyword query string false "Подстрока заголовка"
// @Param major_id query int false "ID специальности"
// @Param location query string false "Подстрока локации"
// @Param from_salary query number false "Зарплата от (строго больше)"
// @Param to_salary query number false "Зарплата до (строго меньше)"
// @Param old query string false "Сначала старые"
// @Param page query int false "Номер страницы"
// @Success 200 {object} dto.Page[dto.PostResponse]
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /posts [get]
func (h *PostHandler) SearchPosts(c *gin.Context) {
	var query dto.SearchPostsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	page, ok := h.Page(c)
	if !ok {
		return
	}

	filter := repositories.PostFilter{
		Keyword:    query.Keyword,
		MajorID:    query.MajorID,
		Location:   query.Location,
		FromSalary: query.FromSalary,
		ToSalary:   query.ToSalary,
		Old:        ParseQueryFlag(c, "old"),
	}

	posts, err := h.postService.Search(h.GetDB(c), h.Request(c), filter, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary Вакансия по ID
// @Tags posts
// @Produce json
// @Param id path int true "ID вакансии"
// @Success 200 {object} dto.PostResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	post, err := h.postService.Get(h.GetDB(c), h.Request(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost godoc
// @Summary Создание вакансии
// @Description Доступно работодателю с компанией
// @Tags posts
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Вакансия"
// @Success 201 {object} dto.PostResponse
// @Failure 400 {object} apperrors.ErrorResponse "Ошибка валидации или нет компании"
// @Failure 403 {object} apperrors.ErrorResponse "Не работодатель"
// @Security BearerAuth
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	post, err := h.postService.Create(h.GetDB(c), h.Request(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	post, err := h.postService.Update(h.GetDB(c), h.Request(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost - мягкое удаление
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.postService.Delete(h.GetDB(c), h.Request(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PostHandler) MyPosts(c *gin.Context) {
	page, ok := h.Page(c)
	if !ok {
		return
	}

	posts, err := h.postService.MyPosts(h.GetDB(c), h.Request(c), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// ListPostApplies godoc
// @Summary Отклики на вакансию
// @Description Только для работодателя, владеющего вакансией
// @Tags posts
// @Produce json
// @Param id path int true "ID вакансии"
// @Param kw query string false "Подстрока сопроводительного текста"
// @Param page query int false "Номер страницы"
// @Success 200 {object} dto.Page[dto.ApplyResponse]
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /posts/{id}/applies [get]
func (h *PostHandler) ListPostApplies(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var query dto.ListAppliesQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	page, ok := h.Page(c)
	if !ok {
		return
	}

	applies, err := h.postService.Applies(h.GetDB(c), h.Request(c), id, query.Keyword, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applies)
}
