package services

import (
	"errors"
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PostService interface {
	Create(db *gorm.DB, r Request, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	Get(db *gorm.DB, r Request, id uint) (*dto.PostResponse, error)
	Update(db *gorm.DB, r Request, id uint, req *dto.UpdatePostRequest) (*dto.PostResponse, error)
	Delete(db *gorm.DB, r Request, id uint) error
	Search(db *gorm.DB, r Request, filter repositories.PostFilter, page repositories.PageRequest) (*dto.Page[dto.PostResponse], error)
	// MyPosts - вакансии компании вызывающего работодателя
	MyPosts(db *gorm.DB, r Request, page repositories.PageRequest) (*dto.Page[dto.PostResponse], error)
	// Applies - отклики на вакансию, только для владельца
	Applies(db *gorm.DB, r Request, id uint, keyword string, page repositories.PageRequest) (*dto.Page[dto.ApplyResponse], error)
}

type postService struct {
	postRepo    repositories.PostRepository
	companyRepo repositories.CompanyRepository
	applyRepo   repositories.ApplyRepository
	catalogRepo repositories.CatalogRepository
	policy      *auth.Policy
	projector   *Projector
}

func NewPostService(
	postRepo repositories.PostRepository,
	companyRepo repositories.CompanyRepository,
	applyRepo repositories.ApplyRepository,
	catalogRepo repositories.CatalogRepository,
	policy *auth.Policy,
	projector *Projector,
) PostService {
	return &postService{
		postRepo:    postRepo,
		companyRepo: companyRepo,
		applyRepo:   applyRepo,
		catalogRepo: catalogRepo,
		policy:      policy,
		projector:   projector,
	}
}

// Create - компания не создается автоматически: работодатель без компании получает 400
func (s *postService) Create(db *gorm.DB, r Request, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	if err := s.policy.Authorize(r.Caller, auth.ResourcePost, auth.ActionCreate, nil); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindByUserID(db, r.UserID())
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyRequired
		}
		return nil, handleRepoError(err)
	}
	if err := ensureMajor(db, s.catalogRepo, req.MajorID); err != nil {
		return nil, err
	}
	due, err := parseDateField("due", req.Due)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		CompanyID:   company.ID,
		MajorID:     req.MajorID,
		Title:       strings.TrimSpace(req.Title),
		Location:    req.Location,
		Gender:      req.Gender,
		Quantity:    1,
		Type:        req.Type,
		TimeWork:    req.TimeWork,
		Due:         due,
		Description: req.Description,
	}
	if req.FromSalary != nil {
		post.FromSalary = *req.FromSalary
	}
	if req.ToSalary != nil {
		post.ToSalary = *req.ToSalary
	}
	if req.Quantity != nil {
		post.Quantity = *req.Quantity
	}

	if err := s.postRepo.Create(db, post); err != nil {
		return nil, handleRepoError(err)
	}
	logger.CtxInfo(r.Context(), "post created", "post_id", post.ID, "company_id", company.ID)

	created, err := s.postRepo.FindByID(db, post.ID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	return s.project(db, r, created)
}

func (s *postService) Get(db *gorm.DB, r Request, id uint) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindActiveByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	return s.project(db, r, post)
}

func (s *postService) Update(db *gorm.DB, r Request, id uint, req *dto.UpdatePostRequest) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindActiveByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if err := s.policy.Authorize(r.Caller, auth.ResourcePost, auth.ActionUpdate, post); err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = strings.TrimSpace(*req.Title)
	}
	if req.Location != nil {
		post.Location = *req.Location
	}
	if req.FromSalary != nil {
		post.FromSalary = *req.FromSalary
	}
	if req.ToSalary != nil {
		post.ToSalary = *req.ToSalary
	}
	if req.Gender != nil {
		post.Gender = *req.Gender
	}
	if req.Quantity != nil {
		post.Quantity = *req.Quantity
	}
	if req.Type != nil {
		post.Type = *req.Type
	}
	if req.TimeWork != nil {
		post.TimeWork = *req.TimeWork
	}
	if req.Due != nil {
		if post.Due, err = parseDateField("due", *req.Due); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.MajorID != nil {
		if err := ensureMajor(db, s.catalogRepo, req.MajorID); err != nil {
			return nil, err
		}
		post.MajorID = req.MajorID
		post.Major = nil
	}

	// Частичное обновление может задать только одну границу
	if post.ToSalary > 0 && post.ToSalary < post.FromSalary {
		return nil, apperrors.ValidationError(map[string]string{
			"to_salary": "Must be greater than or equal to from_salary",
		})
	}

	if err := s.postRepo.Update(db, post); err != nil {
		return nil, handleRepoError(err)
	}
	logger.CtxInfo(r.Context(), "post updated", "post_id", post.ID)

	updated, err := s.postRepo.FindByID(db, post.ID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	return s.project(db, r, updated)
}

func (s *postService) Delete(db *gorm.DB, r Request, id uint) error {
	post, err := s.postRepo.FindActiveByID(db, id)
	if err != nil {
		return handleRepoError(err)
	}
	if err := s.policy.Authorize(r.Caller, auth.ResourcePost, auth.ActionDestroy, post); err != nil {
		return err
	}
	if err := s.postRepo.Delete(db, post.ID); err != nil {
		return handleRepoError(err)
	}
	logger.CtxInfo(r.Context(), "post deleted", "post_id", post.ID)
	return nil
}

func (s *postService) Search(db *gorm.DB, r Request, filter repositories.PostFilter, page repositories.PageRequest) (*dto.Page[dto.PostResponse], error) {
	posts, total, err := s.postRepo.Search(db, filter, page)
	if err != nil {
		return nil, handleRepoError(err)
	}
	return s.page(db, r, posts, total, page)
}

func (s *postService) MyPosts(db *gorm.DB, r Request, page repositories.PageRequest) (*dto.Page[dto.PostResponse], error) {
	if err := s.policy.Authorize(r.Caller, auth.ResourcePost, auth.ActionCreate, nil); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindByUserID(db, r.UserID())
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			result := dto.NewPage([]dto.PostResponse{}, 0, page.Page, page.Size)
			return &result, nil
		}
		return nil, handleRepoError(err)
	}

	posts, total, err := s.postRepo.ListByCompany(db, company.ID, page)
	if err != nil {
		return nil, handleRepoError(err)
	}
	return s.page(db, r, posts, total, page)
}

func (s *postService) Applies(db *gorm.DB, r Request, id uint, keyword string, page repositories.PageRequest) (*dto.Page[dto.ApplyResponse], error) {
	post, err := s.postRepo.FindActiveByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if err := s.policy.Authorize(r.Caller, auth.ResourcePost, auth.ActionListApplies, post); err != nil {
		return nil, err
	}

	applies, total, err := s.applyRepo.ListByPost(db, post.ID, keyword, page)
	if err != nil {
		return nil, handleRepoError(err)
	}
	items, err := s.projector.Applies(db, r, applies)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	result := dto.NewPage(items, total, page.Page, page.Size)
	return &result, nil
}

func (s *postService) project(db *gorm.DB, r Request, post *models.Post) (*dto.PostResponse, error) {
	resp, err := s.projector.Post(db, r, post)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return resp, nil
}

func (s *postService) page(db *gorm.DB, r Request, posts []models.Post, total int64, page repositories.PageRequest) (*dto.Page[dto.PostResponse], error) {
	items, err := s.projector.Posts(db, r, posts)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	result := dto.NewPage(items, total, page.Page, page.Size)
	return &result, nil
}
