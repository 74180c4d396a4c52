package services

import (
	"errors"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// SavedPostService - закладки вакансий
type SavedPostService interface {
	Create(db *gorm.DB, r Request, req *dto.SavePostRequest) (*dto.SavedPostResponse, error)
	Delete(db *gorm.DB, r Request, id uint) error
	ListMine(db *gorm.DB, r Request, page repositories.PageRequest) (*dto.Page[dto.SavedPostResponse], error)
}

type savedPostService struct {
	savedRepo repositories.SavedPostRepository
	postRepo  repositories.PostRepository
	policy    *auth.Policy
	projector *Projector
}

func NewSavedPostService(
	savedRepo repositories.SavedPostRepository,
	postRepo repositories.PostRepository,
	policy *auth.Policy,
	projector *Projector,
) SavedPostService {
	return &savedPostService{
		savedRepo: savedRepo,
		postRepo:  postRepo,
		policy:    policy,
		projector: projector,
	}
}

func (s *savedPostService) Create(db *gorm.DB, r Request, req *dto.SavePostRequest) (*dto.SavedPostResponse, error) {
	if err := s.policy.Authorize(r.Caller, auth.ResourceSavedPost, auth.ActionCreate, nil); err != nil {
		return nil, err
	}

	post, err := s.postRepo.FindActiveByID(db, req.PostID)
	if err != nil {
		return nil, handleRepoError(err)
	}

	saved := &models.SavedPost{UserID: r.UserID(), PostID: post.ID}
	if err := s.savedRepo.Create(db, saved); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrAlreadySaved
		}
		return nil, handleRepoError(err)
	}

	created, err := s.savedRepo.FindByID(db, saved.ID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	items, err := s.projector.SavedPosts(db, r, []models.SavedPost{*created})
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return &items[0], nil
}

func (s *savedPostService) Delete(db *gorm.DB, r Request, id uint) error {
	saved, err := s.savedRepo.FindByID(db, id)
	if err != nil {
		return handleRepoError(err)
	}
	if err := s.policy.Authorize(r.Caller, auth.ResourceSavedPost, auth.ActionDestroy, saved); err != nil {
		return err
	}
	return handleRepoError(s.savedRepo.Delete(db, saved.ID))
}

func (s *savedPostService) ListMine(db *gorm.DB, r Request, page repositories.PageRequest) (*dto.Page[dto.SavedPostResponse], error) {
	if err := s.policy.Authorize(r.Caller, auth.ResourceSavedPost, auth.ActionList, nil); err != nil {
		return nil, err
	}

	saved, total, err := s.savedRepo.ListByUser(db, r.UserID(), page)
	if err != nil {
		return nil, handleRepoError(err)
	}
	items, err := s.projector.SavedPosts(db, r, saved)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	result := dto.NewPage(items, total, page.Page, page.Size)
	return &result, nil
}
