package services

import (
	"errors"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplyService interface {
	// Create - один отклик на пару (пользователь, вакансия), повтор дает 409
	Create(db *gorm.DB, r Request, req *dto.CreateApplyRequest) (*dto.ApplyResponse, error)
	Get(db *gorm.DB, r Request, id uint) (*dto.ApplyResponse, error)
	Update(db *gorm.DB, r Request, id uint, req *dto.UpdateApplyRequest) (*dto.ApplyResponse, error)
	Delete(db *gorm.DB, r Request, id uint) error
	// ListMine - только отклики вызывающего
	ListMine(db *gorm.DB, r Request, page repositories.PageRequest) (*dto.Page[dto.ApplyResponse], error)
}

type applyService struct {
	applyRepo repositories.ApplyRepository
	postRepo  repositories.PostRepository
	uploads   UploadService
	policy    *auth.Policy
	projector *Projector
}

func NewApplyService(
	applyRepo repositories.ApplyRepository,
	postRepo repositories.PostRepository,
	uploads UploadService,
	policy *auth.Policy,
	projector *Projector,
) ApplyService {
	return &applyService{
		applyRepo: applyRepo,
		postRepo:  postRepo,
		uploads:   uploads,
		policy:    policy,
		projector: projector,
	}
}

func (s *applyService) Create(db *gorm.DB, r Request, req *dto.CreateApplyRequest) (*dto.ApplyResponse, error) {
	if err := s.policy.Authorize(r.Caller, auth.ResourceApply, auth.ActionCreate, nil); err != nil {
		return nil, err
	}

	post, err := s.postRepo.FindActiveByID(db, req.PostID)
	if err != nil {
		return nil, handleRepoError(err)
	}

	ctx := r.Context()
	apply := &models.Apply{
		UserID:      r.UserID(),
		PostID:      post.ID,
		Description: req.Description,
	}
	if req.CV != nil {
		if apply.CV, err = s.uploads.Store(ctx, UploadCV, req.CV); err != nil {
			return nil, err
		}
	}

	if err := s.applyRepo.Create(db, apply); err != nil {
		// Сохраненный файл не должен пережить неудачную вставку
		s.uploads.Remove(ctx, apply.CV)
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, handleRepoError(err)
	}
	logger.CtxInfo(ctx, "apply created", "apply_id", apply.ID, "post_id", post.ID)

	return s.load(db, r, apply.ID)
}

func (s *applyService) Get(db *gorm.DB, r Request, id uint) (*dto.ApplyResponse, error) {
	apply, err := s.find(db, r, id, auth.ActionRetrieve)
	if err != nil {
		return nil, err
	}
	return s.project(db, r, apply)
}

func (s *applyService) Update(db *gorm.DB, r Request, id uint, req *dto.UpdateApplyRequest) (*dto.ApplyResponse, error) {
	apply, err := s.find(db, r, id, auth.ActionUpdate)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		apply.Description = *req.Description
	}

	ctx := r.Context()
	oldCV := apply.CV
	if req.CV != nil {
		if apply.CV, err = s.uploads.Store(ctx, UploadCV, req.CV); err != nil {
			return nil, err
		}
	}

	if err := s.applyRepo.Update(db, apply); err != nil {
		if apply.CV != oldCV {
			s.uploads.Remove(ctx, apply.CV)
		}
		return nil, handleRepoError(err)
	}
	if apply.CV != oldCV {
		s.uploads.Remove(ctx, oldCV)
	}

	return s.load(db, r, apply.ID)
}

func (s *applyService) Delete(db *gorm.DB, r Request, id uint) error {
	apply, err := s.find(db, r, id, auth.ActionDestroy)
	if err != nil {
		return err
	}
	if err := s.applyRepo.Delete(db, apply.ID); err != nil {
		return handleRepoError(err)
	}
	s.uploads.Remove(r.Context(), apply.CV)
	logger.CtxInfo(r.Context(), "apply deleted", "apply_id", apply.ID)
	return nil
}

func (s *applyService) ListMine(db *gorm.DB, r Request, page repositories.PageRequest) (*dto.Page[dto.ApplyResponse], error) {
	if err := s.policy.Authorize(r.Caller, auth.ResourceApply, auth.ActionList, nil); err != nil {
		return nil, err
	}

	applies, total, err := s.applyRepo.ListByUser(db, r.UserID(), page)
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

// find - сначала 404, затем проверка владельца
func (s *applyService) find(db *gorm.DB, r Request, id uint, act auth.Action) (*models.Apply, error) {
	apply, err := s.applyRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if err := s.policy.Authorize(r.Caller, auth.ResourceApply, act, apply); err != nil {
		return nil, err
	}
	return apply, nil
}

func (s *applyService) load(db *gorm.DB, r Request, id uint) (*dto.ApplyResponse, error) {
	apply, err := s.applyRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	return s.project(db, r, apply)
}

func (s *applyService) project(db *gorm.DB, r Request, apply *models.Apply) (*dto.ApplyResponse, error) {
	resp, err := s.projector.Apply(db, r, apply)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return resp, nil
}
