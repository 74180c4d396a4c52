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

type UserService interface {
	// List - только для администратора
	List(db *gorm.DB, r Request, page repositories.PageRequest) (*dto.Page[dto.UserResponse], error)
	// Get возвращает только подтвержденных пользователей
	Get(db *gorm.DB, r Request, id uint) (*dto.UserResponse, error)
	Current(db *gorm.DB, r Request) (*dto.UserResponse, error)
	Update(db *gorm.DB, r Request, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
}

type userService struct {
	userRepo  repositories.UserRepository
	uploads   UploadService
	policy    *auth.Policy
	projector *Projector
}

func NewUserService(
	userRepo repositories.UserRepository,
	uploads UploadService,
	policy *auth.Policy,
	projector *Projector,
) UserService {
	return &userService{
		userRepo:  userRepo,
		uploads:   uploads,
		policy:    policy,
		projector: projector,
	}
}

func (s *userService) List(db *gorm.DB, r Request, page repositories.PageRequest) (*dto.Page[dto.UserResponse], error) {
	if err := s.policy.Authorize(r.Caller, auth.ResourceUser, auth.ActionList, nil); err != nil {
		return nil, err
	}

	users, total, err := s.userRepo.List(db, page)
	if err != nil {
		return nil, handleRepoError(err)
	}
	result := dto.NewPage(s.projector.Users(r, users), total, page.Page, page.Size)
	return &result, nil
}

func (s *userService) Get(db *gorm.DB, r Request, id uint) (*dto.UserResponse, error) {
	user, err := s.findVisible(db, id)
	if err != nil {
		return nil, err
	}
	resp := s.projector.User(r, user)
	return &resp, nil
}

func (s *userService) Current(db *gorm.DB, r Request) (*dto.UserResponse, error) {
	if !r.Authenticated() {
		return nil, apperrors.ErrAuthenticationRequired
	}
	user, err := s.userRepo.FindByID(db, r.UserID())
	if err != nil {
		return nil, handleRepoError(err)
	}
	resp := s.projector.User(r, user)
	return &resp, nil
}

func (s *userService) Update(db *gorm.DB, r Request, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.findVisible(db, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(r.Caller, auth.ResourceUser, auth.ActionUpdate, user); err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = strings.TrimSpace(*req.Username)
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Password != nil {
		if err := auth.ValidatePassword(*req.Password); err != nil {
			return nil, apperrors.ValidationError(map[string]string{"password": err.Error()})
		}
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.Password = hashed
	}

	ctx := r.Context()
	oldAvatar := user.Avatar
	if req.Avatar != nil {
		path, err := s.uploads.Store(ctx, UploadUserAvatar, req.Avatar)
		if err != nil {
			return nil, err
		}
		user.Avatar = path
	}

	if err := s.userRepo.Update(db, user); err != nil {
		if user.Avatar != oldAvatar {
			s.uploads.Remove(ctx, user.Avatar)
		}
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, handleRepoError(err)
	}
	if user.Avatar != oldAvatar {
		s.uploads.Remove(ctx, oldAvatar)
	}

	logger.CtxInfo(ctx, "user updated", "target_user_id", user.ID)
	resp := s.projector.User(r, user)
	return &resp, nil
}

// findVisible - неподтвержденные и деактивированные аккаунты отдаются как 404
func (s *userService) findVisible(db *gorm.DB, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if !user.IsActive || !user.Active {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}
