package services

import (
	"errors"
	"strings"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	// Register создает неподтвержденный аккаунт и отправляет письмо подтверждения
	Register(db *gorm.DB, r Request, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	// Confirm активирует аккаунт по одноразовому токену
	Confirm(db *gorm.DB, r Request, token string) (*dto.UserResponse, error)
	Login(db *gorm.DB, r Request, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	userRepo        repositories.UserRepository
	tokenRepo       repositories.TokenRepository
	mailer          email.Provider
	tokens          *auth.TokenManager
	projector       *Projector
	confirmationTTL time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.TokenRepository,
	mailer email.Provider,
	tokens *auth.TokenManager,
	projector *Projector,
	confirmationTTL time.Duration,
) AuthService {
	return &authService{
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		mailer:          mailer,
		tokens:          tokens,
		projector:       projector,
		confirmationTTL: confirmationTTL,
	}
}

// Register - пользователь и токен создаются в одной транзакции, письмо уходит после коммита.
// Ошибка отправки не откатывает регистрацию: confirmation_sent=false.
func (s *authService) Register(db *gorm.DB, r Request, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(map[string]string{"password": err.Error()})
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	roleID := models.RoleJobSeekerID
	user := &models.User{
		Username:   strings.TrimSpace(req.Username),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Password:   hashed,
		UserRoleID: &roleID,
	}

	var token string
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}
		token = auth.GenerateConfirmationToken(user.ID)
		return s.tokenRepo.Create(tx, &models.Token{UserID: user.ID, Token: token})
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, handleRepoError(err)
	}

	ctx := r.Context()
	logger.CtxInfo(ctx, "user registered", "new_user_id", user.ID, "username", user.Username)

	sent := false
	if s.mailer != nil {
		if err := s.mailer.SendConfirmation(user.Email, user.Username, token); err != nil {
			logger.CtxWithError(ctx, "failed to send confirmation email", err, "new_user_id", user.ID)
		} else {
			sent = true
		}
	}

	created, err := s.userRepo.FindByID(db, user.ID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	return &dto.RegisterResponse{
		UserResponse:     s.projector.User(r, created),
		ConfirmationSent: sent,
	}, nil
}

func (s *authService) Confirm(db *gorm.DB, r Request, value string) (*dto.UserResponse, error) {
	token, err := s.tokenRepo.FindByValue(db, value)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if !auth.VerifyConfirmationToken(token.Token, token.UserID) {
		return nil, apperrors.ErrConfirmationTokenNotFound
	}
	if s.confirmationTTL > 0 && time.Since(token.CreatedAt) > s.confirmationTTL {
		return nil, apperrors.ErrConfirmationTokenExpired
	}

	user, err := s.userRepo.FindByID(db, token.UserID)
	if err != nil {
		return nil, handleRepoError(err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Activate(tx, user.ID); err != nil {
			return err
		}
		return s.tokenRepo.Delete(tx, token)
	})
	if err != nil {
		return nil, handleRepoError(err)
	}
	user.IsActive = true

	logger.CtxInfo(r.Context(), "user confirmed", "confirmed_user_id", user.ID)
	resp := s.projector.User(r, user)
	return &resp, nil
}

func (s *authService) Login(db *gorm.DB, r Request, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByLogin(db, req.Login)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, handleRepoError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) || !user.Active {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountNotConfirmed
	}

	accessToken, expiresAt, err := s.tokens.Generate(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(r.Context(), "user logged in", "login_user_id", user.ID)
	return &dto.LoginResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        s.projector.User(r, user),
	}, nil
}
