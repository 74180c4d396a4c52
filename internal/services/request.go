package services

import (
	"context"
	"errors"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
)

// Request - данные текущего HTTP-запроса, нужные сервисам:
// вызывающий (nil для анонима), context для логов и origin для абсолютных ссылок на файлы.
type Request struct {
	Ctx    context.Context
	Caller *auth.Caller
	Origin string
}

func (r Request) Context() context.Context {
	if r.Ctx == nil {
		return context.Background()
	}
	return r.Ctx
}

// UserID - 0 для анонимного запроса
func (r Request) UserID() uint {
	if r.Caller == nil {
		return 0
	}
	return r.Caller.UserID
}

func (r Request) Authenticated() bool {
	return auth.IsAuthenticated(r.Caller)
}

// notFoundErrors - соответствие sentinel-ошибок репозиториев и ответов 404
var notFoundErrors = []struct {
	sentinel error
	appErr   *apperrors.AppError
}{
	{repositories.ErrUserNotFound, apperrors.ErrUserNotFound},
	{repositories.ErrTokenNotFound, apperrors.ErrConfirmationTokenNotFound},
	{repositories.ErrProfileNotFound, apperrors.ErrProfileNotFound},
	{repositories.ErrEducationNotFound, apperrors.ErrEducationNotFound},
	{repositories.ErrExperienceNotFound, apperrors.ErrExperienceNotFound},
	{repositories.ErrCompanyNotFound, apperrors.ErrCompanyNotFound},
	{repositories.ErrPostNotFound, apperrors.ErrPostNotFound},
	{repositories.ErrApplyNotFound, apperrors.ErrApplyNotFound},
	{repositories.ErrSavedPostNotFound, apperrors.ErrSavedPostNotFound},
}

// handleRepoError переводит ошибку репозитория в AppError.
// Конфликты уникальности с доменным смыслом обрабатываются в вызывающем коде до этой функции.
func handleRepoError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	for _, m := range notFoundErrors {
		if errors.Is(err, m.sentinel) {
			return m.appErr
		}
	}
	if errors.Is(err, repositories.ErrDuplicate) {
		return apperrors.ErrAlreadyExists(err)
	}
	return apperrors.PersistenceError(err)
}
