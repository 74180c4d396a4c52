package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrDuplicate - нарушение ограничения уникальности. Оборачивает исходную ошибку драйвера.
	ErrDuplicate = errors.New("unique constraint violation")

	ErrUserNotFound       = errors.New("user not found")
	ErrTokenNotFound      = errors.New("confirmation token not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrEducationNotFound  = errors.New("education not found")
	ErrExperienceNotFound = errors.New("experience not found")
	ErrCompanyNotFound    = errors.New("company not found")
	ErrRatingNotFound     = errors.New("rating not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrApplyNotFound      = errors.New("apply not found")
	ErrSavedPostNotFound  = errors.New("saved post not found")
)

const (
	pgUniqueViolation     = "23505"
	mysqlDuplicateEntry   = 1062
	sqliteUniqueFailedMsg = "UNIQUE constraint failed"
)

// IsUniqueViolation распознает нарушение уникальности для всех поддерживаемых диалектов.
// gorm.ErrDuplicatedKey приходит при включенном TranslateError, остальное - запасные проверки.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, ErrDuplicate) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}

	return strings.Contains(err.Error(), sqliteUniqueFailedMsg)
}

// translate приводит ошибку gorm к ошибкам репозитория
func translate(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case IsUniqueViolation(err):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}
