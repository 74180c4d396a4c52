package repositories

import (
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// TokenRepository - токены подтверждения email
type TokenRepository interface {
	Create(db *gorm.DB, token *models.Token) error
	FindByValue(db *gorm.DB, value string) (*models.Token, error)
	// Delete удаляет использованный токен
	Delete(db *gorm.DB, token *models.Token) error
	// DeleteCreatedBefore удаляет токены старше cutoff и возвращает их количество
	DeleteCreatedBefore(db *gorm.DB, cutoff time.Time) (int64, error)
}

type tokenRepository struct{}

func NewTokenRepository() TokenRepository {
	return &tokenRepository{}
}

func (r *tokenRepository) Create(db *gorm.DB, token *models.Token) error {
	return translate(db.Create(token).Error, ErrTokenNotFound)
}

func (r *tokenRepository) FindByValue(db *gorm.DB, value string) (*models.Token, error) {
	var token models.Token
	if err := db.Where("token = ?", value).First(&token).Error; err != nil {
		return nil, translate(err, ErrTokenNotFound)
	}
	return &token, nil
}

func (r *tokenRepository) Delete(db *gorm.DB, token *models.Token) error {
	return db.Delete(&models.Token{}, token.ID).Error
}

func (r *tokenRepository) DeleteCreatedBefore(db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.Where("created_at < ?", cutoff).Delete(&models.Token{})
	return result.RowsAffected, result.Error
}
