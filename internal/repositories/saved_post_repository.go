package repositories

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type SavedPostRepository interface {
	Create(db *gorm.DB, saved *models.SavedPost) error
	FindByID(db *gorm.DB, id uint) (*models.SavedPost, error)
	Delete(db *gorm.DB, id uint) error
	ListByUser(db *gorm.DB, userID uint, page PageRequest) ([]models.SavedPost, int64, error)
}

type savedPostRepository struct{}

func NewSavedPostRepository() SavedPostRepository {
	return &savedPostRepository{}
}

func (r *savedPostRepository) Create(db *gorm.DB, saved *models.SavedPost) error {
	return translate(db.Omit("User", "Post").Create(saved).Error, ErrSavedPostNotFound)
}

func (r *savedPostRepository) FindByID(db *gorm.DB, id uint) (*models.SavedPost, error) {
	var saved models.SavedPost
	if err := db.Scopes(withPost).First(&saved, id).Error; err != nil {
		return nil, translate(err, ErrSavedPostNotFound)
	}
	return &saved, nil
}

func (r *savedPostRepository) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&models.SavedPost{}, id).Error
}

func (r *savedPostRepository) ListByUser(db *gorm.DB, userID uint, page PageRequest) ([]models.SavedPost, int64, error) {
	query := db.Model(&models.SavedPost{}).Scopes(ActiveOnly).Where("user_id = ?", userID)
	return findPage[models.SavedPost](query, page, NewestFirst, withPost)
}
