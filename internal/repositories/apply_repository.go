package repositories

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type ApplyRepository interface {
	Create(db *gorm.DB, apply *models.Apply) error
	// FindByID загружает Post и его Company для вложенного ответа
	FindByID(db *gorm.DB, id uint) (*models.Apply, error)
	Update(db *gorm.DB, apply *models.Apply) error
	Delete(db *gorm.DB, id uint) error
	ListByUser(db *gorm.DB, userID uint, page PageRequest) ([]models.Apply, int64, error)
	// ListByPost - отклики на вакансию, keyword ищется в description
	ListByPost(db *gorm.DB, postID uint, keyword string, page PageRequest) ([]models.Apply, int64, error)
}

type applyRepository struct{}

func NewApplyRepository() ApplyRepository {
	return &applyRepository{}
}

func withPost(db *gorm.DB) *gorm.DB {
	return db.Preload("User.UserRole").Preload("Post.Company").Preload("Post.Major")
}

func (r *applyRepository) Create(db *gorm.DB, apply *models.Apply) error {
	return translate(db.Omit("User", "Post").Create(apply).Error, ErrApplyNotFound)
}

func (r *applyRepository) FindByID(db *gorm.DB, id uint) (*models.Apply, error) {
	var apply models.Apply
	if err := db.Scopes(withPost).First(&apply, id).Error; err != nil {
		return nil, translate(err, ErrApplyNotFound)
	}
	return &apply, nil
}

func (r *applyRepository) Update(db *gorm.DB, apply *models.Apply) error {
	err := db.Model(apply).Select("description", "cv").Updates(apply).Error
	return translate(err, ErrApplyNotFound)
}

func (r *applyRepository) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&models.Apply{}, id).Error
}

func (r *applyRepository) ListByUser(db *gorm.DB, userID uint, page PageRequest) ([]models.Apply, int64, error) {
	query := db.Model(&models.Apply{}).Scopes(ActiveOnly).Where("user_id = ?", userID)
	return findPage[models.Apply](query, page, NewestFirst, withPost)
}

func (r *applyRepository) ListByPost(db *gorm.DB, postID uint, keyword string, page PageRequest) ([]models.Apply, int64, error) {
	query := db.Model(&models.Apply{}).
		Scopes(ActiveOnly, ContainsFold("description", keyword)).
		Where("post_id = ?", postID)
	return findPage[models.Apply](query, page, NewestFirst, withPost)
}
