package repositories

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(db *gorm.DB, post *models.Post) error
	// FindByID загружает Company: она нужна для проверки владельца
	FindByID(db *gorm.DB, id uint) (*models.Post, error)
	FindActiveByID(db *gorm.DB, id uint) (*models.Post, error)
	Update(db *gorm.DB, post *models.Post) error
	Delete(db *gorm.DB, id uint) error
	Search(db *gorm.DB, filter PostFilter, page PageRequest) ([]models.Post, int64, error)
	ListByCompany(db *gorm.DB, companyID uint, page PageRequest) ([]models.Post, int64, error)
}

type postRepository struct{}

func NewPostRepository() PostRepository {
	return &postRepository{}
}

func withCompany(db *gorm.DB) *gorm.DB {
	return db.Preload("Company").Preload("Major")
}

func (r *postRepository) Create(db *gorm.DB, post *models.Post) error {
	return translate(db.Omit("Company", "Major").Create(post).Error, ErrPostNotFound)
}

func (r *postRepository) FindByID(db *gorm.DB, id uint) (*models.Post, error) {
	var post models.Post
	if err := db.Scopes(withCompany).First(&post, id).Error; err != nil {
		return nil, translate(err, ErrPostNotFound)
	}
	return &post, nil
}

func (r *postRepository) FindActiveByID(db *gorm.DB, id uint) (*models.Post, error) {
	var post models.Post
	if err := db.Scopes(ActiveOnly, withCompany).First(&post, id).Error; err != nil {
		return nil, translate(err, ErrPostNotFound)
	}
	return &post, nil
}

func (r *postRepository) Update(db *gorm.DB, post *models.Post) error {
	return translate(db.Omit("Company", "Major").Save(post).Error, ErrPostNotFound)
}

func (r *postRepository) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&models.Post{}, id).Error
}

func (r *postRepository) Search(db *gorm.DB, filter PostFilter, page PageRequest) ([]models.Post, int64, error) {
	query := db.Model(&models.Post{}).Scopes(filter.Scopes()...)
	return findPage[models.Post](query, page, filter.Order(), withCompany)
}

func (r *postRepository) ListByCompany(db *gorm.DB, companyID uint, page PageRequest) ([]models.Post, int64, error) {
	query := db.Model(&models.Post{}).Scopes(ActiveOnly).Where("company_id = ?", companyID)
	return findPage[models.Post](query, page, NewestFirst, withCompany)
}
