package repositories

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// CatalogRepository - категории и специальности (справочники)
type CatalogRepository interface {
	ListCategories(db *gorm.DB, page PageRequest) ([]models.Category, int64, error)
	ListMajors(db *gorm.DB, page PageRequest) ([]models.Major, int64, error)
	MajorExists(db *gorm.DB, id uint) (bool, error)
}

type catalogRepository struct{}

func NewCatalogRepository() CatalogRepository {
	return &catalogRepository{}
}

func (r *catalogRepository) ListCategories(db *gorm.DB, page PageRequest) ([]models.Category, int64, error) {
	query := db.Model(&models.Category{}).Scopes(ActiveOnly)
	return findPage[models.Category](query, page, func(tx *gorm.DB) *gorm.DB {
		return tx.Preload("Majors", func(m *gorm.DB) *gorm.DB {
			return m.Scopes(ActiveOnly).Order("name ASC")
		}).Order("name ASC").Order("id ASC")
	})
}

func (r *catalogRepository) ListMajors(db *gorm.DB, page PageRequest) ([]models.Major, int64, error) {
	query := db.Model(&models.Major{}).Scopes(ActiveOnly)
	return findPage[models.Major](query, page, func(tx *gorm.DB) *gorm.DB {
		return tx.Order("name ASC").Order("id ASC")
	})
}

func (r *catalogRepository) MajorExists(db *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := db.Model(&models.Major{}).Where("id = ? AND active = ?", id, true).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
