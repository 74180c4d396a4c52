package repositories

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	Create(db *gorm.DB, company *models.Company) error
	FindByID(db *gorm.DB, id uint) (*models.Company, error)
	// FindActiveByID - только одобренные компании
	FindActiveByID(db *gorm.DB, id uint) (*models.Company, error)
	FindByUserID(db *gorm.DB, userID uint) (*models.Company, error)
	Update(db *gorm.DB, company *models.Company) error
	SetActive(db *gorm.DB, id uint, active bool) error
	Search(db *gorm.DB, keyword string, page PageRequest) ([]models.Company, int64, error)
	// CountInactive считается при каждом запросе
	CountInactive(db *gorm.DB) (int64, error)
}

type companyRepository struct{}

func NewCompanyRepository() CompanyRepository {
	return &companyRepository{}
}

func (r *companyRepository) Create(db *gorm.DB, company *models.Company) error {
	return translate(db.Omit("User").Create(company).Error, ErrCompanyNotFound)
}

func (r *companyRepository) FindByID(db *gorm.DB, id uint) (*models.Company, error) {
	var company models.Company
	if err := db.First(&company, id).Error; err != nil {
		return nil, translate(err, ErrCompanyNotFound)
	}
	return &company, nil
}

func (r *companyRepository) FindActiveByID(db *gorm.DB, id uint) (*models.Company, error) {
	var company models.Company
	if err := db.Scopes(ActiveOnly).First(&company, id).Error; err != nil {
		return nil, translate(err, ErrCompanyNotFound)
	}
	return &company, nil
}

func (r *companyRepository) FindByUserID(db *gorm.DB, userID uint) (*models.Company, error) {
	var company models.Company
	if err := db.Where("user_id = ?", userID).First(&company).Error; err != nil {
		return nil, translate(err, ErrCompanyNotFound)
	}
	return &company, nil
}

// companyEditable - колонки, которые владелец может менять. active сюда не входит.
var companyEditable = []string{"company_name", "description", "web_url", "phone", "email", "avatar"}

func (r *companyRepository) Update(db *gorm.DB, company *models.Company) error {
	err := db.Model(company).Select(companyEditable).Updates(company).Error
	return translate(err, ErrCompanyNotFound)
}

// SetActive - одобрение администратором. Существование проверяет вызывающий.
func (r *companyRepository) SetActive(db *gorm.DB, id uint, active bool) error {
	return db.Model(&models.Company{}).Where("id = ?", id).Update("active", active).Error
}

func (r *companyRepository) Search(db *gorm.DB, keyword string, page PageRequest) ([]models.Company, int64, error) {
	query := db.Model(&models.Company{}).Scopes(ActiveOnly, ContainsFold("company_name", keyword))
	return findPage[models.Company](query, page, NewestFirst)
}

func (r *companyRepository) CountInactive(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Company{}).Where("active = ?", false).Count(&count).Error
	return count, err
}
