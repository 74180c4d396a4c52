package repositories

import (
	"strings"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id uint) (*models.User, error)
	// FindByLogin ищет по username или email (без учета регистра для email)
	FindByLogin(db *gorm.DB, login string) (*models.User, error)
	Update(db *gorm.DB, user *models.User) error
	Activate(db *gorm.DB, userID uint) error
	List(db *gorm.DB, page PageRequest) ([]models.User, int64, error)
}

type userRepository struct{}

var userEditable = []string{"username", "email", "first_name", "last_name", "password", "avatar"}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *models.User) error {
	return translate(db.Create(user).Error, ErrUserNotFound)
}

func (r *userRepository) FindByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.Preload("UserRole").First(&user, id).Error; err != nil {
		return nil, translate(err, ErrUserNotFound)
	}
	return &user, nil
}

func (r *userRepository) FindByLogin(db *gorm.DB, login string) (*models.User, error) {
	var user models.User
	login = strings.TrimSpace(login)
	err := db.Preload("UserRole").
		Where("username = ? OR LOWER(email) = ?", login, strings.ToLower(login)).
		First(&user).Error
	if err != nil {
		return nil, translate(err, ErrUserNotFound)
	}
	return &user, nil
}

func (r *userRepository) Update(db *gorm.DB, user *models.User) error {
	err := db.Model(user).Select(userEditable).Updates(user).Error
	return translate(err, ErrUserNotFound)
}

// Activate - существование пользователя проверяет вызывающий
func (r *userRepository) Activate(db *gorm.DB, userID uint) error {
	return db.Model(&models.User{}).Where("id = ?", userID).Update("is_active", true).Error
}

func (r *userRepository) List(db *gorm.DB, page PageRequest) ([]models.User, int64, error) {
	query := db.Model(&models.User{}).Scopes(ActiveOnly)
	return findPage[models.User](query, page, func(tx *gorm.DB) *gorm.DB {
		return tx.Preload("UserRole").Order("id ASC")
	})
}
