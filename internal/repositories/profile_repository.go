package repositories

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository - профиль соискателя, образование и опыт работы
type ProfileRepository interface {
	// UserProfile operations
	Create(db *gorm.DB, profile *models.UserProfile) error
	FindByID(db *gorm.DB, id uint) (*models.UserProfile, error)
	FindByUserID(db *gorm.DB, userID uint) (*models.UserProfile, error)
	// FindFullByUserID подгружает образование и опыт
	FindFullByUserID(db *gorm.DB, userID uint) (*models.UserProfile, error)
	Update(db *gorm.DB, profile *models.UserProfile) error
	Delete(db *gorm.DB, profile *models.UserProfile) error

	// Education operations
	CreateEducation(db *gorm.DB, education *models.Education) error
	FindEducationByID(db *gorm.DB, id uint) (*models.Education, error)
	UpdateEducation(db *gorm.DB, education *models.Education) error
	DeleteEducation(db *gorm.DB, id uint) error

	// Experience operations
	CreateExperience(db *gorm.DB, experience *models.Experience) error
	FindExperienceByID(db *gorm.DB, id uint) (*models.Experience, error)
	UpdateExperience(db *gorm.DB, experience *models.Experience) error
	DeleteExperience(db *gorm.DB, id uint) error
}

type profileRepository struct{}

func NewProfileRepository() ProfileRepository {
	return &profileRepository{}
}

// ---------------- UserProfile ----------------

func (r *profileRepository) Create(db *gorm.DB, profile *models.UserProfile) error {
	return translate(db.Omit("User").Create(profile).Error, ErrProfileNotFound)
}

func (r *profileRepository) FindByID(db *gorm.DB, id uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := db.Preload("Educations", NewestFirst).Preload("Experiences", NewestFirst).First(&profile, id).Error; err != nil {
		return nil, translate(err, ErrProfileNotFound)
	}
	return &profile, nil
}

func (r *profileRepository) FindByUserID(db *gorm.DB, userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, translate(err, ErrProfileNotFound)
	}
	return &profile, nil
}

func (r *profileRepository) FindFullByUserID(db *gorm.DB, userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := db.Preload("Educations", NewestFirst).
		Preload("Experiences", NewestFirst).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, translate(err, ErrProfileNotFound)
	}
	return &profile, nil
}

func (r *profileRepository) Update(db *gorm.DB, profile *models.UserProfile) error {
	err := db.Model(profile).Select("description", "nick_name").Updates(profile).Error
	return translate(err, ErrProfileNotFound)
}

func (r *profileRepository) Delete(db *gorm.DB, profile *models.UserProfile) error {
	return db.Select("Educations", "Experiences").Delete(profile).Error
}

// ---------------- Education ----------------

func (r *profileRepository) CreateEducation(db *gorm.DB, education *models.Education) error {
	return translate(db.Omit("Major").Create(education).Error, ErrEducationNotFound)
}

func (r *profileRepository) FindEducationByID(db *gorm.DB, id uint) (*models.Education, error) {
	var education models.Education
	if err := db.First(&education, id).Error; err != nil {
		return nil, translate(err, ErrEducationNotFound)
	}
	return &education, nil
}

func (r *profileRepository) UpdateEducation(db *gorm.DB, education *models.Education) error {
	return translate(db.Omit("Major").Save(education).Error, ErrEducationNotFound)
}

func (r *profileRepository) DeleteEducation(db *gorm.DB, id uint) error {
	return db.Delete(&models.Education{}, id).Error
}

// ---------------- Experience ----------------

func (r *profileRepository) CreateExperience(db *gorm.DB, experience *models.Experience) error {
	return translate(db.Create(experience).Error, ErrExperienceNotFound)
}

func (r *profileRepository) FindExperienceByID(db *gorm.DB, id uint) (*models.Experience, error) {
	var experience models.Experience
	if err := db.First(&experience, id).Error; err != nil {
		return nil, translate(err, ErrExperienceNotFound)
	}
	return &experience, nil
}

func (r *profileRepository) UpdateExperience(db *gorm.DB, experience *models.Experience) error {
	return translate(db.Save(experience).Error, ErrExperienceNotFound)
}

func (r *profileRepository) DeleteExperience(db *gorm.DB, id uint) error {
	return db.Delete(&models.Experience{}, id).Error
}
