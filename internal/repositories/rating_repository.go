package repositories

import (
	"database/sql"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// RatingRepository - оценки и комментарии компаний
type RatingRepository interface {
	// Rating operations
	CreateRating(db *gorm.DB, rating *models.Rating) error
	FindRating(db *gorm.DB, creatorID, companyID uint) (*models.Rating, error)
	UpdateRating(db *gorm.DB, rating *models.Rating) error
	// AverageRate возвращает 0, если оценок нет
	AverageRate(db *gorm.DB, companyID uint) (float64, error)
	// AverageRates - средние по нескольким компаниям одним запросом; компании без оценок в map отсутствуют
	AverageRates(db *gorm.DB, companyIDs []uint) (map[uint]float64, error)
	// RatesByCreator - оценки автора по компаниям
	RatesByCreator(db *gorm.DB, creatorID uint, companyIDs []uint) (map[uint]int, error)

	// Comment operations
	CreateComment(db *gorm.DB, comment *models.Comment) error
	ListComments(db *gorm.DB, companyID uint, page PageRequest) ([]models.Comment, int64, error)
}

type ratingRepository struct{}

func NewRatingRepository() RatingRepository {
	return &ratingRepository{}
}

// ---------------- Rating ----------------

func (r *ratingRepository) CreateRating(db *gorm.DB, rating *models.Rating) error {
	return translate(db.Omit("Creator", "Company").Create(rating).Error, ErrRatingNotFound)
}

func (r *ratingRepository) FindRating(db *gorm.DB, creatorID, companyID uint) (*models.Rating, error) {
	var rating models.Rating
	err := db.Where("creator_id = ? AND company_id = ?", creatorID, companyID).First(&rating).Error
	if err != nil {
		return nil, translate(err, ErrRatingNotFound)
	}
	return &rating, nil
}

func (r *ratingRepository) UpdateRating(db *gorm.DB, rating *models.Rating) error {
	return db.Model(rating).Update("rate", rating.Rate).Error
}

func (r *ratingRepository) AverageRate(db *gorm.DB, companyID uint) (float64, error) {
	var avg sql.NullFloat64
	err := db.Model(&models.Rating{}).
		Select("AVG(rate)").
		Where("company_id = ? AND active = ?", companyID, true).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if !avg.Valid {
		return 0, nil
	}
	return avg.Float64, nil
}

type companyAverage struct {
	CompanyID uint
	Average   float64
}

func (r *ratingRepository) AverageRates(db *gorm.DB, companyIDs []uint) (map[uint]float64, error) {
	result := make(map[uint]float64, len(companyIDs))
	if len(companyIDs) == 0 {
		return result, nil
	}

	var rows []companyAverage
	err := db.Model(&models.Rating{}).
		Select("company_id, AVG(rate) AS average").
		Where("company_id IN ? AND active = ?", companyIDs, true).
		Group("company_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.CompanyID] = row.Average
	}
	return result, nil
}

func (r *ratingRepository) RatesByCreator(db *gorm.DB, creatorID uint, companyIDs []uint) (map[uint]int, error) {
	result := make(map[uint]int, len(companyIDs))
	if len(companyIDs) == 0 {
		return result, nil
	}

	var ratings []models.Rating
	err := db.Where("creator_id = ? AND company_id IN ? AND active = ?", creatorID, companyIDs, true).
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	for _, rating := range ratings {
		result[rating.CompanyID] = rating.Rate
	}
	return result, nil
}

// ---------------- Comment ----------------

func (r *ratingRepository) CreateComment(db *gorm.DB, comment *models.Comment) error {
	return translate(db.Omit("Creator", "Company").Create(comment).Error, ErrCompanyNotFound)
}

func (r *ratingRepository) ListComments(db *gorm.DB, companyID uint, page PageRequest) ([]models.Comment, int64, error) {
	query := db.Model(&models.Comment{}).Scopes(ActiveOnly).Where("company_id = ?", companyID)
	return findPage[models.Comment](query, page, NewestFirst, func(tx *gorm.DB) *gorm.DB {
		return tx.Preload("Creator")
	})
}
