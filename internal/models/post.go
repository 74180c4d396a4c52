package models

import "gorm.io/datatypes"

type Post struct {
	BaseModel
	Activatable
	CompanyID   uint    `gorm:"not null;index"`
	MajorID     *uint   `gorm:"index"`
	Title       string  `gorm:"size:255;not null"`
	Location    string  `gorm:"size:255"`
	FromSalary  float64 `gorm:"not null;default:0"`
	ToSalary    float64 `gorm:"not null;default:0"`
	Gender      string  `gorm:"size:20"`
	Quantity    int     `gorm:"not null;default:1"`
	Type        string  `gorm:"size:50"`
	TimeWork    string  `gorm:"size:50"`
	Due         *datatypes.Date
	Description string `gorm:"type:text"`

	// Relations
	Company Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Major   *Major  `gorm:"foreignKey:MajorID;constraint:OnDelete:SET NULL"`
}

// CompanyOwnerID требует загруженной Company
func (p *Post) CompanyOwnerID() uint { return p.Company.UserID }

// Apply - отклик на вакансию, один на пару (пользователь, вакансия)
type Apply struct {
	BaseModel
	Activatable
	UserID      uint   `gorm:"not null;uniqueIndex:idx_apply_user_post"`
	PostID      uint   `gorm:"not null;uniqueIndex:idx_apply_user_post;index"`
	Description string `gorm:"type:text"`
	CV          string `gorm:"column:cv;size:255"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (a *Apply) OwnerUserID() uint { return a.UserID }

// SavedPost - закладка, одна на пару (пользователь, вакансия)
type SavedPost struct {
	BaseModel
	Activatable
	UserID uint `gorm:"not null;uniqueIndex:idx_saved_post_user_post"`
	PostID uint `gorm:"not null;uniqueIndex:idx_saved_post_user_post;index"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (s *SavedPost) OwnerUserID() uint { return s.UserID }
