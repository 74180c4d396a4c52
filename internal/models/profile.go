package models

import "gorm.io/datatypes"

type UserProfile struct {
	BaseModel
	Activatable
	UserID      uint   `gorm:"not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	NickName    string `gorm:"size:255"`

	// Relations
	User        User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Educations  []Education  `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Experiences []Experience `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

func (p *UserProfile) OwnerUserID() uint { return p.UserID }

type Education struct {
	BaseModel
	Activatable
	ProfileID      uint            `gorm:"not null;index"`
	DegreeName     string          `gorm:"size:255"`
	UniversityName string          `gorm:"size:255"`
	MajorID        *uint           `gorm:"index"`
	StartDate      *datatypes.Date
	CompletionDate *datatypes.Date
	CPA            float64

	Major *Major `gorm:"foreignKey:MajorID;constraint:OnDelete:SET NULL"`
}

func (e *Education) OwnerProfileID() uint { return e.ProfileID }

type Experience struct {
	BaseModel
	Activatable
	ProfileID   uint   `gorm:"not null;index"`
	Title       string `gorm:"size:255"`
	CompanyName string `gorm:"size:255"`
	Description string `gorm:"type:text"`
	StartDate   *datatypes.Date
	EndDate     *datatypes.Date
}

func (e *Experience) OwnerProfileID() uint { return e.ProfileID }
