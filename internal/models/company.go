package models

type Company struct {
	BaseModel
	// Компания видна в списках только после одобрения администратором
	Active      bool   `gorm:"not null;default:false;index"`
	UserID      uint   `gorm:"not null;uniqueIndex"`
	CompanyName string `gorm:"size:255;index"`
	Description string `gorm:"type:text"`
	WebURL      string `gorm:"size:255"`
	Phone       string `gorm:"size:50"`
	Email       string `gorm:"size:254"`
	Avatar      string `gorm:"size:255"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (c *Company) OwnerUserID() uint { return c.UserID }

// Rating - одна оценка на пару (автор, компания)
type Rating struct {
	BaseModel
	Activatable
	CreatorID uint `gorm:"not null;uniqueIndex:idx_rating_creator_company"`
	CompanyID uint `gorm:"not null;uniqueIndex:idx_rating_creator_company;index"`
	Rate      int  `gorm:"not null;default:0"`

	Creator User    `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE"`
	Company Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

func (r *Rating) OwnerUserID() uint { return r.CreatorID }

type Comment struct {
	BaseModel
	Activatable
	CreatorID uint   `gorm:"not null;index"`
	CompanyID uint   `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`

	Creator User    `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE"`
	Company Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

func (c *Comment) OwnerUserID() uint { return c.CreatorID }
