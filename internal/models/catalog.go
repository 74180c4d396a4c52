package models

type Category struct {
	BaseModel
	Activatable
	Name string `gorm:"size:255;uniqueIndex;not null"`

	Majors []Major `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

type Major struct {
	BaseModel
	Activatable
	Name       string `gorm:"size:255;uniqueIndex;not null"`
	CategoryID *uint  `gorm:"index"`
}
