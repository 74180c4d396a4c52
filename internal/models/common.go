package models

import (
	"time"
)

// BaseModel - общие поля всех сущностей, кроме UserRole и Token
type BaseModel struct {
	ID          uint      `gorm:"primaryKey"`
	CreatedDate time.Time `gorm:"autoCreateTime"`
	UpdatedDate time.Time `gorm:"autoUpdateTime"`
}

// Activatable - флаг мягкого удаления. Списки и поиск видят только active = true.
// Company объявляет свой флаг: по умолчанию компания не одобрена.
type Activatable struct {
	Active bool `gorm:"not null;default:true;index"`
}

// UserOwned - сущность с прямой ссылкой на пользователя-владельца
type UserOwned interface {
	OwnerUserID() uint
}

// ProfileOwned - сущность, принадлежащая профилю (Education, Experience)
type ProfileOwned interface {
	OwnerProfileID() uint
}

// CompanyOwned - сущность, принадлежащая компании (Post)
type CompanyOwned interface {
	CompanyOwnerID() uint
}
