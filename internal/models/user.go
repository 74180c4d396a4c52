package models

import "time"

// Идентификаторы ролей, которые сидятся при миграции
const (
	RoleAdminID     uint = 1
	RoleJobSeekerID uint = 2
	RoleHirerID     uint = 3
)

type UserRole struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;uniqueIndex;not null"`
	Description string `gorm:"type:text"`
}

type User struct {
	BaseModel
	Activatable
	Username   string    `gorm:"size:150;uniqueIndex;not null"`
	Email      string    `gorm:"size:254;uniqueIndex;not null"`
	FirstName  string    `gorm:"size:150"`
	LastName   string    `gorm:"size:150"`
	Password   string    `gorm:"size:128;not null"` // bcrypt hash
	Avatar     string    `gorm:"size:255"`          // относительный путь в хранилище
	UserRoleID *uint     `gorm:"index"`
	IsActive   bool      `gorm:"not null;default:false"` // true после подтверждения email
	IsStaff    bool      `gorm:"not null;default:false"`
	DateJoined time.Time `gorm:"autoCreateTime"`

	// Relations
	UserRole *UserRole `gorm:"foreignKey:UserRoleID;constraint:OnDelete:SET NULL"`
}

func (u *User) OwnerUserID() uint { return u.ID }

// Token - одноразовый токен подтверждения email
type Token struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Token     string    `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
