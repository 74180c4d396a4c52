package dto

import (
	"mime/multipart"
	"time"
)

// UpdateUserRequest - PUT и PATCH, применяются только переданные поля
type UpdateUserRequest struct {
	Username  *string               `json:"username" form:"username" validate:"omitempty,min=3,max=150,alphanumunicode"`
	Email     *string               `json:"email" form:"email" validate:"omitempty,email,max=254"`
	FirstName *string               `json:"first_name" form:"first_name" validate:"omitempty,max=150"`
	LastName  *string               `json:"last_name" form:"last_name" validate:"omitempty,max=150"`
	Password  *string               `json:"password" form:"password" validate:"omitempty,min=8,max=128"`
	Avatar    *multipart.FileHeader `json:"-" form:"avatar"`
}

type UserRoleResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UserResponse struct {
	ID         uint              `json:"id"`
	Username   string            `json:"username"`
	Email      string            `json:"email"`
	FirstName  string            `json:"first_name"`
	LastName   string            `json:"last_name"`
	Avatar     string            `json:"avatar,omitempty"`
	UserRole   *UserRoleResponse `json:"user_role"`
	IsActive   bool              `json:"is_active"`
	DateJoined time.Time         `json:"date_joined"`
}
