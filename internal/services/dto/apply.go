package dto

import (
	"mime/multipart"
	"time"
)

// --- Apply Requests ---

// CreateApplyRequest - multipart (с cv) или JSON
type CreateApplyRequest struct {
	PostID      uint                  `json:"post" form:"post" validate:"required"`
	Description string                `json:"description" form:"description" validate:"omitempty,max=10000"`
	CV          *multipart.FileHeader `json:"-" form:"cv"`
}

type UpdateApplyRequest struct {
	Description *string               `json:"description" form:"description" validate:"omitempty,max=10000"`
	CV          *multipart.FileHeader `json:"-" form:"cv"`
}

type ListAppliesQuery struct {
	Keyword string `form:"kw" validate:"omitempty,max=255"`
}

type SavePostRequest struct {
	PostID uint `json:"post" validate:"required"`
}

// --- Apply Responses ---

type ApplyResponse struct {
	ID          uint          `json:"id"`
	UserID      uint          `json:"user_id"`
	Applicant   *UserResponse `json:"applicant,omitempty"`
	Description string        `json:"description"`
	CV          string        `json:"cv,omitempty"`
	Post        PostResponse  `json:"post"`
	CreatedDate time.Time     `json:"created_date"`
	UpdatedDate time.Time     `json:"updated_date"`
}

type SavedPostResponse struct {
	ID          uint         `json:"id"`
	UserID      uint         `json:"user_id"`
	Post        PostResponse `json:"post"`
	CreatedDate time.Time    `json:"created_date"`
}
