package dto

import (
	"mime/multipart"
	"time"
)

// --- Company Requests ---

// CompanyRequest - upsert компании, JSON или multipart (с avatar)
type CompanyRequest struct {
	CompanyName string                `json:"company_name" form:"company_name" validate:"required,max=255"`
	Description string                `json:"description" form:"description" validate:"omitempty,max=10000"`
	WebURL      string                `json:"web_url" form:"web_url" validate:"omitempty,url,max=255"`
	Phone       string                `json:"phone" form:"phone" validate:"omitempty,max=50"`
	Email       string                `json:"email" form:"email" validate:"omitempty,email,max=254"`
	Avatar      *multipart.FileHeader `json:"-" form:"avatar"`
}

type SearchCompaniesQuery struct {
	Keyword string `form:"keyword" validate:"omitempty,max=255"`
}

type RatingRequest struct {
	Rate int `json:"rate" validate:"min=1,max=5"`
}

type CommentRequest struct {
	Content string `json:"content" validate:"required,not_blank,max=5000"`
}

type ApproveCompanyRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// --- Company Responses ---

type CompanyResponse struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	CompanyName   string    `json:"company_name"`
	Description   string    `json:"description"`
	WebURL        string    `json:"web_url"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Avatar        string    `json:"avatar,omitempty"`
	Active        bool      `json:"active"`
	AverageRating float64   `json:"average_rating"`
	MyRating      *int      `json:"my_rating,omitempty"`
	CreatedDate   time.Time `json:"created_date"`
	UpdatedDate   time.Time `json:"updated_date"`
}

type CommentResponse struct {
	ID              uint      `json:"id"`
	CompanyID       uint      `json:"company_id"`
	CreatorID       uint      `json:"creator_id"`
	CreatorUsername string    `json:"creator_username"`
	Content         string    `json:"content"`
	CreatedDate     time.Time `json:"created_date"`
}

type PendingCompaniesResponse struct {
	Count int64 `json:"count"`
}
