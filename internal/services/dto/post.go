package dto

import "time"

// --- Post Requests ---

type CreatePostRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Location    string   `json:"location" validate:"omitempty,max=255"`
	FromSalary  *float64 `json:"from_salary" validate:"omitempty,min=0"`
	ToSalary    *float64 `json:"to_salary" validate:"omitempty,min=0,salary_gte=FromSalary"`
	Gender      string   `json:"gender" validate:"omitempty,max=25"`
	Quantity    *int     `json:"quantity" validate:"omitempty,min=1"`
	Type        string   `json:"type" validate:"required,max=50"`
	TimeWork    string   `json:"time_work" validate:"required,max=50"`
	Due         string   `json:"due" validate:"omitempty,datetime=2006-01-02"`
	Description string   `json:"description" validate:"omitempty,max=20000"`
	MajorID     *uint    `json:"major_id"`
}

// UpdatePostRequest - PUT и PATCH, применяются только переданные поля
type UpdatePostRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Location    *string  `json:"location" validate:"omitempty,max=255"`
	FromSalary  *float64 `json:"from_salary" validate:"omitempty,min=0"`
	ToSalary    *float64 `json:"to_salary" validate:"omitempty,min=0,salary_gte=FromSalary"`
	Gender      *string  `json:"gender" validate:"omitempty,max=25"`
	Quantity    *int     `json:"quantity" validate:"omitempty,min=1"`
	Type        *string  `json:"type" validate:"omitempty,max=50"`
	TimeWork    *string  `json:"time_work" validate:"omitempty,max=50"`
	Due         *string  `json:"due" validate:"omitempty,datetime=2006-01-02"`
	Description *string  `json:"description" validate:"omitempty,max=20000"`
	MajorID     *uint    `json:"major_id"`
}

// SearchPostsQuery - все фильтры необязательны
type SearchPostsQuery struct {
	Keyword    string   `form:"keyword" validate:"omitempty,max=255"`
	MajorID    *uint    `form:"major_id"`
	Location   string   `form:"location" validate:"omitempty,max=255"`
	FromSalary *float64 `form:"from_salary"`
	ToSalary   *float64 `form:"to_salary"`
	Old        string   `form:"old"`
}

// --- Post Responses ---

type PostResponse struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Location    string          `json:"location"`
	FromSalary  float64         `json:"from_salary"`
	ToSalary    float64         `json:"to_salary"`
	Gender      string          `json:"gender"`
	Quantity    int             `json:"quantity"`
	Type        string          `json:"type"`
	TimeWork    string          `json:"time_work"`
	Due         *string         `json:"due"`
	Description string          `json:"description"`
	MajorID     *uint           `json:"major_id"`
	MajorName   string          `json:"major_name,omitempty"`
	Company     CompanyResponse `json:"company"`
	CreatedDate time.Time       `json:"created_date"`
	UpdatedDate time.Time       `json:"updated_date"`
}
