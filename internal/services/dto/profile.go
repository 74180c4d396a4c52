package dto

import "time"

// --- Profile Requests ---

// ProfileRequest - POST и PUT /user-profile; отсутствующее поле сохраняет текущее значение
type ProfileRequest struct {
	Description *string `json:"description" validate:"omitempty,max=5000"`
	NickName    *string `json:"nick_name" validate:"omitempty,max=255"`
}

type EducationRequest struct {
	DegreeName     string   `json:"degree_name" validate:"required,max=255"`
	UniversityName string   `json:"university_name" validate:"required,max=255"`
	MajorID        *uint    `json:"major_id"`
	StartDate      string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	CompletionDate string   `json:"completion_date" validate:"omitempty,datetime=2006-01-02"`
	CPA            *float64 `json:"cpa" validate:"omitempty,min=0,max=10"`
}

type UpdateEducationRequest struct {
	DegreeName     *string  `json:"degree_name" validate:"omitempty,max=255"`
	UniversityName *string  `json:"university_name" validate:"omitempty,max=255"`
	MajorID        *uint    `json:"major_id"`
	StartDate      *string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	CompletionDate *string  `json:"completion_date" validate:"omitempty,datetime=2006-01-02"`
	CPA            *float64 `json:"cpa" validate:"omitempty,min=0,max=10"`
}

type ExperienceRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	CompanyName string `json:"company_name" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	StartDate   string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateExperienceRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	CompanyName *string `json:"company_name" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	StartDate   *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// --- Profile Responses ---

type EducationResponse struct {
	ID             uint      `json:"id"`
	ProfileID      uint      `json:"profile_id"`
	DegreeName     string    `json:"degree_name"`
	UniversityName string    `json:"university_name"`
	MajorID        *uint     `json:"major_id"`
	StartDate      *string   `json:"start_date"`
	CompletionDate *string   `json:"completion_date"`
	CPA            float64   `json:"cpa"`
	CreatedDate    time.Time `json:"created_date"`
	UpdatedDate    time.Time `json:"updated_date"`
}

type ExperienceResponse struct {
	ID          uint      `json:"id"`
	ProfileID   uint      `json:"profile_id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"company_name"`
	Description string    `json:"description"`
	StartDate   *string   `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	CreatedDate time.Time `json:"created_date"`
	UpdatedDate time.Time `json:"updated_date"`
}

type ProfileResponse struct {
	ID          uint                 `json:"id"`
	UserID      uint                 `json:"user_id"`
	Description string               `json:"description"`
	NickName    string               `json:"nick_name"`
	Educations  []EducationResponse  `json:"educations"`
	Experiences []ExperienceResponse `json:"experiences"`
	CreatedDate time.Time            `json:"created_date"`
	UpdatedDate time.Time            `json:"updated_date"`
}
