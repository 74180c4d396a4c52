package dto

type MajorResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	CategoryID *uint  `json:"category_id"`
}

type CategoryResponse struct {
	ID     uint            `json:"id"`
	Name   string          `json:"name"`
	Majors []MajorResponse `json:"majors"`
}
