package services

import (
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService      AuthService
	UserService      UserService
	ProfileService   ProfileService
	CatalogService   CatalogService
	CompanyService   CompanyService
	PostService      PostService
	ApplyService     ApplyService
	SavedPostService SavedPostService
	UploadService    UploadService
	EmailService     email.Provider
	Tokens           *auth.TokenManager
}
