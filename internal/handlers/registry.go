package handlers

import (
	"jobboard_backend/internal/services"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	UserHandler      *UserHandler
	ProfileHandler   *ProfileHandler
	CatalogHandler   *CatalogHandler
	CompanyHandler   *CompanyHandler
	PostHandler      *PostHandler
	ApplyHandler     *ApplyHandler
	SavedPostHandler *SavedPostHandler
	AdminHandler     *AdminHandler
	HealthHandler    *HealthHandler
}

func NewAppHandlers(base *BaseHandler, sc *services.ServiceContainer) *AppHandlers {
	return &AppHandlers{
		AuthHandler:      NewAuthHandler(base, sc.AuthService),
		UserHandler:      NewUserHandler(base, sc.UserService, sc.ProfileService, sc.CompanyService),
		ProfileHandler:   NewProfileHandler(base, sc.ProfileService),
		CatalogHandler:   NewCatalogHandler(base, sc.CatalogService),
		CompanyHandler:   NewCompanyHandler(base, sc.CompanyService),
		PostHandler:      NewPostHandler(base, sc.PostService),
		ApplyHandler:     NewApplyHandler(base, sc.ApplyService),
		SavedPostHandler: NewSavedPostHandler(base, sc.SavedPostService),
		AdminHandler:     NewAdminHandler(base, sc.CompanyService),
		HealthHandler:    NewHealthHandler(base),
	}
}
