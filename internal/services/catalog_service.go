package services

import (
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/internal/services/dto"

	"gorm.io/gorm"
)

// CatalogService - справочники категорий и специальностей, только чтение
type CatalogService interface {
	Categories(db *gorm.DB, page repositories.PageRequest) (*dto.Page[dto.CategoryResponse], error)
	Majors(db *gorm.DB, page repositories.PageRequest) (*dto.Page[dto.MajorResponse], error)
}

type catalogService struct {
	catalogRepo repositories.CatalogRepository
	projector   *Projector
}

func NewCatalogService(catalogRepo repositories.CatalogRepository, projector *Projector) CatalogService {
	return &catalogService{catalogRepo: catalogRepo, projector: projector}
}

func (s *catalogService) Categories(db *gorm.DB, page repositories.PageRequest) (*dto.Page[dto.CategoryResponse], error) {
	categories, total, err := s.catalogRepo.ListCategories(db, page)
	if err != nil {
		return nil, handleRepoError(err)
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, s.projector.Category(&categories[i]))
	}
	result := dto.NewPage(items, total, page.Page, page.Size)
	return &result, nil
}

func (s *catalogService) Majors(db *gorm.DB, page repositories.PageRequest) (*dto.Page[dto.MajorResponse], error) {
	majors, total, err := s.catalogRepo.ListMajors(db, page)
	if err != nil {
		return nil, handleRepoError(err)
	}
	items := make([]dto.MajorResponse, 0, len(majors))
	for i := range majors {
		items = append(items, s.projector.Major(&majors[i]))
	}
	result := dto.NewPage(items, total, page.Page, page.Size)
	return &result, nil
}

// ensureMajor: неизвестная специальность - ошибка валидации, а не нарушение внешнего ключа
func ensureMajor(db *gorm.DB, catalogRepo repositories.CatalogRepository, majorID *uint) error {
	if majorID == nil {
		return nil
	}
	exists, err := catalogRepo.MajorExists(db, *majorID)
	if err != nil {
		return apperrors.PersistenceError(err)
	}
	if !exists {
		return apperrors.ValidationError(map[string]string{"major_id": "Unknown major"})
	}
	return nil
}
