package services

import (
	"errors"
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CompanyService interface {
	// EnsureCompany возвращает компанию пользователя, создавая ее при первом обращении. Идемпотентна.
	EnsureCompany(db *gorm.DB, userID uint) (*models.Company, error)

	// Company operations
	Upsert(db *gorm.DB, r Request, req *dto.CompanyRequest) (*dto.CompanyResponse, error)
	Get(db *gorm.DB, r Request, id uint) (*dto.CompanyResponse, error)
	Search(db *gorm.DB, r Request, keyword string, page repositories.PageRequest) (*dto.Page[dto.CompanyResponse], error)
	GetByUser(db *gorm.DB, r Request, userID uint) (*dto.CompanyResponse, error)
	Posts(db *gorm.DB, r Request, id uint, page repositories.PageRequest) (*dto.Page[dto.PostResponse], error)

	// Rating & comments
	Rate(db *gorm.DB, r Request, id uint, req *dto.RatingRequest) (*dto.CompanyResponse, error)
	Comment(db *gorm.DB, r Request, id uint, req *dto.CommentRequest) (*dto.CommentResponse, error)
	Comments(db *gorm.DB, r Request, id uint, page repositories.PageRequest) (*dto.Page[dto.CommentResponse], error)

	// Admin
	PendingCount(db *gorm.DB, r Request) (*dto.PendingCompaniesResponse, error)
	Approve(db *gorm.DB, r Request, id uint, active bool) (*dto.CompanyResponse, error)
}

type companyService struct {
	companyRepo repositories.CompanyRepository
	ratingRepo  repositories.RatingRepository
	postRepo    repositories.PostRepository
	uploads     UploadService
	policy      *auth.Policy
	projector   *Projector
}

func NewCompanyService(
	companyRepo repositories.CompanyRepository,
	ratingRepo repositories.RatingRepository,
	postRepo repositories.PostRepository,
	uploads UploadService,
	policy *auth.Policy,
	projector *Projector,
) CompanyService {
	return &companyService{
		companyRepo: companyRepo,
		ratingRepo:  ratingRepo,
		postRepo:    postRepo,
		uploads:     uploads,
		policy:      policy,
		projector:   projector,
	}
}

func (s *companyService) EnsureCompany(db *gorm.DB, userID uint) (*models.Company, error) {
	company, err := s.companyRepo.FindByUserID(db, userID)
	if err == nil {
		return company, nil
	}
	if !errors.Is(err, repositories.ErrCompanyNotFound) {
		return nil, handleRepoError(err)
	}

	company = &models.Company{UserID: userID}
	if err := s.companyRepo.Create(db, company); err != nil {
		if !errors.Is(err, repositories.ErrDuplicate) {
			return nil, handleRepoError(err)
		}
		// Компанию успел создать параллельный запрос
		winner, err := s.companyRepo.FindByUserID(db, userID)
		if err != nil {
			return nil, handleRepoError(err)
		}
		return winner, nil
	}
	return company, nil
}

// ---------------- Company ----------------

// Upsert - POST и PUT /company: ensure-exists, затем обновление полей. active не меняется.
func (s *companyService) Upsert(db *gorm.DB, r Request, req *dto.CompanyRequest) (*dto.CompanyResponse, error) {
	if !r.Authenticated() {
		return nil, apperrors.ErrAuthenticationRequired
	}

	company, err := s.EnsureCompany(db, r.UserID())
	if err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(r.Caller, auth.ResourceCompany, auth.ActionUpdate, company); err != nil {
		return nil, err
	}

	company.CompanyName = strings.TrimSpace(req.CompanyName)
	company.Description = req.Description
	company.WebURL = req.WebURL
	company.Phone = req.Phone
	company.Email = req.Email

	ctx := r.Context()
	oldAvatar := company.Avatar
	if req.Avatar != nil {
		path, err := s.uploads.Store(ctx, UploadCompanyAvatar, req.Avatar)
		if err != nil {
			return nil, err
		}
		company.Avatar = path
	}

	if err := s.companyRepo.Update(db, company); err != nil {
		if company.Avatar != oldAvatar {
			s.uploads.Remove(ctx, company.Avatar)
		}
		return nil, handleRepoError(err)
	}
	if company.Avatar != oldAvatar {
		s.uploads.Remove(ctx, oldAvatar)
	}

	logger.CtxInfo(ctx, "company saved", "company_id", company.ID)
	return s.projector.Company(db, r, company)
}

func (s *companyService) Get(db *gorm.DB, r Request, id uint) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindActiveByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	return s.projector.Company(db, r, company)
}

func (s *companyService) Search(db *gorm.DB, r Request, keyword string, page repositories.PageRequest) (*dto.Page[dto.CompanyResponse], error) {
	companies, total, err := s.companyRepo.Search(db, keyword, page)
	if err != nil {
		return nil, handleRepoError(err)
	}
	items, err := s.projector.Companies(db, r, companies)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	result := dto.NewPage(items, total, page.Page, page.Size)
	return &result, nil
}

// GetByUser - компания пользователя, в том числе еще не одобренная
func (s *companyService) GetByUser(db *gorm.DB, r Request, userID uint) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	return s.projector.Company(db, r, company)
}

func (s *companyService) Posts(db *gorm.DB, r Request, id uint, page repositories.PageRequest) (*dto.Page[dto.PostResponse], error) {
	company, err := s.companyRepo.FindActiveByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	posts, total, err := s.postRepo.ListByCompany(db, company.ID, page)
	if err != nil {
		return nil, handleRepoError(err)
	}
	items, err := s.projector.Posts(db, r, posts)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	result := dto.NewPage(items, total, page.Page, page.Size)
	return &result, nil
}

// ---------------- Rating & comments ----------------

// Rate - upsert оценки по паре (автор, компания).
// Нарушение уникальности от параллельной вставки повторяется один раз как обновление.
func (s *companyService) Rate(db *gorm.DB, r Request, id uint, req *dto.RatingRequest) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindActiveByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if err := s.policy.Authorize(r.Caller, auth.ResourceCompany, auth.ActionRate, company); err != nil {
		return nil, err
	}

	if err := s.upsertRating(db, r.UserID(), company.ID, req.Rate); err != nil {
		return nil, err
	}

	logger.CtxInfo(r.Context(), "company rated", "company_id", company.ID, "rate", req.Rate)
	return s.projector.Company(db, r, company)
}

func (s *companyService) upsertRating(db *gorm.DB, creatorID, companyID uint, rate int) error {
	for attempt := 0; attempt < 2; attempt++ {
		rating, err := s.ratingRepo.FindRating(db, creatorID, companyID)
		switch {
		case err == nil:
			rating.Rate = rate
			return handleRepoError(s.ratingRepo.UpdateRating(db, rating))
		case !errors.Is(err, repositories.ErrRatingNotFound):
			return handleRepoError(err)
		}

		err = s.ratingRepo.CreateRating(db, &models.Rating{CreatorID: creatorID, CompanyID: companyID, Rate: rate})
		if err == nil {
			return nil
		}
		if !errors.Is(err, repositories.ErrDuplicate) {
			return handleRepoError(err)
		}
	}
	return apperrors.NewConflictError("company", "Rating was changed concurrently, try again")
}

func (s *companyService) Comment(db *gorm.DB, r Request, id uint, req *dto.CommentRequest) (*dto.CommentResponse, error) {
	company, err := s.companyRepo.FindActiveByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if err := s.policy.Authorize(r.Caller, auth.ResourceCompany, auth.ActionComment, company); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		CreatorID: r.UserID(),
		CompanyID: company.ID,
		Content:   strings.TrimSpace(req.Content),
	}
	if err := s.ratingRepo.CreateComment(db, comment); err != nil {
		return nil, handleRepoError(err)
	}

	resp := s.projector.Comment(comment)
	return &resp, nil
}

func (s *companyService) Comments(db *gorm.DB, r Request, id uint, page repositories.PageRequest) (*dto.Page[dto.CommentResponse], error) {
	company, err := s.companyRepo.FindActiveByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	comments, total, err := s.ratingRepo.ListComments(db, company.ID, page)
	if err != nil {
		return nil, handleRepoError(err)
	}
	result := dto.NewPage(s.projector.Comments(comments), total, page.Page, page.Size)
	return &result, nil
}

// ---------------- Admin ----------------

// PendingCount считается при каждом запросе
func (s *companyService) PendingCount(db *gorm.DB, r Request) (*dto.PendingCompaniesResponse, error) {
	if err := s.policy.Authorize(r.Caller, auth.ResourceCompany, auth.ActionApprove, nil); err != nil {
		return nil, err
	}
	count, err := s.companyRepo.CountInactive(db)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return &dto.PendingCompaniesResponse{Count: count}, nil
}

func (s *companyService) Approve(db *gorm.DB, r Request, id uint, active bool) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if err := s.policy.Authorize(r.Caller, auth.ResourceCompany, auth.ActionApprove, company); err != nil {
		return nil, err
	}

	if err := s.companyRepo.SetActive(db, company.ID, active); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	company.Active = active

	logger.CtxInfo(r.Context(), "company approval changed", "company_id", company.ID, "active", active)
	return s.projector.Company(db, r, company)
}
