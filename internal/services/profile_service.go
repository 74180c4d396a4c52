package services

import (
	"errors"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileService interface {
	// EnsureProfile возвращает профиль пользователя, создавая его при первом обращении. Идемпотентна.
	EnsureProfile(db *gorm.DB, userID uint) (*models.UserProfile, error)

	// Profile operations
	Upsert(db *gorm.DB, r Request, req *dto.ProfileRequest) (*dto.ProfileResponse, error)
	Get(db *gorm.DB, r Request, id uint) (*dto.ProfileResponse, error)
	MyProfile(db *gorm.DB, r Request) (*dto.ProfileResponse, error)
	Delete(db *gorm.DB, r Request) error

	// Education operations
	GetEducation(db *gorm.DB, r Request, id uint) (*dto.EducationResponse, error)
	CreateEducation(db *gorm.DB, r Request, req *dto.EducationRequest) (*dto.EducationResponse, error)
	UpdateEducation(db *gorm.DB, r Request, id uint, req *dto.UpdateEducationRequest) (*dto.EducationResponse, error)
	DeleteEducation(db *gorm.DB, r Request, id uint) error

	// Experience operations
	GetExperience(db *gorm.DB, r Request, id uint) (*dto.ExperienceResponse, error)
	CreateExperience(db *gorm.DB, r Request, req *dto.ExperienceRequest) (*dto.ExperienceResponse, error)
	UpdateExperience(db *gorm.DB, r Request, id uint, req *dto.UpdateExperienceRequest) (*dto.ExperienceResponse, error)
	DeleteExperience(db *gorm.DB, r Request, id uint) error
}

type profileService struct {
	profileRepo repositories.ProfileRepository
	catalogRepo repositories.CatalogRepository
	policy      *auth.Policy
	projector   *Projector
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	catalogRepo repositories.CatalogRepository,
	policy *auth.Policy,
	projector *Projector,
) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		catalogRepo: catalogRepo,
		policy:      policy,
		projector:   projector,
	}
}

func (s *profileService) EnsureProfile(db *gorm.DB, userID uint) (*models.UserProfile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, handleRepoError(err)
	}

	profile = &models.UserProfile{UserID: userID}
	if err := s.profileRepo.Create(db, profile); err != nil {
		if !errors.Is(err, repositories.ErrDuplicate) {
			return nil, handleRepoError(err)
		}
		// Профиль успел создать параллельный запрос
		winner, err := s.profileRepo.FindByUserID(db, userID)
		if err != nil {
			return nil, handleRepoError(err)
		}
		return winner, nil
	}
	return profile, nil
}

// ---------------- Profile ----------------

// Upsert - POST и PUT используют один путь: ensure-exists, затем частичное обновление
func (s *profileService) Upsert(db *gorm.DB, r Request, req *dto.ProfileRequest) (*dto.ProfileResponse, error) {
	if !r.Authenticated() {
		return nil, apperrors.ErrAuthenticationRequired
	}

	profile, err := s.EnsureProfile(db, r.UserID())
	if err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(r.Caller, auth.ResourceProfile, auth.ActionUpdate, profile); err != nil {
		return nil, err
	}

	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.NickName != nil {
		profile.NickName = *req.NickName
	}
	if err := s.profileRepo.Update(db, profile); err != nil {
		return nil, handleRepoError(err)
	}

	return s.full(db, profile.UserID)
}

func (s *profileService) Get(db *gorm.DB, r Request, id uint) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if err := s.policy.Authorize(r.Caller, auth.ResourceProfile, auth.ActionRetrieve, profile); err != nil {
		return nil, err
	}
	resp := s.projector.Profile(profile)
	return &resp, nil
}

func (s *profileService) MyProfile(db *gorm.DB, r Request) (*dto.ProfileResponse, error) {
	if !r.Authenticated() {
		return nil, apperrors.ErrAuthenticationRequired
	}
	return s.full(db, r.UserID())
}

func (s *profileService) Delete(db *gorm.DB, r Request) error {
	if !r.Authenticated() {
		return apperrors.ErrAuthenticationRequired
	}
	profile, err := s.profileRepo.FindByUserID(db, r.UserID())
	if err != nil {
		return handleRepoError(err)
	}
	if err := s.policy.Authorize(r.Caller, auth.ResourceProfile, auth.ActionDestroy, profile); err != nil {
		return err
	}
	if err := s.profileRepo.Delete(db, profile); err != nil {
		return handleRepoError(err)
	}
	logger.CtxInfo(r.Context(), "profile deleted", "profile_id", profile.ID)
	return nil
}

func (s *profileService) full(db *gorm.DB, userID uint) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindFullByUserID(db, userID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	resp := s.projector.Profile(profile)
	return &resp, nil
}

// withProfile дополняет вызывающего id его профиля для правил цепочки профиля.
// Пользователь без профиля не владеет ни одной записью.
func (s *profileService) withProfile(db *gorm.DB, r Request) (*auth.Caller, error) {
	if !r.Authenticated() {
		return nil, nil
	}
	caller := *r.Caller
	profile, err := s.profileRepo.FindByUserID(db, caller.UserID)
	switch {
	case err == nil:
		caller.ProfileID = &profile.ID
	case !errors.Is(err, repositories.ErrProfileNotFound):
		return nil, handleRepoError(err)
	}
	return &caller, nil
}

// ---------------- Education ----------------

func (s *profileService) GetEducation(db *gorm.DB, r Request, id uint) (*dto.EducationResponse, error) {
	education, err := s.profileRepo.FindEducationByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if err := s.policy.Authorize(r.Caller, auth.ResourceEducation, auth.ActionRetrieve, education); err != nil {
		return nil, err
	}
	resp := s.projector.Education(education)
	return &resp, nil
}

func (s *profileService) CreateEducation(db *gorm.DB, r Request, req *dto.EducationRequest) (*dto.EducationResponse, error) {
	if err := s.policy.Authorize(r.Caller, auth.ResourceEducation, auth.ActionCreate, nil); err != nil {
		return nil, err
	}
	if err := ensureMajor(db, s.catalogRepo, req.MajorID); err != nil {
		return nil, err
	}
	start, err := parseDateField("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	completion, err := parseDateField("completion_date", req.CompletionDate)
	if err != nil {
		return nil, err
	}

	// Сначала явный шаг ensure-exists профиля
	profile, err := s.EnsureProfile(db, r.UserID())
	if err != nil {
		return nil, err
	}

	education := &models.Education{
		ProfileID:      profile.ID,
		DegreeName:     req.DegreeName,
		UniversityName: req.UniversityName,
		MajorID:        req.MajorID,
		StartDate:      start,
		CompletionDate: completion,
	}
	if req.CPA != nil {
		education.CPA = *req.CPA
	}
	if err := s.profileRepo.CreateEducation(db, education); err != nil {
		return nil, handleRepoError(err)
	}

	resp := s.projector.Education(education)
	return &resp, nil
}

func (s *profileService) UpdateEducation(db *gorm.DB, r Request, id uint, req *dto.UpdateEducationRequest) (*dto.EducationResponse, error) {
	education, err := s.profileRepo.FindEducationByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	caller, err := s.withProfile(db, r)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(caller, auth.ResourceEducation, auth.ActionUpdate, education); err != nil {
		return nil, err
	}

	if req.DegreeName != nil {
		education.DegreeName = *req.DegreeName
	}
	if req.UniversityName != nil {
		education.UniversityName = *req.UniversityName
	}
	if req.MajorID != nil {
		if err := ensureMajor(db, s.catalogRepo, req.MajorID); err != nil {
			return nil, err
		}
		education.MajorID = req.MajorID
	}
	if req.StartDate != nil {
		if education.StartDate, err = parseDateField("start_date", *req.StartDate); err != nil {
			return nil, err
		}
	}
	if req.CompletionDate != nil {
		if education.CompletionDate, err = parseDateField("completion_date", *req.CompletionDate); err != nil {
			return nil, err
		}
	}
	if req.CPA != nil {
		education.CPA = *req.CPA
	}

	if err := s.profileRepo.UpdateEducation(db, education); err != nil {
		return nil, handleRepoError(err)
	}
	resp := s.projector.Education(education)
	return &resp, nil
}

func (s *profileService) DeleteEducation(db *gorm.DB, r Request, id uint) error {
	education, err := s.profileRepo.FindEducationByID(db, id)
	if err != nil {
		return handleRepoError(err)
	}
	caller, err := s.withProfile(db, r)
	if err != nil {
		return err
	}
	if err := s.policy.Authorize(caller, auth.ResourceEducation, auth.ActionDestroy, education); err != nil {
		return err
	}
	return handleRepoError(s.profileRepo.DeleteEducation(db, education.ID))
}

// ---------------- Experience ----------------

func (s *profileService) GetExperience(db *gorm.DB, r Request, id uint) (*dto.ExperienceResponse, error) {
	experience, err := s.profileRepo.FindExperienceByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if err := s.policy.Authorize(r.Caller, auth.ResourceExperience, auth.ActionRetrieve, experience); err != nil {
		return nil, err
	}
	resp := s.projector.Experience(experience)
	return &resp, nil
}

func (s *profileService) CreateExperience(db *gorm.DB, r Request, req *dto.ExperienceRequest) (*dto.ExperienceResponse, error) {
	if err := s.policy.Authorize(r.Caller, auth.ResourceExperience, auth.ActionCreate, nil); err != nil {
		return nil, err
	}
	start, err := parseDateField("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDateField("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}

	profile, err := s.EnsureProfile(db, r.UserID())
	if err != nil {
		return nil, err
	}

	experience := &models.Experience{
		ProfileID:   profile.ID,
		Title:       req.Title,
		CompanyName: req.CompanyName,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
	}
	if err := s.profileRepo.CreateExperience(db, experience); err != nil {
		return nil, handleRepoError(err)
	}

	resp := s.projector.Experience(experience)
	return &resp, nil
}

func (s *profileService) UpdateExperience(db *gorm.DB, r Request, id uint, req *dto.UpdateExperienceRequest) (*dto.ExperienceResponse, error) {
	experience, err := s.profileRepo.FindExperienceByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	caller, err := s.withProfile(db, r)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(caller, auth.ResourceExperience, auth.ActionUpdate, experience); err != nil {
		return nil, err
	}

	if req.Title != nil {
		experience.Title = *req.Title
	}
	if req.CompanyName != nil {
		experience.CompanyName = *req.CompanyName
	}
	if req.Description != nil {
		experience.Description = *req.Description
	}
	if req.StartDate != nil {
		if experience.StartDate, err = parseDateField("start_date", *req.StartDate); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		if experience.EndDate, err = parseDateField("end_date", *req.EndDate); err != nil {
			return nil, err
		}
	}

	if err := s.profileRepo.UpdateExperience(db, experience); err != nil {
		return nil, handleRepoError(err)
	}
	resp := s.projector.Experience(experience)
	return &resp, nil
}

func (s *profileService) DeleteExperience(db *gorm.DB, r Request, id uint) error {
	experience, err := s.profileRepo.FindExperienceByID(db, id)
	if err != nil {
		return handleRepoError(err)
	}
	caller, err := s.withProfile(db, r)
	if err != nil {
		return err
	}
	if err := s.policy.Authorize(caller, auth.ResourceExperience, auth.ActionDestroy, experience); err != nil {
		return err
	}
	return handleRepoError(s.profileRepo.DeleteExperience(db, experience.ID))
}

// parseDateField - ошибка разбора даты становится ошибкой валидации поля
func parseDateField(field, value string) (*datatypes.Date, error) {
	d, err := parseDate(value)
	if err != nil {
		return nil, apperrors.ValidationError(map[string]string{field: "Must be a date in YYYY-MM-DD format"})
	}
	return d, nil
}
