package services

import (
	"net/url"
	"strings"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// MediaURL строит абсолютную ссылку на загруженный файл.
// Пустой путь дает пустую строку; значение со схемой или начинающееся с "/" возвращается как есть.
func MediaURL(origin, prefix, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "/") {
		return path
	}
	if u, err := url.Parse(path); err == nil && u.Scheme != "" {
		return path
	}

	parts := make([]string, 0, 3)
	if origin = strings.TrimRight(origin, "/"); origin != "" {
		parts = append(parts, origin)
	}
	if prefix = strings.Trim(prefix, "/"); prefix != "" {
		parts = append(parts, prefix)
	}
	parts = append(parts, strings.TrimLeft(path, "/"))

	joined := strings.Join(parts, "/")
	if origin == "" {
		return "/" + joined
	}
	return joined
}

// Projector собирает ответы API из моделей: ссылки на файлы, средний рейтинг, оценка вызывающего.
type Projector struct {
	ratingRepo  repositories.RatingRepository
	mediaPrefix string
}

func NewProjector(ratingRepo repositories.RatingRepository, mediaPrefix string) *Projector {
	return &Projector{ratingRepo: ratingRepo, mediaPrefix: mediaPrefix}
}

func (p *Projector) media(r Request, path string) string {
	return MediaURL(r.Origin, p.mediaPrefix, path)
}

// ---------------- Users ----------------

func (p *Projector) User(r Request, user *models.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Avatar:     p.media(r, user.Avatar),
		IsActive:   user.IsActive,
		DateJoined: user.DateJoined,
	}
	if user.UserRole != nil {
		resp.UserRole = &dto.UserRoleResponse{
			ID:          user.UserRole.ID,
			Name:        user.UserRole.Name,
			Description: user.UserRole.Description,
		}
	}
	return resp
}

func (p *Projector) Users(r Request, users []models.User) []dto.UserResponse {
	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, p.User(r, &users[i]))
	}
	return result
}

// ---------------- Profiles ----------------

func (p *Projector) Profile(profile *models.UserProfile) dto.ProfileResponse {
	resp := dto.ProfileResponse{
		ID:          profile.ID,
		UserID:      profile.UserID,
		Description: profile.Description,
		NickName:    profile.NickName,
		Educations:  make([]dto.EducationResponse, 0, len(profile.Educations)),
		Experiences: make([]dto.ExperienceResponse, 0, len(profile.Experiences)),
		CreatedDate: profile.CreatedDate,
		UpdatedDate: profile.UpdatedDate,
	}
	for i := range profile.Educations {
		resp.Educations = append(resp.Educations, p.Education(&profile.Educations[i]))
	}
	for i := range profile.Experiences {
		resp.Experiences = append(resp.Experiences, p.Experience(&profile.Experiences[i]))
	}
	return resp
}

func (p *Projector) Education(e *models.Education) dto.EducationResponse {
	return dto.EducationResponse{
		ID:             e.ID,
		ProfileID:      e.ProfileID,
		DegreeName:     e.DegreeName,
		UniversityName: e.UniversityName,
		MajorID:        e.MajorID,
		StartDate:      formatDate(e.StartDate),
		CompletionDate: formatDate(e.CompletionDate),
		CPA:            e.CPA,
		CreatedDate:    e.CreatedDate,
		UpdatedDate:    e.UpdatedDate,
	}
}

func (p *Projector) Experience(e *models.Experience) dto.ExperienceResponse {
	return dto.ExperienceResponse{
		ID:          e.ID,
		ProfileID:   e.ProfileID,
		Title:       e.Title,
		CompanyName: e.CompanyName,
		Description: e.Description,
		StartDate:   formatDate(e.StartDate),
		EndDate:     formatDate(e.EndDate),
		CreatedDate: e.CreatedDate,
		UpdatedDate: e.UpdatedDate,
	}
}

// ---------------- Catalog ----------------

func (p *Projector) Major(m *models.Major) dto.MajorResponse {
	return dto.MajorResponse{ID: m.ID, Name: m.Name, CategoryID: m.CategoryID}
}

func (p *Projector) Category(c *models.Category) dto.CategoryResponse {
	resp := dto.CategoryResponse{ID: c.ID, Name: c.Name, Majors: make([]dto.MajorResponse, 0, len(c.Majors))}
	for i := range c.Majors {
		resp.Majors = append(resp.Majors, p.Major(&c.Majors[i]))
	}
	return resp
}

// ---------------- Companies ----------------

// Companies считает средние рейтинги одним запросом на страницу.
// my_rating заполняется только для аутентифицированного вызывающего, который оценивал компанию.
func (p *Projector) Companies(db *gorm.DB, r Request, companies []models.Company) ([]dto.CompanyResponse, error) {
	ids := make([]uint, 0, len(companies))
	seen := make(map[uint]bool, len(companies))
	for _, c := range companies {
		if !seen[c.ID] {
			seen[c.ID] = true
			ids = append(ids, c.ID)
		}
	}

	averages, err := p.ratingRepo.AverageRates(db, ids)
	if err != nil {
		return nil, err
	}

	var mine map[uint]int
	if r.Authenticated() {
		if mine, err = p.ratingRepo.RatesByCreator(db, r.UserID(), ids); err != nil {
			return nil, err
		}
	}

	result := make([]dto.CompanyResponse, 0, len(companies))
	for i := range companies {
		c := &companies[i]
		resp := dto.CompanyResponse{
			ID:            c.ID,
			UserID:        c.UserID,
			CompanyName:   c.CompanyName,
			Description:   c.Description,
			WebURL:        c.WebURL,
			Phone:         c.Phone,
			Email:         c.Email,
			Avatar:        p.media(r, c.Avatar),
			Active:        c.Active,
			AverageRating: averages[c.ID],
			CreatedDate:   c.CreatedDate,
			UpdatedDate:   c.UpdatedDate,
		}
		if rate, ok := mine[c.ID]; ok {
			v := rate
			resp.MyRating = &v
		}
		result = append(result, resp)
	}
	return result, nil
}

func (p *Projector) Company(db *gorm.DB, r Request, company *models.Company) (*dto.CompanyResponse, error) {
	list, err := p.Companies(db, r, []models.Company{*company})
	if err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (p *Projector) Comments(comments []models.Comment) []dto.CommentResponse {
	result := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		result = append(result, p.Comment(&c))
	}
	return result
}

func (p *Projector) Comment(c *models.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:              c.ID,
		CompanyID:       c.CompanyID,
		CreatorID:       c.CreatorID,
		CreatorUsername: c.Creator.Username,
		Content:         c.Content,
		CreatedDate:     c.CreatedDate,
	}
}

// ---------------- Posts ----------------

// Posts требует загруженной Company у каждой вакансии
func (p *Projector) Posts(db *gorm.DB, r Request, posts []models.Post) ([]dto.PostResponse, error) {
	companies := make([]models.Company, 0, len(posts))
	for _, post := range posts {
		companies = append(companies, post.Company)
	}
	projected, err := p.Companies(db, r, companies)
	if err != nil {
		return nil, err
	}

	result := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		post := &posts[i]
		resp := dto.PostResponse{
			ID:          post.ID,
			Title:       post.Title,
			Location:    post.Location,
			FromSalary:  post.FromSalary,
			ToSalary:    post.ToSalary,
			Gender:      post.Gender,
			Quantity:    post.Quantity,
			Type:        post.Type,
			TimeWork:    post.TimeWork,
			Due:         formatDate(post.Due),
			Description: post.Description,
			MajorID:     post.MajorID,
			Company:     projected[i],
			CreatedDate: post.CreatedDate,
			UpdatedDate: post.UpdatedDate,
		}
		if post.Major != nil {
			resp.MajorName = post.Major.Name
		}
		result = append(result, resp)
	}
	return result, nil
}

func (p *Projector) Post(db *gorm.DB, r Request, post *models.Post) (*dto.PostResponse, error) {
	list, err := p.Posts(db, r, []models.Post{*post})
	if err != nil {
		return nil, err
	}
	return &list[0], nil
}

// ---------------- Applies & saved posts ----------------

func (p *Projector) Applies(db *gorm.DB, r Request, applies []models.Apply) ([]dto.ApplyResponse, error) {
	posts := make([]models.Post, 0, len(applies))
	for _, a := range applies {
		posts = append(posts, a.Post)
	}
	projected, err := p.Posts(db, r, posts)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ApplyResponse, 0, len(applies))
	for i := range applies {
		a := &applies[i]
		resp := dto.ApplyResponse{
			ID:          a.ID,
			UserID:      a.UserID,
			Description: a.Description,
			CV:          p.media(r, a.CV),
			Post:        projected[i],
			CreatedDate: a.CreatedDate,
			UpdatedDate: a.UpdatedDate,
		}
		// Заявитель загружен только в выборках с preload User
		if a.User.ID != 0 {
			applicant := p.User(r, &a.User)
			resp.Applicant = &applicant
		}
		result = append(result, resp)
	}
	return result, nil
}

func (p *Projector) Apply(db *gorm.DB, r Request, apply *models.Apply) (*dto.ApplyResponse, error) {
	list, err := p.Applies(db, r, []models.Apply{*apply})
	if err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (p *Projector) SavedPosts(db *gorm.DB, r Request, saved []models.SavedPost) ([]dto.SavedPostResponse, error) {
	posts := make([]models.Post, 0, len(saved))
	for _, s := range saved {
		posts = append(posts, s.Post)
	}
	projected, err := p.Posts(db, r, posts)
	if err != nil {
		return nil, err
	}

	result := make([]dto.SavedPostResponse, 0, len(saved))
	for i := range saved {
		result = append(result, dto.SavedPostResponse{
			ID:          saved[i].ID,
			UserID:      saved[i].UserID,
			Post:        projected[i],
			CreatedDate: saved[i].CreatedDate,
		})
	}
	return result, nil
}

// ---------------- Dates ----------------

func formatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(dateLayout)
	return &s
}

// parseDate: пустая строка - nil
func parseDate(s string) (*datatypes.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	d := datatypes.Date(t)
	return &d, nil
}
