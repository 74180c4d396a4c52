package repositories_test

import (
	"fmt"
	"math"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func titles(posts []models.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Title)
	}
	return out
}

func TestPostRepository_SearchFiltersCompose(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewPostRepository()

	owner := helpers.CreateUser(t, db, "owner", "password123", models.RoleHirerID, true)
	company := helpers.CreateCompany(t, db, owner, "Acme", true)
	major := helpers.CreateMajor(t, db, "Backend")

	helpers.CreatePost(t, db, company, "Go Developer", func(p *models.Post) {
		p.Location = "Almaty"
		p.FromSalary = 1000
		p.ToSalary = 2000
		p.MajorID = &major.ID
	})
	helpers.CreatePost(t, db, company, "Senior GO engineer", func(p *models.Post) {
		p.Location = "Astana"
		p.FromSalary = 3000
		p.ToSalary = 5000
	})
	hidden := helpers.CreatePost(t, db, company, "Go intern", func(p *models.Post) {
		p.Location = "Almaty"
	})
	helpers.Deactivate(t, db, hidden)

	page := repositories.PageRequest{Page: 1, Size: 10}

	tests := []struct {
		name   string
		filter repositories.PostFilter
		want   []string
	}{
		{"no filters hides inactive", repositories.PostFilter{}, []string{"Senior GO engineer", "Go Developer"}},
		{"keyword is case insensitive", repositories.PostFilter{Keyword: "go"}, []string{"Senior GO engineer", "Go Developer"}},
		{"keyword and location", repositories.PostFilter{Keyword: "go", Location: "almaty"}, []string{"Go Developer"}},
		{"major", repositories.PostFilter{MajorID: &major.ID}, []string{"Go Developer"}},
		{"from salary is strict", repositories.PostFilter{FromSalary: ptr(1000.0)}, []string{"Senior GO engineer"}},
		{"to salary is strict", repositories.PostFilter{ToSalary: ptr(5000.0)}, []string{"Go Developer"}},
		{"old reverses order", repositories.PostFilter{Old: true}, []string{"Go Developer", "Senior GO engineer"}},
		{"nothing matches", repositories.PostFilter{Keyword: "python"}, []string{}},
		{"percent is literal", repositories.PostFilter{Keyword: "%"}, []string{}},
		{"underscore is literal", repositories.PostFilter{Keyword: "_"}, []string{}},
		{"underscore does not match a letter", repositories.PostFilter{Keyword: "g_ dev"}, []string{}},
		{"location percent is literal", repositories.PostFilter{Location: "alm%"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts, total, err := repo.Search(db, tt.filter, page)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), total)
			assert.Equal(t, tt.want, titles(posts))
		})
	}
}

func TestPostRepository_SearchMatchesWildcardCharacters(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewPostRepository()

	owner := helpers.CreateUser(t, db, "owner", "password123", models.RoleHirerID, true)
	company := helpers.CreateCompany(t, db, owner, "Acme", true)
	helpers.CreatePost(t, db, company, "Go Developer")
	helpers.CreatePost(t, db, company, "100% remote_first")
	helpers.CreatePost(t, db, company, "Support! agent")

	page := repositories.PageRequest{Page: 1, Size: 10}
	for keyword, want := range map[string][]string{
		"0% r":    {"100% remote_first"},
		"e_f":     {"100% remote_first"},
		"t! a":    {"Support! agent"},
		"go_dev":  {},
		"%":       {"100% remote_first"},
		"support": {"Support! agent"},
	} {
		posts, total, err := repo.Search(db, repositories.PostFilter{Keyword: keyword}, page)
		require.NoError(t, err, keyword)
		assert.Equal(t, int64(len(want)), total, keyword)
		assert.Equal(t, want, titles(posts), keyword)
	}
}

func TestCompanyRepository_SearchEscapesKeyword(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewCompanyRepository()

	owner := helpers.CreateUser(t, db, "owner", "password123", models.RoleHirerID, true)
	helpers.CreateCompany(t, db, owner, "Acme", true)

	companies, total, err := repo.Search(db, "_", repositories.PageRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, companies)
}

func TestPostRepository_Pagination(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewPostRepository()

	owner := helpers.CreateUser(t, db, "owner", "password123", models.RoleHirerID, true)
	company := helpers.CreateCompany(t, db, owner, "Acme", true)
	for i := 1; i <= 7; i++ {
		helpers.CreatePost(t, db, company, fmt.Sprintf("Post %d", i))
	}

	first, total, err := repo.Search(db, repositories.PostFilter{}, repositories.PageRequest{Page: 1, Size: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Equal(t, []string{"Post 7", "Post 6", "Post 5"}, titles(first))

	last, _, err := repo.Search(db, repositories.PostFilter{}, repositories.PageRequest{Page: 3, Size: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"Post 1"}, titles(last))

	beyond, total, err := repo.Search(db, repositories.PostFilter{}, repositories.PageRequest{Page: 4, Size: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Empty(t, beyond)
	assert.NotNil(t, beyond)

	// смещение огромной страницы не должно переполняться и возвращать первую страницу
	for _, huge := range []int{1e18, math.MaxInt} {
		far, total, err := repo.Search(db, repositories.PostFilter{}, repositories.PageRequest{Page: huge, Size: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(7), total)
		assert.Empty(t, far, "page %d", huge)
	}
}

func TestUserRepository_UniqueViolation(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository()

	existing := helpers.CreateUser(t, db, "alice", "password123", models.RoleJobSeekerID, true)

	err := repo.Create(db, &models.User{Username: "alice", Email: "other@test.com", Password: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
	assert.True(t, repositories.IsUniqueViolation(err))

	found, err := repo.FindByLogin(db, existing.Email)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, found.ID)

	_, err = repo.FindByID(db, existing.ID+100)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestRatingRepository_Averages(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewRatingRepository()

	owner := helpers.CreateUser(t, db, "owner", "password123", models.RoleHirerID, true)
	rated := helpers.CreateCompany(t, db, owner, "Rated", true)
	other := helpers.CreateUser(t, db, "owner2", "password123", models.RoleHirerID, true)
	unrated := helpers.CreateCompany(t, db, other, "Unrated", true)

	alice := helpers.CreateUser(t, db, "alice", "password123", models.RoleJobSeekerID, true)
	bob := helpers.CreateUser(t, db, "bob", "password123", models.RoleJobSeekerID, true)

	require.NoError(t, repo.CreateRating(db, &models.Rating{CreatorID: alice.ID, CompanyID: rated.ID, Rate: 5}))
	require.NoError(t, repo.CreateRating(db, &models.Rating{CreatorID: bob.ID, CompanyID: rated.ID, Rate: 2}))

	err := repo.CreateRating(db, &models.Rating{CreatorID: bob.ID, CompanyID: rated.ID, Rate: 4})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	avg, err := repo.AverageRate(db, rated.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, avg, 0.0001)

	avg, err = repo.AverageRate(db, unrated.ID)
	require.NoError(t, err)
	assert.Zero(t, avg)

	averages, err := repo.AverageRates(db, []uint{rated.ID, unrated.ID})
	require.NoError(t, err)
	assert.InDelta(t, 3.5, averages[rated.ID], 0.0001)
	_, ok := averages[unrated.ID]
	assert.False(t, ok)

	mine, err := repo.RatesByCreator(db, alice.ID, []uint{rated.ID, unrated.ID})
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{rated.ID: 5}, mine)
}
