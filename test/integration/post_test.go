package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostLifecycle(t *testing.T) {
	ts := helpers.NewTestServer(t)
	hirerToken, hirer := ts.CreateAndLoginUser(t, "hirer", models.RoleHirerID)
	helpers.CreateCompany(t, ts.DB, hirer, "Posting Co", true)
	otherToken, other := ts.CreateAndLoginUser(t, "otherhirer", models.RoleHirerID)
	helpers.CreateCompany(t, ts.DB, other, "Other Co", true)
	major := helpers.CreateMajor(t, ts.DB, "Software Engineering")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/posts", hirerToken, map[string]interface{}{
		"title":       "Backend engineer",
		"location":    "Almaty",
		"from_salary": 1000,
		"to_salary":   2000,
		"type":        "full-time",
		"time_work":   "9-18",
		"due":         "2030-01-31",
		"major_id":    major.ID,
	})
	require.Equal(t, http.StatusCreated, res.Code, body)
	post := helpers.Decode[dto.PostResponse](t, body)
	assert.Equal(t, 1, post.Quantity, "Количество по умолчанию 1")
	assert.Equal(t, "Software Engineering", post.MajorName)
	assert.Equal(t, "Posting Co", post.Company.CompanyName)
	require.NotNil(t, post.Due)
	assert.Equal(t, "2030-01-31", *post.Due)

	path := fmt.Sprintf("/api/v1/posts/%d", post.ID)

	// Частичное обновление владельцем
	res, body = ts.SendRequest(t, http.MethodPatch, path, hirerToken, map[string]interface{}{"title": "Senior backend engineer"})
	require.Equal(t, http.StatusOK, res.Code, body)
	assert.Equal(t, "Senior backend engineer", helpers.Decode[dto.PostResponse](t, body).Title)

	// Верхняя граница зарплаты ниже существующей нижней
	res, _ = ts.SendRequest(t, http.MethodPatch, path, hirerToken, map[string]interface{}{"to_salary": 500})
	assert.Equal(t, http.StatusBadRequest, res.Code)

	// Чужой работодатель
	res, _ = ts.SendRequest(t, http.MethodPatch, path, otherToken, map[string]interface{}{"title": "hijacked"})
	assert.Equal(t, http.StatusForbidden, res.Code)
	res, _ = ts.SendRequest(t, http.MethodDelete, path, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.Code)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/posts/my-posts", hirerToken, nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	assert.Len(t, helpers.Decode[dto.Page[dto.PostResponse]](t, body).Items, 1)

	// Мягкое удаление: вакансия пропадает из чтения, строка остается
	res, _ = ts.SendRequest(t, http.MethodDelete, path, hirerToken, nil)
	assert.Equal(t, http.StatusNoContent, res.Code)
	res, _ = ts.SendRequest(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)

	var stored models.Post
	require.NoError(t, ts.DB.First(&stored, post.ID).Error)
	assert.False(t, stored.Active)
}

func TestCreatePost_Rules(t *testing.T) {
	ts := helpers.NewTestServer(t)
	seekerToken, _ := ts.CreateAndLoginUser(t, "seeker", models.RoleJobSeekerID)
	hirerToken, _ := ts.CreateAndLoginUser(t, "nocompany", models.RoleHirerID)

	body := map[string]interface{}{"title": "Anything", "type": "full-time", "time_work": "9-18"}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/posts", seekerToken, body)
	assert.Equal(t, http.StatusForbidden, res.Code)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/posts", hirerToken, body)
	assert.Equal(t, http.StatusBadRequest, res.Code, "Работодатель без компании")

	body["from_salary"] = 2000
	body["to_salary"] = 1000
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/posts", hirerToken, body)
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestSearchPosts_Filters(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, hirer := ts.CreateAndLoginUser(t, "hirer", models.RoleHirerID)
	company := helpers.CreateCompany(t, ts.DB, hirer, "Search Co", true)
	major := helpers.CreateMajor(t, ts.DB, "Design")

	helpers.CreatePost(t, ts.DB, company, "Go Developer", func(p *models.Post) {
		p.Location = "Almaty"
		p.FromSalary = 1500
		p.ToSalary = 3000
	})
	helpers.CreatePost(t, ts.DB, company, "UI designer", func(p *models.Post) {
		p.Location = "Astana"
		p.MajorID = &major.ID
		p.FromSalary = 500
		p.ToSalary = 900
	})
	hidden := helpers.CreatePost(t, ts.DB, company, "Go Developer (closed)")
	helpers.Deactivate(t, ts.DB, hidden)

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"keyword is case-insensitive", "keyword=go%20DEV", []string{"Go Developer"}},
		{"location", "location=astana", []string{"UI designer"}},
		{"major", fmt.Sprintf("major_id=%d", major.ID), []string{"UI designer"}},
		{"salary lower bound is strict", "from_salary=500", []string{"Go Developer"}},
		{"salary upper bound is strict", "to_salary=3000", []string{"UI designer"}},
		{"filters compose", "keyword=developer&location=astana", []string{}},
		{"no filters", "", []string{"UI designer", "Go Developer"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/posts?"+tc.query, "", nil)
			require.Equal(t, http.StatusOK, res.Code, body)
			page := helpers.Decode[dto.Page[dto.PostResponse]](t, body)
			titles := make([]string, 0, len(page.Items))
			for _, p := range page.Items {
				titles = append(titles, p.Title)
			}
			assert.Equal(t, tc.want, titles)
		})
	}
}

func TestSearchPosts_Pagination(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, hirer := ts.CreateAndLoginUser(t, "hirer", models.RoleHirerID)
	company := helpers.CreateCompany(t, ts.DB, hirer, "Big Co", true)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		created := base.Add(time.Duration(i) * time.Hour)
		helpers.CreatePost(t, ts.DB, company, fmt.Sprintf("Post %02d", i), func(p *models.Post) {
			p.CreatedDate = created
		})
	}

	get := func(query string) (int, dto.Page[dto.PostResponse]) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/posts?"+query, "", nil)
		if res.Code != http.StatusOK {
			return res.Code, dto.Page[dto.PostResponse]{}
		}
		return res.Code, helpers.Decode[dto.Page[dto.PostResponse]](t, body)
	}

	code, first := get("page=1")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, first.Items, 10)
	assert.Equal(t, int64(25), first.Total)
	assert.Equal(t, 3, first.Pages)
	assert.Equal(t, "Post 24", first.Items[0].Title, "Сначала новые")

	_, third := get("page=3")
	assert.Len(t, third.Items, 5)

	_, beyond := get("page=4")
	assert.Empty(t, beyond.Items)
	assert.Equal(t, int64(25), beyond.Total)

	_, old := get("old=true")
	require.NotEmpty(t, old.Items)
	assert.Equal(t, "Post 00", old.Items[0].Title, "old - сначала старые")

	_, zero := get("page=0")
	assert.Equal(t, 1, zero.Page)

	code, _ = get("page=abc")
	assert.Equal(t, http.StatusBadRequest, code)
}
