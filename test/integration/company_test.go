package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompanyApprovalFlow - компания создается неактивной и видна только после одобрения
func TestCompanyApprovalFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ownerToken, _ := ts.CreateAndLoginUser(t, "owner", models.RoleHirerID)
	adminToken, _ := ts.CreateAndLoginUser(t, "admin", models.RoleAdminID)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/company", ownerToken, map[string]string{
		"company_name": "Acme",
		"web_url":      "https://acme.example.com",
	})
	require.Equal(t, http.StatusOK, res.Code, body)
	company := helpers.Decode[dto.CompanyResponse](t, body)
	assert.False(t, company.Active)

	// Повторный upsert обновляет ту же компанию
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/company", ownerToken, map[string]string{
		"company_name": "Acme Corp",
	})
	require.Equal(t, http.StatusOK, res.Code, body)
	updated := helpers.Decode[dto.CompanyResponse](t, body)
	assert.Equal(t, company.ID, updated.ID)
	assert.Equal(t, "Acme Corp", updated.CompanyName)

	path := fmt.Sprintf("/api/v1/company/%d", company.ID)
	res, _ = ts.SendRequest(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, res.Code, "Неодобренная компания скрыта")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/companies/pending-count", adminToken, nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	assert.Equal(t, int64(1), helpers.Decode[dto.PendingCompaniesResponse](t, body).Count)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/companies/pending-count", ownerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.Code)

	res, body = ts.SendRequest(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/companies/%d/approve", company.ID), adminToken,
		map[string]bool{"active": true})
	require.Equal(t, http.StatusOK, res.Code, body)
	assert.True(t, helpers.Decode[dto.CompanyResponse](t, body).Active)

	res, body = ts.SendRequest(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusOK, res.Code, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/company?keyword=acme", "", nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	assert.Len(t, helpers.Decode[dto.Page[dto.CompanyResponse]](t, body).Items, 1)
}

func TestCompanyRating(t *testing.T) {
	ts := helpers.NewTestServer(t)
	hirerToken, hirer := ts.CreateAndLoginUser(t, "hirer", models.RoleHirerID)
	company := helpers.CreateCompany(t, ts.DB, hirer, "Rated", true)
	path := fmt.Sprintf("/api/v1/company/%d", company.ID)

	// Без оценок среднее 0
	res, body := ts.SendRequest(t, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	assert.Equal(t, 0.0, helpers.Decode[dto.CompanyResponse](t, body).AverageRating)

	rates := []int{3, 5, 4}
	tokens := make([]string, len(rates))
	for i, rate := range rates {
		tokens[i], _ = ts.CreateAndLoginUser(t, fmt.Sprintf("rater%d", i), models.RoleJobSeekerID)
		res, body = ts.SendRequest(t, http.MethodPost, path+"/rating", tokens[i], map[string]int{"rate": rate})
		require.Equal(t, http.StatusOK, res.Code, body)
	}

	res, body = ts.SendRequest(t, http.MethodGet, path, tokens[0], nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	got := helpers.Decode[dto.CompanyResponse](t, body)
	assert.InDelta(t, 4.0, got.AverageRating, 0.0001)
	require.NotNil(t, got.MyRating)
	assert.Equal(t, 3, *got.MyRating)

	// Повторная оценка заменяет предыдущую
	res, body = ts.SendRequest(t, http.MethodPost, path+"/rating", tokens[0], map[string]int{"rate": 5})
	require.Equal(t, http.StatusOK, res.Code, body)
	got = helpers.Decode[dto.CompanyResponse](t, body)
	assert.InDelta(t, 14.0/3.0, got.AverageRating, 0.0001)

	var count int64
	require.NoError(t, ts.DB.Model(&models.Rating{}).Where("company_id = ?", company.ID).Count(&count).Error)
	assert.Equal(t, int64(3), count)

	// Работодатель не оценивает и не комментирует
	res, _ = ts.SendRequest(t, http.MethodPost, path+"/rating", hirerToken, map[string]int{"rate": 5})
	assert.Equal(t, http.StatusForbidden, res.Code)
	res, _ = ts.SendRequest(t, http.MethodPost, path+"/create-comment", hirerToken, map[string]string{"content": "great"})
	assert.Equal(t, http.StatusForbidden, res.Code)

	// Анонимный вызов - 401
	res, _ = ts.SendRequest(t, http.MethodPost, path+"/rating", "", map[string]int{"rate": 5})
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	// Оценка вне диапазона
	res, _ = ts.SendRequest(t, http.MethodPost, path+"/rating", tokens[1], map[string]int{"rate": 6})
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestCompanyComments(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, hirer := ts.CreateAndLoginUser(t, "hirer", models.RoleHirerID)
	company := helpers.CreateCompany(t, ts.DB, hirer, "Talked About", true)
	seekerToken, _ := ts.CreateAndLoginUser(t, "seeker", models.RoleJobSeekerID)
	path := fmt.Sprintf("/api/v1/company/%d", company.ID)

	for _, content := range []string{"first", "second"} {
		res, body := ts.SendRequest(t, http.MethodPost, path+"/create-comment", seekerToken, map[string]string{"content": content})
		require.Equal(t, http.StatusCreated, res.Code, body)
	}

	res, _ := ts.SendRequest(t, http.MethodPost, path+"/create-comment", seekerToken, map[string]string{"content": "   "})
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res, body := ts.SendRequest(t, http.MethodGet, path+"/comments", "", nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	page := helpers.Decode[dto.Page[dto.CommentResponse]](t, body)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "second", page.Items[0].Content, "Новые комментарии первыми")
	assert.Equal(t, "seeker", page.Items[0].CreatorUsername)
}

func TestUserCompanyProfile(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, hirer := ts.CreateAndLoginUser(t, "hirer", models.RoleHirerID)
	helpers.CreateCompany(t, ts.DB, hirer, "Pending Co", false)

	res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/company-profile", hirer.ID), "", nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	assert.Equal(t, "Pending Co", helpers.Decode[dto.CompanyResponse](t, body).CompanyName)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/users/999/company-profile", "", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
}
