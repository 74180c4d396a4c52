package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/require"
)

// hirerWithPost - работодатель с одобренной компанией и одной вакансией
func hirerWithPost(t *testing.T, ts *helpers.TestServer, username string) (string, *models.Company, *models.Post) {
	t.Helper()
	token, hirer := ts.CreateAndLoginUser(t, username, models.RoleHirerID)
	company := helpers.CreateCompany(t, ts.DB, hirer, username+" Inc", true)
	post := helpers.CreatePost(t, ts.DB, company, "Go developer")
	return token, company, post
}

func applyTo(t *testing.T, ts *helpers.TestServer, token string, postID uint) (int, string) {
	t.Helper()
	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/applies", token,
		map[string]string{"post": fmt.Sprint(postID), "description": "hello"}, "", "", nil)
	return res.Code, body
}

func listApplies(t *testing.T, ts *helpers.TestServer, token string, postID uint) dto.Page[dto.ApplyResponse] {
	t.Helper()
	res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d/applies", postID), token, nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	return helpers.Decode[dto.Page[dto.ApplyResponse]](t, body)
}
