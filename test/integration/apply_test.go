package integration_test

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pdfContent = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

func TestApply_WithCV(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, _, post := hirerWithPost(t, ts, "hirer")
	seekerToken, _ := ts.CreateAndLoginUser(t, "seeker", models.RoleJobSeekerID)

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/applies", seekerToken,
		map[string]string{"post": fmt.Sprint(post.ID), "description": "cv attached"}, "cv", "resume.pdf", pdfContent)
	require.Equal(t, http.StatusCreated, res.Code, body)

	apply := helpers.Decode[dto.ApplyResponse](t, body)
	require.True(t, strings.HasPrefix(apply.CV, "http://testserver/static/cv/"), apply.CV)
	assert.True(t, strings.HasSuffix(apply.CV, ".pdf"))

	// Файл лежит в хранилище по относительному пути
	var stored models.Apply
	require.NoError(t, ts.DB.First(&stored, apply.ID).Error)
	_, err := os.Stat(filepath.Join(ts.Config.Storage.BasePath, filepath.FromSlash(stored.CV)))
	assert.NoError(t, err)
}

func TestApply_RejectsWrongFileType(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, _, post := hirerWithPost(t, ts, "hirer")
	seekerToken, _ := ts.CreateAndLoginUser(t, "seeker", models.RoleJobSeekerID)

	// Расширение не важно, тип определяется по содержимому
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/applies", seekerToken,
		map[string]string{"post": fmt.Sprint(post.ID)}, "cv", "resume.pdf", png)
	assert.Equal(t, http.StatusBadRequest, res.Code, body)

	var count int64
	require.NoError(t, ts.DB.Model(&models.Apply{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestApply_Ownership(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, _, post := hirerWithPost(t, ts, "hirer")
	ownerToken, _ := ts.CreateAndLoginUser(t, "owner", models.RoleJobSeekerID)
	strangerToken, _ := ts.CreateAndLoginUser(t, "stranger", models.RoleJobSeekerID)

	code, body := applyTo(t, ts, ownerToken, post.ID)
	require.Equal(t, http.StatusCreated, code, body)
	apply := helpers.Decode[dto.ApplyResponse](t, body)
	path := fmt.Sprintf("/api/v1/applies/%d", apply.ID)

	res, _ := ts.SendRequest(t, http.MethodGet, path, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.Code)

	res, body = ts.SendRequest(t, http.MethodPatch, path, ownerToken, map[string]string{"description": "updated"})
	require.Equal(t, http.StatusOK, res.Code, body)
	assert.Equal(t, "updated", helpers.Decode[dto.ApplyResponse](t, body).Description)

	// Список - только свои отклики
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/applies/my-applies", strangerToken, nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	assert.Empty(t, helpers.Decode[dto.Page[dto.ApplyResponse]](t, body).Items)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/applies", ownerToken, nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	assert.Len(t, helpers.Decode[dto.Page[dto.ApplyResponse]](t, body).Items, 1)

	res, _ = ts.SendRequest(t, http.MethodDelete, path, ownerToken, nil)
	assert.Equal(t, http.StatusNoContent, res.Code)
	res, _ = ts.SendRequest(t, http.MethodGet, path, ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestApply_UnknownPost(t *testing.T) {
	ts := helpers.NewTestServer(t)
	seekerToken, _ := ts.CreateAndLoginUser(t, "seeker", models.RoleJobSeekerID)

	code, _ := applyTo(t, ts, seekerToken, 4242)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestSavedPosts(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, _, post := hirerWithPost(t, ts, "hirer")
	seekerToken, _ := ts.CreateAndLoginUser(t, "seeker", models.RoleJobSeekerID)
	strangerToken, _ := ts.CreateAndLoginUser(t, "stranger", models.RoleJobSeekerID)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/my-saved-posts", seekerToken, map[string]uint{"post": post.ID})
	require.Equal(t, http.StatusCreated, res.Code, body)
	saved := helpers.Decode[dto.SavedPostResponse](t, body)
	assert.Equal(t, post.ID, saved.Post.ID)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/my-saved-posts", seekerToken, map[string]uint{"post": post.ID})
	assert.Equal(t, http.StatusConflict, res.Code)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/my-saved-posts", seekerToken, nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	assert.Len(t, helpers.Decode[dto.Page[dto.SavedPostResponse]](t, body).Items, 1)

	path := fmt.Sprintf("/api/v1/my-saved-posts/%d", saved.ID)
	res, _ = ts.SendRequest(t, http.MethodDelete, path, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.Code)
	res, _ = ts.SendRequest(t, http.MethodDelete, path, seekerToken, nil)
	assert.Equal(t, http.StatusNoContent, res.Code)
}
