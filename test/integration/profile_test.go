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

func TestProfileUpsertIsIdempotent(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, user := ts.CreateAndLoginUser(t, "seeker", models.RoleJobSeekerID)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/users/my-profile", token, nil)
	assert.Equal(t, http.StatusNotFound, res.Code, "Профиль еще не создан")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/user-profile", token, map[string]string{"nick_name": "gopher"})
	require.Equal(t, http.StatusOK, res.Code, body)
	first := helpers.Decode[dto.ProfileResponse](t, body)
	assert.Equal(t, user.ID, first.UserID)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/user-profile", token, map[string]string{"description": "about me"})
	require.Equal(t, http.StatusOK, res.Code, body)
	second := helpers.Decode[dto.ProfileResponse](t, body)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "gopher", second.NickName, "Не переданные поля не меняются")
	assert.Equal(t, "about me", second.Description)

	var count int64
	require.NoError(t, ts.DB.Model(&models.UserProfile{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEducationAndExperience(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := ts.CreateAndLoginUser(t, "student", models.RoleJobSeekerID)
	otherToken, _ := ts.CreateAndLoginUser(t, "other", models.RoleJobSeekerID)
	major := helpers.CreateMajor(t, ts.DB, "Mathematics")

	// Создание записи создает профиль автоматически
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/education-profile", token, map[string]interface{}{
		"degree_name":     "BSc",
		"university_name": "KBTU",
		"major_id":        major.ID,
		"start_date":      "2018-09-01",
		"completion_date": "2022-06-30",
		"cpa":             3.5,
	})
	require.Equal(t, http.StatusCreated, res.Code, body)
	education := helpers.Decode[dto.EducationResponse](t, body)
	require.NotNil(t, education.StartDate)
	assert.Equal(t, "2018-09-01", *education.StartDate)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/education-profile", token, map[string]interface{}{
		"degree_name":     "MSc",
		"university_name": "KBTU",
		"major_id":        9999,
	})
	assert.Equal(t, http.StatusBadRequest, res.Code, "Неизвестная специальность")

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/experience-profile", token, map[string]string{
		"title":        "Intern",
		"company_name": "Acme",
		"start_date":   "2021-06-01",
	})
	require.Equal(t, http.StatusCreated, res.Code, body)
	experience := helpers.Decode[dto.ExperienceResponse](t, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/users/my-profile", token, nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	profile := helpers.Decode[dto.ProfileResponse](t, body)
	assert.Len(t, profile.Educations, 1)
	assert.Len(t, profile.Experiences, 1)

	// Чужой пользователь не может менять записи
	educationPath := fmt.Sprintf("/api/v1/education-profile/%d", education.ID)
	res, _ = ts.SendRequest(t, http.MethodPatch, educationPath, otherToken, map[string]string{"degree_name": "PhD"})
	assert.Equal(t, http.StatusForbidden, res.Code)

	res, body = ts.SendRequest(t, http.MethodPatch, educationPath, token, map[string]string{"degree_name": "BSc (Hons)"})
	require.Equal(t, http.StatusOK, res.Code, body)
	assert.Equal(t, "BSc (Hons)", helpers.Decode[dto.EducationResponse](t, body).DegreeName)

	experiencePath := fmt.Sprintf("/api/v1/experience-profile/%d", experience.ID)
	res, _ = ts.SendRequest(t, http.MethodDelete, experiencePath, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.Code)
	res, _ = ts.SendRequest(t, http.MethodDelete, experiencePath, token, nil)
	assert.Equal(t, http.StatusNoContent, res.Code)

	res, _ = ts.SendRequest(t, http.MethodGet, experiencePath, token, nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestUserUpdate_Ownership(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, user := ts.CreateAndLoginUser(t, "me", models.RoleJobSeekerID)
	otherToken, _ := ts.CreateAndLoginUser(t, "notme", models.RoleJobSeekerID)
	path := fmt.Sprintf("/api/v1/users/%d", user.ID)

	res, _ := ts.SendRequest(t, http.MethodPatch, path, otherToken, map[string]string{"first_name": "Mallory"})
	assert.Equal(t, http.StatusForbidden, res.Code)

	res, body := ts.SendRequest(t, http.MethodPatch, path, token, map[string]string{"first_name": "Alice"})
	require.Equal(t, http.StatusOK, res.Code, body)
	assert.Equal(t, "Alice", helpers.Decode[dto.UserResponse](t, body).FirstName)

	res, _ = ts.SendRequest(t, http.MethodPatch, path, token, map[string]string{"username": "notme"})
	assert.Equal(t, http.StatusConflict, res.Code)

	// Неподтвержденный пользователь не виден публично
	pending := helpers.CreateUser(t, ts.DB, "pending", "password123", models.RoleJobSeekerID, false)
	res, _ = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", pending.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/users", token, nil)
	assert.Equal(t, http.StatusForbidden, res.Code, "Список пользователей - только администратору")
}
