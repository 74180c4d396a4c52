package integration_test

import (
	"net/http"
	"testing"

	"jobboard_backend/internal/services/dto"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJobSeekerFlow - регистрация, подтверждение, логин, отклик и просмотр откликов работодателем
func TestJobSeekerFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	hirerToken, _, post := hirerWithPost(t, ts, "hirer")

	// 1. Регистрация
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/users", "", map[string]string{
		"username": "seeker",
		"email":    "Seeker@Example.com",
		"password": "s3cret-password",
	})
	require.Equal(t, http.StatusCreated, res.Code, body)
	registered := helpers.Decode[dto.RegisterResponse](t, body)
	assert.True(t, registered.ConfirmationSent)
	assert.False(t, registered.IsActive)
	assert.Equal(t, "seeker@example.com", registered.Email)
	assert.NotContains(t, body, "password")

	// 2. Логин до подтверждения запрещен
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"login":    "seeker",
		"password": "s3cret-password",
	})
	assert.Equal(t, http.StatusForbidden, res.Code, body)

	// 3. Подтверждение по токену из письма
	sent, ok := ts.Mailer.LastConfirmation()
	require.True(t, ok, "Письмо подтверждения должно быть отправлено")
	assert.Equal(t, "seeker@example.com", sent.To)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/confirm-user/"+sent.Token, "", nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	assert.True(t, helpers.Decode[dto.UserResponse](t, body).IsActive)

	// Токен одноразовый
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/confirm-user/"+sent.Token, "", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)

	// 4. Логин по email
	seekerToken := ts.Login(t, "seeker@example.com", "s3cret-password")

	// 5. Отклик
	code, body := applyTo(t, ts, seekerToken, post.ID)
	require.Equal(t, http.StatusCreated, code, body)
	apply := helpers.Decode[dto.ApplyResponse](t, body)
	assert.Equal(t, post.ID, apply.Post.ID)
	assert.Equal(t, registered.ID, apply.UserID)

	// 6. Повторный отклик - конфликт
	code, body = applyTo(t, ts, seekerToken, post.ID)
	assert.Equal(t, http.StatusConflict, code, body)

	// 7. Работодатель видит ровно один отклик
	page := listApplies(t, ts, hirerToken, post.ID)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, apply.ID, page.Items[0].ID)
	require.NotNil(t, page.Items[0].Applicant)
	assert.Equal(t, "seeker", page.Items[0].Applicant.Username)

	// Соискатель не может смотреть отклики на чужую вакансию
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/posts/1/applies", seekerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.Code)
}

func TestRegister_Duplicate(t *testing.T) {
	ts := helpers.NewTestServer(t)
	helpers.CreateUser(t, ts.DB, "taken", "password123", 2, true)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/users", "", map[string]string{
		"username": "taken",
		"email":    "other@example.com",
		"password": "s3cret-password",
	})
	assert.Equal(t, http.StatusConflict, res.Code, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/users", "", map[string]string{
		"username": "fresh",
		"email":    "TAKEN@test.com",
		"password": "s3cret-password",
	})
	assert.Equal(t, http.StatusConflict, res.Code, body)
}

func TestRegister_MailFailureStillCreatesAccount(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.Mailer.Err = assert.AnError

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/users", "", map[string]string{
		"username": "unlucky",
		"email":    "unlucky@example.com",
		"password": "s3cret-password",
	})
	require.Equal(t, http.StatusCreated, res.Code, body)
	assert.False(t, helpers.Decode[dto.RegisterResponse](t, body).ConfirmationSent)
}

func TestRegister_ValidationError(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/users", "", map[string]string{
		"username": "ab",
		"email":    "not-an-email",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, body, `"error"`)
}

func TestLogin_BadPassword(t *testing.T) {
	ts := helpers.NewTestServer(t)
	helpers.CreateUser(t, ts.DB, "someone", "password123", 2, true)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"login":    "someone",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/users/current-user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/users/current-user", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	// Публичные маршруты доступны без токена
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/posts", "", nil)
	assert.Equal(t, http.StatusOK, res.Code, body)
}
