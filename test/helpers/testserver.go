package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard_backend/internal/app"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestServer - приложение целиком поверх sqlite в памяти
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
	Mailer *app.MockEmailProvider
	Config *config.Config
}

// TestConfig - конфиг без внешних зависимостей
func TestConfig(t *testing.T) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Server.PublicURL = "http://testserver"
	cfg.Server.CORSOrigins = []string{"*"}
	cfg.JWT.Secret = "test_secret_key_for_tests_12345"
	cfg.JWT.TTL = 60
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.MediaPrefix = "/static"
	cfg.Upload.MaxSize = 1024 * 1024
	cfg.Pagination.PageSize = 10
	cfg.RateLimit.RequestsPerMinute = 6000
	cfg.RateLimit.Burst = 1000
	return cfg
}

// NewTestServer создает и настраивает тестовый сервер и БД.
// mutate позволяет поправить конфиг до сборки роутера.
func NewTestServer(t *testing.T, mutate ...func(*config.Config)) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init("test")

	cfg := TestConfig(t)
	for _, m := range mutate {
		m(cfg)
	}

	db := NewTestDB(t)
	mailer := &app.MockEmailProvider{}
	router, err := app.NewRouter(cfg, db, mailer)
	require.NoError(t, err, "Не удалось собрать роутер")

	return &TestServer{Router: router, DB: db, Mailer: mailer, Config: cfg}
}

// SendRequest отправляет JSON-запрос и возвращает ответ и тело
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Ошибка кодирования JSON для запроса")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.do(req, token)
}

// SendMultipart отправляет multipart/form-data; fileField пустой - без файла
func (ts *TestServer) SendMultipart(t *testing.T, method, path, token string, fields map[string]string, fileField, fileName string, content []byte) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return ts.do(req, token)
}

func (ts *TestServer) do(req *http.Request, token string) (*httptest.ResponseRecorder, string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.Router.ServeHTTP(rec, req)
	return rec, rec.Body.String()
}

// Login логинит пользователя через API и возвращает access token
func (ts *TestServer) Login(t *testing.T, login, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"login":    login,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.Code, "Логин должен быть успешным. Ответ: "+body)

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotEmpty(t, resp.AccessToken, "Токен не должен быть пустым")
	return resp.AccessToken
}

// CreateAndLoginUser создает подтвержденного пользователя и логинит его
func (ts *TestServer) CreateAndLoginUser(t *testing.T, username string, roleID uint) (string, *models.User) {
	t.Helper()
	user := CreateUser(t, ts.DB, username, "password123", roleID, true)
	return ts.Login(t, username, "password123"), user
}

// Decode разбирает JSON-ответ
func Decode[T any](t *testing.T, body string) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal([]byte(body), &out), "Не удалось распарсить JSON: "+body)
	return out
}
