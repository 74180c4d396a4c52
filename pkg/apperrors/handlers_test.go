package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, debug bool, err error) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	handler := &GinErrorHandler{Debug: debug}
	handler.HandleGinError(c, err)

	var body struct {
		Error map[string]any `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body.Error
}

func TestHandleGinError_Envelope(t *testing.T) {
	code, body := render(t, false, ErrPostNotFound)

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "post", body["domain"])
	assert.Equal(t, "Post not found", body["message"])
	assert.NotContains(t, body, "details")
}

func TestHandleGinError_ValidationDetails(t *testing.T) {
	code, body := render(t, false, ValidationError(map[string]string{"title": "This field is required"}))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, map[string]any{"title": "This field is required"}, body["details"])
}

func TestHandleGinError_HidesInternalsOutsideDebug(t *testing.T) {
	cause := errors.New("pq: relation does not exist")

	code, body := render(t, false, PersistenceError(cause))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body["message"])

	_, body = render(t, true, PersistenceError(cause))
	assert.Equal(t, "Database operation failed", body["message"])

	// Обычная ошибка превращается во внутреннюю
	code, _ = render(t, false, cause)
	assert.Equal(t, http.StatusInternalServerError, code)
}

func TestWithDetails_DoesNotMutateShared(t *testing.T) {
	withDetails := ErrPostNotFound.WithDetails("id=5")

	assert.Nil(t, ErrPostNotFound.Details)
	assert.Equal(t, "id=5", withDetails.Details)
	assert.True(t, errors.Is(PersistenceError(ErrPostNotFound), ErrPostNotFound))
}
