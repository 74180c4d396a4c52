package services

import (
	"errors"
	"fmt"
	"testing"

	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaURL(t *testing.T) {
	tests := []struct {
		name                 string
		origin, prefix, path string
		want                 string
	}{
		{"empty path", "http://host", "/media", "", ""},
		{"relative path", "http://host", "/media", "cv/2024/05/a.pdf", "http://host/media/cv/2024/05/a.pdf"},
		{"trailing slashes", "http://host/", "/media/", "users/a.png", "http://host/media/users/a.png"},
		{"no origin", "", "media", "users/a.png", "/media/users/a.png"},
		{"no prefix", "http://host", "", "users/a.png", "http://host/users/a.png"},
		{"absolute url kept", "http://host", "/media", "https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{"rooted path kept", "http://host", "/media", "/static/a.png", "/static/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MediaURL(tt.origin, tt.prefix, tt.path))
		})
	}
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := parseDate(" ")
	require.NoError(t, err)
	assert.Nil(t, d)
	assert.Nil(t, formatDate(nil))

	d, err = parseDate("2024-02-29")
	require.NoError(t, err)
	require.NotNil(t, formatDate(d))
	assert.Equal(t, "2024-02-29", *formatDate(d))

	_, err = parseDate("29.02.2024")
	assert.Error(t, err)
}

func TestHandleRepoError(t *testing.T) {
	assert.Nil(t, handleRepoError(nil))

	wrapped := fmt.Errorf("load post: %w", repositories.ErrPostNotFound)
	assert.Equal(t, apperrors.ErrPostNotFound, handleRepoError(wrapped))

	// AppError проходит без изменений
	assert.Equal(t, apperrors.ErrPermissionDenied, handleRepoError(apperrors.ErrPermissionDenied))

	dup := handleRepoError(fmt.Errorf("%w: UNIQUE constraint failed", repositories.ErrDuplicate))
	appErr, ok := apperrors.AsAppError(dup)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)

	other, ok := apperrors.AsAppError(handleRepoError(errors.New("connection reset")))
	require.True(t, ok)
	assert.Equal(t, 500, other.HTTPCode)
}

func TestRequest_AnonymousDefaults(t *testing.T) {
	var r Request
	assert.NotNil(t, r.Context())
	assert.Zero(t, r.UserID())
	assert.False(t, r.Authenticated())
}
