package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveDelete(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	s, err := NewLocalStorage(Config{BasePath: base})
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "applies/2024/05/cv.pdf", strings.NewReader("%PDF-1.4")))

	fullPath := filepath.Join(base, "applies", "2024", "05", "cv.pdf")
	content, err := os.ReadFile(fullPath)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(content))

	require.NoError(t, s.Delete(ctx, "applies/2024/05/cv.pdf"))
	assert.NoFileExists(t, fullPath)

	// повторное удаление - не ошибка
	assert.NoError(t, s.Delete(ctx, "applies/2024/05/cv.pdf"))
}

type failingReader struct{ sent bool }

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.sent {
		r.sent = true
		return copy(p, "partial"), nil
	}
	return 0, errors.New("connection reset")
}

func TestLocalStorage_SaveRemovesPartialFile(t *testing.T) {
	base := t.TempDir()
	s, err := NewLocalStorage(Config{BasePath: base})
	require.NoError(t, err)

	err = s.Save(context.Background(), "users/2024/05/avatar.png", &failingReader{})
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(base, "users", "2024", "05", "avatar.png"))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	err = s.Save(context.Background(), "../escape.txt", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestNewStorage_UnsupportedType(t *testing.T) {
	_, err := NewStorage(Config{Type: "s3"})
	assert.Error(t, err)
}
