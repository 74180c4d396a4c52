package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage - хранилище загруженных файлов. Пути относительные: "users/2024/05/<uuid>.png".
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, reader io.Reader) error

	// Delete removes a file at the given path
	Delete(ctx context.Context, path string) error
}

// Config holds storage configuration
type Config struct {
	Type     string // local
	BasePath string
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
