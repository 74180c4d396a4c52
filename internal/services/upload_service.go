package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"jobboard_backend/internal/imageprocessor"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// ============================================
// UPLOAD SERVICE
// ============================================

// UploadKind - назначение файла, определяет каталог и допустимые типы
type UploadKind string

const (
	UploadUserAvatar    UploadKind = "users"
	UploadCompanyAvatar UploadKind = "companies"
	UploadCV            UploadKind = "cv"
)

var imageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

var documentTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.oasis.opendocument.text",
	"text/plain",
}

type UploadService interface {
	// Store проверяет размер и содержимое файла и возвращает относительный путь в хранилище
	Store(ctx context.Context, kind UploadKind, file *multipart.FileHeader) (string, error)
	// Remove удаляет файл; ошибка только логируется
	Remove(ctx context.Context, path string)
}

type uploadService struct {
	storage storage.Storage
	images  *imageprocessor.Processor
	maxSize int64
	allowed map[UploadKind][]string
}

// NewUploadService: images может быть nil, тогда аватары сохраняются без уменьшения
func NewUploadService(store storage.Storage, images *imageprocessor.Processor, maxSize int64) UploadService {
	return &uploadService{
		storage: store,
		images:  images,
		maxSize: maxSize,
		allowed: map[UploadKind][]string{
			UploadUserAvatar:    imageTypes,
			UploadCompanyAvatar: imageTypes,
			UploadCV:            documentTypes,
		},
	}
}

func (s *uploadService) Store(ctx context.Context, kind UploadKind, file *multipart.FileHeader) (string, error) {
	allowed, ok := s.allowed[kind]
	if !ok {
		return "", apperrors.InternalError(fmt.Errorf("unknown upload kind: %s", kind))
	}
	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", apperrors.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", apperrors.NewBadRequestError("failed to read uploaded file")
	}
	defer src.Close()

	// Тип определяется по содержимому, а не по имени файла
	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", apperrors.NewBadRequestError("failed to read uploaded file")
	}
	if !matchesAny(mtype, allowed) {
		logger.CtxWarn(ctx, "rejected upload", "kind", kind, "mime", mtype.String(), "filename", file.Filename)
		return "", apperrors.ErrInvalidFileType
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", apperrors.InternalError(err)
	}

	var content io.Reader = src
	if kind != UploadCV && s.images != nil && s.images.Supports(mtype.String()) {
		resized, err := s.images.Fit(src)
		if err != nil {
			logger.CtxWarn(ctx, "rejected upload", "kind", kind, "mime", mtype.String(), "error", err.Error())
			return "", apperrors.ErrInvalidFileType
		}
		if resized != nil {
			content = resized
		} else if _, err := src.Seek(0, io.SeekStart); err != nil {
			return "", apperrors.InternalError(err)
		}
	}

	path := fmt.Sprintf("%s/%s/%s%s", kind, time.Now().UTC().Format("2006/01"), uuid.NewString(), mtype.Extension())
	if err := s.storage.Save(ctx, path, content); err != nil {
		return "", apperrors.InternalError(fmt.Errorf("failed to save file to storage: %w", err))
	}

	logger.CtxInfo(ctx, "file stored", "kind", kind, "path", path, "size", file.Size, "mime", mtype.String())
	return path, nil
}

func (s *uploadService) Remove(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.storage.Delete(ctx, path); err != nil {
		logger.CtxWithError(ctx, "failed to delete file from storage", err, "path", path)
	}
}

func matchesAny(mtype *mimetype.MIME, allowed []string) bool {
	for _, a := range allowed {
		if mtype.Is(a) {
			return true
		}
	}
	return false
}
