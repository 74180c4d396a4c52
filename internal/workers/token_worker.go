package workers

import (
	"context"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/repositories"

	"gorm.io/gorm"
)

// TokenCleanupWorker удаляет токены подтверждения старше TTL.
// Истекший токен и так не принимается при подтверждении, воркер только не дает таблице расти.
type TokenCleanupWorker struct {
	db        *gorm.DB
	tokenRepo repositories.TokenRepository
	ttl       time.Duration
	interval  time.Duration
}

func NewTokenCleanupWorker(db *gorm.DB, tokenRepo repositories.TokenRepository, ttl, interval time.Duration) *TokenCleanupWorker {
	return &TokenCleanupWorker{db: db, tokenRepo: tokenRepo, ttl: ttl, interval: interval}
}

// Start запускает очистку в фоне до отмены ctx. При ttl <= 0 ничего не делает.
func (w *TokenCleanupWorker) Start(ctx context.Context) {
	if w.ttl <= 0 || w.interval <= 0 {
		return
	}
	go w.run(ctx)
}

func (w *TokenCleanupWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Token cleanup worker stopped")
			return
		case <-ticker.C:
			w.Cleanup(ctx)
		}
	}
}

// Cleanup - один проход очистки
func (w *TokenCleanupWorker) Cleanup(ctx context.Context) int64 {
	deleted, err := w.tokenRepo.DeleteCreatedBefore(w.db.WithContext(ctx), time.Now().Add(-w.ttl))
	if err != nil {
		logger.CtxWithError(ctx, "failed to delete expired confirmation tokens", err)
		return 0
	}
	if deleted > 0 {
		logger.CtxInfo(ctx, "expired confirmation tokens deleted", "count", deleted)
	}
	return deleted
}
