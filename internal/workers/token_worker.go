package workers

import (
	"context"
	"time"

	"hirelane_backend/internal/logger"
	"hirelane_backend/internal/repositories"
)

// TokenWorker purges expired refresh tokens so the table does not grow
// without bound.
type TokenWorker struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	interval         time.Duration
}

func NewTokenWorker(refreshTokenRepo repositories.RefreshTokenRepository) *TokenWorker {
	return &TokenWorker{
		refreshTokenRepo: refreshTokenRepo,
		interval:         6 * time.Hour,
	}
}

func (w *TokenWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.purge()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Token worker stopped")
			return
		case <-ticker.C:
			w.purge()
		}
	}
}

func (w *TokenWorker) purge() {
	deleted, err := w.refreshTokenRepo.DeleteExpired()
	if err != nil {
		logger.WithError(err).Error("Refresh token purge failed")
		return
	}
	if deleted > 0 {
		logger.Info("Purged expired refresh tokens", "count", deleted)
	}
}
