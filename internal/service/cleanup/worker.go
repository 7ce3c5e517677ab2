package cleanup

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/puissance4/backend/internal/service/game"
)

// Worker periodically drops finished sessions from a SessionManager.
type Worker struct {
	SessionManager *game.SessionManager
	Interval       time.Duration
	MaxAge         time.Duration
	logger         *zap.Logger
}

func NewWorker(sm *game.SessionManager, interval, maxAge time.Duration, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Worker{SessionManager: sm, Interval: interval, MaxAge: maxAge, logger: logger}
}

// Start runs one cleanup right away and then one per Interval until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.Interval)
		defer ticker.Stop()

		w.runCleanup()
		for {
			select {
			case <-ctx.Done():
				w.logger.Debug("[CLEANUP] Background worker stopped")
				return
			case <-ticker.C:
				w.runCleanup()
			}
		}
	}()
	w.logger.Info("[CLEANUP] Background worker started", zap.Duration("interval", w.Interval), zap.Duration("max_age", w.MaxAge))
}

func (w *Worker) runCleanup() int {
	removed := w.SessionManager.CleanupFinished(w.MaxAge)
	if removed > 0 {
		w.logger.Info("[CLEANUP] Removed finished sessions", zap.Int("count", removed))
	}
	return removed
}
