package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Purger removes expired sessions from a store that does not expire them itself.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// StartSessionPurger runs purger every interval until ctx is done. The
// returned channel is closed once the loop has exited.
func StartSessionPurger(ctx context.Context, purger Purger, interval time.Duration, logger *zap.Logger) <-chan struct{} {
	done := make(chan struct{})
	if purger == nil || interval <= 0 {
		close(done)
		return done
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := purger.PurgeExpired(ctx)
				if err != nil {
					logger.Warn("purge expired sessions", zap.Error(err))
					continue
				}
				if n > 0 {
					logger.Info("purged expired sessions", zap.Int64("count", n))
				}
			}
		}
	}()
	return done
}
