package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// SessionPurger removes sessions past their expiry.
type SessionPurger interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// SessionJanitor sweeps expired sessions on an interval.
type SessionJanitor struct {
	purger   SessionPurger
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSessionJanitor constructs the janitor.
func NewSessionJanitor(purger SessionPurger, interval time.Duration, logger *slog.Logger) *SessionJanitor {
	return &SessionJanitor{purger: purger, interval: interval, logger: logger}
}

// Start launches the sweep loop.
func (j *SessionJanitor) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	j.wg.Add(1)
	go j.run(runCtx)
}

// Stop waits for the sweep loop to finish.
func (j *SessionJanitor) Stop() {
	j.mu.Lock()
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.mu.Unlock()

	j.wg.Wait()
}

func (j *SessionJanitor) run(ctx context.Context) {
	defer j.wg.Done()
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := j.purger.PurgeExpiredSessions(ctx)
			if err != nil {
				j.logger.Error("purge expired sessions failed", slog.String("error", err.Error()))
				continue
			}
			if removed > 0 {
				j.logger.Info("purged expired sessions", slog.Int64("removed", removed))
			}
		}
	}
}
