package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DashboardFacade exposes the subset of application functionality required
// by the refresher.
type DashboardFacade interface {
	ActiveVendorIDs(ctx context.Context, limit int) ([]string, error)
	RefreshOrders(ctx context.Context, vendorID string) error
}

// OrderRefresher periodically re-fetches order snapshots for vendors with a
// live session, so tab counts converge between explicit page loads.
type OrderRefresher struct {
	facade       DashboardFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan string
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewOrderRefresher constructs the refresher worker pool.
func NewOrderRefresher(facade DashboardFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *OrderRefresher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &OrderRefresher{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan string, batchSize*workers),
	}
}

// Start launches background processing.
func (r *OrderRefresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx)
	}

	r.wg.Add(1)
	go r.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (r *OrderRefresher) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *OrderRefresher) dispatch(ctx context.Context) {
	defer r.wg.Done()
	defer close(r.jobs)
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.fetchAndDispatch(ctx)
		}
	}
}

func (r *OrderRefresher) fetchAndDispatch(ctx context.Context) {
	vendorIDs, err := r.facade.ActiveVendorIDs(ctx, r.batchSize)
	if err != nil {
		r.logger.Error("list active vendors failed", slog.String("error", err.Error()))
		return
	}
	for _, vendorID := range vendorIDs {
		select {
		case <-ctx.Done():
			return
		case r.jobs <- vendorID:
		}
	}
}

func (r *OrderRefresher) worker(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case vendorID, ok := <-r.jobs:
			if !ok {
				return
			}
			if err := r.facade.RefreshOrders(ctx, vendorID); err != nil {
				r.logger.Error("order snapshot refresh failed",
					slog.String("vendor", vendorID),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
