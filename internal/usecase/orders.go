package usecase

import (
	"context"
	"sync"

	"github.com/grubline/vendordash/internal/adapter/vendorapi"
	domainErrors "github.com/grubline/vendordash/internal/domain/errors"
	"github.com/grubline/vendordash/internal/domain/model"
)

// TabCount is the badge shown on one status tab.
type TabCount struct {
	Status model.OrderStatus
	Count  int
	Color  string
}

// OrdersUseCase holds the per-vendor order snapshot and issues the single
// client-side transition the lifecycle table allows. The snapshot is never
// mutated before the vendor API confirms a change.
type OrdersUseCase struct {
	api vendorapi.Client

	mu        sync.Mutex
	snapshots map[string][]model.Order
	inFlight  map[string]struct{}
}

// NewOrdersUseCase constructs OrdersUseCase.
func NewOrdersUseCase(api vendorapi.Client) *OrdersUseCase {
	return &OrdersUseCase{
		api:       api,
		snapshots: make(map[string][]model.Order),
		inFlight:  make(map[string]struct{}),
	}
}

// List fetches the vendor's orders and replaces the snapshot.
func (u *OrdersUseCase) List(ctx context.Context, vendorID string) ([]model.Order, error) {
	orders, err := u.api.OrdersByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	u.mu.Lock()
	u.snapshots[vendorID] = orders
	u.mu.Unlock()
	return copySlice(orders), nil
}

// Refresh re-fetches the snapshot. Used by the background refresher; the
// request path uses List.
func (u *OrdersUseCase) Refresh(ctx context.Context, vendorID string) error {
	_, err := u.List(ctx, vendorID)
	return err
}

// Snapshot returns the cached orders without touching the vendor API.
func (u *OrdersUseCase) Snapshot(vendorID string) []model.Order {
	u.mu.Lock()
	defer u.mu.Unlock()
	return copySlice(u.snapshots[vendorID])
}

// Tabs partitions the snapshot into the six status buckets. Every order
// lands in exactly one bucket, so the counts sum to the snapshot size.
func (u *OrdersUseCase) Tabs(vendorID string) []TabCount {
	u.mu.Lock()
	defer u.mu.Unlock()

	counts := make(map[model.OrderStatus]int, len(model.OrderStatuses))
	for _, order := range u.snapshots[vendorID] {
		counts[order.Status]++
	}

	tabs := make([]TabCount, 0, len(model.OrderStatuses))
	for _, status := range model.OrderStatuses {
		tabs = append(tabs, TabCount{
			Status: status,
			Count:  counts[status],
			Color:  model.StatusColor(status),
		})
	}
	return tabs
}

// AdvanceToReady moves a pending order to ready. The transition table is
// consulted before anything is sent upstream, a second request for an order
// with a transition already in flight is refused, and the snapshot is
// patched only after the backend confirms.
func (u *OrdersUseCase) AdvanceToReady(ctx context.Context, vendorID, orderID string) (*model.Order, error) {
	if err := u.beginTransition(vendorID, orderID, model.OrderStatusReady); err != nil {
		return nil, err
	}
	defer u.endTransition(orderID)

	if err := u.api.UpdateOrderStatus(ctx, orderID, model.OrderStatusReady); err != nil {
		return nil, err
	}

	return u.patchStatus(vendorID, orderID, model.OrderStatusReady), nil
}

// Complete marks an order completed upstream and removes it from the
// snapshot on success.
func (u *OrdersUseCase) Complete(ctx context.Context, vendorID, orderID string) error {
	u.mu.Lock()
	if _, busy := u.inFlight[orderID]; busy {
		u.mu.Unlock()
		return domainErrors.ErrTransitionInFlight
	}
	if u.find(vendorID, orderID) == nil {
		u.mu.Unlock()
		return domainErrors.ErrNotFound
	}
	u.inFlight[orderID] = struct{}{}
	u.mu.Unlock()
	defer u.endTransition(orderID)

	if err := u.api.CompleteOrder(ctx, orderID); err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	kept := u.snapshots[vendorID][:0:0]
	for _, order := range u.snapshots[vendorID] {
		if order.ID != orderID {
			kept = append(kept, order)
		}
	}
	u.snapshots[vendorID] = kept
	return nil
}

func (u *OrdersUseCase) beginTransition(vendorID, orderID string, to model.OrderStatus) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, busy := u.inFlight[orderID]; busy {
		return domainErrors.ErrTransitionInFlight
	}

	order := u.find(vendorID, orderID)
	if order == nil {
		return domainErrors.ErrNotFound
	}
	if !model.CanTransition(order.Status, to) {
		return domainErrors.ErrInvalidTransition
	}

	u.inFlight[orderID] = struct{}{}
	return nil
}

func (u *OrdersUseCase) endTransition(orderID string) {
	u.mu.Lock()
	delete(u.inFlight, orderID)
	u.mu.Unlock()
}

// patchStatus updates the order in place. If a refresh replaced the
// snapshot and the order is gone, the write is a no-op.
func (u *OrdersUseCase) patchStatus(vendorID, orderID string, status model.OrderStatus) *model.Order {
	u.mu.Lock()
	defer u.mu.Unlock()

	snapshot := u.snapshots[vendorID]
	for i := range snapshot {
		if snapshot[i].ID == orderID {
			snapshot[i].Status = status
			patched := snapshot[i]
			return &patched
		}
	}
	return nil
}

// find must be called with the mutex held.
func (u *OrdersUseCase) find(vendorID, orderID string) *model.Order {
	snapshot := u.snapshots[vendorID]
	for i := range snapshot {
		if snapshot[i].ID == orderID {
			return &snapshot[i]
		}
	}
	return nil
}
