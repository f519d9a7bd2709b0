package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/grubline/vendordash/internal/adapter/vendorapi"
	domainErrors "github.com/grubline/vendordash/internal/domain/errors"
	"github.com/grubline/vendordash/internal/domain/model"
	"github.com/grubline/vendordash/internal/test"
)

func ordersFixture() []model.Order {
	return []model.Order{
		{ID: "o1", VendorID: "v1", Status: model.OrderStatusPending},
		{ID: "o2", VendorID: "v1", Status: model.OrderStatusPending},
		{ID: "o3", VendorID: "v1", Status: model.OrderStatusReady},
		{ID: "o4", VendorID: "v1", Status: model.OrderStatusDelivered},
	}
}

func newOrdersUseCaseWithSnapshot(t *testing.T, api test.VendorAPIStub) *OrdersUseCase {
	t.Helper()
	if api.OrdersFn == nil {
		api.OrdersFn = func(context.Context, string) ([]model.Order, error) {
			return ordersFixture(), nil
		}
	}
	uc := NewOrdersUseCase(api)
	if _, err := uc.List(context.Background(), "v1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return uc
}

func TestListReplacesSnapshot(t *testing.T) {
	uc := newOrdersUseCaseWithSnapshot(t, test.VendorAPIStub{})

	snapshot := uc.Snapshot("v1")
	if len(snapshot) != 4 {
		t.Fatalf("expected 4 orders in snapshot, got %d", len(snapshot))
	}

	uc.api = test.VendorAPIStub{
		OrdersFn: func(context.Context, string) ([]model.Order, error) {
			return []model.Order{{ID: "o9", VendorID: "v1", Status: model.OrderStatusPending}}, nil
		},
	}
	if _, err := uc.List(context.Background(), "v1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snapshot = uc.Snapshot("v1")
	if len(snapshot) != 1 || snapshot[0].ID != "o9" {
		t.Fatalf("snapshot was not replaced: %+v", snapshot)
	}
}

func TestListFailureKeepsSnapshot(t *testing.T) {
	uc := newOrdersUseCaseWithSnapshot(t, test.VendorAPIStub{})

	apiErr := &vendorapi.APIError{StatusCode: 502}
	uc.api = test.VendorAPIStub{
		OrdersFn: func(context.Context, string) ([]model.Order, error) {
			return nil, apiErr
		},
	}
	if _, err := uc.List(context.Background(), "v1"); !errors.Is(err, apiErr) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if len(uc.Snapshot("v1")) != 4 {
		t.Fatal("failed fetch must not clobber the snapshot")
	}
}

func TestTabsPartitionSnapshot(t *testing.T) {
	uc := newOrdersUseCaseWithSnapshot(t, test.VendorAPIStub{})

	tabs := uc.Tabs("v1")
	if len(tabs) != len(model.OrderStatuses) {
		t.Fatalf("expected %d tabs, got %d", len(model.OrderStatuses), len(tabs))
	}

	counts := make(map[model.OrderStatus]int)
	total := 0
	for _, tab := range tabs {
		counts[tab.Status] = tab.Count
		total += tab.Count
		if tab.Color != model.StatusColor(tab.Status) {
			t.Fatalf("tab %s carries color %q", tab.Status, tab.Color)
		}
	}
	if counts[model.OrderStatusPending] != 2 || counts[model.OrderStatusReady] != 1 || counts[model.OrderStatusDelivered] != 1 {
		t.Fatalf("unexpected counts %v", counts)
	}
	if total != len(uc.Snapshot("v1")) {
		t.Fatalf("tab counts sum to %d, snapshot holds %d", total, len(uc.Snapshot("v1")))
	}
}

func TestAdvanceToReadyPatchesOnlyTargetOrder(t *testing.T) {
	var sentStatus model.OrderStatus
	api := test.VendorAPIStub{
		UpdateOrderStatusFn: func(_ context.Context, orderID string, status model.OrderStatus) error {
			if orderID != "o1" {
				t.Fatalf("unexpected order %q sent upstream", orderID)
			}
			sentStatus = status
			return nil
		},
	}
	uc := newOrdersUseCaseWithSnapshot(t, api)

	order, err := uc.AdvanceToReady(context.Background(), "v1", "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sentStatus != model.OrderStatusReady {
		t.Fatalf("unexpected status sent upstream %q", sentStatus)
	}
	if order.Status != model.OrderStatusReady {
		t.Fatalf("unexpected returned order %+v", order)
	}

	for _, o := range uc.Snapshot("v1") {
		switch o.ID {
		case "o1":
			if o.Status != model.OrderStatusReady {
				t.Fatalf("o1 not patched: %+v", o)
			}
		case "o2":
			if o.Status != model.OrderStatusPending {
				t.Fatalf("o2 must stay pending: %+v", o)
			}
		}
	}
}

func TestAdvanceToReadyRejectsNonPending(t *testing.T) {
	uc := newOrdersUseCaseWithSnapshot(t, test.VendorAPIStub{
		UpdateOrderStatusFn: func(context.Context, string, model.OrderStatus) error {
			t.Fatal("upstream must not be called for a refused transition")
			return nil
		},
	})

	if _, err := uc.AdvanceToReady(context.Background(), "v1", "o3"); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := uc.AdvanceToReady(context.Background(), "v1", "o4"); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestAdvanceToReadyUnknownOrder(t *testing.T) {
	uc := newOrdersUseCaseWithSnapshot(t, test.VendorAPIStub{})

	if _, err := uc.AdvanceToReady(context.Background(), "v1", "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdvanceToReadyFailureLeavesSnapshot(t *testing.T) {
	apiErr := &vendorapi.APIError{StatusCode: 500, Message: "backend down"}
	uc := newOrdersUseCaseWithSnapshot(t, test.VendorAPIStub{
		UpdateOrderStatusFn: func(context.Context, string, model.OrderStatus) error {
			return apiErr
		},
	})

	if _, err := uc.AdvanceToReady(context.Background(), "v1", "o1"); !errors.Is(err, apiErr) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	for _, o := range uc.Snapshot("v1") {
		if o.ID == "o1" && o.Status != model.OrderStatusPending {
			t.Fatalf("snapshot patched despite upstream failure: %+v", o)
		}
	}
}

func TestAdvanceToReadyRefusesInFlightOrder(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	uc := newOrdersUseCaseWithSnapshot(t, test.VendorAPIStub{
		UpdateOrderStatusFn: func(context.Context, string, model.OrderStatus) error {
			close(started)
			<-release
			return nil
		},
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := uc.AdvanceToReady(context.Background(), "v1", "o1"); err != nil {
			t.Errorf("unexpected error from first transition: %v", err)
		}
	}()

	<-started
	if _, err := uc.AdvanceToReady(context.Background(), "v1", "o1"); !errors.Is(err, domainErrors.ErrTransitionInFlight) {
		t.Fatalf("expected ErrTransitionInFlight, got %v", err)
	}
	close(release)
	wg.Wait()
}

func TestAdvanceSurvivesSnapshotReplacement(t *testing.T) {
	uc := newOrdersUseCaseWithSnapshot(t, test.VendorAPIStub{
		UpdateOrderStatusFn: func(context.Context, string, model.OrderStatus) error {
			return nil
		},
	})

	// Simulate a refresh landing between the upstream confirm and the patch.
	uc.mu.Lock()
	uc.snapshots["v1"] = []model.Order{{ID: "o2", VendorID: "v1", Status: model.OrderStatusPending}}
	uc.mu.Unlock()

	if order := uc.patchStatus("v1", "o1", model.OrderStatusReady); order != nil {
		t.Fatalf("patch of a vanished order must be a no-op, got %+v", order)
	}
}

func TestCompleteRemovesOrder(t *testing.T) {
	var completed string
	uc := newOrdersUseCaseWithSnapshot(t, test.VendorAPIStub{
		CompleteOrderFn: func(_ context.Context, orderID string) error {
			completed = orderID
			return nil
		},
	})

	if err := uc.Complete(context.Background(), "v1", "o3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if completed != "o3" {
		t.Fatalf("unexpected upstream call %q", completed)
	}
	for _, o := range uc.Snapshot("v1") {
		if o.ID == "o3" {
			t.Fatal("completed order must leave the snapshot")
		}
	}
	if len(uc.Snapshot("v1")) != 3 {
		t.Fatalf("expected 3 remaining orders, got %d", len(uc.Snapshot("v1")))
	}
}

func TestCompleteUnknownOrder(t *testing.T) {
	uc := newOrdersUseCaseWithSnapshot(t, test.VendorAPIStub{})

	if err := uc.Complete(context.Background(), "v1", "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCompleteFailureKeepsOrder(t *testing.T) {
	apiErr := &vendorapi.APIError{StatusCode: 500}
	uc := newOrdersUseCaseWithSnapshot(t, test.VendorAPIStub{
		CompleteOrderFn: func(context.Context, string) error {
			return apiErr
		},
	})

	if err := uc.Complete(context.Background(), "v1", "o3"); !errors.Is(err, apiErr) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if len(uc.Snapshot("v1")) != 4 {
		t.Fatal("failed completion must not shrink the snapshot")
	}
}
