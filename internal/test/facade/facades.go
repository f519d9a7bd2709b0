package facade

import (
	"context"
	"sync"

	"github.com/grubline/vendordash/internal/adapter/vendorapi"
	"github.com/grubline/vendordash/internal/domain/model"
	"github.com/grubline/vendordash/internal/usecase"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	SignInFn  func(context.Context, string, string) (*model.Session, *model.Vendor, error)
	SignUpFn  func(context.Context, vendorapi.Registration) error
	SignOutFn func(context.Context, string) error
}

func (s AuthFacadeStub) SignIn(ctx context.Context, phone, password string) (*model.Session, *model.Vendor, error) {
	if s.SignInFn != nil {
		return s.SignInFn(ctx, phone, password)
	}
	return &model.Session{ID: "session-1", VendorID: "v1"}, &model.Vendor{ID: "v1", Name: "Stub Vendor"}, nil
}

func (s AuthFacadeStub) SignUp(ctx context.Context, reg vendorapi.Registration) error {
	if s.SignUpFn != nil {
		return s.SignUpFn(ctx, reg)
	}
	return nil
}

func (s AuthFacadeStub) SignOut(ctx context.Context, sessionID string) error {
	if s.SignOutFn != nil {
		return s.SignOutFn(ctx, sessionID)
	}
	return nil
}

// CatalogFacadeStub simulates category and item operations.
type CatalogFacadeStub struct {
	CategoriesFn     func(context.Context, string) ([]model.Category, error)
	AddCategoryFn    func(context.Context, string, string) ([]model.Category, error)
	DeleteCategoryFn func(context.Context, string, string) ([]model.Category, error)
	ItemsFn          func(context.Context, string) ([]model.Item, error)
	AddItemFn        func(context.Context, vendorapi.NewItem) ([]model.Item, error)
	DeleteItemFn     func(context.Context, string, string) ([]model.Item, error)
}

func (s CatalogFacadeStub) Categories(ctx context.Context, vendorID string) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx, vendorID)
	}
	return []model.Category{{ID: "c1", Name: "Snacks", VendorID: vendorID}}, nil
}

func (s CatalogFacadeStub) AddCategory(ctx context.Context, vendorID, name string) ([]model.Category, error) {
	if s.AddCategoryFn != nil {
		return s.AddCategoryFn(ctx, vendorID, name)
	}
	return []model.Category{{ID: "c1", Name: name, VendorID: vendorID}}, nil
}

func (s CatalogFacadeStub) DeleteCategory(ctx context.Context, vendorID, categoryID string) ([]model.Category, error) {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, vendorID, categoryID)
	}
	return nil, nil
}

func (s CatalogFacadeStub) Items(ctx context.Context, vendorID string) ([]model.Item, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx, vendorID)
	}
	return []model.Item{{ID: "i1", Name: "Samosa", Price: 12, VendorID: vendorID}}, nil
}

func (s CatalogFacadeStub) AddItem(ctx context.Context, item vendorapi.NewItem) ([]model.Item, error) {
	if s.AddItemFn != nil {
		return s.AddItemFn(ctx, item)
	}
	return []model.Item{{ID: "i1", Name: item.Name, VendorID: item.VendorID}}, nil
}

func (s CatalogFacadeStub) DeleteItem(ctx context.Context, vendorID, itemID string) ([]model.Item, error) {
	if s.DeleteItemFn != nil {
		return s.DeleteItemFn(ctx, vendorID, itemID)
	}
	return nil, nil
}

// OrderFacadeStub simulates order snapshot and lifecycle operations.
type OrderFacadeStub struct {
	OrdersFn   func(context.Context, string) ([]model.Order, error)
	TabsFn     func(string) []usecase.TabCount
	AdvanceFn  func(context.Context, string, string) (*model.Order, error)
	CompleteFn func(context.Context, string, string) error
}

func (s OrderFacadeStub) Orders(ctx context.Context, vendorID string) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, vendorID)
	}
	return []model.Order{{ID: "o1", VendorID: vendorID, Status: model.OrderStatusPending}}, nil
}

func (s OrderFacadeStub) OrderTabs(vendorID string) []usecase.TabCount {
	if s.TabsFn != nil {
		return s.TabsFn(vendorID)
	}
	tabs := make([]usecase.TabCount, 0, len(model.OrderStatuses))
	for _, status := range model.OrderStatuses {
		count := 0
		if status == model.OrderStatusPending {
			count = 1
		}
		tabs = append(tabs, usecase.TabCount{Status: status, Count: count, Color: model.StatusColor(status)})
	}
	return tabs
}

func (s OrderFacadeStub) AdvanceOrderToReady(ctx context.Context, vendorID, orderID string) (*model.Order, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, vendorID, orderID)
	}
	return &model.Order{ID: orderID, VendorID: vendorID, Status: model.OrderStatusReady}, nil
}

func (s OrderFacadeStub) CompleteOrder(ctx context.Context, vendorID, orderID string) error {
	if s.CompleteFn != nil {
		return s.CompleteFn(ctx, vendorID, orderID)
	}
	return nil
}

// DashboardFacadeStub aggregates the stubs for router-level tests.
type DashboardFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	OrderFacadeStub
}

// SessionResolverStub controls what the route guard sees for a cookie.
type SessionResolverStub struct {
	Session *model.Session
	Vendor  *model.Vendor
	Err     error
}

func (s SessionResolverStub) ResolveSession(ctx context.Context, sessionID string) (*model.Session, *model.Vendor, error) {
	if s.Err != nil {
		return nil, nil, s.Err
	}
	if s.Session != nil {
		return s.Session, s.Vendor, nil
	}
	return &model.Session{ID: sessionID, VendorID: "v1"}, &model.Vendor{ID: "v1", Name: "Stub Vendor"}, nil
}

// RefresherFacadeStub mimics worker interactions with the dashboard facade.
type RefresherFacadeStub struct {
	VendorsFn func(context.Context, int) ([]string, error)
	RefreshFn func(context.Context, string) error

	mu        sync.Mutex
	Refreshed []string
}

func (s *RefresherFacadeStub) ActiveVendorIDs(ctx context.Context, limit int) ([]string, error) {
	if s.VendorsFn != nil {
		return s.VendorsFn(ctx, limit)
	}
	return nil, nil
}

func (s *RefresherFacadeStub) RefreshOrders(ctx context.Context, vendorID string) error {
	if s.RefreshFn != nil {
		return s.RefreshFn(ctx, vendorID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Refreshed = append(s.Refreshed, vendorID)
	return nil
}

// RefreshedVendors returns a copy of the recorded refresh calls.
func (s *RefresherFacadeStub) RefreshedVendors() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.Refreshed))
	copy(out, s.Refreshed)
	return out
}
