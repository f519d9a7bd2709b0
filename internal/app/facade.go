package app

import (
	"context"
	"time"

	"github.com/grubline/vendordash/internal/adapter/vendorapi"
	"github.com/grubline/vendordash/internal/domain/model"
	"github.com/grubline/vendordash/internal/domain/repository"
	"github.com/grubline/vendordash/internal/usecase"
)

// DashboardFacade aggregates the use cases behind a single surface consumed
// by HTTP handlers and background workers.
type DashboardFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	orders   *usecase.OrdersUseCase
	sessions repository.SessionRepository
}

// NewDashboardFacade constructs DashboardFacade.
func NewDashboardFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, orders *usecase.OrdersUseCase, sessions repository.SessionRepository) *DashboardFacade {
	return &DashboardFacade{auth: auth, catalog: catalog, orders: orders, sessions: sessions}
}

func (f *DashboardFacade) SignIn(ctx context.Context, phone, password string) (*model.Session, *model.Vendor, error) {
	return f.auth.SignIn(ctx, phone, password)
}

func (f *DashboardFacade) SignUp(ctx context.Context, reg vendorapi.Registration) error {
	return f.auth.SignUp(ctx, reg)
}

func (f *DashboardFacade) SignOut(ctx context.Context, sessionID string) error {
	return f.auth.SignOut(ctx, sessionID)
}

func (f *DashboardFacade) ResolveSession(ctx context.Context, sessionID string) (*model.Session, *model.Vendor, error) {
	return f.auth.Resolve(ctx, sessionID)
}

func (f *DashboardFacade) Categories(ctx context.Context, vendorID string) ([]model.Category, error) {
	return f.catalog.Categories(ctx, vendorID)
}

func (f *DashboardFacade) AddCategory(ctx context.Context, vendorID, name string) ([]model.Category, error) {
	return f.catalog.AddCategory(ctx, vendorID, name)
}

func (f *DashboardFacade) DeleteCategory(ctx context.Context, vendorID, categoryID string) ([]model.Category, error) {
	return f.catalog.DeleteCategory(ctx, vendorID, categoryID)
}

func (f *DashboardFacade) Items(ctx context.Context, vendorID string) ([]model.Item, error) {
	return f.catalog.Items(ctx, vendorID)
}

func (f *DashboardFacade) AddItem(ctx context.Context, item vendorapi.NewItem) ([]model.Item, error) {
	return f.catalog.AddItem(ctx, item)
}

func (f *DashboardFacade) DeleteItem(ctx context.Context, vendorID, itemID string) ([]model.Item, error) {
	return f.catalog.DeleteItem(ctx, vendorID, itemID)
}

func (f *DashboardFacade) Orders(ctx context.Context, vendorID string) ([]model.Order, error) {
	return f.orders.List(ctx, vendorID)
}

func (f *DashboardFacade) OrderTabs(vendorID string) []usecase.TabCount {
	return f.orders.Tabs(vendorID)
}

func (f *DashboardFacade) AdvanceOrderToReady(ctx context.Context, vendorID, orderID string) (*model.Order, error) {
	return f.orders.AdvanceToReady(ctx, vendorID, orderID)
}

func (f *DashboardFacade) CompleteOrder(ctx context.Context, vendorID, orderID string) error {
	return f.orders.Complete(ctx, vendorID, orderID)
}

// RefreshOrders re-fetches a vendor's order snapshot. Used by the
// background refresher.
func (f *DashboardFacade) RefreshOrders(ctx context.Context, vendorID string) error {
	return f.orders.Refresh(ctx, vendorID)
}

// ActiveVendorIDs lists vendors with a live session.
func (f *DashboardFacade) ActiveVendorIDs(ctx context.Context, limit int) ([]string, error) {
	return f.sessions.ListActiveVendorIDs(ctx, time.Now(), limit)
}

// PurgeExpiredSessions deletes sessions past their expiry.
func (f *DashboardFacade) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return f.sessions.DeleteExpired(ctx, time.Now())
}
