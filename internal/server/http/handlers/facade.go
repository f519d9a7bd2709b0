package handlers

import (
	"context"

	"github.com/grubline/vendordash/internal/adapter/vendorapi"
	"github.com/grubline/vendordash/internal/domain/model"
	"github.com/grubline/vendordash/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	SignIn(ctx context.Context, phone, password string) (*model.Session, *model.Vendor, error)
	SignUp(ctx context.Context, reg vendorapi.Registration) error
	SignOut(ctx context.Context, sessionID string) error
}

// CatalogFacade encapsulates category and item operations exposed via HTTP.
type CatalogFacade interface {
	Categories(ctx context.Context, vendorID string) ([]model.Category, error)
	AddCategory(ctx context.Context, vendorID, name string) ([]model.Category, error)
	DeleteCategory(ctx context.Context, vendorID, categoryID string) ([]model.Category, error)
	Items(ctx context.Context, vendorID string) ([]model.Item, error)
	AddItem(ctx context.Context, item vendorapi.NewItem) ([]model.Item, error)
	DeleteItem(ctx context.Context, vendorID, itemID string) ([]model.Item, error)
}

// OrderFacade provides order snapshot and lifecycle operations.
type OrderFacade interface {
	Orders(ctx context.Context, vendorID string) ([]model.Order, error)
	OrderTabs(vendorID string) []usecase.TabCount
	AdvanceOrderToReady(ctx context.Context, vendorID, orderID string) (*model.Order, error)
	CompleteOrder(ctx context.Context, vendorID, orderID string) error
}

// DashboardFacade aggregates the full set of operations used across handlers.
type DashboardFacade interface {
	AuthFacade
	CatalogFacade
	OrderFacade
}
