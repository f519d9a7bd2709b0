package test

import (
	"context"
	"encoding/json"

	"github.com/grubline/vendordash/internal/adapter/vendorapi"
	"github.com/grubline/vendordash/internal/domain/model"
)

// VendorAPIStub provides controllable behaviour for the vendor API client.
// Unset functions answer with benign defaults.
type VendorAPIStub struct {
	LoginFn             func(context.Context, string, string) (*vendorapi.Credentials, error)
	RegisterFn          func(context.Context, vendorapi.Registration) error
	CategoriesFn        func(context.Context, string) ([]model.Category, error)
	AddCategoryFn       func(context.Context, string, string) error
	DeleteCategoryFn    func(context.Context, string) error
	ItemsFn             func(context.Context, string) ([]model.Item, error)
	AddItemFn           func(context.Context, vendorapi.NewItem) error
	DeleteItemFn        func(context.Context, string) error
	OrdersFn            func(context.Context, string) ([]model.Order, error)
	UpdateOrderStatusFn func(context.Context, string, model.OrderStatus) error
	CompleteOrderFn     func(context.Context, string) error
}

func (s VendorAPIStub) Login(ctx context.Context, phone, password string) (*vendorapi.Credentials, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, phone, password)
	}
	return &vendorapi.Credentials{
		AccessToken:  "tok",
		RefreshToken: "refresh",
		UserData:     json.RawMessage(`{"user_id":"v1","name":"Stub Vendor"}`),
	}, nil
}

func (s VendorAPIStub) Register(ctx context.Context, reg vendorapi.Registration) error {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, reg)
	}
	return nil
}

func (s VendorAPIStub) CategoriesByVendor(ctx context.Context, vendorID string) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx, vendorID)
	}
	return nil, nil
}

func (s VendorAPIStub) AddCategory(ctx context.Context, name, vendorID string) error {
	if s.AddCategoryFn != nil {
		return s.AddCategoryFn(ctx, name, vendorID)
	}
	return nil
}

func (s VendorAPIStub) DeleteCategory(ctx context.Context, categoryID string) error {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, categoryID)
	}
	return nil
}

func (s VendorAPIStub) ItemsByVendor(ctx context.Context, vendorID string) ([]model.Item, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx, vendorID)
	}
	return nil, nil
}

func (s VendorAPIStub) AddItem(ctx context.Context, item vendorapi.NewItem) error {
	if s.AddItemFn != nil {
		return s.AddItemFn(ctx, item)
	}
	return nil
}

func (s VendorAPIStub) DeleteItem(ctx context.Context, itemID string) error {
	if s.DeleteItemFn != nil {
		return s.DeleteItemFn(ctx, itemID)
	}
	return nil
}

func (s VendorAPIStub) OrdersByVendor(ctx context.Context, vendorID string) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, vendorID)
	}
	return nil, nil
}

func (s VendorAPIStub) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, orderID, status)
	}
	return nil
}

func (s VendorAPIStub) CompleteOrder(ctx context.Context, orderID string) error {
	if s.CompleteOrderFn != nil {
		return s.CompleteOrderFn(ctx, orderID)
	}
	return nil
}
