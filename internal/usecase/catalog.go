package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/grubline/vendordash/internal/adapter/vendorapi"
	domainErrors "github.com/grubline/vendordash/internal/domain/errors"
	"github.com/grubline/vendordash/internal/domain/model"
)

// CatalogUseCase manages the vendor's categories and items. It keeps the
// last fetched list per vendor so a successful delete can drop exactly the
// removed entry without a refetch, mirroring how the dashboard updates its
// lists in place.
type CatalogUseCase struct {
	api vendorapi.Client

	mu         sync.Mutex
	categories map[string][]model.Category
	items      map[string][]model.Item
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(api vendorapi.Client) *CatalogUseCase {
	return &CatalogUseCase{
		api:        api,
		categories: make(map[string][]model.Category),
		items:      make(map[string][]model.Item),
	}
}

// Categories fetches the vendor's categories and caches the result.
func (u *CatalogUseCase) Categories(ctx context.Context, vendorID string) ([]model.Category, error) {
	categories, err := u.api.CategoriesByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	u.mu.Lock()
	u.categories[vendorID] = categories
	u.mu.Unlock()
	return copySlice(categories), nil
}

// AddCategory creates a category and refetches the list, matching the
// original add-then-refresh behavior.
func (u *CatalogUseCase) AddCategory(ctx context.Context, vendorID, name string) ([]model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	if err := u.api.AddCategory(ctx, name, vendorID); err != nil {
		return nil, err
	}
	return u.Categories(ctx, vendorID)
}

// DeleteCategory removes the category upstream and, on success, drops
// exactly the matching entry from the cached list. A failed delete leaves
// the cache untouched.
func (u *CatalogUseCase) DeleteCategory(ctx context.Context, vendorID, categoryID string) ([]model.Category, error) {
	if err := u.api.DeleteCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	kept := u.categories[vendorID][:0:0]
	for _, category := range u.categories[vendorID] {
		if category.ID != categoryID {
			kept = append(kept, category)
		}
	}
	u.categories[vendorID] = kept
	return copySlice(kept), nil
}

// Items fetches the vendor's catalog items and caches the result.
func (u *CatalogUseCase) Items(ctx context.Context, vendorID string) ([]model.Item, error) {
	items, err := u.api.ItemsByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	u.mu.Lock()
	u.items[vendorID] = items
	u.mu.Unlock()
	return copySlice(items), nil
}

// AddItem uploads a new item and refetches the list.
func (u *CatalogUseCase) AddItem(ctx context.Context, item vendorapi.NewItem) ([]model.Item, error) {
	if strings.TrimSpace(item.Name) == "" || strings.TrimSpace(item.Price) == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	if err := u.api.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return u.Items(ctx, item.VendorID)
}

// DeleteItem removes the item upstream and drops it from the cached list on
// success.
func (u *CatalogUseCase) DeleteItem(ctx context.Context, vendorID, itemID string) ([]model.Item, error) {
	if err := u.api.DeleteItem(ctx, itemID); err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	kept := u.items[vendorID][:0:0]
	for _, item := range u.items[vendorID] {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	u.items[vendorID] = kept
	return copySlice(kept), nil
}

func copySlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
