package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/grubline/vendordash/internal/adapter/vendorapi"
	domainErrors "github.com/grubline/vendordash/internal/domain/errors"
	"github.com/grubline/vendordash/internal/domain/model"
	"github.com/grubline/vendordash/internal/test"
)

func TestCategoriesCachesFetchedList(t *testing.T) {
	fetched := []model.Category{
		{ID: "c1", Name: "Snacks", VendorID: "v1"},
		{ID: "c2", Name: "Drinks", VendorID: "v1"},
	}
	api := test.VendorAPIStub{
		CategoriesFn: func(context.Context, string) ([]model.Category, error) {
			return fetched, nil
		},
	}
	uc := NewCatalogUseCase(api)

	categories, err := uc.Categories(context.Background(), "v1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if len(uc.categories["v1"]) != 2 {
		t.Fatal("fetched list was not cached")
	}
}

func TestAddCategoryValidatesName(t *testing.T) {
	uc := NewCatalogUseCase(test.VendorAPIStub{})

	if _, err := uc.AddCategory(context.Background(), "v1", "   "); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAddCategoryRefetchesList(t *testing.T) {
	var added string
	api := test.VendorAPIStub{
		AddCategoryFn: func(_ context.Context, name, vendorID string) error {
			added = name + "@" + vendorID
			return nil
		},
		CategoriesFn: func(context.Context, string) ([]model.Category, error) {
			return []model.Category{{ID: "c1", Name: "Snacks", VendorID: "v1"}}, nil
		},
	}
	uc := NewCatalogUseCase(api)

	categories, err := uc.AddCategory(context.Background(), "v1", " Snacks ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != "Snacks@v1" {
		t.Fatalf("unexpected upstream call %q", added)
	}
	if len(categories) != 1 || categories[0].ID != "c1" {
		t.Fatalf("unexpected categories %+v", categories)
	}
}

func TestDeleteCategoryDropsExactlyOneEntry(t *testing.T) {
	api := test.VendorAPIStub{
		CategoriesFn: func(context.Context, string) ([]model.Category, error) {
			return []model.Category{
				{ID: "c1", Name: "Snacks", VendorID: "v1"},
				{ID: "c2", Name: "Drinks", VendorID: "v1"},
			}, nil
		},
	}
	uc := NewCatalogUseCase(api)
	if _, err := uc.Categories(context.Background(), "v1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	categories, err := uc.DeleteCategory(context.Background(), "v1", "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 1 || categories[0].ID != "c2" {
		t.Fatalf("unexpected categories after delete %+v", categories)
	}
}

func TestDeleteCategoryFailureLeavesCacheUntouched(t *testing.T) {
	apiErr := &vendorapi.APIError{StatusCode: 500, Message: "backend down"}
	api := test.VendorAPIStub{
		CategoriesFn: func(context.Context, string) ([]model.Category, error) {
			return []model.Category{{ID: "c1", Name: "Snacks", VendorID: "v1"}}, nil
		},
		DeleteCategoryFn: func(context.Context, string) error {
			return apiErr
		},
	}
	uc := NewCatalogUseCase(api)
	if _, err := uc.Categories(context.Background(), "v1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uc.DeleteCategory(context.Background(), "v1", "c1"); !errors.Is(err, apiErr) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if len(uc.categories["v1"]) != 1 {
		t.Fatal("cache must keep the entry after a failed delete")
	}
}

func TestAddItemValidatesFields(t *testing.T) {
	uc := NewCatalogUseCase(test.VendorAPIStub{})

	tests := []struct {
		name string
		item vendorapi.NewItem
	}{
		{"missing name", vendorapi.NewItem{Price: "12", VendorID: "v1"}},
		{"missing price", vendorapi.NewItem{Name: "Samosa", VendorID: "v1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.AddItem(context.Background(), tt.item); !errors.Is(err, domainErrors.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAddItemFailurePropagatesMessage(t *testing.T) {
	apiErr := &vendorapi.APIError{StatusCode: 400, Message: "Invalid price"}
	api := test.VendorAPIStub{
		AddItemFn: func(context.Context, vendorapi.NewItem) error {
			return apiErr
		},
	}
	uc := NewCatalogUseCase(api)

	item := vendorapi.NewItem{Name: "Samosa", Price: "abc", VendorID: "v1"}
	_, err := uc.AddItem(context.Background(), item)
	var got *vendorapi.APIError
	if !errors.As(err, &got) || got.Message != "Invalid price" {
		t.Fatalf("expected upstream message, got %v", err)
	}
}

func TestDeleteItemDropsCachedEntry(t *testing.T) {
	api := test.VendorAPIStub{
		ItemsFn: func(context.Context, string) ([]model.Item, error) {
			return []model.Item{
				{ID: "i1", Name: "Samosa", VendorID: "v1"},
				{ID: "i2", Name: "Chai", VendorID: "v1"},
			}, nil
		},
	}
	uc := NewCatalogUseCase(api)
	if _, err := uc.Items(context.Background(), "v1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := uc.DeleteItem(context.Background(), "v1", "i2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "i1" {
		t.Fatalf("unexpected items after delete %+v", items)
	}
}
