package dto

// AddCategoryRequest creates a category.
type AddCategoryRequest struct {
	CategoryName string `json:"categoryName" binding:"required"`
}

// CategoryResponse is one category entry.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ItemResponse is one catalog item entry.
type ItemResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID string  `json:"categoryId"`
	ImageURL   string  `json:"imageUrl,omitempty"`
}
