package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/grubline/vendordash/internal/domain/errors"
	"github.com/grubline/vendordash/internal/domain/model"
	"github.com/grubline/vendordash/internal/server/http/dto"
)

// CategoryHandler manages the vendor's product categories.
type CategoryHandler struct {
	facade CatalogFacade
}

// NewCategoryHandler constructs CategoryHandler.
func NewCategoryHandler(facade CatalogFacade) *CategoryHandler {
	return &CategoryHandler{facade: facade}
}

// List handles GET /categories.
func (h *CategoryHandler) List(c *gin.Context) {
	vendor := CurrentVendor(c)
	categories, err := h.facade.Categories(c.Request.Context(), vendor.ID)
	if err != nil {
		respondError(c, http.StatusBadGateway, upstreamMessage(err, "Failed to fetch categories"))
		return
	}
	respondData(c, http.StatusOK, toCategoryResponses(categories))
}

// Add handles POST /categories.
func (h *CategoryHandler) Add(c *gin.Context) {
	var req dto.AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Category name cannot be empty")
		return
	}

	vendor := CurrentVendor(c)
	categories, err := h.facade.AddCategory(c.Request.Context(), vendor.ID, req.CategoryName)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "Category name cannot be empty")
		default:
			respondError(c, http.StatusBadGateway, upstreamMessage(err, "Failed to add category"))
		}
		return
	}
	respondData(c, http.StatusOK, toCategoryResponses(categories))
}

// Delete handles DELETE /categories/:id. On success the response carries
// the list with exactly the removed entry gone.
func (h *CategoryHandler) Delete(c *gin.Context) {
	vendor := CurrentVendor(c)
	categories, err := h.facade.DeleteCategory(c.Request.Context(), vendor.ID, c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadGateway, upstreamMessage(err, "Failed to delete category"))
		return
	}
	respondData(c, http.StatusOK, toCategoryResponses(categories))
}

func toCategoryResponses(categories []model.Category) []dto.CategoryResponse {
	response := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, dto.CategoryResponse{ID: category.ID, Name: category.Name})
	}
	return response
}
