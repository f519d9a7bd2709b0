package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grubline/vendordash/internal/adapter/vendorapi"
	domainErrors "github.com/grubline/vendordash/internal/domain/errors"
	"github.com/grubline/vendordash/internal/domain/model"
	"github.com/grubline/vendordash/internal/server/http/dto"
)

// ItemHandler manages the vendor's catalog items.
type ItemHandler struct {
	facade CatalogFacade
}

// NewItemHandler constructs ItemHandler.
func NewItemHandler(facade CatalogFacade) *ItemHandler {
	return &ItemHandler{facade: facade}
}

// List handles GET /items.
func (h *ItemHandler) List(c *gin.Context) {
	vendor := CurrentVendor(c)
	items, err := h.facade.Items(c.Request.Context(), vendor.ID)
	if err != nil {
		respondError(c, http.StatusBadGateway, upstreamMessage(err, "Failed to fetch items"))
		return
	}
	respondData(c, http.StatusOK, toItemResponses(items))
}

// Add handles POST /items. The request is multipart form data; the image
// is streamed through to the vendor API unchanged.
func (h *ItemHandler) Add(c *gin.Context) {
	fileHeader, err := c.FormFile("itemImg")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Item image is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Item image is unreadable")
		return
	}
	defer file.Close()

	vendor := CurrentVendor(c)
	item := vendorapi.NewItem{
		Name:       c.PostForm("itemName"),
		Price:      c.PostForm("itemPrice"),
		VendorID:   vendor.ID,
		CategoryID: c.PostForm("categoryId"),
		ImageName:  fileHeader.Filename,
		Image:      file,
	}

	items, err := h.facade.AddItem(c.Request.Context(), item)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "Item name and price are required")
		default:
			respondError(c, http.StatusBadGateway, upstreamMessage(err, "Failed to add item"))
		}
		return
	}
	respondData(c, http.StatusOK, toItemResponses(items))
}

// Delete handles DELETE /items/:id.
func (h *ItemHandler) Delete(c *gin.Context) {
	vendor := CurrentVendor(c)
	items, err := h.facade.DeleteItem(c.Request.Context(), vendor.ID, c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadGateway, upstreamMessage(err, "Failed to delete item"))
		return
	}
	respondData(c, http.StatusOK, toItemResponses(items))
}

func toItemResponses(items []model.Item) []dto.ItemResponse {
	response := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, dto.ItemResponse{
			ID:         item.ID,
			Name:       item.Name,
			Price:      item.Price,
			CategoryID: item.CategoryID,
			ImageURL:   item.ImageURL,
		})
	}
	return response
}
