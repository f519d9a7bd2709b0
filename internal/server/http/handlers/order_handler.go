package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/grubline/vendordash/internal/domain/errors"
	"github.com/grubline/vendordash/internal/domain/model"
	"github.com/grubline/vendordash/internal/server/http/dto"
	"github.com/grubline/vendordash/internal/usecase"
)

// OrderHandler manages the order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /orders. Fetches the vendor's orders, partitions them by
// status, and returns the selected tab's bucket plus badge counts for all
// six tabs.
func (h *OrderHandler) List(c *gin.Context) {
	activeTab := model.OrderStatus(c.DefaultQuery("tab", string(model.DefaultTab)))
	if !activeTab.Known() {
		respondError(c, http.StatusBadRequest, "Unknown order status tab")
		return
	}

	vendor := CurrentVendor(c)
	orders, err := h.facade.Orders(c.Request.Context(), vendor.ID)
	if err != nil {
		respondError(c, http.StatusBadGateway, upstreamMessage(err, "Failed to fetch orders"))
		return
	}

	bucket := make([]dto.OrderResponse, 0)
	for _, order := range orders {
		if order.Status == activeTab {
			bucket = append(bucket, toOrderResponse(order))
		}
	}

	respondData(c, http.StatusOK, dto.OrdersResponse{
		ActiveTab: string(activeTab),
		Tabs:      toTabResponses(h.facade.OrderTabs(vendor.ID)),
		Orders:    bucket,
	})
}

// Advance handles POST /orders/:id/ready. The body must confirm the
// transition; unconfirmed requests never reach the vendor API.
func (h *OrderHandler) Advance(c *gin.Context) {
	if !confirmed(c) {
		respondError(c, http.StatusBadRequest, "Confirmation required")
		return
	}

	vendor := CurrentVendor(c)
	order, err := h.facade.AdvanceOrderToReady(c.Request.Context(), vendor.ID, c.Param("id"))
	if err != nil {
		h.respondTransitionError(c, err, "Failed to update order status")
		return
	}

	if order != nil {
		respondData(c, http.StatusOK, toOrderResponse(*order))
		return
	}
	respondData(c, http.StatusOK, nil)
}

// Complete handles POST /orders/:id/complete. On success the order leaves
// the vendor's active list.
func (h *OrderHandler) Complete(c *gin.Context) {
	if !confirmed(c) {
		respondError(c, http.StatusBadRequest, "Confirmation required")
		return
	}

	vendor := CurrentVendor(c)
	if err := h.facade.CompleteOrder(c.Request.Context(), vendor.ID, c.Param("id")); err != nil {
		h.respondTransitionError(c, err, "Failed to complete order")
		return
	}
	respondData(c, http.StatusOK, nil)
}

func (h *OrderHandler) respondTransitionError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		respondError(c, http.StatusNotFound, "Order not found")
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		respondError(c, http.StatusConflict, "Only pending orders can be marked as ready")
	case errors.Is(err, domainErrors.ErrTransitionInFlight):
		respondError(c, http.StatusConflict, "Order update already in progress")
	default:
		respondError(c, http.StatusBadGateway, upstreamMessage(err, fallback))
	}
}

func confirmed(c *gin.Context) bool {
	var req dto.AdvanceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return false
	}
	return req.Confirm
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			ImageURL: item.ImageURL,
		})
	}
	return dto.OrderResponse{
		ID:            order.ID,
		Status:        string(order.Status),
		StatusColor:   model.StatusColor(order.Status),
		Items:         items,
		TotalPrice:    order.TotalPrice,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		DeliveryBy:    model.FormatDeliveryTime(order.DeliveryBy),
		CanAdvance:    model.CanTransition(order.Status, model.OrderStatusReady),
	}
}

func toTabResponses(tabs []usecase.TabCount) []dto.TabResponse {
	response := make([]dto.TabResponse, 0, len(tabs))
	for _, tab := range tabs {
		response = append(response, dto.TabResponse{
			Status: string(tab.Status),
			Count:  tab.Count,
			Color:  tab.Color,
		})
	}
	return response
}
