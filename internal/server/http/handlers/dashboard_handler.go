package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grubline/vendordash/internal/domain/model"
	"github.com/grubline/vendordash/internal/server/http/dto"
)

// DashboardHandler serves the landing view data.
type DashboardHandler struct {
	facade OrderFacade
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(facade OrderFacade) *DashboardHandler {
	return &DashboardHandler{facade: facade}
}

// Show handles GET /dashboard: the vendor's profile plus the count of
// orders waiting for action.
func (h *DashboardHandler) Show(c *gin.Context) {
	vendor := CurrentVendor(c)

	if _, err := h.facade.Orders(c.Request.Context(), vendor.ID); err != nil {
		respondError(c, http.StatusBadGateway, upstreamMessage(err, "Failed to fetch orders"))
		return
	}

	pending := 0
	for _, tab := range h.facade.OrderTabs(vendor.ID) {
		if tab.Status == model.OrderStatusPending {
			pending = tab.Count
		}
	}

	respondData(c, http.StatusOK, dto.DashboardResponse{
		Vendor:        toVendorResponse(vendor),
		PendingOrders: pending,
	})
}
