package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/grubline/vendordash/internal/adapter/vendorapi"
	"github.com/grubline/vendordash/internal/domain/model"
	"github.com/grubline/vendordash/internal/server/http/dto"
	"github.com/grubline/vendordash/internal/server/http/middleware"
)

// CurrentVendor extracts the signed-in vendor from context.
func CurrentVendor(c *gin.Context) *model.Vendor {
	val, ok := c.Get(middleware.VendorContextKey)
	if !ok {
		return nil
	}
	vendor, _ := val.(*model.Vendor)
	return vendor
}

// CurrentSession extracts the resolved session from context.
func CurrentSession(c *gin.Context) *model.Session {
	val, ok := c.Get(middleware.SessionContextKey)
	if !ok {
		return nil
	}
	session, _ := val.(*model.Session)
	return session
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, dto.Response{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.Response{Success: false, Message: message})
}

// upstreamMessage prefers the backend's error text over the fallback, so
// views surface the vendor API's message verbatim when one exists.
func upstreamMessage(err error, fallback string) string {
	var apiErr *vendorapi.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func isUpstreamError(err error) bool {
	var apiErr *vendorapi.APIError
	return errors.As(err, &apiErr)
}

func toVendorResponse(vendor *model.Vendor) dto.VendorResponse {
	return dto.VendorResponse{
		ID:      vendor.ID,
		Name:    vendor.Name,
		Address: vendor.Address,
		Phone:   vendor.Phone,
		Email:   vendor.Email,
	}
}
