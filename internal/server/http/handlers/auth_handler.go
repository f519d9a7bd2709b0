package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grubline/vendordash/internal/adapter/vendorapi"
	domainErrors "github.com/grubline/vendordash/internal/domain/errors"
	"github.com/grubline/vendordash/internal/server/http/dto"
	"github.com/grubline/vendordash/internal/server/http/middleware"
)

// AuthHandler processes sign-in, sign-up and sign-out.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// SignIn handles POST /signin.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Phone and password are required")
		return
	}

	session, vendor, err := h.facade.SignIn(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "Phone and password are required")
		case isUpstreamError(err):
			respondError(c, http.StatusUnauthorized, upstreamMessage(err, "Login failed"))
		default:
			respondError(c, http.StatusInternalServerError, "An error occurred during login")
		}
		return
	}

	middleware.SetSessionCookie(c, session.ID, 0)
	respondData(c, http.StatusOK, dto.SignInResponse{
		Vendor:     toVendorResponse(vendor),
		RedirectTo: "/dashboard",
	})
}

// SignUp handles POST /signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "All registration fields are required")
		return
	}

	reg := vendorapi.Registration{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := h.facade.SignUp(c.Request.Context(), reg); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "All registration fields are required")
		case isUpstreamError(err):
			respondError(c, http.StatusBadGateway, upstreamMessage(err, "Registration failed"))
		default:
			respondError(c, http.StatusInternalServerError, "An error occurred during registration")
		}
		return
	}

	respondData(c, http.StatusOK, dto.SignUpResponse{RedirectTo: "/signin"})
}

// SignOut handles POST /signout. The session row is deleted and the cookie
// cleared; the guard will redirect any later use of the old cookie.
func (h *AuthHandler) SignOut(c *gin.Context) {
	session := CurrentSession(c)
	if session != nil {
		if err := h.facade.SignOut(c.Request.Context(), session.ID); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to sign out")
			return
		}
	}

	middleware.ClearSessionCookie(c)
	respondData(c, http.StatusOK, dto.SignUpResponse{RedirectTo: "/signin"})
}
