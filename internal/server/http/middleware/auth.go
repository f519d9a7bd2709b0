package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/grubline/vendordash/internal/domain/errors"
	"github.com/grubline/vendordash/internal/domain/model"
)

const (
	// SessionContextKey is the gin context key for the resolved session.
	SessionContextKey = "session"
	// VendorContextKey is the gin context key for the signed-in vendor.
	VendorContextKey = "vendor"

	sessionCookieName = "vendordash_session"
	signInRoute       = "/signin"
)

// SessionResolver loads and validates a session by identifier.
type SessionResolver interface {
	ResolveSession(ctx context.Context, sessionID string) (*model.Session, *model.Vendor, error)
}

// SessionGuard gates protected routes. A missing, expired, or malformed
// session redirects to the sign-in route with 303 See Other, so the
// protected URL never enters the browser history. Valid sessions pass
// through with the session and vendor placed on the context.
func SessionGuard(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookieName)
		if err != nil || sessionID == "" {
			redirectToSignIn(c)
			return
		}

		session, vendor, err := resolver.ResolveSession(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) || errors.Is(err, domainErrors.ErrSessionInvalid) {
				ClearSessionCookie(c)
				redirectToSignIn(c)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(SessionContextKey, session)
		c.Set(VendorContextKey, vendor)
		c.Next()
	}
}

func redirectToSignIn(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, signInRoute)
	c.Abort()
}

// SetSessionCookie writes the session cookie to the response.
func SetSessionCookie(c *gin.Context, sessionID string, maxAge int) {
	c.SetCookie(sessionCookieName, sessionID, maxAge, "/", "", false, true)
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
