package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/grubline/vendordash/internal/domain/errors"
	"github.com/grubline/vendordash/internal/domain/model"
	testhelpers "github.com/grubline/vendordash/internal/test/facade"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func guardedRouter(resolver SessionResolver, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(SessionGuard(resolver))
	router.GET("/", handler)
	return router
}

func TestSessionGuardRedirectsWithoutCookie(t *testing.T) {
	router := guardedRouter(testhelpers.SessionResolverStub{}, func(c *gin.Context) {
		t.Fatal("handler must not run without a session")
	})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 without cookie, got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/signin" {
		t.Fatalf("expected redirect to /signin, got %q", loc)
	}
}

func TestSessionGuardRedirectsAndClearsInvalidSession(t *testing.T) {
	for _, resolveErr := range []error{domainErrors.ErrNotFound, domainErrors.ErrSessionInvalid} {
		router := guardedRouter(testhelpers.SessionResolverStub{Err: resolveErr}, func(c *gin.Context) {
			t.Fatal("handler must not run for an invalid session")
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "stale"})
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusSeeOther {
			t.Fatalf("expected 303 for %v, got %d", resolveErr, resp.Code)
		}

		result := resp.Result()
		cleared := false
		for _, cookie := range result.Cookies() {
			if cookie.Name == sessionCookieName && cookie.MaxAge < 0 {
				cleared = true
			}
		}
		_ = result.Body.Close()
		if !cleared {
			t.Fatalf("expected stale cookie to be cleared for %v", resolveErr)
		}
	}
}

func TestSessionGuardFailsClosedOnResolverError(t *testing.T) {
	router := guardedRouter(testhelpers.SessionResolverStub{Err: context.DeadlineExceeded}, func(c *gin.Context) {
		t.Fatal("handler must not run when the resolver fails")
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "session-1"})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}

func TestSessionGuardPassesValidSession(t *testing.T) {
	resolver := testhelpers.SessionResolverStub{
		Session: &model.Session{ID: "session-1", VendorID: "v1"},
		Vendor:  &model.Vendor{ID: "v1", Name: "Chai Point"},
	}
	var gotVendor *model.Vendor
	router := guardedRouter(resolver, func(c *gin.Context) {
		if v, ok := c.Get(VendorContextKey); ok {
			gotVendor = v.(*model.Vendor)
		}
		c.Status(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "session-1"})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotVendor == nil || gotVendor.ID != "v1" {
		t.Fatalf("expected vendor on context, got %+v", gotVendor)
	}
}

func TestSetSessionCookie(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	SetSessionCookie(c, "session-1", 0)
	result := recorder.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	cookies := result.Cookies()
	if len(cookies) == 0 || cookies[0].Value != "session-1" {
		t.Fatalf("expected cookie with session id, got %+v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Fatal("session cookie must be http-only")
	}
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte("payload"))
	_ = gz.Close()

	router := gin.New()
	router.Use(DecompressRequest())
	var body string
	router.POST("/", func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		body = string(data)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", io.NopCloser(bytes.NewReader(buf.Bytes())))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if body != "payload" {
		t.Fatalf("expected decompressed payload, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", io.NopCloser(bytes.NewReader([]byte("plain"))))
	resp = httptest.NewRecorder()
	body = ""
	router.ServeHTTP(resp, req)
	if body != "plain" {
		t.Fatalf("expected plain body, got %q", body)
	}
}

func TestRequestLogger(t *testing.T) {
	var logged bool
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey && a.Value.Any() == slog.LevelInfo {
			logged = true
		}
		return a
	}})
	logger := slog.New(handler)

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if !logged {
		t.Fatalf("expected request to be logged")
	}
}
