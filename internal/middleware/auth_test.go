package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gatherly/api/internal/model"
	"github.com/gatherly/api/internal/service"
)

// ============================================================================
// Mock TokenVerifier
// ============================================================================

type mockVerifier struct {
	verifyFunc func(token string) (*model.TokenClaims, error)
}

func (m *mockVerifier) Verify(token string) (*model.TokenClaims, error) {
	return m.verifyFunc(token)
}

// successVerifier returns valid claims for any token
func successVerifier(userID string, isAdmin bool) *mockVerifier {
	return &mockVerifier{
		verifyFunc: func(token string) (*model.TokenClaims, error) {
			return &model.TokenClaims{
				UserID:  userID,
				Email:   "test@example.com",
				IsAdmin: isAdmin,
			}, nil
		},
	}
}

// errorVerifier returns the specified error
func errorVerifier(err error) *mockVerifier {
	return &mockVerifier{
		verifyFunc: func(token string) (*model.TokenClaims, error) {
			return nil, err
		},
	}
}

// ============================================================================
// Test Helpers
// ============================================================================

func newTestRequest(authHeader string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return req
}

// captureHandler captures the request context for inspection
type captureHandler struct {
	called bool
	ctx    context.Context
}

func (h *captureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

// ============================================================================
// Auth() Middleware Tests
// ============================================================================

func TestAuth_MissingAuthorizationHeader_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	verifier := successVerifier("user:123", false)
	mw := Auth(verifier)
	handler := &captureHandler{}

	req := newTestRequest("") // No auth header
	rr := httptest.NewRecorder()

	mw(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_InvalidHeaderFormat_NoBearerPrefix_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	verifier := successVerifier("user:123", false)
	mw := Auth(verifier)
	handler := &captureHandler{}

	req := newTestRequest("Basic sometoken") // Wrong scheme
	rr := httptest.NewRecorder()

	mw(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_ExpiredToken_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	verifier := errorVerifier(service.ErrTokenExpired)
	mw := Auth(verifier)
	handler := &captureHandler{}

	req := newTestRequest("Bearer expired-token")
	rr := httptest.NewRecorder()

	mw(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_InvalidToken_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	verifier := errorVerifier(service.ErrTokenInvalid)
	mw := Auth(verifier)
	handler := &captureHandler{}

	req := newTestRequest("Bearer garbage")
	rr := httptest.NewRecorder()

	mw(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_ValidToken_CallsHandlerWithClaims(t *testing.T) {
	t.Parallel()
	verifier := successVerifier("user:123", false)
	mw := Auth(verifier)
	handler := &captureHandler{}

	req := newTestRequest("Bearer good-token")
	rr := httptest.NewRecorder()

	mw(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !handler.called {
		t.Fatal("handler should have been called")
	}
	if got := GetUserID(handler.ctx); got != "user:123" {
		t.Errorf("expected user id %q in context, got %q", "user:123", got)
	}
	claims := GetClaims(handler.ctx)
	if claims == nil || claims.UserID != "user:123" {
		t.Errorf("expected claims in context, got %+v", claims)
	}
}

func TestAuth_BearerCaseInsensitive(t *testing.T) {
	t.Parallel()
	verifier := successVerifier("user:123", false)
	mw := Auth(verifier)
	handler := &captureHandler{}

	req := newTestRequest("bearer good-token")
	rr := httptest.NewRecorder()

	mw(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

// ============================================================================
// AdminOnly() Middleware Tests
// ============================================================================

func TestAdminOnly_NonAdminToken_ReturnsForbidden(t *testing.T) {
	t.Parallel()
	verifier := successVerifier("user:123", false)
	mw := AdminOnly(verifier)
	handler := &captureHandler{}

	req := newTestRequest("Bearer good-token")
	rr := httptest.NewRecorder()

	mw(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAdminOnly_AdminToken_CallsHandler(t *testing.T) {
	t.Parallel()
	verifier := successVerifier("user:admin", true)
	mw := AdminOnly(verifier)
	handler := &captureHandler{}

	req := newTestRequest("Bearer admin-token")
	rr := httptest.NewRecorder()

	mw(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !handler.called {
		t.Fatal("handler should have been called")
	}
	claims := GetClaims(handler.ctx)
	if claims == nil || !claims.IsAdmin {
		t.Errorf("expected admin claims in context, got %+v", claims)
	}
}

func TestAdminOnly_MissingHeader_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	verifier := successVerifier("user:admin", true)
	mw := AdminOnly(verifier)
	handler := &captureHandler{}

	req := newTestRequest("")
	rr := httptest.NewRecorder()

	mw(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAdminOnly_ExpiredToken_ReturnsUnauthorizedNotForbidden(t *testing.T) {
	t.Parallel()
	verifier := errorVerifier(service.ErrTokenExpired)
	mw := AdminOnly(verifier)
	handler := &captureHandler{}

	req := newTestRequest("Bearer expired-token")
	rr := httptest.NewRecorder()

	mw(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}
