package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mogul/utils"
)

func authTestHandler(t *testing.T, wantID int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := AdminID(r)
		if !ok {
			t.Error("expected admin id in request context")
		}
		if id != wantID {
			t.Errorf("admin id = %d, want %d", id, wantID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminAuthMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	h := AdminAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	for _, header := range []string{"", "Basic abc", "bearerless-token"} {
		req := httptest.NewRequest("GET", "/v1/admin/accounts", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
	}
}

func TestAdminAuthInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	h := AdminAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest("GET", "/v1/admin/accounts", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAdminAuthRejectsNonAdminRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateJWT(7, "player", "user")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	h := AdminAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest("GET", "/v1/admin/accounts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestAdminAuthAcceptsAdminToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateJWT(42, "boss", "admin")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	h := AdminAuthMiddleware(authTestHandler(t, 42))

	req := httptest.NewRequest("GET", "/v1/admin/accounts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
