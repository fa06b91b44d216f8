package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codeprep.net/internal/adapter/crypto"
	"gitlab.com/codeprep.net/internal/adapter/logging"
	"gitlab.com/codeprep.net/internal/config"
)

func newProvider(t *testing.T) (*MiddlewareProvider, string, uuid.UUID) {
	t.Helper()
	jwtSvc := crypto.NewJWTService(&config.JwtConfig{Secret: "mw-secret", TTL: time.Hour})
	id := uuid.New()
	token, err := jwtSvc.GenerateTokenHMAC(context.Background(), "HS256", map[string]interface{}{
		"userId": id.String(),
		"email":  "ada@example.com",
	})
	if err != nil {
		t.Fatalf("GenerateTokenHMAC: %v", err)
	}
	return New(jwtSvc, logging.NewNopLogger()), token, id
}

func TestJWTMiddleware(t *testing.T) {
	mw, token, id := newProvider(t)
	var seen uuid.UUID
	h := mw.JWTMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := AuthFromContext(r.Context())
		if !ok {
			t.Fatalf("identity missing from context")
		}
		seen = p.UserID
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer not-a-token", http.StatusForbidden},
		{"valid", "Bearer " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
	if seen != id {
		t.Fatalf("handler saw user %s, want %s", seen, id)
	}
}

func TestOptionalJWT(t *testing.T) {
	mw, token, _ := newProvider(t)
	var authed bool
	h := mw.OptionalJWT(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, authed = AuthFromContext(r.Context())
	}))

	for _, tt := range []struct {
		header string
		want   bool
	}{{"", false}, {"Bearer junk", false}, {"Bearer " + token, true}} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK || authed != tt.want {
			t.Fatalf("header %q: status %d authed %v", tt.header, rec.Code, authed)
		}
	}
}

func TestRecover(t *testing.T) {
	mw, _, _ := newProvider(t)
	h := mw.Logging(mw.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}
