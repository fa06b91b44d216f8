package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/domain"
	"gitlab.com/codeprep.net/internal/handlers/response"
)

type ctxKey struct{}

type MiddlewareProvider struct {
	jwtProvider primary.JWTService
	logger      primary.Logger
}

func New(jwtProvider primary.JWTService, logger primary.Logger) *MiddlewareProvider {
	return &MiddlewareProvider{
		jwtProvider: jwtProvider,
		logger:      logger,
	}
}

// AuthFromContext returns the identity placed by JWTMiddleware or OptionalJWT.
func AuthFromContext(ctx context.Context) (domain.AuthPayload, bool) {
	p, ok := ctx.Value(ctxKey{}).(domain.AuthPayload)
	return p, ok
}

func WithAuth(ctx context.Context, p domain.AuthPayload) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// JWTMiddleware rejects requests without a valid bearer token.
func (m *MiddlewareProvider) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			response.WriteError(w, response.ErrorMessage{
				Message:    "Access token required",
				StatusCode: http.StatusUnauthorized,
			})
			return
		}

		payload, err := m.jwtProvider.ParseTokenHMAC(r.Context(), tokenString)
		if err != nil {
			m.logger.Debug("Rejected token", "error", err)
			response.WriteError(w, response.ErrorMessage{
				Message:    "Invalid or expired token",
				StatusCode: http.StatusForbidden,
			})
			return
		}

		next.ServeHTTP(w, r.WithContext(WithAuth(r.Context(), payload)))
	})
}

// OptionalJWT attaches the identity when a valid token is present and
// otherwise lets the request through anonymously.
func (m *MiddlewareProvider) OptionalJWT(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tokenString := bearerToken(r); tokenString != "" {
			if payload, err := m.jwtProvider.ParseTokenHMAC(r.Context(), tokenString); err == nil {
				r = r.WithContext(WithAuth(r.Context(), payload))
			}
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Logging writes one line per request. Request bodies are never logged.
func (m *MiddlewareProvider) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String())
	})
}

// Recover turns a handler panic into a 500 response.
func (m *MiddlewareProvider) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rv := recover(); rv != nil {
				m.logger.Error("Handler panic", "path", r.URL.Path, "panic", rv)
				response.WriteError(w, response.ErrorMessage{
					Message:    "Internal server error",
					StatusCode: http.StatusInternalServerError,
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
