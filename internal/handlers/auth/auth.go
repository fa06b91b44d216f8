package auth

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/codeprep.net/internal/config"
	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/ports/secondary"
	"gitlab.com/codeprep.net/internal/core/services/auth"
	"gitlab.com/codeprep.net/internal/domain"
	"gitlab.com/codeprep.net/internal/handlers"
	"gitlab.com/codeprep.net/internal/handlers/response"
	"gitlab.com/codeprep.net/internal/static/errs"
)

const stateCookie = "oauth_state"

type ServiceDependencies struct {
	GGAuthService    auth.IAuthService
	LocalAuthService auth.ILocalAuthService
	Identity         secondary.IdentityProvider
	GGConfig         *config.GGAuthConfig
}

type Handler struct {
	local    auth.ILocalAuthService
	google   auth.IAuthService
	identity secondary.IdentityProvider
	ggConfig *config.GGAuthConfig
	logger   primary.Logger
}

func NewHandler(svcDep *ServiceDependencies, logger primary.Logger) *Handler {
	return &Handler{
		local:    svcDep.LocalAuthService,
		google:   svcDep.GGAuthService,
		identity: svcDep.Identity,
		ggConfig: svcDep.GGConfig,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	r := router.PathPrefix("/api/auth").Subrouter()
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/google", h.GoogleLogin).Methods(http.MethodGet)
	r.HandleFunc("/callback", h.GoogleCallback).Methods(http.MethodGet)
	r.Handle("/me", mw.JWTMiddleware(http.HandlerFunc(h.Me))).Methods(http.MethodGet)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request body", StatusCode: http.StatusBadRequest})
		return
	}

	res, err := h.local.Register(r.Context(), &domain.Credentials{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warn("Registration failed", "error", err)
		response.WriteError(w, response.FromError(err, "Registration failed"))
		return
	}
	response.WriteCreated(w, "User registered successfully", res)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request body", StatusCode: http.StatusBadRequest})
		return
	}

	res, err := h.local.Login(r.Context(), &domain.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		response.WriteError(w, response.FromError(err, "Authentication failed"))
		return
	}
	response.WriteJSON(w, http.StatusOK, response.Envelope{Success: true, Message: "Login successful", Data: res})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	payload, _ := handlers.AuthFromContext(r.Context())
	user, err := h.local.Me(r.Context(), payload.UserID)
	if err != nil {
		response.WriteError(w, response.FromError(err, "Failed to load user"))
		return
	}
	response.WriteSuccess(w, user)
}

// GoogleLogin redirects the browser to the Google consent page.
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if h.identity == nil || h.ggConfig == nil || !h.ggConfig.Enabled() {
		response.WriteError(w, response.FromError(errs.GoogleDisabled, ""))
		return
	}

	state, err := newState()
	if err != nil {
		h.logger.Error("Failed to create oauth state", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Internal server error", StatusCode: http.StatusInternalServerError})
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/api/auth",
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.identity.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

func (h *Handler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if h.identity == nil {
		response.WriteError(w, response.FromError(errs.GoogleDisabled, ""))
		return
	}

	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		response.WriteError(w, response.ErrorMessage{Message: "Invalid oauth state", StatusCode: http.StatusBadRequest})
		return
	}
	http.SetCookie(w, &http.Cookie{Name: stateCookie, Path: "/api/auth", MaxAge: -1})

	code := r.URL.Query().Get("code")
	if code == "" {
		response.WriteError(w, response.ErrorMessage{Message: "No code in URL", StatusCode: http.StatusBadRequest})
		return
	}

	creds, err := h.identity.Identity(r.Context(), code)
	if err != nil {
		h.logger.Error("Google identity lookup failed", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Failed to get user info", StatusCode: http.StatusBadGateway})
		return
	}

	res, err := h.google.Login(r.Context(), creds)
	if err != nil {
		response.WriteError(w, response.FromError(err, "Authentication failed"))
		return
	}

	if h.ggConfig != nil && h.ggConfig.FrontendURL != "" {
		target := strings.TrimRight(h.ggConfig.FrontendURL, "/") + "/auth/callback?token=" + url.QueryEscape(res.Token)
		http.Redirect(w, r, target, http.StatusFound)
		return
	}
	response.WriteSuccess(w, res)
}

func newState() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
