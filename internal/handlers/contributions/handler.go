package contributions

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/services/contribution"
	"gitlab.com/codeprep.net/internal/domain"
	"gitlab.com/codeprep.net/internal/handlers"
	"gitlab.com/codeprep.net/internal/handlers/response"
)

type Handler struct {
	contributionService contribution.IContributionService
	logger              primary.Logger
}

func NewHandler(contributionService contribution.IContributionService, logger primary.Logger) *Handler {
	return &Handler{
		contributionService: contributionService,
		logger:              logger,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	r := router.PathPrefix("/api/contributions").Subrouter()
	r.Use(mw.JWTMiddleware)
	r.HandleFunc("/submit", h.Submit).Methods(http.MethodPost)
	r.HandleFunc("/my-submissions", h.Mine).Methods(http.MethodGet)
	r.HandleFunc("/stats", h.Stats).Methods(http.MethodGet)
	r.HandleFunc("/admin/pending", h.Pending).Methods(http.MethodGet)
	r.HandleFunc("/admin/review/{id}", h.Review).Methods(http.MethodPost)
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	msg := response.FromError(err, fallback)
	if msg.StatusCode >= http.StatusInternalServerError {
		h.logger.Error(fallback, "error", err)
	}
	response.WriteError(w, msg)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request body", StatusCode: http.StatusBadRequest})
		return
	}

	payload, _ := handlers.AuthFromContext(r.Context())
	c, err := h.contributionService.Submit(r.Context(), payload.UserID, req.toDomain())
	if err != nil {
		h.writeError(w, err, "Failed to save submission")
		return
	}
	response.WriteCreated(w, "Submission received! It will be reviewed by admin.", map[string]interface{}{
		"submissionId": c.ID,
	})
}

func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	payload, _ := handlers.AuthFromContext(r.Context())
	list, err := h.contributionService.Mine(r.Context(), payload.UserID)
	if err != nil {
		h.writeError(w, err, "Failed to fetch submissions")
		return
	}
	response.WriteSuccess(w, list)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	payload, _ := handlers.AuthFromContext(r.Context())
	stats, err := h.contributionService.Stats(r.Context(), payload.UserID)
	if err != nil {
		h.writeError(w, err, "Failed to fetch statistics")
		return
	}
	response.WriteSuccess(w, stats)
}

func (h *Handler) Pending(w http.ResponseWriter, r *http.Request) {
	payload, _ := handlers.AuthFromContext(r.Context())
	list, err := h.contributionService.Pending(r.Context(), &payload)
	if err != nil {
		h.writeError(w, err, "Failed to fetch pending submissions")
		return
	}
	response.WriteSuccess(w, list)
}

func (h *Handler) Review(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.WriteError(w, response.FromError(domain.ErrContributionNotFound, ""))
		return
	}
	var req ReviewRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request body", StatusCode: http.StatusBadRequest})
		return
	}

	payload, _ := handlers.AuthFromContext(r.Context())
	c, err := h.contributionService.Review(r.Context(), &payload, id, domain.ContributionReview{
		Status: domain.ContributionStatus(req.Status),
		Notes:  req.ReviewNotes,
	})
	if err != nil {
		h.writeError(w, err, "Failed to review submission")
		return
	}
	response.WriteJSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Message: fmt.Sprintf("Submission %s", c.Status),
		Data:    c,
	})
}
