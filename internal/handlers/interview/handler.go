package interview

import (
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/services/interview"
	"gitlab.com/codeprep.net/internal/domain"
	"gitlab.com/codeprep.net/internal/handlers"
	"gitlab.com/codeprep.net/internal/handlers/response"
)

const codingEndpoint = "/api/coding/categories"

type Handler struct {
	interviewService interview.IInterviewService
	logger           primary.Logger
}

func NewHandler(interviewService interview.IInterviewService, logger primary.Logger) *Handler {
	return &Handler{
		interviewService: interviewService,
		logger:           logger,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	r := router.PathPrefix("/api/interview").Subrouter()
	r.Use(mw.JWTMiddleware)
	r.HandleFunc("/questions/{category}", h.Questions).Methods(http.MethodGet)
	r.HandleFunc("/submit", h.Submit).Methods(http.MethodPost)
	r.HandleFunc("/history", h.History).Methods(http.MethodGet)
	r.HandleFunc("/stats", h.Stats).Methods(http.MethodGet)
}

func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	category := domain.InterviewCategory(mux.Vars(r)["category"])
	if category == domain.InterviewCoding {
		response.WriteJSON(w, http.StatusOK, response.Envelope{
			Success: true,
			Message: "Please use /api/coding endpoints for coding questions",
			Data: map[string]interface{}{
				"redirect": true,
				"endpoint": codingEndpoint,
			},
		})
		return
	}

	qs, err := h.interviewService.Questions(category)
	if err != nil {
		response.WriteError(w, response.FromError(err, "Failed to fetch questions"))
		return
	}
	response.WriteSuccess(w, map[string]interface{}{
		"category":  category,
		"questions": qs,
	})
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil || req.Category == "" || len(req.Answers) == 0 || req.TimeTaken <= 0 {
		response.WriteError(w, response.ErrorMessage{
			Message:    "Category, answers, and timeTaken are required",
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	payload, _ := handlers.AuthFromContext(r.Context())
	res, err := h.interviewService.Submit(r.Context(), payload.UserID, &domain.InterviewSubmission{
		Category:  domain.InterviewCategory(req.Category),
		Answers:   req.Answers,
		TimeTaken: req.TimeTaken,
	})
	if err != nil {
		if response.FromError(err, "").StatusCode >= http.StatusInternalServerError {
			h.logger.Error("Failed to submit interview", "error", err)
		}
		response.WriteError(w, response.FromError(err, "Failed to submit interview"))
		return
	}
	response.WriteJSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Message: "Interview submitted successfully",
		Data:    res,
	})
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	payload, _ := handlers.AuthFromContext(r.Context())
	interviews, err := h.interviewService.History(r.Context(), payload.UserID)
	if err != nil {
		h.logger.Error("Failed to fetch interview history", "error", err)
		response.WriteError(w, response.FromError(err, "Failed to fetch interview history"))
		return
	}
	response.WriteSuccess(w, interviews)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	payload, _ := handlers.AuthFromContext(r.Context())
	stats, err := h.interviewService.Stats(r.Context(), payload.UserID)
	if err != nil {
		h.logger.Error("Failed to fetch statistics", "error", err)
		response.WriteError(w, response.FromError(err, "Failed to fetch statistics"))
		return
	}
	response.WriteSuccess(w, stats)
}
