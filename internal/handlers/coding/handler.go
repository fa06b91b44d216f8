package coding

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/services/coding"
	"gitlab.com/codeprep.net/internal/domain"
	"gitlab.com/codeprep.net/internal/handlers"
	"gitlab.com/codeprep.net/internal/handlers/response"
)

// Handler serves /api/coding. Every route requires a token.
type Handler struct {
	codingService coding.ICodingService
	logger        primary.Logger
}

func NewHandler(codingService coding.ICodingService, logger primary.Logger) *Handler {
	return &Handler{
		codingService: codingService,
		logger:        logger,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	r := router.PathPrefix("/api/coding").Subrouter()
	r.Use(mw.JWTMiddleware)
	r.HandleFunc("/categories", h.Categories).Methods(http.MethodGet)
	r.HandleFunc("/languages", h.Languages).Methods(http.MethodGet)
	r.HandleFunc("/questions/{type}", h.RandomQuestion).Methods(http.MethodGet)
	r.HandleFunc("/submit", h.Submit).Methods(http.MethodPost)
	r.HandleFunc("/history", h.History).Methods(http.MethodGet)
	r.HandleFunc("/stats", h.Stats).Methods(http.MethodGet)
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, map[string]interface{}{"categories": h.codingService.Categories()})
}

func (h *Handler) Languages(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, map[string]interface{}{"languages": h.codingService.Languages()})
}

func (h *Handler) RandomQuestion(w http.ResponseWriter, r *http.Request) {
	qtype := domain.QuestionType(mux.Vars(r)["type"])
	q, err := h.codingService.RandomQuestion(r.Context(), qtype, r.URL.Query().Get("difficulty"))
	if err != nil {
		h.logError("Failed to fetch question", err)
		response.WriteError(w, response.FromError(err, "Failed to fetch question"))
		return
	}
	response.WriteSuccess(w, q)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil || !req.complete() {
		response.WriteError(w, response.ErrorMessage{
			Message:    "Question ID, language, code, and time taken are required",
			StatusCode: http.StatusBadRequest,
		})
		return
	}
	if *req.TimeTaken < 0 {
		response.WriteError(w, response.ErrorMessage{Message: "Time taken cannot be negative", StatusCode: http.StatusBadRequest})
		return
	}

	lang, err := domain.ParseLanguage(req.Language)
	if err != nil {
		response.WriteError(w, response.FromError(err, ""))
		return
	}

	payload, _ := handlers.AuthFromContext(r.Context())
	res, err := h.codingService.Submit(r.Context(), payload.UserID, &domain.SubmissionRequest{
		QuestionID: req.QuestionID,
		Language:   lang,
		Code:       req.Code,
		TimeTaken:  *req.TimeTaken,
	})
	if err != nil {
		h.logError("Failed to submit code", err, "questionId", req.QuestionID)
		response.WriteError(w, response.FromError(err, "Failed to submit code"))
		return
	}
	response.WriteSuccess(w, res)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.WriteError(w, response.ErrorMessage{Message: "limit must be a number", StatusCode: http.StatusBadRequest})
			return
		}
		limit = n
	}

	payload, _ := handlers.AuthFromContext(r.Context())
	attempts, err := h.codingService.History(r.Context(), payload.UserID, domain.QuestionType(r.URL.Query().Get("type")), limit)
	if err != nil {
		h.logError("Failed to fetch coding history", err)
		response.WriteError(w, response.FromError(err, "Failed to fetch coding history"))
		return
	}
	response.WriteSuccess(w, attempts)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	payload, _ := handlers.AuthFromContext(r.Context())
	stats, err := h.codingService.Stats(r.Context(), payload.UserID)
	if err != nil {
		h.logError("Failed to fetch coding statistics", err)
		response.WriteError(w, response.FromError(err, "Failed to fetch coding statistics"))
		return
	}
	response.WriteSuccess(w, stats)
}

// logError logs failures that are not the client's fault.
func (h *Handler) logError(msg string, err error, kv ...interface{}) {
	if response.FromError(err, "").StatusCode < http.StatusInternalServerError && !errors.Is(err, domain.ErrNoTestCases) {
		return
	}
	h.logger.Error(msg, append(kv, "error", err)...)
}
