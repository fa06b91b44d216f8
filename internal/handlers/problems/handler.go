package problems

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/services/problem"
	"gitlab.com/codeprep.net/internal/domain"
	"gitlab.com/codeprep.net/internal/handlers"
	"gitlab.com/codeprep.net/internal/handlers/response"
)

// Handler serves the public problem browser. A token is optional and only
// enables the solved/unsolved filter.
type Handler struct {
	problemService problem.IProblemService
	logger         primary.Logger
}

func NewHandler(problemService problem.IProblemService, logger primary.Logger) *Handler {
	return &Handler{
		problemService: problemService,
		logger:         logger,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	r := router.PathPrefix("/api/problems").Subrouter()
	r.Use(mw.OptionalJWT)
	r.HandleFunc("", h.List).Methods(http.MethodGet)
	r.HandleFunc("/", h.List).Methods(http.MethodGet)
	// registered before /{questionId} so that "stats" is not taken as an id
	r.HandleFunc("/stats/overview", h.Overview).Methods(http.MethodGet)
	r.HandleFunc("/{questionId}", h.Detail).Methods(http.MethodGet)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	difficulties, err := problem.ParseDifficulties(q.Get("difficulty"))
	if err != nil {
		response.WriteError(w, response.FromError(err, ""))
		return
	}
	page, err := intParam(q.Get("page"))
	if err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "page must be a number", StatusCode: http.StatusBadRequest})
		return
	}
	limit, err := intParam(q.Get("limit"))
	if err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "limit must be a number", StatusCode: http.StatusBadRequest})
		return
	}

	filter := domain.QuestionFilter{
		Topic:        q.Get("topic"),
		Difficulties: difficulties,
		Search:       q.Get("search"),
		Type:         domain.QuestionType(q.Get("type")),
		Status:       q.Get("status"),
		Page:         page,
		Limit:        limit,
	}
	if filter.Type != "" && !filter.Type.Valid() {
		response.WriteError(w, response.FromError(domain.ErrInvalidQuestionType, ""))
		return
	}
	if payload, ok := handlers.AuthFromContext(r.Context()); ok {
		filter.SolvedBy = payload.UserID.String()
	}

	result, err := h.problemService.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to fetch problems", "error", err)
		response.WriteError(w, response.FromError(err, "Failed to fetch problems"))
		return
	}
	response.WriteSuccess(w, result)
}

func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.problemService.Detail(r.Context(), mux.Vars(r)["questionId"])
	if err != nil {
		msg := response.FromError(err, "Failed to fetch problem")
		if msg.StatusCode == http.StatusNotFound {
			msg.Message = "Problem not found"
		} else {
			h.logger.Error("Failed to fetch problem", "error", err)
		}
		response.WriteError(w, msg)
		return
	}
	response.WriteSuccess(w, detail)
}

func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.problemService.Overview(r.Context())
	if err != nil {
		h.logger.Error("Failed to fetch statistics", "error", err)
		response.WriteError(w, response.FromError(err, "Failed to fetch statistics"))
		return
	}
	response.WriteSuccess(w, overview)
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
