package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"gitlab.com/codeprep.net/internal/domain"
	"gitlab.com/codeprep.net/internal/static/errs"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorMessage struct {
	Message    string
	StatusCode int
}

func WriteJSON(w http.ResponseWriter, statusCode int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func WriteError(w http.ResponseWriter, err ErrorMessage) {
	WriteJSON(w, err.StatusCode, Envelope{Success: false, Message: err.Message})
}

func WriteSuccess(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// WriteCreated is WriteSuccess with a 201 status and a message.
func WriteCreated(w http.ResponseWriter, message string, data interface{}) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

type statusRule struct {
	target error
	code   int
}

var statusRules = []statusRule{
	{domain.ErrUnsupportedLanguage, http.StatusBadRequest},
	{domain.ErrInvalidSubmission, http.StatusBadRequest},
	{domain.ErrInvalidQuestionType, http.StatusBadRequest},
	{domain.ErrInvalidDifficulty, http.StatusBadRequest},
	{domain.ErrInvalidCategory, http.StatusBadRequest},
	{domain.ErrInvalidFunctionName, http.StatusUnprocessableEntity},
	{domain.ErrNoTestCases, http.StatusUnprocessableEntity},
	{domain.ErrQuestionNotFound, http.StatusNotFound},
	{domain.ErrNoQuestions, http.StatusNotFound},
	{domain.ErrInvalidContribution, http.StatusBadRequest},
	{domain.ErrInvalidReview, http.StatusBadRequest},
	{domain.ErrContributionNotFound, http.StatusNotFound},
	{domain.ErrContributionReviewed, http.StatusConflict},
	{errs.AdminRequired, http.StatusForbidden},
	{errs.NameRequired, http.StatusBadRequest},
	{errs.EmailRequired, http.StatusBadRequest},
	{errs.WeakPassword, http.StatusBadRequest},
	{errs.EmailTaken, http.StatusConflict},
	{errs.InvalidCredentials, http.StatusUnauthorized},
	{errs.UserNotFound, http.StatusNotFound},
	{errs.GoogleDisabled, http.StatusServiceUnavailable},
}

// FromError maps a service error to a client facing message. Unknown
// errors become a 500 carrying fallback instead of the error text.
func FromError(err error, fallback string) ErrorMessage {
	for _, rule := range statusRules {
		if errors.Is(err, rule.target) {
			return ErrorMessage{Message: messageFor(rule.target), StatusCode: rule.code}
		}
	}
	return ErrorMessage{Message: fallback, StatusCode: http.StatusInternalServerError}
}

func messageFor(err error) string {
	switch err {
	case domain.ErrUnsupportedLanguage:
		return "Unsupported language"
	case domain.ErrQuestionNotFound:
		return "Question not found"
	case domain.ErrInvalidQuestionType:
		return "Invalid type. Choose DSA or Programming"
	case domain.ErrInvalidCategory:
		return "Invalid category. Choose: technical, hr, aptitude, or coding"
	case domain.ErrNoQuestions:
		return "No questions found for this category"
	case domain.ErrInvalidContribution:
		return "Experiences need a company and questions; questions need a title and description"
	case domain.ErrInvalidReview:
		return "Invalid status"
	case domain.ErrContributionNotFound:
		return "Submission not found"
	case domain.ErrContributionReviewed:
		return "Submission already reviewed"
	case errs.AdminRequired:
		return "Admin access required"
	}
	return err.Error()
}
