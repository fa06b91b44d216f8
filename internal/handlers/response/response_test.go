package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gitlab.com/codeprep.net/internal/domain"
	"gitlab.com/codeprep.net/internal/static/errs"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		err     error
		code    int
		message string
	}{
		{fmt.Errorf("%w: \"ruby\"", domain.ErrUnsupportedLanguage), http.StatusBadRequest, "Unsupported language"},
		{domain.ErrQuestionNotFound, http.StatusNotFound, "Question not found"},
		{errs.EmailTaken, http.StatusConflict, errs.EmailTaken.Error()},
		{errs.InvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{errs.AdminRequired, http.StatusForbidden, "Admin access required"},
		{domain.ErrContributionReviewed, http.StatusConflict, "Submission already reviewed"},
		{errors.New("pq: connection refused"), http.StatusInternalServerError, "Failed to do it"},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			got := FromError(tt.err, "Failed to do it")
			if got.StatusCode != tt.code || got.Message != tt.message {
				t.Fatalf("got %+v, want %d %q", got, tt.code, tt.message)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, ErrorMessage{Message: "nope", StatusCode: http.StatusTeapot})

	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d", rec.Code)
	}
	var body Envelope
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || body.Message != "nope" || body.Data != nil {
		t.Fatalf("unexpected body: %+v", body)
	}
}
