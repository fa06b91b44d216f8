package coding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/codeprep.net/internal/adapter/crypto"
	"gitlab.com/codeprep.net/internal/adapter/logging"
	"gitlab.com/codeprep.net/internal/config"
	"gitlab.com/codeprep.net/internal/domain"
	"gitlab.com/codeprep.net/internal/handlers"
)

type fakeService struct {
	submitted *domain.SubmissionRequest
	user      uuid.UUID
	limit     int
}

func (f *fakeService) Categories() []domain.QuestionCategory { return domain.QuestionCategories }
func (f *fakeService) Languages() []domain.LanguageInfo      { return domain.SupportedLanguages }

func (f *fakeService) RandomQuestion(_ context.Context, t domain.QuestionType, _ string) (*domain.PracticeQuestion, error) {
	if !t.Valid() {
		return nil, domain.ErrInvalidQuestionType
	}
	return &domain.PracticeQuestion{QuestionID: "DSA001", Type: t}, nil
}

func (f *fakeService) Submit(_ context.Context, user uuid.UUID, req *domain.SubmissionRequest) (*domain.SubmissionResult, error) {
	if req.QuestionID == "MISSING" {
		return nil, domain.ErrQuestionNotFound
	}
	f.submitted, f.user = req, user
	return &domain.SubmissionResult{
		GradedResult: &domain.GradedResult{Status: domain.StatusCorrect, Score: 99, TestResults: []domain.TestCaseResult{}},
		AttemptID:    uuid.New(),
	}, nil
}

func (f *fakeService) History(_ context.Context, _ uuid.UUID, _ domain.QuestionType, limit int) ([]*domain.CodingAttempt, error) {
	f.limit = limit
	return []*domain.CodingAttempt{}, nil
}

func (f *fakeService) Stats(context.Context, uuid.UUID) (*domain.CodingStats, error) {
	return &domain.CodingStats{}, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setup(t *testing.T) (*mux.Router, *fakeService, string, uuid.UUID) {
	t.Helper()
	jwtSvc := crypto.NewJWTService(&config.JwtConfig{Secret: "handler-secret", TTL: time.Hour})
	user := uuid.New()
	token, err := jwtSvc.GenerateTokenHMAC(context.Background(), "HS256", map[string]interface{}{
		"userId": user.String(),
		"email":  "ada@example.com",
	})
	if err != nil {
		t.Fatalf("GenerateTokenHMAC: %v", err)
	}
	svc := &fakeService{}
	router := mux.NewRouter()
	NewHandler(svc, logging.NewNopLogger()).RegisterRoutes(router, handlers.New(jwtSvc, logging.NewNopLogger()))
	return router, svc, token, user
}

func do(router http.Handler, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestRequiresToken(t *testing.T) {
	router, _, _, _ := setup(t)
	rec, env := do(router, http.MethodGet, "/api/coding/categories", "", "")
	if rec.Code != http.StatusUnauthorized || env.Success {
		t.Fatalf("status = %d, body = %+v", rec.Code, env)
	}
}

func TestCategoriesAndLanguages(t *testing.T) {
	router, _, token, _ := setup(t)
	rec, env := do(router, http.MethodGet, "/api/coding/languages", token, "")
	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("status = %d", rec.Code)
	}
	var data struct {
		Languages []domain.LanguageInfo `json:"languages"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || len(data.Languages) != 5 {
		t.Fatalf("languages = %+v, %v", data, err)
	}
}

func TestRandomQuestionInvalidType(t *testing.T) {
	router, _, token, _ := setup(t)
	rec, env := do(router, http.MethodGet, "/api/coding/questions/SQL", token, "")
	if rec.Code != http.StatusBadRequest || env.Message != "Invalid type. Choose DSA or Programming" {
		t.Fatalf("status = %d, message = %q", rec.Code, env.Message)
	}
}

func TestSubmit(t *testing.T) {
	router, svc, token, user := setup(t)

	tests := []struct {
		name    string
		body    string
		code    int
		message string
	}{
		{"missing time", `{"questionId":"DSA001","language":"python","code":"x"}`, http.StatusBadRequest, "Question ID, language, code, and time taken are required"},
		{"bad json", `{`, http.StatusBadRequest, "Question ID, language, code, and time taken are required"},
		{"unsupported language", `{"questionId":"DSA001","language":"ruby","code":"x","timeTaken":5}`, http.StatusBadRequest, "Unsupported language"},
		{"unknown question", `{"questionId":"MISSING","language":"python","code":"x","timeTaken":5}`, http.StatusNotFound, "Question not found"},
		{"zero time accepted", `{"questionId":"DSA001","language":"Python","code":"x","timeTaken":0}`, http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(router, http.MethodPost, "/api/coding/submit", token, tt.body)
			if rec.Code != tt.code || env.Message != tt.message {
				t.Fatalf("status = %d (%q), want %d (%q)", rec.Code, env.Message, tt.code, tt.message)
			}
		})
	}

	if svc.submitted == nil || svc.submitted.Language != domain.LanguagePython || svc.user != user {
		t.Fatalf("service saw %+v for %s", svc.submitted, svc.user)
	}
}

func TestSubmitResponseCarriesAttemptID(t *testing.T) {
	router, _, token, _ := setup(t)
	_, env := do(router, http.MethodPost, "/api/coding/submit", token, `{"questionId":"DSA001","language":"python","code":"x","timeTaken":12}`)
	var data map[string]interface{}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data["status"] != "Correct" || data["attemptId"] == nil {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestHistoryLimitParam(t *testing.T) {
	router, svc, token, _ := setup(t)
	if rec, _ := do(router, http.MethodGet, "/api/coding/history?limit=abc", token, ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec, _ := do(router, http.MethodGet, "/api/coding/history?limit=7&type=DSA", token, ""); rec.Code != http.StatusOK || svc.limit != 7 {
		t.Fatalf("status = %d, limit = %d", rec.Code, svc.limit)
	}
}
