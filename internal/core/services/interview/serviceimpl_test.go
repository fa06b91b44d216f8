package interview

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"gitlab.com/codeprep.net/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

type fakeRepo struct {
	saved []*domain.Interview
	limit int
}

func (f *fakeRepo) SaveInterview(_ context.Context, iv *domain.Interview) error {
	f.saved = append(f.saved, iv)
	return nil
}

func (f *fakeRepo) ListInterviews(_ context.Context, _ uuid.UUID, limit int) ([]*domain.Interview, error) {
	f.limit = limit
	return nil, nil
}

func (f *fakeRepo) AllInterviews(context.Context, uuid.UUID) ([]*domain.Interview, error) {
	return f.saved, nil
}

func newService(t *testing.T) (*InterviewService, *fakeRepo) {
	t.Helper()
	bank, err := DefaultBank()
	if err != nil {
		t.Fatalf("DefaultBank: %v", err)
	}
	repo := &fakeRepo{}
	return NewInterviewService(bank, repo, nopLogger{}), repo
}

func TestDefaultBank(t *testing.T) {
	bank, err := DefaultBank()
	if err != nil {
		t.Fatalf("DefaultBank: %v", err)
	}
	for _, c := range domain.InterviewCategories {
		if len(bank[c]) != 5 {
			t.Fatalf("%s has %d questions, want 5", c, len(bank[c]))
		}
	}
	if bank[domain.InterviewAptitude][2].Correct != 2 {
		t.Fatalf("unexpected answer key for aptitude question 3")
	}
}

func TestLoadBankValidation(t *testing.T) {
	if _, err := LoadBank([]byte("technical: []\n")); err == nil {
		t.Fatalf("expected error for missing categories")
	}
	bad := `
technical: [{id: 1, question: q, options: [a], correct: 3}]
hr: [{id: 1, question: q, options: [a], correct: 0}]
aptitude: [{id: 1, question: q, options: [a], correct: 0}]
`
	if _, err := LoadBank([]byte(bad)); err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("err = %v", err)
	}
}

func TestQuestionsHideAnswers(t *testing.T) {
	svc, _ := newService(t)
	qs, err := svc.Questions(domain.InterviewTechnical)
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	raw, err := json.Marshal(qs)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "correct") {
		t.Fatalf("answer key leaked: %s", raw)
	}
	if _, err := svc.Questions("sports"); !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("err = %v", err)
	}
}

func TestSubmitScoresAndStores(t *testing.T) {
	svc, repo := newService(t)
	tests := []struct {
		name     string
		answers  []int
		score    int
		feedback string
	}{
		{"all correct", []int{0, 1, 2, 1, 0}, 100, feedbackExcellent},
		{"three of five", []int{0, 1, 2, 0, 1}, 60, feedbackGood},
		{"two of five", []int{0, 1, 0, 0, 1}, 40, feedbackFair},
		{"extra answers ignored", []int{3, 3, 3, 3, 0, 0, 0}, 20, feedbackPoor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Submit(context.Background(), uuid.New(), &domain.InterviewSubmission{
				Category:  domain.InterviewTechnical,
				Answers:   tt.answers,
				TimeTaken: 120,
			})
			if err != nil {
				t.Fatalf("Submit: %v", err)
			}
			if res.Score != tt.score || res.Feedback != tt.feedback || res.TotalQuestions != 5 {
				t.Fatalf("got %+v, want score %d", res, tt.score)
			}
			last := repo.saved[len(repo.saved)-1]
			if last.ID != res.InterviewID || last.Score != tt.score {
				t.Fatalf("stored %+v", last)
			}
		})
	}
}

func TestSubmitRejects(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()
	if _, err := svc.Submit(ctx, uuid.New(), &domain.InterviewSubmission{Category: "coding", Answers: []int{0}, TimeTaken: 1}); !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("err = %v", err)
	}
	if _, err := svc.Submit(ctx, uuid.New(), &domain.InterviewSubmission{Category: domain.InterviewHR, TimeTaken: 1}); !errors.Is(err, domain.ErrInvalidSubmission) {
		t.Fatalf("err = %v", err)
	}
	if len(repo.saved) != 0 {
		t.Fatalf("rejected submissions were stored")
	}
}

func TestFeedbackBands(t *testing.T) {
	for score, want := range map[int]string{100: feedbackExcellent, 80: feedbackExcellent, 79: feedbackGood, 60: feedbackGood, 59: feedbackFair, 40: feedbackFair, 39: feedbackPoor, 0: feedbackPoor} {
		if got := Feedback(score); got != want {
			t.Fatalf("Feedback(%d) = %q, want %q", score, got, want)
		}
	}
}

func TestHistoryAndStats(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()
	history, err := svc.History(ctx, uuid.New())
	if err != nil || history == nil || repo.limit != HistoryLimit {
		t.Fatalf("History = %v, %v (limit %d)", history, err, repo.limit)
	}

	repo.saved = []*domain.Interview{
		{Category: domain.InterviewTechnical, Score: 80},
		{Category: domain.InterviewTechnical, Score: 61},
		{Category: domain.InterviewHR, Score: 20},
	}
	stats, err := svc.Stats(ctx, uuid.New())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalInterviews != 3 || stats.AverageScore != 54 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if got := stats.ByCategory[domain.InterviewTechnical]; got != (domain.CategoryStats{Count: 2, AvgScore: 71}) {
		t.Fatalf("technical = %+v", got)
	}
	if got := stats.ByCategory[domain.InterviewAptitude]; got != (domain.CategoryStats{}) {
		t.Fatalf("aptitude = %+v", got)
	}
}
