package coding

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/ports/secondary"
	"gitlab.com/codeprep.net/internal/core/services/grading"
	"gitlab.com/codeprep.net/internal/domain"
)

var _ ICodingService = (*CodingService)(nil)

type CodingService struct {
	questions secondary.QuestionRepository
	attempts  secondary.AttemptRepository
	grader    grading.IGradingService
	logger    primary.Logger
}

func NewCodingService(
	questions secondary.QuestionRepository,
	attempts secondary.AttemptRepository,
	grader grading.IGradingService,
	logger primary.Logger,
) *CodingService {
	return &CodingService{
		questions: questions,
		attempts:  attempts,
		grader:    grader,
		logger:    logger,
	}
}

func (s *CodingService) Categories() []domain.QuestionCategory {
	return domain.QuestionCategories
}

func (s *CodingService) Languages() []domain.LanguageInfo {
	return domain.SupportedLanguages
}

func (s *CodingService) RandomQuestion(ctx context.Context, questionType domain.QuestionType, difficulty string) (*domain.PracticeQuestion, error) {
	if !questionType.Valid() {
		return nil, domain.ErrInvalidQuestionType
	}

	var level domain.Difficulty
	if strings.TrimSpace(difficulty) != "" {
		var ok bool
		if level, ok = domain.ParseDifficulty(difficulty); !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, difficulty)
		}
	}

	q, err := s.questions.RandomQuestion(ctx, questionType, level)
	if err != nil {
		return nil, fmt.Errorf("failed to pick question: %w", err)
	}
	if q == nil {
		return nil, domain.ErrNoQuestions
	}
	return q.Practice(), nil
}

// Submit grades the code, stores the attempt and bumps the question counters.
// Time limit verdicts are stored like any other attempt.
func (s *CodingService) Submit(ctx context.Context, userID uuid.UUID, req *domain.SubmissionRequest) (*domain.SubmissionResult, error) {
	if req.QuestionID == "" || strings.TrimSpace(req.Code) == "" || req.TimeTaken < 0 {
		return nil, domain.ErrInvalidSubmission
	}
	if !req.Language.Valid() {
		return nil, domain.ErrUnsupportedLanguage
	}

	q, err := s.questions.GetQuestion(ctx, req.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load question: %w", err)
	}
	if q == nil {
		return nil, domain.ErrQuestionNotFound
	}

	graded, err := s.grader.Grade(ctx, q, req)
	if err != nil {
		return nil, err
	}

	attempt := domain.NewCodingAttempt(userID, q, req, graded)
	if err := s.attempts.SaveAttempt(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to save attempt: %w", err)
	}

	if err := s.questions.RecordSubmission(ctx, q.QuestionID, graded.Status == domain.StatusCorrect); err != nil {
		s.logger.Warn("Failed to record submission counters", "questionId", q.QuestionID, "error", err)
	}

	s.logger.Info("Attempt stored",
		"attemptId", attempt.ID,
		"userId", userID,
		"questionId", q.QuestionID,
		"status", graded.Status)

	return &domain.SubmissionResult{GradedResult: graded, AttemptID: attempt.ID}, nil
}

func (s *CodingService) History(ctx context.Context, userID uuid.UUID, questionType domain.QuestionType, limit int) ([]*domain.CodingAttempt, error) {
	if questionType != "" && !questionType.Valid() {
		return nil, domain.ErrInvalidQuestionType
	}
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	attempts, err := s.attempts.ListAttempts(ctx, userID, questionType, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	if attempts == nil {
		attempts = []*domain.CodingAttempt{}
	}
	return attempts, nil
}

func (s *CodingService) Stats(ctx context.Context, userID uuid.UUID) (*domain.CodingStats, error) {
	attempts, err := s.attempts.AllAttempts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempts: %w", err)
	}
	return summarize(attempts), nil
}

type tally struct {
	attempts, score, correct int
}

func (t *tally) add(a *domain.CodingAttempt) {
	t.attempts++
	t.score += a.Score
	if a.Status == domain.StatusCorrect {
		t.correct++
	}
}

func summarize(attempts []*domain.CodingAttempt) *domain.CodingStats {
	var all tally
	byType := map[domain.QuestionType]*tally{
		domain.QuestionTypeDSA:         {},
		domain.QuestionTypeProgramming: {},
	}
	byLang := map[domain.Language]*tally{}

	for _, a := range attempts {
		all.add(a)
		if t, ok := byType[a.QuestionType]; ok {
			t.add(a)
		}
		t, ok := byLang[a.Language]
		if !ok {
			t = &tally{}
			byLang[a.Language] = t
		}
		t.add(a)
	}

	stats := &domain.CodingStats{
		TotalAttempts:      all.attempts,
		AverageScore:       domain.RoundedMean(all.score, all.attempts),
		CorrectSubmissions: all.correct,
		ByType:             make(map[domain.QuestionType]domain.TypeStats, len(byType)),
		ByLanguage:         make(map[domain.Language]domain.LanguageStats, len(byLang)),
	}
	for k, t := range byType {
		stats.ByType[k] = domain.TypeStats{
			Attempts: t.attempts,
			AvgScore: domain.RoundedMean(t.score, t.attempts),
			Correct:  t.correct,
		}
	}
	for k, t := range byLang {
		stats.ByLanguage[k] = domain.LanguageStats{
			Attempts: t.attempts,
			AvgScore: domain.RoundedMean(t.score, t.attempts),
		}
	}
	return stats
}
