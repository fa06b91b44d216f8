package interview

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/ports/secondary"
	"gitlab.com/codeprep.net/internal/domain"
)

const (
	feedbackExcellent = "Excellent! You have strong knowledge in this area."
	feedbackGood      = "Good performance! Keep practicing to improve further."
	feedbackFair      = "Fair performance. Review the concepts and practice more."
	feedbackPoor      = "Need improvement. Focus on fundamentals and practice regularly."
)

var _ IInterviewService = (*InterviewService)(nil)

type InterviewService struct {
	bank   Bank
	repo   secondary.InterviewRepository
	logger primary.Logger
}

func NewInterviewService(bank Bank, repo secondary.InterviewRepository, logger primary.Logger) *InterviewService {
	return &InterviewService{
		bank:   bank,
		repo:   repo,
		logger: logger,
	}
}

func (s *InterviewService) Questions(category domain.InterviewCategory) ([]domain.InterviewQuestion, error) {
	qs, ok := s.bank[category]
	if !ok {
		return nil, domain.ErrInvalidCategory
	}
	return qs, nil
}

func (s *InterviewService) Submit(ctx context.Context, userID uuid.UUID, sub *domain.InterviewSubmission) (*domain.InterviewResult, error) {
	qs, ok := s.bank[sub.Category]
	if !ok {
		return nil, domain.ErrInvalidCategory
	}
	if len(sub.Answers) == 0 || sub.TimeTaken <= 0 {
		return nil, domain.ErrInvalidSubmission
	}

	correct := 0
	for i, answer := range sub.Answers {
		if i < len(qs) && answer == qs[i].Correct {
			correct++
		}
	}
	score := domain.RoundedMean(correct*100, len(qs))

	interview := &domain.Interview{
		ID:             uuid.New(),
		UserID:         userID,
		Category:       sub.Category,
		Score:          score,
		TotalQuestions: len(qs),
		CorrectAnswers: correct,
		TimeTaken:      sub.TimeTaken,
		Feedback:       Feedback(score),
		CompletedAt:    time.Now(),
	}
	if err := s.repo.SaveInterview(ctx, interview); err != nil {
		return nil, fmt.Errorf("failed to save interview: %w", err)
	}

	s.logger.Info("Interview submitted", "userId", userID, "category", sub.Category, "score", score)

	return &domain.InterviewResult{
		InterviewID:    interview.ID,
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: len(qs),
		TimeTaken:      sub.TimeTaken,
		Feedback:       interview.Feedback,
	}, nil
}

func (s *InterviewService) History(ctx context.Context, userID uuid.UUID) ([]*domain.Interview, error) {
	interviews, err := s.repo.ListInterviews(ctx, userID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	if interviews == nil {
		interviews = []*domain.Interview{}
	}
	return interviews, nil
}

func (s *InterviewService) Stats(ctx context.Context, userID uuid.UUID) (*domain.InterviewStats, error) {
	interviews, err := s.repo.AllInterviews(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load interviews: %w", err)
	}

	type sum struct{ count, score int }
	total := sum{}
	byCat := make(map[domain.InterviewCategory]*sum, len(domain.InterviewCategories))
	for _, c := range domain.InterviewCategories {
		byCat[c] = &sum{}
	}
	for _, iv := range interviews {
		total.count++
		total.score += iv.Score
		if c, ok := byCat[iv.Category]; ok {
			c.count++
			c.score += iv.Score
		}
	}

	stats := &domain.InterviewStats{
		TotalInterviews: total.count,
		AverageScore:    domain.RoundedMean(total.score, total.count),
		ByCategory:      make(map[domain.InterviewCategory]domain.CategoryStats, len(byCat)),
	}
	for c, v := range byCat {
		stats.ByCategory[c] = domain.CategoryStats{Count: v.count, AvgScore: domain.RoundedMean(v.score, v.count)}
	}
	return stats, nil
}

// Feedback picks the banded message for a quiz score.
func Feedback(score int) string {
	switch {
	case score >= 80:
		return feedbackExcellent
	case score >= 60:
		return feedbackGood
	case score >= 40:
		return feedbackFair
	default:
		return feedbackPoor
	}
}
