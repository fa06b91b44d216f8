package secondary

import (
	"context"

	"gitlab.com/codeprep.net/internal/domain"
)

type QuestionRepository interface {
	// GetQuestion returns nil, nil when the question does not exist
	GetQuestion(ctx context.Context, questionID string) (*domain.Question, error)

	// RandomQuestion picks one question of the given type, optionally filtered by difficulty
	RandomQuestion(ctx context.Context, questionType domain.QuestionType, difficulty domain.Difficulty) (*domain.Question, error)

	ListQuestions(ctx context.Context, filter domain.QuestionFilter) ([]*domain.QuestionSummary, int, error)

	Overview(ctx context.Context) (*domain.QuestionOverview, error)

	// SaveQuestion inserts or replaces the question content, keeping its counters
	SaveQuestion(ctx context.Context, question *domain.Question) error

	// RecordSubmission bumps the submission counters of a question
	RecordSubmission(ctx context.Context, questionID string, accepted bool) error
}
