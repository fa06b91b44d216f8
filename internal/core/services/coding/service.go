package coding

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codeprep.net/internal/domain"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// ICodingService is the coding practice area: question picking, graded
// submissions and per user history.
type ICodingService interface {
	Categories() []domain.QuestionCategory
	Languages() []domain.LanguageInfo
	RandomQuestion(ctx context.Context, questionType domain.QuestionType, difficulty string) (*domain.PracticeQuestion, error)
	Submit(ctx context.Context, userID uuid.UUID, req *domain.SubmissionRequest) (*domain.SubmissionResult, error)
	History(ctx context.Context, userID uuid.UUID, questionType domain.QuestionType, limit int) ([]*domain.CodingAttempt, error)
	Stats(ctx context.Context, userID uuid.UUID) (*domain.CodingStats, error)
}
