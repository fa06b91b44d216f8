package interview

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codeprep.net/internal/domain"
)

const HistoryLimit = 20

type IInterviewService interface {
	// Questions returns the quiz without its answer key.
	Questions(category domain.InterviewCategory) ([]domain.InterviewQuestion, error)
	Submit(ctx context.Context, userID uuid.UUID, submission *domain.InterviewSubmission) (*domain.InterviewResult, error)
	History(ctx context.Context, userID uuid.UUID) ([]*domain.Interview, error)
	Stats(ctx context.Context, userID uuid.UUID) (*domain.InterviewStats, error)
}
