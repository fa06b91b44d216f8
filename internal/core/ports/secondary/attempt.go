package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codeprep.net/internal/domain"
)

// AttemptRepository stores graded coding attempts.
type AttemptRepository interface {
	SaveAttempt(ctx context.Context, attempt *domain.CodingAttempt) error

	// ListAttempts returns the newest attempts first; an empty questionType matches all
	ListAttempts(ctx context.Context, userID uuid.UUID, questionType domain.QuestionType, limit int) ([]*domain.CodingAttempt, error)

	AllAttempts(ctx context.Context, userID uuid.UUID) ([]*domain.CodingAttempt, error)
}
