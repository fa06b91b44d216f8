package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codeprep.net/internal/domain"
)

type InterviewRepository interface {
	SaveInterview(ctx context.Context, interview *domain.Interview) error
	ListInterviews(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Interview, error)
	AllInterviews(ctx context.Context, userID uuid.UUID) ([]*domain.Interview, error)
}
