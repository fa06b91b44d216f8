package contribution

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codeprep.net/internal/domain"
)

type IContributionService interface {
	Submit(ctx context.Context, userID uuid.UUID, c *domain.Contribution) (*domain.Contribution, error)
	Mine(ctx context.Context, userID uuid.UUID) ([]*domain.Contribution, error)
	// Pending and Review are restricted to admins.
	Pending(ctx context.Context, reviewer *domain.AuthPayload) ([]*domain.Contribution, error)
	Review(ctx context.Context, reviewer *domain.AuthPayload, id uuid.UUID, review domain.ContributionReview) (*domain.Contribution, error)
	Stats(ctx context.Context, userID uuid.UUID) (*domain.ContributionStats, error)
}
