package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codeprep.net/internal/domain"
)

type ContributionRepository interface {
	SaveContribution(ctx context.Context, c *domain.Contribution) error
	// GetContribution returns nil, nil for an unknown id.
	GetContribution(ctx context.Context, id uuid.UUID) (*domain.Contribution, error)
	ListContributionsByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Contribution, error)
	// ListPendingContributions includes the submitter's name and email.
	ListPendingContributions(ctx context.Context) ([]*domain.Contribution, error)
	// ReviewContribution stores the decision only if c is still pending and reports whether it did.
	ReviewContribution(ctx context.Context, c *domain.Contribution) (bool, error)
	CountContributionsByStatus(ctx context.Context, userID uuid.UUID) (map[domain.ContributionStatus]int, error)
}
