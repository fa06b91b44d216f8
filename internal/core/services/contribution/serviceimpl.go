package contribution

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codeprep.net/internal/config"
	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/ports/secondary"
	"gitlab.com/codeprep.net/internal/domain"
	"gitlab.com/codeprep.net/internal/static/errs"
)

var _ IContributionService = (*ContributionService)(nil)

type ContributionService struct {
	repo   secondary.ContributionRepository
	admins map[string]struct{}
	logger primary.Logger
}

func NewContributionService(repo secondary.ContributionRepository, cfg *config.ContributionsConfig, logger primary.Logger) *ContributionService {
	admins := make(map[string]struct{})
	if cfg != nil {
		for _, e := range cfg.AdminEmails {
			admins[strings.ToLower(e)] = struct{}{}
		}
	}
	return &ContributionService{
		repo:   repo,
		admins: admins,
		logger: logger,
	}
}

func (s *ContributionService) Submit(ctx context.Context, userID uuid.UUID, c *domain.Contribution) (*domain.Contribution, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	c.ID = uuid.New()
	c.UserID = userID
	c.Status = domain.ContributionPending
	c.ReviewedBy = uuid.NullUUID{}
	c.ReviewedAt = nil
	c.ReviewNotes = ""
	c.CreatedAt = time.Now()
	if err := s.repo.SaveContribution(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save contribution: %w", err)
	}

	s.logger.Info("Contribution received", "contributionId", c.ID, "userId", userID, "type", c.Type)
	return c, nil
}

func (s *ContributionService) Mine(ctx context.Context, userID uuid.UUID) ([]*domain.Contribution, error) {
	contributions, err := s.repo.ListContributionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	if contributions == nil {
		contributions = []*domain.Contribution{}
	}
	return contributions, nil
}

func (s *ContributionService) isAdmin(reviewer *domain.AuthPayload) bool {
	if reviewer == nil {
		return false
	}
	_, ok := s.admins[strings.ToLower(reviewer.Email)]
	return ok
}

func (s *ContributionService) Pending(ctx context.Context, reviewer *domain.AuthPayload) ([]*domain.Contribution, error) {
	if !s.isAdmin(reviewer) {
		return nil, errs.AdminRequired
	}
	contributions, err := s.repo.ListPendingContributions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending contributions: %w", err)
	}
	if contributions == nil {
		contributions = []*domain.Contribution{}
	}
	return contributions, nil
}

func (s *ContributionService) Review(ctx context.Context, reviewer *domain.AuthPayload, id uuid.UUID, review domain.ContributionReview) (*domain.Contribution, error) {
	if !s.isAdmin(reviewer) {
		return nil, errs.AdminRequired
	}
	if review.Status != domain.ContributionApproved && review.Status != domain.ContributionRejected {
		return nil, domain.ErrInvalidReview
	}

	c, err := s.repo.GetContribution(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load contribution: %w", err)
	}
	if c == nil {
		return nil, domain.ErrContributionNotFound
	}
	if c.Status != domain.ContributionPending {
		return nil, domain.ErrContributionReviewed
	}

	now := time.Now()
	c.Status = review.Status
	c.ReviewedBy = uuid.NullUUID{UUID: reviewer.UserID, Valid: true}
	c.ReviewedAt = &now
	c.ReviewNotes = review.Notes

	updated, err := s.repo.ReviewContribution(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to review contribution: %w", err)
	}
	if !updated {
		return nil, domain.ErrContributionReviewed
	}

	s.logger.Info("Contribution reviewed", "contributionId", id, "status", review.Status, "reviewer", reviewer.UserID)
	return c, nil
}

func (s *ContributionService) Stats(ctx context.Context, userID uuid.UUID) (*domain.ContributionStats, error) {
	counts, err := s.repo.CountContributionsByStatus(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count contributions: %w", err)
	}

	stats := &domain.ContributionStats{ByStatus: make(map[domain.ContributionStatus]int, len(domain.ContributionStatuses))}
	for _, status := range domain.ContributionStatuses {
		stats.ByStatus[status] = counts[status]
		stats.Total += counts[status]
	}
	return stats, nil
}
