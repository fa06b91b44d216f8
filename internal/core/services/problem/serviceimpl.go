package problem

import (
	"context"
	"fmt"
	"strings"

	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/ports/secondary"
	"gitlab.com/codeprep.net/internal/domain"
)

var _ IProblemService = (*ProblemService)(nil)

type ProblemService struct {
	questions secondary.QuestionRepository
	logger    primary.Logger
}

func NewProblemService(questions secondary.QuestionRepository, logger primary.Logger) *ProblemService {
	return &ProblemService{
		questions: questions,
		logger:    logger,
	}
}

func (s *ProblemService) List(ctx context.Context, filter domain.QuestionFilter) (*domain.ProblemPage, error) {
	filter = normalizeFilter(filter)

	problems, total, err := s.questions.ListQuestions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}
	if problems == nil {
		problems = []*domain.QuestionSummary{}
	}

	return &domain.ProblemPage{
		Problems: problems,
		Pagination: domain.Pagination{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: total,
			Pages: (total + filter.Limit - 1) / filter.Limit,
		},
	}, nil
}

func (s *ProblemService) Detail(ctx context.Context, questionID string) (*domain.PracticeQuestion, error) {
	q, err := s.questions.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load problem: %w", err)
	}
	if q == nil {
		return nil, domain.ErrQuestionNotFound
	}
	return q.Practice(), nil
}

func (s *ProblemService) Overview(ctx context.Context) (*domain.QuestionOverview, error) {
	overview, err := s.questions.Overview(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load overview: %w", err)
	}
	return overview, nil
}

// ParseDifficulties reads a comma separated difficulty list such as "Easy,Hard".
func ParseDifficulties(raw string) ([]domain.Difficulty, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var out []domain.Difficulty
	seen := map[domain.Difficulty]bool{}
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		d, ok := domain.ParseDifficulty(part)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, part)
		}
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out, nil
}

func normalizeFilter(f domain.QuestionFilter) domain.QuestionFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultPageSize
	case f.Limit > MaxPageSize:
		f.Limit = MaxPageSize
	}
	f.Topic = strings.TrimSpace(f.Topic)
	if strings.EqualFold(f.Topic, "all") {
		f.Topic = ""
	}
	f.Search = strings.TrimSpace(f.Search)
	// solved/unsolved only means something for a signed in user
	if f.SolvedBy == "" || (f.Status != "solved" && f.Status != "unsolved") {
		f.Status = ""
	}
	return f
}
