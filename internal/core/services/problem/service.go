package problem

import (
	"context"

	"gitlab.com/codeprep.net/internal/domain"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

type IProblemService interface {
	List(ctx context.Context, filter domain.QuestionFilter) (*domain.ProblemPage, error)
	Detail(ctx context.Context, questionID string) (*domain.PracticeQuestion, error)
	Overview(ctx context.Context) (*domain.QuestionOverview, error)
}
