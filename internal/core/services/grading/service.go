package grading

import (
	"context"

	"gitlab.com/codeprep.net/internal/domain"
)

// IGradingService grades a code submission against a question's test cases.
type IGradingService interface {
	// Grade runs the full pipeline. Well formed requests always yield a
	// result; per case sandbox failures are folded into the verdict.
	Grade(ctx context.Context, question *domain.Question, req *domain.SubmissionRequest) (*domain.GradedResult, error)
}
