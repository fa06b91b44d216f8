package grading

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/ports/secondary"
	"gitlab.com/codeprep.net/internal/domain"
)

var _ IGradingService = (*GradingService)(nil)

type GradingService struct {
	runner   *Runner
	logger   primary.Logger
	deadline time.Duration
}

type Option func(*GradingService)

// WithDeadline bounds the sandbox calls of a single Grade. Zero means no bound.
func WithDeadline(d time.Duration) Option {
	return func(s *GradingService) {
		s.deadline = d
	}
}

func NewGradingService(executor secondary.CodeExecutor, logger primary.Logger, maxParallel int, opts ...Option) *GradingService {
	s := &GradingService{
		runner: NewRunner(executor, logger, maxParallel),
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *GradingService) Grade(ctx context.Context, question *domain.Question, req *domain.SubmissionRequest) (*domain.GradedResult, error) {
	if question == nil {
		return nil, domain.ErrQuestionNotFound
	}
	if !req.Language.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, req.Language)
	}
	if len(question.TestCases) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoTestCases, question.QuestionID)
	}

	total := len(question.TestCases)

	if ExceedsTimeLimit(req.TimeTaken, question.TimeLimit) {
		s.logger.Info("Submission over time limit",
			"questionId", question.QuestionID,
			"timeTaken", req.TimeTaken,
			"timeLimit", question.TimeLimit)
		verdict := TimeLimitVerdict(question.TimeLimit)
		return &domain.GradedResult{
			Status:         verdict.Status,
			Score:          verdict.Score,
			TotalTestCases: total,
			TimeTaken:      req.TimeTaken,
			Feedback:       verdict.Feedback,
			ErrorMessage:   verdict.ErrorMessage,
			TestResults:    []domain.TestCaseResult{},
		}, nil
	}

	s.logger.Info("Grading submission",
		"questionId", question.QuestionID,
		"language", req.Language,
		"testCases", total)

	if s.deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.deadline)
		defer cancel()
	}
	results := s.runner.Run(ctx, req.Code, req.Language, question.TestCases, question.EntryPoint())
	verdict := Score(results, req.TimeTaken, question.TimeLimit)

	result := &domain.GradedResult{
		Status:          verdict.Status,
		Score:           verdict.Score,
		TestCasesPassed: countPassed(results),
		TotalTestCases:  total,
		TimeTaken:       req.TimeTaken,
		Feedback:        verdict.Feedback,
		TestResults:     results,
	}
	if verdict.Status != domain.StatusCorrect {
		result.ErrorMessage = verdict.ErrorMessage
	}

	s.logger.Info("Submission graded",
		"questionId", question.QuestionID,
		"status", result.Status,
		"score", result.Score,
		"passed", result.TestCasesPassed,
		"total", result.TotalTestCases)

	return result, nil
}
