package grading

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/ports/secondary"
	"gitlab.com/codeprep.net/internal/domain"
)

// Runner executes a submission against every test case of a question.
// A failure in one case never aborts the batch.
type Runner struct {
	executor    secondary.CodeExecutor
	logger      primary.Logger
	maxParallel int
}

// NewRunner creates a runner. maxParallel <= 1 runs cases one after another.
func NewRunner(executor secondary.CodeExecutor, logger primary.Logger, maxParallel int) *Runner {
	return &Runner{
		executor:    executor,
		logger:      logger,
		maxParallel: maxParallel,
	}
}

// Run returns exactly one result per test case, in test case order.
func (r *Runner) Run(ctx context.Context, code string, language domain.Language, testCases domain.TestCases, functionName string) []domain.TestCaseResult {
	results := make([]domain.TestCaseResult, len(testCases))

	if r.maxParallel <= 1 {
		for i, tc := range testCases {
			results[i] = r.runOne(ctx, i, code, language, tc, functionName)
		}
		return results
	}

	g := new(errgroup.Group)
	g.SetLimit(r.maxParallel)
	for i, tc := range testCases {
		i, tc := i, tc
		g.Go(func() error {
			results[i] = r.runOne(ctx, i, code, language, tc, functionName)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (r *Runner) runOne(ctx context.Context, index int, code string, language domain.Language, tc domain.TestCase, functionName string) domain.TestCaseResult {
	result := domain.TestCaseResult{
		Input:          tc.Input,
		ExpectedOutput: strings.TrimSpace(tc.ExpectedOutput),
	}

	program, err := Wrap(code, language, tc.Input, functionName)
	if err != nil {
		r.logger.Warn("Failed to build harness", "case", index, "language", language, "error", err)
		result.Error = err.Error()
		result.Outcome = domain.ClassInfrastructureError
		return result
	}

	outcome, err := r.executor.Execute(ctx, secondary.ExecutionRequest{
		Source:   program,
		Language: language,
		Stdin:    tc.Input,
	})
	if err != nil {
		r.logger.Warn("Execution request failed", "case", index, "language", language, "error", err)
		result.Error = err.Error()
		result.Outcome = domain.ClassInfrastructureError
		return result
	}

	result.Outcome = outcome.Classification
	if outcome.Failed() {
		r.logger.Debug("Test case failed in sandbox", "case", index, "classification", outcome.Classification)
		result.Error = outcome.Message
		return result
	}

	result.ActualOutput = strings.TrimSpace(outcome.Stdout)
	result.Passed = OutputsMatch(outcome.Stdout, tc.ExpectedOutput)
	return result
}
