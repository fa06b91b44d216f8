package grading

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"gitlab.com/codeprep.net/internal/core/ports/secondary"
	"gitlab.com/codeprep.net/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

type fakeExecutor struct {
	mu    sync.Mutex
	calls []secondary.ExecutionRequest
	run   func(req secondary.ExecutionRequest) (*domain.ExecutionOutcome, error)
}

func (f *fakeExecutor) Execute(_ context.Context, req secondary.ExecutionRequest) (*domain.ExecutionOutcome, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()
	return f.run(req)
}

func (f *fakeExecutor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func success(stdout string) *domain.ExecutionOutcome {
	return &domain.ExecutionOutcome{Stdout: stdout, Classification: domain.ClassSuccess}
}

// echoExecutor doubles the stdin number, failing on inputs listed in broken.
func echoExecutor(broken map[string]error) *fakeExecutor {
	return &fakeExecutor{run: func(req secondary.ExecutionRequest) (*domain.ExecutionOutcome, error) {
		if err, ok := broken[req.Stdin]; ok {
			if err != nil {
				return nil, err
			}
			return &domain.ExecutionOutcome{
				Classification: domain.ClassInfrastructureError,
				Message:        "sandbox unavailable",
			}, nil
		}
		return success(req.Stdin + req.Stdin + "\n"), nil
	}}
}

func testCases(inputs ...string) domain.TestCases {
	out := make(domain.TestCases, len(inputs))
	for i, in := range inputs {
		out[i] = domain.TestCase{Input: in, ExpectedOutput: in + in}
	}
	return out
}

func TestRunnerIsolatesFailures(t *testing.T) {
	for _, parallel := range []int{1, 4} {
		exec := echoExecutor(map[string]error{"3": nil})
		runner := NewRunner(exec, nopLogger{}, parallel)

		got := runner.Run(context.Background(), "def solution(x):\n    return x\n", domain.LanguagePython, testCases("1", "2", "3", "4", "5"), "solution")
		if len(got) != 5 {
			t.Fatalf("parallel=%d: got %d results, want 5", parallel, len(got))
		}
		if exec.callCount() != 5 {
			t.Fatalf("parallel=%d: got %d executions, want 5", parallel, exec.callCount())
		}

		for i, r := range got {
			if r.Input != []string{"1", "2", "3", "4", "5"}[i] {
				t.Fatalf("parallel=%d: result %d has input %q, order not preserved", parallel, i, r.Input)
			}
			if i == 2 {
				if r.Passed || r.Error != "sandbox unavailable" || r.Outcome != domain.ClassInfrastructureError {
					t.Fatalf("parallel=%d: failing case = %+v", parallel, r)
				}
				continue
			}
			if !r.Passed {
				t.Fatalf("parallel=%d: case %d should pass: %+v", parallel, i, r)
			}
		}
	}
}

func TestRunnerExecutorError(t *testing.T) {
	exec := echoExecutor(map[string]error{"1": errors.New("connection refused")})
	got := NewRunner(exec, nopLogger{}, 1).Run(context.Background(), "", domain.LanguageJava, testCases("1", "2"), "solution")

	if got[0].Passed || got[0].Error != "connection refused" {
		t.Fatalf("first case = %+v", got[0])
	}
	if !got[1].Passed {
		t.Fatalf("second case = %+v", got[1])
	}
}

func TestRunnerHarnessError(t *testing.T) {
	exec := echoExecutor(nil)
	got := NewRunner(exec, nopLogger{}, 1).Run(context.Background(), "", domain.LanguagePython, testCases("1"), "not valid")

	if exec.callCount() != 0 {
		t.Fatalf("expected no executions, got %d", exec.callCount())
	}
	if got[0].Passed || !strings.Contains(got[0].Error, "invalid function name") {
		t.Fatalf("result = %+v", got[0])
	}
}

func TestRunnerSendsWrappedSourceAndStdin(t *testing.T) {
	exec := echoExecutor(nil)
	NewRunner(exec, nopLogger{}, 1).Run(context.Background(), "def f(a):\n    return a\n", domain.LanguagePython, testCases("7"), "f")

	req := exec.calls[0]
	if req.Stdin != "7" || req.Language != domain.LanguagePython {
		t.Fatalf("request = %+v", req)
	}
	if !strings.Contains(req.Source, "_h_entry('f')") {
		t.Fatal("source was not wrapped")
	}
}

func TestRunnerCompilationErrorKeepsMessage(t *testing.T) {
	exec := &fakeExecutor{run: func(secondary.ExecutionRequest) (*domain.ExecutionOutcome, error) {
		return &domain.ExecutionOutcome{
			Classification: domain.ClassCompilationError,
			Message:        "main.cpp:1: error: expected ';'",
		}, nil
	}}
	got := NewRunner(exec, nopLogger{}, 1).Run(context.Background(), "int main(){}", domain.LanguageCpp, testCases("1"), "solution")

	if got[0].Passed || got[0].Outcome != domain.ClassCompilationError || got[0].ActualOutput != "" {
		t.Fatalf("result = %+v", got[0])
	}
	if got[0].Error != "main.cpp:1: error: expected ';'" {
		t.Fatalf("error = %q", got[0].Error)
	}
}
