package secondary

import (
	"context"

	"gitlab.com/codeprep.net/internal/domain"
)

// ExecutionRequest is one program run inside the sandbox.
type ExecutionRequest struct {
	Source   string
	Language domain.Language
	Stdin    string
}

type CodeExecutor interface {
	// Execute runs a single program and classifies the result. Transport
	// failures are reported as an InfrastructureError outcome; a non-nil
	// error means the request could not be issued at all.
	Execute(ctx context.Context, req ExecutionRequest) (*domain.ExecutionOutcome, error)
}
