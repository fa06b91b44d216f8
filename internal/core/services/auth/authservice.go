package auth

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codeprep.net/internal/domain"
)

type IAuthService interface {
	ProviderName() domain.Provider
	Login(ctx context.Context, creds *domain.Credentials) (*domain.LoginResponse, error)
}

// ILocalAuthService is the email/password provider. It also owns profile lookups.
type ILocalAuthService interface {
	IAuthService
	Register(ctx context.Context, creds *domain.Credentials) (*domain.LoginResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*domain.UserView, error)
}
