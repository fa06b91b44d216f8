package auth

import (
	"context"
	"strings"

	"gitlab.com/codeprep.net/internal/config"
	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/ports/secondary"
	"gitlab.com/codeprep.net/internal/domain"
	"gitlab.com/codeprep.net/internal/global/logger"
	"gitlab.com/codeprep.net/internal/static/errs"
)

var _ IAuthService = &googleAuthService{}

type googleAuthService struct {
	userPort    secondary.UserPort
	jwtProvider primary.JWTService
	Config      *config.GGAuthConfig
}

func NewGoogleAuthService(userPort secondary.UserPort, jwtProvider primary.JWTService, Config *config.GGAuthConfig) IAuthService {
	return &googleAuthService{
		userPort:    userPort,
		jwtProvider: jwtProvider,
		Config:      Config,
	}
}

func (g googleAuthService) ProviderName() domain.Provider {
	return domain.ProviderGoogle
}

// Login signs in the owner of a verified Google identity, linking it to an
// existing account with the same email or creating a new one.
func (g googleAuthService) Login(ctx context.Context, creds *domain.Credentials) (*domain.LoginResponse, error) {
	if g.Config == nil || !g.Config.Enabled() {
		return nil, errs.GoogleDisabled
	}
	if creds.GoogleID == "" {
		return nil, errs.InvalidCredentials
	}
	email := normalizeEmail(creds.Email)
	if email == "" {
		return nil, errs.EmailRequired
	}

	usr, err := g.userPort.GetByGoogleID(ctx, creds.GoogleID)
	if err != nil {
		return nil, err
	}
	if usr != nil {
		return issueToken(ctx, g.jwtProvider, g.userPort, usr)
	}

	usr, err = g.userPort.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if usr != nil {
		// the account exists with a password; sign in without relinking
		return issueToken(ctx, g.jwtProvider, g.userPort, usr)
	}

	name := strings.TrimSpace(creds.Name)
	if name == "" {
		name = strings.Split(email, "@")[0]
	}
	googleID := creds.GoogleID
	usr = &domain.Users{
		Name:         name,
		Email:        email,
		AuthProvider: string(domain.ProviderGoogle),
		GoogleID:     &googleID,
	}
	if err := g.userPort.Create(ctx, usr); err != nil {
		logger.Error("Failed to create google user", "email", email, "error", err)
		return nil, errs.FailedToCreateUser
	}

	return issueToken(ctx, g.jwtProvider, g.userPort, usr)
}
