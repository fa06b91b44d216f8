package auth

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/ports/secondary"
	"gitlab.com/codeprep.net/internal/domain"
	"gitlab.com/codeprep.net/internal/global/logger"
	"gitlab.com/codeprep.net/internal/static/errs"
)

const minPasswordLength = 6

var _ ILocalAuthService = &localAuthService{}

type localAuthService struct {
	userPort    secondary.UserPort
	jwtProvider primary.JWTService
}

func NewLocalAuthService(
	userPort secondary.UserPort,
	jwtProvider primary.JWTService,
) ILocalAuthService {
	return &localAuthService{
		userPort:    userPort,
		jwtProvider: jwtProvider,
	}
}

func (g localAuthService) ProviderName() domain.Provider {
	return domain.ProviderLocal
}

func (g localAuthService) Register(ctx context.Context, creds *domain.Credentials) (*domain.LoginResponse, error) {
	name := strings.TrimSpace(creds.Name)
	email := normalizeEmail(creds.Email)
	switch {
	case name == "":
		return nil, errs.NameRequired
	case email == "":
		return nil, errs.EmailRequired
	case utf8.RuneCountInString(creds.Password) < minPasswordLength:
		return nil, errs.WeakPassword
	}

	existing, err := g.userPort.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.EmailTaken
	}

	hash, err := g.jwtProvider.EncryptPassword(ctx, creds.Password)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, errs.InternalError
	}

	user := &domain.Users{
		Name:         name,
		Email:        email,
		PasswordHash: &hash,
		AuthProvider: string(domain.ProviderLocal),
	}
	if err := g.userPort.Create(ctx, user); err != nil {
		logger.Error("Failed to create user", "email", email, "error", err)
		return nil, errs.FailedToCreateUser
	}

	return issueToken(ctx, g.jwtProvider, g.userPort, user)
}

func (g localAuthService) Login(ctx context.Context, creds *domain.Credentials) (*domain.LoginResponse, error) {
	email := normalizeEmail(creds.Email)
	if email == "" {
		return nil, errs.EmailRequired
	}

	usr, err := g.userPort.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if usr == nil || usr.PasswordHash == nil {
		return nil, errs.InvalidCredentials
	}

	valid, err := g.jwtProvider.VerifyPassword(ctx, *usr.PasswordHash, creds.Password)
	if err != nil || !valid {
		return nil, errs.InvalidCredentials
	}

	return issueToken(ctx, g.jwtProvider, g.userPort, usr)
}

func (g localAuthService) Me(ctx context.Context, userID uuid.UUID) (*domain.UserView, error) {
	usr, err := g.userPort.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, errs.UserNotFound
	}
	return usr.View(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
