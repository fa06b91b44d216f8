package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/ports/secondary"
	"gitlab.com/codeprep.net/internal/domain"
	"gitlab.com/codeprep.net/internal/global/logger"
	"gitlab.com/codeprep.net/internal/static/errs"
)

// issueToken signs the identity claims and stamps the login time.
func issueToken(ctx context.Context, jwtProvider primary.JWTService, userPort secondary.UserPort, user *domain.Users) (*domain.LoginResponse, error) {
	claims := map[string]interface{}{
		"userId": user.ID.String(),
		"email":  user.Email,
	}
	token, err := jwtProvider.GenerateTokenHMAC(ctx, jwt.SigningMethodHS256.Name, claims)
	if err != nil {
		logger.Error("Failed to sign token", "user_id", user.ID, "error", err)
		return nil, errs.GeneratingToken
	}

	if err := userPort.TouchLastLogin(ctx, user.ID); err != nil {
		// a stale last_login is not worth failing the login over
		logger.Warn("Failed to update last login", "user_id", user.ID, "error", err)
	}

	return &domain.LoginResponse{
		Token: token,
		User:  user.View(),
	}, nil
}
