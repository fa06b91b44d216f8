package secondary

import (
	"context"

	"gitlab.com/codeprep.net/internal/domain"
)

// IdentityProvider runs the authorization-code flow of an external sign-in.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Identity(ctx context.Context, code string) (*domain.Credentials, error)
}
