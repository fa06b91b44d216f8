package domain

import "github.com/google/uuid"

type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderLocal  Provider = "local"
)

// AuthPayload is the identity carried by an access token.
type AuthPayload struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  *UserView `json:"user,omitempty"`
}

// Credentials is what a login or registration supplies. Google sign-in
// fills GoogleID instead of Password.
type Credentials struct {
	Name     string
	Email    string
	Password string
	GoogleID string
}
