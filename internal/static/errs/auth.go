package errs

import "errors"

var InvalidCredentials = errors.New("invalid credentials")

var (
	InternalError      = errors.New("internal error")
	GeneratingToken    = errors.New("error generating token")
	EmailRequired      = errors.New("email is required")
	NameRequired       = errors.New("name is required")
	WeakPassword       = errors.New("password must be at least 6 characters")
	EmailTaken         = errors.New("user with this email already exists")
	FailedToCreateUser = errors.New("failed to create user")
	UserNotFound       = errors.New("user not found")
	GoogleDisabled     = errors.New("google sign-in is not configured")
	AdminRequired      = errors.New("admin access required")
)
