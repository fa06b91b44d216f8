package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codeprep.net/internal/adapter/crypto"
	"gitlab.com/codeprep.net/internal/config"
	"gitlab.com/codeprep.net/internal/domain"
	"gitlab.com/codeprep.net/internal/static/errs"
)

type fakeUserPort struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*domain.Users
	touched []uuid.UUID
}

func newFakeUserPort() *fakeUserPort {
	return &fakeUserPort{users: map[uuid.UUID]*domain.Users{}}
}

func (f *fakeUserPort) Create(_ context.Context, user *domain.Users) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserPort) Get(_ context.Context, id uuid.UUID) (*domain.Users, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id], nil
}

func (f *fakeUserPort) GetByEmail(_ context.Context, email string) (*domain.Users, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserPort) GetByGoogleID(_ context.Context, googleID string) (*domain.Users, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserPort) TouchLastLogin(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched = append(f.touched, id)
	return nil
}

func newJWT() *crypto.JWTServiceImpl {
	return crypto.NewJWTService(&config.JwtConfig{Secret: "test-secret", TTL: time.Hour}).(*crypto.JWTServiceImpl)
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserPort()
	jwtSvc := newJWT()
	svc := NewLocalAuthService(users, jwtSvc)

	reg, err := svc.Register(ctx, &domain.Credentials{Name: "Ada", Email: " Ada@Example.com ", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.User == nil || reg.User.Email != "ada@example.com" {
		t.Fatalf("unexpected user view: %+v", reg.User)
	}

	payload, err := jwtSvc.ParseTokenHMAC(ctx, reg.Token)
	if err != nil {
		t.Fatalf("ParseTokenHMAC: %v", err)
	}
	if payload.UserID != reg.User.ID || payload.Email != "ada@example.com" {
		t.Fatalf("unexpected claims: %+v", payload)
	}

	login, err := svc.Login(ctx, &domain.Credentials{Email: "ada@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Fatalf("login returned a different user")
	}
	if len(users.touched) != 2 {
		t.Fatalf("last login touched %d times, want 2", len(users.touched))
	}

	me, err := svc.Me(ctx, reg.User.ID)
	if err != nil || me.Name != "Ada" {
		t.Fatalf("Me = %+v, %v", me, err)
	}
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserPort()
	svc := NewLocalAuthService(users, newJWT())
	if _, err := svc.Register(ctx, &domain.Credentials{Name: "Ada", Email: "ada@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("seed register: %v", err)
	}

	tests := []struct {
		name  string
		creds domain.Credentials
		want  error
	}{
		{"missing name", domain.Credentials{Email: "b@example.com", Password: "secret1"}, errs.NameRequired},
		{"missing email", domain.Credentials{Name: "B", Password: "secret1"}, errs.EmailRequired},
		{"short password", domain.Credentials{Name: "B", Email: "b@example.com", Password: "12345"}, errs.WeakPassword},
		{"duplicate email", domain.Credentials{Name: "A2", Email: "ADA@example.com", Password: "secret1"}, errs.EmailTaken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, &tt.creds)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserPort()
	svc := NewLocalAuthService(users, newJWT())
	if _, err := svc.Register(ctx, &domain.Credentials{Name: "Ada", Email: "ada@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("seed register: %v", err)
	}

	for _, creds := range []domain.Credentials{
		{Email: "ada@example.com", Password: "wrong-pass"},
		{Email: "nobody@example.com", Password: "secret1"},
	} {
		if _, err := svc.Login(ctx, &creds); !errors.Is(err, errs.InvalidCredentials) {
			t.Fatalf("Login(%s) err = %v, want InvalidCredentials", creds.Email, err)
		}
	}
}

func TestMeUnknownUser(t *testing.T) {
	svc := NewLocalAuthService(newFakeUserPort(), newJWT())
	if _, err := svc.Me(context.Background(), uuid.New()); !errors.Is(err, errs.UserNotFound) {
		t.Fatalf("err = %v, want UserNotFound", err)
	}
}

func TestGoogleLogin(t *testing.T) {
	ctx := context.Background()
	cfg := &config.GGAuthConfig{ClientID: "id", ClientSecret: "secret"}

	t.Run("creates then reuses account", func(t *testing.T) {
		users := newFakeUserPort()
		svc := NewGoogleAuthService(users, newJWT(), cfg)
		first, err := svc.Login(ctx, &domain.Credentials{Email: "grace@example.com", GoogleID: "g-1"})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if first.User.Name != "grace" {
			t.Fatalf("name = %q, want email local part", first.User.Name)
		}
		second, err := svc.Login(ctx, &domain.Credentials{Email: "grace@example.com", GoogleID: "g-1"})
		if err != nil {
			t.Fatalf("second Login: %v", err)
		}
		if second.User.ID != first.User.ID || len(users.users) != 1 {
			t.Fatalf("expected the same account to be reused")
		}
	})

	t.Run("signs into existing email account", func(t *testing.T) {
		users := newFakeUserPort()
		local := NewLocalAuthService(users, newJWT())
		reg, err := local.Register(ctx, &domain.Credentials{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
		if err != nil {
			t.Fatalf("Register: %v", err)
		}
		svc := NewGoogleAuthService(users, newJWT(), cfg)
		got, err := svc.Login(ctx, &domain.Credentials{Email: "ada@example.com", GoogleID: "g-2"})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if got.User.ID != reg.User.ID {
			t.Fatalf("expected existing account")
		}
	})

	t.Run("rejects incomplete identity", func(t *testing.T) {
		svc := NewGoogleAuthService(newFakeUserPort(), newJWT(), cfg)
		if _, err := svc.Login(ctx, &domain.Credentials{Email: "x@example.com"}); !errors.Is(err, errs.InvalidCredentials) {
			t.Fatalf("err = %v", err)
		}
		if _, err := svc.Login(ctx, &domain.Credentials{GoogleID: "g"}); !errors.Is(err, errs.EmailRequired) {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("disabled without client config", func(t *testing.T) {
		svc := NewGoogleAuthService(newFakeUserPort(), newJWT(), &config.GGAuthConfig{})
		if _, err := svc.Login(ctx, &domain.Credentials{Email: "x@example.com", GoogleID: "g"}); !errors.Is(err, errs.GoogleDisabled) {
			t.Fatalf("err = %v", err)
		}
	})
}
