package crypto

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codeprep.net/internal/config"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(&config.JwtConfig{Secret: "test-secret", TTL: time.Hour})
	ctx := context.Background()
	id := uuid.New()

	token, err := svc.GenerateTokenHMAC(ctx, "HS256", map[string]interface{}{
		"userId": id.String(),
		"email":  "ada@example.com",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	ok, err := svc.VerifyTokenHMAC(ctx, token, "HS256")
	if err != nil || !ok {
		t.Fatalf("verify: ok=%v err=%v", ok, err)
	}

	payload, err := svc.ParseTokenHMAC(ctx, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if payload.UserID != id || payload.Email != "ada@example.com" {
		t.Fatalf("payload = %+v", payload)
	}

	decoded, err := svc.DecodeTokenPayload(ctx, token)
	if err != nil || decoded.UserID != id {
		t.Fatalf("decode: %+v %v", decoded, err)
	}
}

func TestTokenRejectsWrongSecretAndExpiry(t *testing.T) {
	ctx := context.Background()
	issuer := NewJWTService(&config.JwtConfig{Secret: "one", TTL: time.Hour})
	other := NewJWTService(&config.JwtConfig{Secret: "two", TTL: time.Hour})

	token, err := issuer.GenerateTokenHMAC(ctx, "HS256", map[string]interface{}{"userId": uuid.NewString()})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := other.ParseTokenHMAC(ctx, token); err == nil {
		t.Fatal("expected signature failure")
	}

	expired, err := issuer.GenerateTokenHMAC(ctx, "HS256", map[string]interface{}{
		"userId": uuid.NewString(),
		"exp":    time.Now().Add(-time.Minute).Unix(),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := issuer.ParseTokenHMAC(ctx, expired); err == nil {
		t.Fatal("expected expired token to be rejected")
	}

	if _, err := issuer.GenerateTokenHMAC(ctx, "RS256", map[string]interface{}{}); err == nil {
		t.Fatal("expected non HMAC method to be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	svc := NewJWTService(&config.JwtConfig{Secret: "s"})
	ctx := context.Background()

	hash, err := svc.EncryptPassword(ctx, "hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if ok, err := svc.VerifyPassword(ctx, hash, "hunter2"); err != nil || !ok {
		t.Fatalf("expected password to verify: %v", err)
	}
	if ok, _ := svc.VerifyPassword(ctx, hash, "wrong"); ok {
		t.Fatal("expected wrong password to fail")
	}
}
