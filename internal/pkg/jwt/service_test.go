package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	tok, err := svc.GenerateAccessToken(userID, "alice@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	c, err := svc.ValidateAccessToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.UserID != userID {
		t.Fatalf("user id mismatch: %s", c.UserID)
	}
	if c.Email != "alice@example.com" {
		t.Fatalf("email mismatch: %q", c.Email)
	}
	if c.TokenType != TokenTypeAccess {
		t.Fatalf("token type mismatch: %q", c.TokenType)
	}
}

func TestRefreshTokenRejectedAsAccess(t *testing.T) {
	svc := newTestService()

	tok, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Different secret, so it fails signature before the type check.
	if _, err := svc.ValidateAccessToken(tok); err == nil {
		t.Fatalf("refresh token accepted as access token")
	}
}

func TestAccessTokenRejectedAsRefresh(t *testing.T) {
	svc := newTestService()

	tok, err := svc.GenerateAccessToken(uuid.New(), "a@b.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.ValidateRefreshToken(tok); err == nil {
		t.Fatalf("access token accepted as refresh token")
	}
}

func TestExpiredToken(t *testing.T) {
	svc := newTestService()
	issued := time.Now()
	svc.now = func() time.Time { return issued }

	tok, err := svc.GenerateAccessToken(uuid.New(), "a@b.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(16 * time.Minute) }
	if _, err := svc.ValidateAccessToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTamperedToken(t *testing.T) {
	svc := newTestService()
	tok, err := svc.GenerateAccessToken(uuid.New(), "a@b.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	last := byte('A')
	if tok[len(tok)-1] == 'A' {
		last = 'B'
	}
	tampered := tok[:len(tok)-1] + string(last)
	if _, err := svc.ValidateAccessToken(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestGarbageToken(t *testing.T) {
	svc := newTestService()
	if _, err := svc.ValidateAccessToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
