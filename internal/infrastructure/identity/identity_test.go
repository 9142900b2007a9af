package identity

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSessionVerifier_IssueAndVerify(t *testing.T) {
	v := NewSessionVerifier("test-secret")

	tok, err := v.Issue(Session{UserID: "user-1", Email: "alice@example.com"}, time.Hour)
	if err != nil {
		t.Fatalf("issue: unexpected error: %v", err)
	}

	s, err := v.Verify(tok)
	if err != nil {
		t.Fatalf("verify: unexpected error: %v", err)
	}
	if s.UserID != "user-1" || s.Email != "alice@example.com" {
		t.Fatalf("unexpected session: %+v", s)
	}
}

func TestSessionVerifier_Rejects(t *testing.T) {
	v := NewSessionVerifier("test-secret")

	t.Run("wrong secret", func(t *testing.T) {
		tok, _ := NewSessionVerifier("other").Issue(Session{UserID: "u"}, time.Hour)
		if _, err := v.Verify(tok); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		tok, _ := v.Issue(Session{UserID: "u"}, -time.Minute)
		if _, err := v.Verify(tok); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("missing sub", func(t *testing.T) {
		tok, _ := v.Issue(Session{Email: "a@example.com"}, time.Hour)
		if _, err := v.Verify(tok); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("none algorithm", func(t *testing.T) {
		tok, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "u", "exp": time.Now().Add(time.Hour).Unix()}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		if _, err := v.Verify(tok); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		if _, err := NewSessionVerifier("").Verify("x"); !errors.Is(err, ErrSessionNotConfigured) {
			t.Fatalf("expected ErrSessionNotConfigured, got %v", err)
		}
	})
}

func TestOperatorAllowlist(t *testing.T) {
	a := NewOperatorAllowlist([]string{" Ops@Example.com ", ""})

	if !a.IsOperator("ops@example.com") {
		t.Fatalf("expected operator match ignoring case")
	}
	if a.IsOperator("ops@example.co") || a.IsOperator("") || a.IsOperator("xops@example.com") {
		t.Fatalf("unexpected partial match")
	}
}
